package models

import "time"

// Payment is append-only: one committed payment per listing, enforced by a
// unique index on listing_id (see pkg/database).
type Payment struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ListingID     uint      `gorm:"not null" json:"listing_id"`
	BookingID     uint      `gorm:"not null" json:"booking_id"`
	TransactionID string    `gorm:"not null" json:"transaction_id"`
	Amount        float64   `gorm:"not null" json:"amount"`
	CreatedAt     time.Time `json:"created_at"`
}

type Report struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ListingID     uint      `gorm:"index;not null" json:"listing_id"`
	ReporterEmail string    `gorm:"not null" json:"reporter_email"`
	Reason        string    `json:"reason"`
	CreatedAt     time.Time `json:"created_at"`
}

type WishlistEntry struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ListingID  uint      `gorm:"index;not null" json:"listing_id"`
	BuyerEmail string    `gorm:"index;not null" json:"buyer_email"`
	CreatedAt  time.Time `json:"created_at"`
}
