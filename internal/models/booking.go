package models

import "time"

// Booking is a buyer's reservation of a listing pending payment.
type Booking struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	ListingID       uint      `gorm:"index;not null" json:"listing_id"`
	BuyerEmail      string    `gorm:"index;not null" json:"buyer_email"`
	ProductName     string    `json:"product_name"`
	ResalePrice     float64   `gorm:"not null" json:"resale_price"`
	MeetingLocation string    `json:"meeting_location"`
	Phone           string    `json:"phone"`
	Paid            bool      `gorm:"not null;default:false" json:"paid"`
	TransactionID   string    `json:"transaction_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
