package models

import "time"

type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

type Listing struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CategoryName  string    `gorm:"index;not null" json:"category_name"`
	SellerEmail   string    `gorm:"index;not null" json:"seller_email"`
	Name          string    `gorm:"not null" json:"name"`
	ResalePrice   float64   `gorm:"not null" json:"resale_price"`
	OriginalPrice float64   `json:"original_price"`
	Condition     string    `json:"condition"`
	Location      string    `json:"location"`
	Description   string    `json:"description"`
	Advertised    bool      `gorm:"not null;default:false" json:"advertised"`
	Paid          bool      `gorm:"not null;default:false" json:"paid"`
	TransactionID string    `json:"transaction_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
