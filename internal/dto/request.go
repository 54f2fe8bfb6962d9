package dto

type CreateUserRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type CreateListingRequest struct {
	CategoryName  string  `json:"category_name"`
	Name          string  `json:"name"`
	ResalePrice   float64 `json:"resale_price"`
	OriginalPrice float64 `json:"original_price"`
	Condition     string  `json:"condition"`
	Location      string  `json:"location"`
	Description   string  `json:"description"`
}

type CreateBookingRequest struct {
	ListingID       uint   `json:"listing_id"`
	MeetingLocation string `json:"meeting_location"`
	Phone           string `json:"phone"`
}

type CreateIntentRequest struct {
	BookingID uint `json:"booking_id"`
}

type CompletePaymentRequest struct {
	ListingID     uint    `json:"listing_id"`
	BookingID     uint    `json:"booking_id"`
	TransactionID string  `json:"transaction_id"`
	Amount        float64 `json:"amount"`
}

type CreateReportRequest struct {
	ListingID uint   `json:"listing_id"`
	Reason    string `json:"reason"`
}

type CreateWishlistRequest struct {
	ListingID uint `json:"listing_id"`
}
