package dto

type OrderItemResponseDTO struct {
	ListingID       string `json:"listing_id,omitempty"`
	GameTitle       string `json:"game_title"`
	PlatformName    string `json:"platform_name"`
	RegionName      string `json:"region_name"`
	Quantity        int    `json:"quantity"`
	PriceAtPurchase string `json:"price_at_purchase" example:"40.00"`
}

type OrderResponseDTO struct {
	Number        string                 `json:"number" example:"79927398713"`
	Status        string                 `json:"status" example:"completed"`
	TotalAmount   string                 `json:"total_amount" example:"40.00"`
	TotalCashback string                 `json:"total_cashback" example:"3.60"`
	PaymentMethod string                 `json:"payment_method" example:"balance"`
	CreatedAt     string                 `json:"created_at" example:"2024-05-01T10:00:00Z"`
	Items         []OrderItemResponseDTO `json:"items,omitempty"`
}

type TrackVisitorRequestDTO struct {
	Page      string `json:"page" validate:"max=500" example:"/"`
	Referrer  string `json:"referrer" validate:"max=500"`
	UserAgent string `json:"user_agent" validate:"max=500"`
	Language  string `json:"language" validate:"max=50" example:"lt-LT"`
	Screen    string `json:"screen" validate:"max=50" example:"1920x1080"`
}
