package dto

type AddCartItemRequestDTO struct {
	ListingID string `json:"listing_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"omitempty,gte=1,lte=100" example:"1"`
}

type UpdateCartItemRequestDTO struct {
	Quantity *int `json:"quantity" validate:"required" example:"2"`
}

type CartItemResponseDTO struct {
	ID                 string `json:"id"`
	ListingID          string `json:"listing_id"`
	GameID             string `json:"game_id"`
	Title              string `json:"title"`
	ImageURL           string `json:"image_url"`
	PlatformName       string `json:"platform_name"`
	RegionName         string `json:"region_name"`
	SellerName         string `json:"seller_name"`
	Quantity           int    `json:"quantity" example:"2"`
	Stock              int    `json:"stock"`
	Price              string `json:"price" example:"10.00"`
	DiscountPercentage string `json:"discount_percentage" example:"9.00"`
	DiscountedPrice    string `json:"discounted_price" example:"9.10"`
	Cashback           string `json:"cashback" example:"0.82"`
	Subtotal           string `json:"subtotal" example:"18.20"`
	TotalCashback      string `json:"total_cashback" example:"1.64"`
	Currency           string `json:"currency" example:"EUR"`
}

type CartResponseDTO struct {
	Items         []CartItemResponseDTO `json:"items"`
	Total         string                `json:"total" example:"27.30"`
	TotalCashback string                `json:"totalCashback" example:"2.46"`
	ItemCount     int                   `json:"itemCount" example:"2"`
	TotalQuantity int                   `json:"totalQuantity" example:"3"`
}

type CartCountResponseDTO struct {
	ItemCount     int `json:"item_count" example:"2"`
	TotalQuantity int `json:"total_quantity" example:"3"`
}

type CartItemChangeResponseDTO struct {
	ID        string `json:"id"`
	ListingID string `json:"listing_id"`
	Quantity  int    `json:"quantity" example:"2"`
}
