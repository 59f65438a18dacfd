package dto

type FavoriteResponseDTO struct {
	ListingID          string `json:"listing_id"`
	GameID             string `json:"game_id"`
	Title              string `json:"title"`
	ImageURL           string `json:"image_url"`
	PlatformName       string `json:"platform_name"`
	RegionName         string `json:"region_name"`
	Price              string `json:"price"`
	DiscountPercentage string `json:"discount_percentage"`
	DiscountedPrice    string `json:"discounted_price"`
	Cashback           string `json:"cashback"`
	Currency           string `json:"currency"`
	Stock              int    `json:"stock"`
	WishlistCount      int    `json:"wishlist_count"`
	AddedAt            string `json:"added_at" example:"2024-05-01T10:00:00Z"`
}

type FavoriteStatusResponseDTO struct {
	IsFavorite bool `json:"isFavorite"`
}
