package dto

type ListingResponseDTO struct {
	ID                 string  `json:"id"`
	GameID             string  `json:"game_id"`
	Title              string  `json:"title" example:"Elden Ring"`
	Description        string  `json:"description,omitempty"`
	ImageURL           string  `json:"image_url"`
	Publisher          string  `json:"publisher,omitempty"`
	Developer          string  `json:"developer,omitempty"`
	SellerID           string  `json:"seller_id"`
	SellerName         string  `json:"seller_name"`
	SellerRating       string  `json:"seller_rating" example:"9.25"`
	SellerReviews      int     `json:"seller_reviews" example:"12"`
	PlatformID         int     `json:"platform_id"`
	PlatformName       string  `json:"platform_name" example:"Steam"`
	RegionID           int     `json:"region_id"`
	RegionName         string  `json:"region_name" example:"Europe"`
	RegionCode         string  `json:"region_code,omitempty" example:"EU"`
	Price              string  `json:"price" example:"50.00"`
	DiscountPercentage string  `json:"discount_percentage" example:"20.00"`
	DiscountedPrice    string  `json:"discounted_price" example:"40.00"`
	Cashback           string  `json:"cashback" example:"3.60"`
	Currency           string  `json:"currency" example:"EUR"`
	Stock              int     `json:"stock" example:"10"`
	IsActive           bool    `json:"is_active"`
	WishlistCount      int     `json:"wishlist_count" example:"3"`
	SimilarityScore    float32 `json:"similarity_score,omitempty"`
}

type ListingPageResponseDTO struct {
	Results  int                  `json:"results" example:"50"`
	Page     int                  `json:"page" example:"1"`
	Limit    int                  `json:"limit" example:"50"`
	Listings []ListingResponseDTO `json:"listings"`
}

type CreateListingRequestDTO struct {
	GameID             string  `json:"game_id" validate:"required,uuid"`
	Platform           string  `json:"platform" validate:"required,max=100" example:"Steam"`
	Region             string  `json:"region" validate:"required,max=100" example:"EU"`
	Price              string  `json:"price" validate:"required,numeric" example:"50.00"`
	DiscountPercentage *string `json:"discount_percentage" validate:"omitempty,numeric" example:"20"`
	Currency           string  `json:"currency" validate:"omitempty,len=3" example:"EUR"`
	Stock              int     `json:"stock" validate:"gte=0" example:"10"`
}

type UpdateListingRequestDTO struct {
	Price              *string `json:"price" validate:"omitempty,numeric" example:"45.00"`
	DiscountPercentage *string `json:"discount_percentage" validate:"omitempty,numeric" example:"10"`
	Stock              *int    `json:"stock" validate:"omitempty,gte=0" example:"5"`
	IsActive           *bool   `json:"is_active"`
}

type ListingListResponseDTO struct {
	Results  int                  `json:"results" example:"3"`
	Listings []ListingResponseDTO `json:"listings"`
}
