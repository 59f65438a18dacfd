package dto

type PlatformDTO struct {
	ID   int    `json:"id" example:"1"`
	Name string `json:"name" example:"PC"`
}

type RegionDTO struct {
	ID   int    `json:"id" example:"2"`
	Name string `json:"name" example:"Europe"`
	Code string `json:"code" example:"EU"`
}

type CreateGameRequestDTO struct {
	Title       string `json:"title" validate:"required,min=1,max=255" example:"Elden Ring"`
	Description string `json:"description" validate:"max=5000"`
	Publisher   string `json:"publisher" validate:"max=255" example:"Bandai Namco"`
	Developer   string `json:"developer" validate:"max=255" example:"FromSoftware"`
	ReleaseDate string `json:"release_date" validate:"omitempty,datetime=2006-01-02" example:"2022-02-25"`
	ImageURL    string `json:"image_url" validate:"omitempty,url,max=500"`
	PlatformIDs []int  `json:"platform_ids" validate:"required,min=1,dive,gt=0" example:"1,7"`
}

type GameResponseDTO struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Publisher   string        `json:"publisher"`
	Developer   string        `json:"developer"`
	ReleaseDate string        `json:"release_date,omitempty" example:"2022-02-25"`
	ImageURL    string        `json:"image_url"`
	Platforms   []PlatformDTO `json:"platforms"`
}

type GameDetailsResponseDTO struct {
	Game     GameResponseDTO      `json:"game"`
	Listings []ListingResponseDTO `json:"listings"`
}

type GameListResponseDTO struct {
	Results int               `json:"results" example:"20"`
	Games   []GameResponseDTO `json:"games"`
}
