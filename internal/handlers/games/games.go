package games

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/GlebRadaev/gamemarket/internal/domain"
	"github.com/GlebRadaev/gamemarket/internal/dto"
	"github.com/GlebRadaev/gamemarket/pkg/utils"
)

type Service interface {
	ListGames(ctx context.Context, page, limit int) ([]domain.Game, error)
	SearchGames(ctx context.Context, query string) ([]domain.Game, error)
	GetGameDetails(ctx context.Context, id uuid.UUID) (*domain.Game, []domain.ListingView, error)
	CreateGame(ctx context.Context, game *domain.Game, platformIDs []int) (*domain.Game, error)
	ListPlatforms(ctx context.Context) ([]domain.Platform, error)
	ListRegions(ctx context.Context) ([]domain.Region, error)
}

type GameHandler struct {
	gameService Service
}

func New(gameService Service) *GameHandler {
	return &GameHandler{
		gameService: gameService,
	}
}

// ListGames godoc
//
//	@Summary	Catalog page
//	@Tags		Games
//	@Produce	json
//	@Param		page	query		int	false	"Page number"	default(1)
//	@Param		limit	query		int	false	"Page size"		default(50)
//	@Success	200		{object}	dto.GameListResponseDTO
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/v1/games [get]
func (h *GameHandler) ListGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.gameService.ListGames(r.Context(), utils.QueryInt(r, "page"), utils.QueryInt(r, "limit"))
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.GameListResponseDTO{Results: len(games), Games: dto.NewGameResponses(games)})
}

// SearchGames godoc
//
//	@Summary	Fuzzy title search
//	@Tags		Games
//	@Produce	json
//	@Param		q	query		string	true	"Search query"
//	@Success	200	{object}	dto.GameListResponseDTO
//	@Failure	400	{object}	utils.Response	"Search query is required"
//	@Router		/api/v1/games/search [get]
func (h *GameHandler) SearchGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.gameService.SearchGames(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.GameListResponseDTO{Results: len(games), Games: dto.NewGameResponses(games)})
}

// GetGame godoc
//
//	@Summary	Game with its purchasable listings
//	@Tags		Games
//	@Produce	json
//	@Param		id	path		string	true	"Game ID"
//	@Success	200	{object}	dto.GameDetailsResponseDTO
//	@Failure	400	{object}	utils.Response	"Invalid id"
//	@Failure	404	{object}	utils.Response	"Game not found"
//	@Router		/api/v1/games/{id} [get]
func (h *GameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	id, err := utils.URLParamUUID(r, "id")
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	game, listings, err := h.gameService.GetGameDetails(r.Context(), id)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.GameDetailsResponseDTO{
		Game:     dto.NewGameResponse(game),
		Listings: dto.NewListingResponses(listings),
	})
}

// CreateGame godoc
//
//	@Summary	Add a game to the catalog
//	@Tags		Games
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.CreateGameRequestDTO	true	"Game"
//	@Success	201		{object}	dto.GameResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid request body"
//	@Failure	403		{object}	utils.Response	"Access denied"
//	@Router		/api/v1/games [post]
//	@Security	BearerAuth
func (h *GameHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateGameRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	game := &domain.Game{
		Title:       req.Title,
		Description: req.Description,
		Publisher:   req.Publisher,
		Developer:   req.Developer,
		ImageURL:    req.ImageURL,
	}
	if req.ReleaseDate != "" {
		d, err := time.Parse(time.DateOnly, req.ReleaseDate)
		if err != nil {
			utils.RespondWithDomainError(w, fmt.Errorf("%w: release_date must be a date in YYYY-MM-DD format", domain.ErrValidation))
			return
		}
		game.ReleaseDate = &d
	}
	created, err := h.gameService.CreateGame(r.Context(), game, req.PlatformIDs)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewGameResponse(created))
}

// ListPlatforms godoc
//
//	@Summary	Known platforms
//	@Tags		Games
//	@Produce	json
//	@Success	200	{array}	dto.PlatformDTO
//	@Router		/api/v1/platforms [get]
func (h *GameHandler) ListPlatforms(w http.ResponseWriter, r *http.Request) {
	platforms, err := h.gameService.ListPlatforms(r.Context())
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPlatformResponses(platforms))
}

// ListRegions godoc
//
//	@Summary	Known regions
//	@Tags		Games
//	@Produce	json
//	@Success	200	{array}	dto.RegionDTO
//	@Router		/api/v1/regions [get]
func (h *GameHandler) ListRegions(w http.ResponseWriter, r *http.Request) {
	regions, err := h.gameService.ListRegions(r.Context())
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewRegionResponses(regions))
}
