package favorites

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/GlebRadaev/gamemarket/internal/domain"
	"github.com/GlebRadaev/gamemarket/internal/dto"
	"github.com/GlebRadaev/gamemarket/pkg/auth"
	"github.com/GlebRadaev/gamemarket/pkg/utils"
)

type Service interface {
	Add(ctx context.Context, userID, listingID uuid.UUID) error
	Remove(ctx context.Context, userID, listingID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID) ([]domain.FavoriteView, error)
	IsFavorite(ctx context.Context, userID, listingID uuid.UUID) (bool, error)
}

type FavoriteHandler struct {
	favoriteService Service
}

func New(favoriteService Service) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteService: favoriteService,
	}
}

// List godoc
//
//	@Summary	Favorite listings of the caller
//	@Tags		Favorites
//	@Produce	json
//	@Success	200	{array}		dto.FavoriteResponseDTO
//	@Failure	401	{object}	utils.Response	"Not authorized"
//	@Router		/api/v1/favorites [get]
//	@Security	BearerAuth
func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.Caller(w, r)
	if !ok {
		return
	}
	views, err := h.favoriteService.List(r.Context(), id.UserID)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewFavoriteResponses(views))
}

// Add godoc
//
//	@Summary		Mark a listing as favorite
//	@Description	Adding a listing twice is not an error
//	@Tags			Favorites
//	@Produce		json
//	@Param			listingID	path		string	true	"Listing ID"
//	@Success		201			{object}	utils.Response
//	@Failure		404			{object}	utils.Response	"Listing not found"
//	@Router			/api/v1/favorites/{listingID} [post]
//	@Security		BearerAuth
func (h *FavoriteHandler) Add(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.Caller(w, r)
	if !ok {
		return
	}
	listingID, err := utils.URLParamUUID(r, "listingID")
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	if err := h.favoriteService.Add(r.Context(), id.UserID, listingID); err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.Response{Status: utils.StatusSuccess, Message: "Added to favorites"})
}

// Remove godoc
//
//	@Summary	Unmark a favorite listing
//	@Tags		Favorites
//	@Produce	json
//	@Param		listingID	path		string	true	"Listing ID"
//	@Success	200			{object}	utils.Response
//	@Failure	404			{object}	utils.Response	"Listing not found in favorites"
//	@Router		/api/v1/favorites/{listingID} [delete]
//	@Security	BearerAuth
func (h *FavoriteHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.Caller(w, r)
	if !ok {
		return
	}
	listingID, err := utils.URLParamUUID(r, "listingID")
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	if err := h.favoriteService.Remove(r.Context(), id.UserID, listingID); err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Status: utils.StatusSuccess, Message: "Removed from favorites"})
}

// Check godoc
//
//	@Summary	Is the listing a favorite of the caller
//	@Tags		Favorites
//	@Produce	json
//	@Param		listingID	path		string	true	"Listing ID"
//	@Success	200			{object}	dto.FavoriteStatusResponseDTO
//	@Router		/api/v1/favorites/{listingID}/check [get]
//	@Security	BearerAuth
func (h *FavoriteHandler) Check(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.Caller(w, r)
	if !ok {
		return
	}
	listingID, err := utils.URLParamUUID(r, "listingID")
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	fav, err := h.favoriteService.IsFavorite(r.Context(), id.UserID, listingID)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FavoriteStatusResponseDTO{IsFavorite: fav})
}
