package listings

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/gamemarket/internal/domain"
	"github.com/GlebRadaev/gamemarket/internal/dto"
	"github.com/GlebRadaev/gamemarket/pkg/auth"
	"github.com/GlebRadaev/gamemarket/pkg/utils"
)

type Service interface {
	ListMarketplace(ctx context.Context, search string, page, limit int) ([]domain.ListingView, error)
	ListMine(ctx context.Context, sellerID uuid.UUID) ([]domain.ListingView, error)
	CreateListing(ctx context.Context, draft domain.ListingDraft) (*domain.Listing, error)
	UpdateListing(ctx context.Context, id, sellerID uuid.UUID, upd domain.ListingUpdate) (*domain.Listing, error)
	DeleteListing(ctx context.Context, id, sellerID uuid.UUID) error
}

type ListingHandler struct {
	listingService Service
}

func New(listingService Service) *ListingHandler {
	return &ListingHandler{
		listingService: listingService,
	}
}

// Marketplace godoc
//
//	@Summary		Browse the marketplace
//	@Description	Active listings with stock. With search, ranked by title similarity and then by price
//	@Tags			Listings
//	@Produce		json
//	@Param			search	query		string	false	"Title search"
//	@Param			page	query		int		false	"Page number"	default(1)
//	@Param			limit	query		int		false	"Page size"		default(50)
//	@Success		200		{object}	dto.ListingPageResponseDTO
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/listings [get]
func (h *ListingHandler) Marketplace(w http.ResponseWriter, r *http.Request) {
	page, limit := utils.QueryInt(r, "page"), utils.QueryInt(r, "limit")
	views, err := h.listingService.ListMarketplace(r.Context(), r.URL.Query().Get("search"), page, limit)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	limit, offset := domain.Paginate(page, limit)
	utils.RespondWithJSON(w, http.StatusOK, dto.ListingPageResponseDTO{
		Results:  len(views),
		Page:     offset/limit + 1,
		Limit:    limit,
		Listings: dto.NewListingResponses(views),
	})
}

// MyListings godoc
//
//	@Summary	Listings of the calling seller
//	@Tags		Listings
//	@Produce	json
//	@Success	200	{object}	dto.ListingListResponseDTO
//	@Failure	403	{object}	utils.Response	"Access denied"
//	@Router		/api/v1/my-listings [get]
//	@Security	BearerAuth
func (h *ListingHandler) MyListings(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.Caller(w, r)
	if !ok {
		return
	}
	views, err := h.listingService.ListMine(r.Context(), id.UserID)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ListingListResponseDTO{Results: len(views), Listings: dto.NewListingResponses(views)})
}

// CreateListing godoc
//
//	@Summary	Offer a game for sale
//	@Tags		Listings
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.CreateListingRequestDTO	true	"Listing"
//	@Success	201		{object}	dto.ListingResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid request body"
//	@Failure	404		{object}	utils.Response	"Game not found"
//	@Router		/api/v1/listings [post]
//	@Security	BearerAuth
func (h *ListingHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.Caller(w, r)
	if !ok {
		return
	}
	var req dto.CreateListingRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	price, err := parseAmount("price", &req.Price)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	discount, err := parseAmount("discount_percentage", req.DiscountPercentage)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	gameID, err := utils.ParseUUID("game_id", req.GameID)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	draft := domain.ListingDraft{
		GameID:   gameID,
		SellerID: id.UserID,
		Platform: req.Platform,
		Region:   req.Region,
		Price:    *price,
		Currency: req.Currency,
		Stock:    req.Stock,
	}
	if discount != nil {
		draft.DiscountPercentage = *discount
	}
	listing, err := h.listingService.CreateListing(r.Context(), draft)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewListingRecordResponse(listing))
}

// UpdateListing godoc
//
//	@Summary		Change a listing
//	@Description	Partial update. Only the owning seller can change a listing; other listings are reported as not found
//	@Tags			Listings
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Listing ID"
//	@Param			request	body		dto.UpdateListingRequestDTO	true	"Fields to change"
//	@Success		200		{object}	dto.ListingResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Listing not found"
//	@Router			/api/v1/listings/{id} [patch]
//	@Security		BearerAuth
func (h *ListingHandler) UpdateListing(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.Caller(w, r)
	if !ok {
		return
	}
	listingID, err := utils.URLParamUUID(r, "id")
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	var req dto.UpdateListingRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	upd := domain.ListingUpdate{Stock: req.Stock, IsActive: req.IsActive}
	if upd.Price, err = parseAmount("price", req.Price); err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	if upd.DiscountPercentage, err = parseAmount("discount_percentage", req.DiscountPercentage); err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	listing, err := h.listingService.UpdateListing(r.Context(), listingID, id.UserID, upd)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewListingRecordResponse(listing))
}

// DeleteListing godoc
//
//	@Summary	Remove a listing
//	@Tags		Listings
//	@Produce	json
//	@Param		id	path		string	true	"Listing ID"
//	@Success	200	{object}	utils.Response
//	@Failure	404	{object}	utils.Response	"Listing not found"
//	@Router		/api/v1/listings/{id} [delete]
//	@Security	BearerAuth
func (h *ListingHandler) DeleteListing(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.Caller(w, r)
	if !ok {
		return
	}
	listingID, err := utils.URLParamUUID(r, "id")
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	if err := h.listingService.DeleteListing(r.Context(), listingID, id.UserID); err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Status: utils.StatusSuccess, Message: "Listing deleted successfully"})
}

// parseAmount reads an optional decimal field; nil stays nil.
func parseAmount(field string, raw *string) (*decimal.Decimal, error) {
	if raw == nil {
		return nil, nil
	}
	d, err := decimal.NewFromString(*raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a number", domain.ErrValidation, field)
	}
	return &d, nil
}
