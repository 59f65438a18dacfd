package cart

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
	GetCart(ctx context.Context, userID uuid.UUID) (*domain.CartSummary, error)
	AddItem(ctx context.Context, userID, listingID uuid.UUID, qty int) (*domain.CartItem, error)
	UpdateItem(ctx context.Context, userID, listingID uuid.UUID, qty int) (*domain.CartItem, error)
	RemoveItem(ctx context.Context, userID, listingID uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) error
	Count(ctx context.Context, userID uuid.UUID) (int, int, error)
}

type CartHandler struct {
	cartService Service
}

func New(cartService Service) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// GetCart godoc
//
//	@Summary	Cart with totals and cashback
//	@Tags		Cart
//	@Produce	json
//	@Success	200	{object}	dto.CartResponseDTO
//	@Failure	401	{object}	utils.Response	"Not authorized"
//	@Router		/api/v1/cart [get]
//	@Security	BearerAuth
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.Caller(w, r)
	if !ok {
		return
	}
	summary, err := h.cartService.GetCart(r.Context(), id.UserID)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCartResponse(summary))
}

// Count godoc
//
//	@Summary	Number of cart rows and units
//	@Tags		Cart
//	@Produce	json
//	@Success	200	{object}	dto.CartCountResponseDTO
//	@Router		/api/v1/cart/count [get]
//	@Security	BearerAuth
func (h *CartHandler) Count(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.Caller(w, r)
	if !ok {
		return
	}
	rows, qty, err := h.cartService.Count(r.Context(), id.UserID)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CartCountResponseDTO{ItemCount: rows, TotalQuantity: qty})
}

// AddItem godoc
//
//	@Summary		Put a listing in the cart
//	@Description	Adds to the quantity already in the cart. Quantity defaults to 1
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AddCartItemRequestDTO	true	"Item"
//	@Success		201		{object}	dto.CartItemChangeResponseDTO
//	@Failure		400		{object}	utils.Response	"Insufficient stock"
//	@Failure		404		{object}	utils.Response	"Listing not found"
//	@Router			/api/v1/cart/items [post]
//	@Security		BearerAuth
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.Caller(w, r)
	if !ok {
		return
	}
	var req dto.AddCartItemRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	listingID, err := utils.ParseUUID("listing_id", req.ListingID)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	qty := req.Quantity
	if qty == 0 {
		qty = 1
	}
	item, err := h.cartService.AddItem(r.Context(), id.UserID, listingID, qty)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, newItemChange(item))
}

// UpdateItem godoc
//
//	@Summary		Set the quantity of a cart item
//	@Description	Quantity 0 removes the item
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			listingID	path		string							true	"Listing ID"
//	@Param			request		body		dto.UpdateCartItemRequestDTO	true	"Quantity"
//	@Success		200			{object}	dto.CartItemChangeResponseDTO
//	@Failure		400			{object}	utils.Response	"Insufficient stock"
//	@Failure		404			{object}	utils.Response	"Item not found in cart"
//	@Router			/api/v1/cart/items/{listingID} [patch]
//	@Security		BearerAuth
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.Caller(w, r)
	if !ok {
		return
	}
	listingID, err := utils.URLParamUUID(r, "listingID")
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	var req dto.UpdateCartItemRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	item, err := h.cartService.UpdateItem(r.Context(), id.UserID, listingID, *req.Quantity)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	if item == nil {
		utils.RespondWithJSON(w, http.StatusOK, utils.Response{Status: utils.StatusSuccess, Message: "Item removed from cart"})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, newItemChange(item))
}

// RemoveItem godoc
//
//	@Summary	Take a listing out of the cart
//	@Tags		Cart
//	@Produce	json
//	@Param		listingID	path		string	true	"Listing ID"
//	@Success	200			{object}	utils.Response
//	@Failure	404			{object}	utils.Response	"Item not found in cart"
//	@Router		/api/v1/cart/items/{listingID} [delete]
//	@Security	BearerAuth
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.Caller(w, r)
	if !ok {
		return
	}
	listingID, err := utils.URLParamUUID(r, "listingID")
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	if err := h.cartService.RemoveItem(r.Context(), id.UserID, listingID); err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Status: utils.StatusSuccess, Message: "Item removed from cart"})
}

// Clear godoc
//
//	@Summary	Empty the cart
//	@Tags		Cart
//	@Produce	json
//	@Success	200	{object}	utils.Response
//	@Router		/api/v1/cart [delete]
//	@Security	BearerAuth
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.Caller(w, r)
	if !ok {
		return
	}
	if err := h.cartService.Clear(r.Context(), id.UserID); err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Status: utils.StatusSuccess, Message: "Cart cleared"})
}

func newItemChange(item *domain.CartItem) dto.CartItemChangeResponseDTO {
	return dto.CartItemChangeResponseDTO{
		ID:        item.ID.String(),
		ListingID: item.ListingID.String(),
		Quantity:  item.Quantity,
	}
}
