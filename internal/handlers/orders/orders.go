package orders

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/GlebRadaev/gamemarket/internal/domain"
	"github.com/GlebRadaev/gamemarket/internal/dto"
	"github.com/GlebRadaev/gamemarket/pkg/auth"
	"github.com/GlebRadaev/gamemarket/pkg/utils"
)

const IdempotencyHeader = "Idempotency-Key"

type Service interface {
	Checkout(ctx context.Context, userID uuid.UUID, idempotencyKey string) (*domain.Order, error)
	GetOrders(ctx context.Context, userID uuid.UUID) ([]domain.Order, error)
	GetOrder(ctx context.Context, userID uuid.UUID, orderNumber string) (*domain.Order, error)
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// Checkout godoc
//
//	@Summary		Buy everything in the cart
//	@Description	Pays from the balance, credits cashback and empties the cart in one transaction.
//	@Description	A repeated Idempotency-Key returns the order created by the first request.
//	@Tags			Orders
//	@Produce		json
//	@Param			Idempotency-Key	header		string	false	"Client generated key"
//	@Success		201				{object}	dto.OrderResponseDTO
//	@Failure		400				{object}	utils.Response	"Cart is empty or stock is insufficient"
//	@Failure		402				{object}	utils.Response	"Insufficient funds"
//	@Failure		409				{object}	utils.Response	"Checkout with this key is in progress"
//	@Router			/api/v1/orders/checkout [post]
//	@Security		BearerAuth
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.Caller(w, r)
	if !ok {
		return
	}
	key := strings.TrimSpace(r.Header.Get(IdempotencyHeader))
	order, err := h.orderService.Checkout(r.Context(), id.UserID, key)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewOrderResponse(order))
}

// GetOrders godoc
//
//	@Summary	Orders of the caller, newest first
//	@Tags		Orders
//	@Produce	json
//	@Success	200	{array}	dto.OrderResponseDTO
//	@Router		/api/v1/orders [get]
//	@Security	BearerAuth
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.Caller(w, r)
	if !ok {
		return
	}
	orders, err := h.orderService.GetOrders(r.Context(), id.UserID)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOrderResponses(orders))
}

// GetOrder godoc
//
//	@Summary	One order with its items
//	@Tags		Orders
//	@Produce	json
//	@Param		number	path		string	true	"Order number"
//	@Success	200		{object}	dto.OrderResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid order number"
//	@Failure	404		{object}	utils.Response	"Order not found"
//	@Router		/api/v1/orders/{number} [get]
//	@Security	BearerAuth
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.Caller(w, r)
	if !ok {
		return
	}
	order, err := h.orderService.GetOrder(r.Context(), id.UserID, chi.URLParam(r, "number"))
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOrderResponse(order))
}
