package balance

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
	GetBalance(ctx context.Context, userID uuid.UUID) (*domain.Balance, error)
	Deposit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*domain.BalanceEntry, error)
	Withdraw(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*domain.BalanceEntry, error)
	History(ctx context.Context, userID uuid.UUID) ([]domain.BalanceEntry, error)
}

type BalanceHandler struct {
	balanceService Service
}

func New(balanceService Service) *BalanceHandler {
	return &BalanceHandler{
		balanceService: balanceService,
	}
}

// GetBalance godoc
//
//	@Summary		Get user balance
//	@Description	Current wallet balance of the authenticated user
//	@Tags			Balance
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO
//	@Failure		401	{object}	utils.Response	"Not authorized"
//	@Failure		404	{object}	utils.Response	"Balance not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/balance [get]
//	@Security		BearerAuth
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.Caller(w, r)
	if !ok {
		return
	}
	balance, err := h.balanceService.GetBalance(r.Context(), id.UserID)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBalanceResponse(balance))
}

// Deposit godoc
//
//	@Summary	Top up the balance
//	@Tags		Balance
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.DepositRequestDTO	true	"Amount"
//	@Success	200		{object}	dto.BalanceEntryResponseDTO
//	@Failure	400		{object}	utils.Response	"Amount must be positive"
//	@Router		/api/v1/balance/deposit [post]
//	@Security	BearerAuth
func (h *BalanceHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.Caller(w, r)
	if !ok {
		return
	}
	var req dto.DepositRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	entry, err := h.balanceService.Deposit(r.Context(), id.UserID, amount)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBalanceEntryResponse(entry))
}

// Withdraw godoc
//
//	@Summary	Withdraw from the balance
//	@Tags		Balance
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.WithdrawRequestDTO	true	"Amount"
//	@Success	200		{object}	dto.BalanceEntryResponseDTO
//	@Failure	400		{object}	utils.Response	"Amount must be positive"
//	@Failure	402		{object}	utils.Response	"Insufficient funds"
//	@Router		/api/v1/balance/withdraw [post]
//	@Security	BearerAuth
func (h *BalanceHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.Caller(w, r)
	if !ok {
		return
	}
	var req dto.WithdrawRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	entry, err := h.balanceService.Withdraw(r.Context(), id.UserID, amount)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBalanceEntryResponse(entry))
}

// History godoc
//
//	@Summary	Balance movements, newest first
//	@Tags		Balance
//	@Produce	json
//	@Success	200	{array}	dto.BalanceEntryResponseDTO
//	@Router		/api/v1/balance/history [get]
//	@Security	BearerAuth
func (h *BalanceHandler) History(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.Caller(w, r)
	if !ok {
		return
	}
	entries, err := h.balanceService.History(r.Context(), id.UserID)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBalanceEntryResponses(entries))
}

func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: amount must be a number", domain.ErrValidation)
	}
	return amount, nil
}
