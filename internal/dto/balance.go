package dto

type BalanceResponseDTO struct {
	Balance  string `json:"balance" example:"120.50"`
	Currency string `json:"currency" example:"EUR"`
}

type DepositRequestDTO struct {
	Amount string `json:"amount" validate:"required,numeric" example:"50.00"`
}

type BalanceEntryResponseDTO struct {
	ID            string `json:"id"`
	Amount        string `json:"amount" example:"-40.00"`
	Type          string `json:"type" example:"purchase"`
	Description   string `json:"description"`
	BalanceBefore string `json:"balance_before" example:"100.00"`
	BalanceAfter  string `json:"balance_after" example:"60.00"`
	CreatedAt     string `json:"created_at" example:"2024-05-01T10:00:00Z"`
}

type WithdrawRequestDTO struct {
	Amount string `json:"amount" validate:"required,numeric" example:"25.00"`
}
