package balanceservice

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gamemarket/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockBalanceRepo, *MockHistoryRepo) {
	ctrl := gomock.NewController(t)
	balanceRepo := NewMockBalanceRepo(ctrl)
	historyRepo := NewMockHistoryRepo(ctrl)
	service := New(balanceRepo, historyRepo)
	defer ctrl.Finish()
	return service, balanceRepo, historyRepo
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestGetBalance(t *testing.T) {
	service, balanceRepo, _ := NewMock(t)
	userID := uuid.New()

	tests := []struct {
		name            string
		prepareMock     func()
		expectedBalance *domain.Balance
		expectedError   error
	}{
		{
			name: "Retrieve balance successfully",
			prepareMock: func() {
				balanceRepo.EXPECT().Get(gomock.Any(), userID).Return(&domain.Balance{UserID: userID, Amount: dec("100"), Currency: "EUR"}, nil)
			},
			expectedBalance: &domain.Balance{UserID: userID, Amount: dec("100"), Currency: "EUR"},
		},
		{
			name: "Balance missing",
			prepareMock: func() {
				balanceRepo.EXPECT().Get(gomock.Any(), userID).Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
		{
			name: "Error retrieving balance",
			prepareMock: func() {
				balanceRepo.EXPECT().Get(gomock.Any(), userID).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			balance, err := service.GetBalance(context.Background(), userID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBalance, balance)
		})
	}
}

func TestDeposit(t *testing.T) {
	service, balanceRepo, _ := NewMock(t)
	userID := uuid.New()

	tests := []struct {
		name          string
		amount        string
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Deposit",
			amount: "50.00",
			prepareMock: func() {
				balanceRepo.EXPECT().Apply(gomock.Any(), userID, dec("50.00"), domain.EntryDeposit, gomock.Any()).
					Return(&domain.BalanceEntry{Amount: dec("50"), BalanceBefore: dec("10"), BalanceAfter: dec("60")}, nil)
			},
		},
		{
			name:          "Zero amount",
			amount:        "0",
			prepareMock:   func() {},
			expectedError: domain.ErrValidation,
		},
		{
			name:          "Negative amount",
			amount:        "-5",
			prepareMock:   func() {},
			expectedError: domain.ErrValidation,
		},
		{
			name:          "Sub cent amount",
			amount:        "1.005",
			prepareMock:   func() {},
			expectedError: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			entry, err := service.Deposit(context.Background(), userID, dec(tt.amount))
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "60.00", entry.BalanceAfter.StringFixed(2))
		})
	}
}

func TestWithdraw(t *testing.T) {
	service, balanceRepo, _ := NewMock(t)
	userID := uuid.New()

	balanceRepo.EXPECT().Apply(gomock.Any(), userID, dec("-20"), domain.EntryWithdrawal, gomock.Any()).
		Return(&domain.BalanceEntry{Amount: dec("-20"), BalanceAfter: dec("80")}, nil)
	entry, err := service.Withdraw(context.Background(), userID, dec("20"))
	assert.NoError(t, err)
	assert.Equal(t, "-20.00", entry.Amount.StringFixed(2))

	balanceRepo.EXPECT().Apply(gomock.Any(), userID, dec("-500"), domain.EntryWithdrawal, gomock.Any()).
		Return(nil, domain.ErrInsufficientFunds)
	_, err = service.Withdraw(context.Background(), userID, dec("500"))
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
}

func TestHistory(t *testing.T) {
	service, _, historyRepo := NewMock(t)
	userID := uuid.New()

	historyRepo.EXPECT().ListByUser(gomock.Any(), userID, historyLimit).Return([]domain.BalanceEntry{{Type: domain.EntryCashback}}, nil)
	entries, err := service.History(context.Background(), userID)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)

	historyRepo.EXPECT().ListByUser(gomock.Any(), userID, historyLimit).Return(nil, errors.New("db error"))
	_, err = service.History(context.Background(), userID)
	assert.Error(t, err)
}
