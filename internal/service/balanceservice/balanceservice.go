package balanceservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gamemarket/internal/domain"
)

const historyLimit = 100

type BalanceRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.Balance, error)
	Apply(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, entryType domain.EntryType, description string) (*domain.BalanceEntry, error)
}

type HistoryRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.BalanceEntry, error)
}

type Service struct {
	balanceRepo BalanceRepo
	historyRepo HistoryRepo
}

func New(balanceRepo BalanceRepo, historyRepo HistoryRepo) *Service {
	return &Service{
		balanceRepo: balanceRepo,
		historyRepo: historyRepo,
	}
}

func (s *Service) GetBalance(ctx context.Context, userID uuid.UUID) (*domain.Balance, error) {
	balance, err := s.balanceRepo.Get(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return nil, err
	}
	if balance == nil {
		return nil, fmt.Errorf("%w: balance not found", domain.ErrNotFound)
	}
	return balance, nil
}

func (s *Service) Deposit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*domain.BalanceEntry, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	entry, err := s.balanceRepo.Apply(ctx, userID, amount, domain.EntryDeposit, "Balance top-up")
	if err != nil {
		zap.L().Error("failed to deposit", zap.Error(err))
		return nil, err
	}
	zap.L().Info("balance deposited", zap.String("user", userID.String()), zap.String("amount", amount.StringFixed(2)))
	return entry, nil
}

func (s *Service) Withdraw(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*domain.BalanceEntry, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	entry, err := s.balanceRepo.Apply(ctx, userID, amount.Neg(), domain.EntryWithdrawal, "Withdrawal")
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientFunds) {
			return nil, fmt.Errorf("%w: balance is lower than %s", domain.ErrInsufficientFunds, amount.StringFixed(2))
		}
		zap.L().Error("failed to withdraw", zap.Error(err))
		return nil, err
	}
	return entry, nil
}

func (s *Service) History(ctx context.Context, userID uuid.UUID) ([]domain.BalanceEntry, error) {
	entries, err := s.historyRepo.ListByUser(ctx, userID, historyLimit)
	if err != nil {
		zap.L().Error("failed to fetch balance history", zap.Error(err))
		return nil, err
	}
	return entries, nil
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than 0", domain.ErrValidation)
	}
	if !amount.Equal(domain.RoundMoney(amount)) {
		return fmt.Errorf("%w: amount must have at most 2 decimal places", domain.ErrValidation)
	}
	return nil
}
