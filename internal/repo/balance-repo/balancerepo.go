package balancerepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gamemarket/internal/domain"
	"github.com/GlebRadaev/gamemarket/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) Get(ctx context.Context, userID uuid.UUID) (*domain.Balance, error) {
	query := `
		SELECT user_id, balance, currency, updated_at
		FROM user_balance
		WHERE user_id = $1
	`
	var balance domain.Balance
	err := r.db.QueryRow(ctx, query, userID).Scan(&balance.UserID, &balance.Amount, &balance.Currency, &balance.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get user balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

// Apply changes the balance by amount and records the movement in the history.
// A debit that would take the balance below zero fails with domain.ErrInsufficientFunds.
func (r *Repository) Apply(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, entryType domain.EntryType, description string) (*domain.BalanceEntry, error) {
	update := `
		UPDATE user_balance
		SET balance = balance + $2, updated_at = NOW()
		WHERE user_id = $1 AND balance + $2 >= 0
		RETURNING balance
	`
	insert := `
		INSERT INTO balance_history (user_id, amount, type, description, balance_before, balance_after)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	entry := domain.BalanceEntry{
		UserID:      userID,
		Amount:      amount,
		Type:        entryType,
		Description: description,
	}
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, update, userID, amount).Scan(&entry.BalanceAfter)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrInsufficientFunds
			}
			zap.L().Error("failed to update user balance", zap.Error(err))
			return err
		}
		entry.BalanceBefore = entry.BalanceAfter.Sub(amount)

		err = r.db.QueryRow(ctx, insert, userID, amount, entryType, description, entry.BalanceBefore, entry.BalanceAfter).
			Scan(&entry.ID, &entry.CreatedAt)
		if err != nil {
			zap.L().Error("failed to save balance history", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
