package historyrepo

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gamemarket/internal/domain"
	"github.com/GlebRadaev/gamemarket/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.BalanceEntry, error) {
	query := `
		SELECT id, user_id, amount, type, description, balance_before, balance_after, created_at
		FROM balance_history
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		zap.L().Error("failed to fetch balance history", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	entries := make([]domain.BalanceEntry, 0)
	for rows.Next() {
		var e domain.BalanceEntry
		err := rows.Scan(&e.ID, &e.UserID, &e.Amount, &e.Type, &e.Description, &e.BalanceBefore, &e.BalanceAfter, &e.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan balance history row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate balance history", zap.Error(err))
		return nil, err
	}
	return entries, nil
}
