package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gamemarket/internal/domain"
	"github.com/GlebRadaev/gamemarket/internal/pg"
)

const orderColumns = "id, user_id, order_number, total_amount, total_cashback, payment_method, status, created_at"

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

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var order domain.Order
	err := row.Scan(&order.ID, &order.UserID, &order.OrderNumber, &order.TotalAmount, &order.TotalCashback,
		&order.PaymentMethod, &order.Status, &order.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Create stores the order and its items in one transaction.
func (r *Repository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	insertOrder := `
		INSERT INTO orders (user_id, order_number, total_amount, total_cashback, payment_method, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	insertItem := `
		INSERT INTO order_items (order_id, listing_id, game_title, platform_name, region_name, quantity, price_at_purchase)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, insertOrder, order.UserID, order.OrderNumber, order.TotalAmount, order.TotalCashback,
			order.PaymentMethod, order.Status).Scan(&order.ID, &order.CreatedAt)
		if err != nil {
			if pg.IsUniqueViolation(err) {
				return fmt.Errorf("%w: order number %s already used", domain.ErrConflict, order.OrderNumber)
			}
			return fmt.Errorf("insert order: %w", err)
		}
		for i := range order.Items {
			item := &order.Items[i]
			item.OrderID = order.ID
			err := r.db.QueryRow(ctx, insertItem, order.ID, item.ListingID, item.GameTitle, item.PlatformName,
				item.RegionName, item.Quantity, item.PriceAtPurchase).Scan(&item.ID)
			if err != nil {
				return fmt.Errorf("insert order item: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't save order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (r *Repository) FindByNumber(ctx context.Context, orderNumber string) (*domain.Order, error) {
	order, err := scanOrder(r.db.QueryRow(ctx, "SELECT "+orderColumns+" FROM orders WHERE order_number = $1", orderNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	orders := []domain.Order{*order}
	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Order, error) {
	query := "SELECT " + orderColumns + " FROM orders WHERE user_id = $1 ORDER BY created_at DESC"
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate orders", zap.Error(err))
		return nil, err
	}
	rows.Close()

	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *Repository) attachItems(ctx context.Context, orders []domain.Order) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(orders))
	index := make(map[uuid.UUID]int, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
		index[o.ID] = i
	}

	query := `
		SELECT id, order_id, listing_id, game_title, platform_name, region_name, quantity, price_at_purchase
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY created_at
	`
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		zap.L().Error("can't get order items", zap.Error(err))
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		var listingID *uuid.UUID
		err := rows.Scan(&item.ID, &item.OrderID, &listingID, &item.GameTitle, &item.PlatformName,
			&item.RegionName, &item.Quantity, &item.PriceAtPurchase)
		if err != nil {
			zap.L().Error("can't scan order item", zap.Error(err))
			return err
		}
		if listingID != nil {
			item.ListingID = *listingID
		}
		i := index[item.OrderID]
		orders[i].Items = append(orders[i].Items, item)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate order items", zap.Error(err))
		return err
	}
	return nil
}
