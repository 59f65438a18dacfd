package orderrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gamemarket/internal/domain"
	"github.com/GlebRadaev/gamemarket/internal/pg"
)

var (
	orderCols = []string{"id", "user_id", "order_number", "total_amount", "total_cashback", "payment_method", "status", "created_at"}
	itemCols  = []string{"id", "order_id", "listing_id", "game_title", "platform_name", "region_name", "quantity", "price_at_purchase"}
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func newOrder(userID, listingID uuid.UUID) *domain.Order {
	return &domain.Order{
		UserID:        userID,
		OrderNumber:   "79927398713",
		TotalAmount:   decimal.RequireFromString("27.30"),
		TotalCashback: decimal.RequireFromString("2.46"),
		PaymentMethod: "balance",
		Status:        domain.OrderCompleted,
		Items: []domain.OrderItem{
			{ListingID: listingID, GameTitle: "Hades", PlatformName: "Steam", RegionName: "Global", Quantity: 3, PriceAtPurchase: decimal.RequireFromString("9.10")},
		},
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock, tx := NewMock(t)
	userID, listingID, orderID, itemID := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	createdAt := time.Now()
	insertOrder := regexp.QuoteMeta("INSERT INTO orders (user_id, order_number, total_amount, total_cashback, payment_method, status)")
	insertItem := regexp.QuoteMeta("INSERT INTO order_items (order_id, listing_id, game_title, platform_name, region_name, quantity, price_at_purchase)")

	tests := []struct {
		name      string
		mockSetup func(order *domain.Order)
		wantErr   bool
		expectErr error
	}{
		{
			name: "Order with items",
			mockSetup: func(order *domain.Order) {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(insertOrder).
						WithArgs(userID, "79927398713", order.TotalAmount, order.TotalCashback, "balance", domain.OrderCompleted).
						WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(orderID, createdAt))
					mock.ExpectQuery(insertItem).
						WithArgs(orderID, listingID, "Hades", "Steam", "Global", 3, order.Items[0].PriceAtPurchase).
						WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(itemID))
					return fn(ctx)
				})
			},
		},
		{
			name: "Duplicate order number",
			mockSetup: func(order *domain.Order) {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(insertOrder).WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
						WillReturnError(&pgconn.PgError{Code: "23505"})
					return fn(ctx)
				})
			},
			wantErr:   true,
			expectErr: domain.ErrConflict,
		},
		{
			name: "Item insert fails",
			mockSetup: func(order *domain.Order) {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(insertOrder).
						WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
						WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(orderID, createdAt))
					mock.ExpectQuery(insertItem).WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := newOrder(userID, listingID)
			tt.mockSetup(order)
			created, err := repo.Create(context.Background(), order)
			if tt.wantErr {
				assert.Error(t, err)
				if tt.expectErr != nil {
					assert.ErrorIs(t, err, tt.expectErr)
				}
				assert.Nil(t, created)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, orderID, created.ID)
			assert.Equal(t, itemID, created.Items[0].ID)
			assert.Equal(t, orderID, created.Items[0].OrderID)
		})
	}
}

func TestRepository_FindByNumber(t *testing.T) {
	repo, mock, _ := NewMock(t)
	userID, listingID, orderID := uuid.New(), uuid.New(), uuid.New()
	query := regexp.QuoteMeta("FROM orders WHERE order_number = $1")
	items := regexp.QuoteMeta("FROM order_items WHERE order_id = ANY($1) ORDER BY created_at")

	mock.ExpectQuery(query).WithArgs("79927398713").
		WillReturnRows(pgxmock.NewRows(orderCols).AddRow(orderID, userID, "79927398713",
			decimal.RequireFromString("27.30"), decimal.RequireFromString("2.46"), "balance", domain.OrderCompleted, time.Now()))
	mock.ExpectQuery(items).WithArgs([]uuid.UUID{orderID}).
		WillReturnRows(pgxmock.NewRows(itemCols).
			AddRow(uuid.New(), orderID, &listingID, "Hades", "Steam", "Global", 3, decimal.RequireFromString("9.10")).
			AddRow(uuid.New(), orderID, nil, "Removed game", "GOG", "Europe", 1, decimal.RequireFromString("5.00")))
	mock.ExpectQuery(query).WithArgs("12345678903").WillReturnError(pgx.ErrNoRows)

	order, err := repo.FindByNumber(context.Background(), "79927398713")
	require.NoError(t, err)
	require.Len(t, order.Items, 2)
	assert.Equal(t, listingID, order.Items[0].ListingID)
	assert.Equal(t, uuid.Nil, order.Items[1].ListingID)
	assert.Equal(t, domain.OrderCompleted, order.Status)

	order, err = repo.FindByNumber(context.Background(), "12345678903")
	assert.NoError(t, err)
	assert.Nil(t, order)
}

func TestRepository_ListByUser(t *testing.T) {
	repo, mock, _ := NewMock(t)
	userID, first, second := uuid.New(), uuid.New(), uuid.New()
	query := regexp.QuoteMeta("FROM orders WHERE user_id = $1 ORDER BY created_at DESC")
	items := regexp.QuoteMeta("FROM order_items WHERE order_id = ANY($1)")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		itemsPer  []int
	}{
		{
			name: "Orders with items",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(userID).
					WillReturnRows(pgxmock.NewRows(orderCols).
						AddRow(first, userID, "79927398713", decimal.RequireFromString("10.00"), decimal.RequireFromString("0.90"), "balance", domain.OrderCompleted, time.Now()).
						AddRow(second, userID, "12345678903", decimal.RequireFromString("5.00"), decimal.RequireFromString("0.45"), "balance", domain.OrderCompleted, time.Now().Add(-time.Hour)))
				mock.ExpectQuery(items).WithArgs([]uuid.UUID{first, second}).
					WillReturnRows(pgxmock.NewRows(itemCols).
						AddRow(uuid.New(), second, nil, "Celeste", "Steam", "Global", 1, decimal.RequireFromString("5.00")).
						AddRow(uuid.New(), first, nil, "Hades", "Steam", "Global", 1, decimal.RequireFromString("5.00")).
						AddRow(uuid.New(), first, nil, "Hades II", "Steam", "Global", 1, decimal.RequireFromString("5.00")))
			},
			itemsPer: []int{2, 1},
		},
		{
			name: "No orders skips item lookup",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(userID).WillReturnRows(pgxmock.NewRows(orderCols))
			},
			itemsPer: []int{},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(userID).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			orders, err := repo.ListByUser(context.Background(), userID)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, orders)
				return
			}
			require.NoError(t, err)
			counts := make([]int, 0, len(orders))
			for _, o := range orders {
				counts = append(counts, len(o.Items))
			}
			assert.Equal(t, tt.itemsPer, counts)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
