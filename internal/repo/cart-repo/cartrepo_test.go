package cartrepo

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

	"github.com/GlebRadaev/gamemarket/internal/domain"
)

var itemCols = []string{"id", "cart_id", "listing_id", "quantity", "created_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_GetOrCreate(t *testing.T) {
	repo, mock := NewMock(t)
	userID, cartID := uuid.New(), uuid.New()
	now := time.Now()
	query := regexp.QuoteMeta("INSERT INTO cart (user_id) VALUES ($1) ON CONFLICT (user_id) DO UPDATE SET updated_at = NOW() RETURNING id, user_id, created_at, updated_at")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
		wantErr   bool
	}{
		{
			name: "Cart returned",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "created_at", "updated_at"}).AddRow(cartID, userID, now, now)
				mock.ExpectQuery(query).WithArgs(userID).WillReturnRows(rows)
			},
		},
		{
			name: "Unknown user",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(userID).WillReturnError(&pgconn.PgError{Code: "23503"})
			},
			wantErr:   true,
			expectErr: domain.ErrNotFound,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(userID).WillReturnError(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			cart, err := repo.GetOrCreate(context.Background(), userID)
			if tt.wantErr {
				assert.Error(t, err)
				if tt.expectErr != nil {
					assert.ErrorIs(t, err, tt.expectErr)
				}
				assert.Nil(t, cart)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, cartID, cart.ID)
			assert.Equal(t, userID, cart.UserID)
		})
	}
}

func TestRepository_AddItem_SingleUpsert(t *testing.T) {
	repo, mock := NewMock(t)
	cartID, listingID, itemID := uuid.New(), uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (cart_id, listing_id) DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity")).
		WithArgs(cartID, listingID, 2).
		WillReturnRows(pgxmock.NewRows(itemCols).AddRow(itemID, cartID, listingID, 5, time.Now()))

	item, err := repo.AddItem(context.Background(), cartID, listingID, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, item.Quantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SetItemQuantity(t *testing.T) {
	repo, mock := NewMock(t)
	cartID, listingID, itemID := uuid.New(), uuid.New(), uuid.New()
	query := regexp.QuoteMeta("UPDATE cart_items SET quantity = $3 WHERE cart_id = $1 AND listing_id = $2")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expected  *int
	}{
		{
			name: "Updated",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(cartID, listingID, 3).
					WillReturnRows(pgxmock.NewRows(itemCols).AddRow(itemID, cartID, listingID, 3, time.Now()))
			},
			expected: func() *int { v := 3; return &v }(),
		},
		{
			name: "Not in cart",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(cartID, listingID, 3).WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(cartID, listingID, 3).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			item, err := repo.SetItemQuantity(context.Background(), cartID, listingID, 3)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, item)
				return
			}
			assert.NoError(t, err)
			if tt.expected == nil {
				assert.Nil(t, item)
				return
			}
			assert.Equal(t, *tt.expected, item.Quantity)
		})
	}
}

func TestRepository_RemoveAndClear(t *testing.T) {
	repo, mock := NewMock(t)
	cartID, listingID := uuid.New(), uuid.New()
	remove := regexp.QuoteMeta("DELETE FROM cart_items WHERE cart_id = $1 AND listing_id = $2")

	mock.ExpectExec(remove).WithArgs(cartID, listingID).WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(remove).WithArgs(cartID, listingID).WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM cart_items WHERE cart_id = $1")).WithArgs(cartID).
		WillReturnResult(pgxmock.NewResult("DELETE", 4))

	removed, err := repo.RemoveItem(context.Background(), cartID, listingID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.RemoveItem(context.Background(), cartID, listingID)
	require.NoError(t, err)
	assert.False(t, removed)

	assert.NoError(t, repo.Clear(context.Background(), cartID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListItems(t *testing.T) {
	repo, mock := NewMock(t)
	cartID, gameID := uuid.New(), uuid.New()
	first, second := uuid.New(), uuid.New()
	cols := []string{"id", "cart_id", "listing_id", "quantity", "created_at", "game_id", "title", "image_url",
		"platform", "region", "seller", "price", "discount_percentage", "currency", "stock"}

	rows := pgxmock.NewRows(cols).
		AddRow(uuid.New(), cartID, first, 2, time.Now(), gameID, "Hades", "", "Steam", "Global", "Ona Onaite",
			decimal.RequireFromString("10.00"), decimal.RequireFromString("9.00"), "EUR", 10).
		AddRow(uuid.New(), cartID, second, 1, time.Now(), gameID, "Hades", "", "GOG", "Europe", "Ona Onaite",
			decimal.RequireFromString("10.00"), decimal.RequireFromString("9.00"), "EUR", 3)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE ci.cart_id = $1 ORDER BY ci.created_at DESC")).
		WithArgs(cartID).
		WillReturnRows(rows)

	items, err := repo.ListItems(context.Background(), cartID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, first, items[0].ListingID)
	assert.Equal(t, "9.10", items[0].DiscountedPrice.StringFixed(2))
	assert.Equal(t, "18.20", items[0].Subtotal.StringFixed(2))
	assert.Equal(t, "1.64", items[0].TotalCashback.StringFixed(2))
	assert.Equal(t, "9.10", items[1].Subtotal.StringFixed(2))
}

func TestRepository_Count(t *testing.T) {
	repo, mock := NewMock(t)
	cartID := uuid.New()
	query := regexp.QuoteMeta("SELECT COUNT(*), COALESCE(SUM(quantity), 0) FROM cart_items WHERE cart_id = $1")

	mock.ExpectQuery(query).WithArgs(cartID).
		WillReturnRows(pgxmock.NewRows([]string{"count", "sum"}).AddRow(2, 3))
	mock.ExpectQuery(query).WithArgs(cartID).WillReturnError(errors.New("database error"))

	items, quantity, err := repo.Count(context.Background(), cartID)
	require.NoError(t, err)
	assert.Equal(t, 2, items)
	assert.Equal(t, 3, quantity)

	_, _, err = repo.Count(context.Background(), cartID)
	assert.Error(t, err)
}
