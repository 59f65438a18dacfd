package listingrepo

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

var (
	listingCols = []string{"id", "game_id", "seller_id", "platform_id", "region_id", "price", "discount_percentage",
		"currency", "stock", "is_active", "created_at", "updated_at"}
	viewCols = append(append([]string{}, listingCols...), "title", "description", "image_url", "publisher", "developer",
		"platform_name", "region_name", "region_code", "seller_name", "seller_rating", "seller_reviews",
		"wishlist_count", "similarity_score")
)

type viewRow struct {
	id         uuid.UUID
	title      string
	price      string
	discount   string
	similarity float32
}

func addViewRow(rows *pgxmock.Rows, gameID, sellerID uuid.UUID, v viewRow) *pgxmock.Rows {
	now := time.Now()
	return rows.AddRow(v.id, gameID, sellerID, 7, 2, decimal.RequireFromString(v.price), decimal.RequireFromString(v.discount),
		"EUR", 5, true, now, now,
		v.title, "", "img.png", "Pub", "Dev",
		"Steam", "Europe", "EU", "Ona Onaite", decimal.RequireFromString("9.50"), 4, 2, v.similarity)
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_ListActive(t *testing.T) {
	repo, mock := NewMock(t)
	gameID, sellerID := uuid.New(), uuid.New()
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	tests := []struct {
		name      string
		search    string
		limit     int
		offset    int
		mockSetup func()
		expectErr bool
		expected  []uuid.UUID
	}{
		{
			name:   "Newest first without search",
			limit:  50,
			offset: 0,
			mockSetup: func() {
				rows := pgxmock.NewRows(viewCols)
				addViewRow(rows, gameID, sellerID, viewRow{id: a, title: "Elden Ring", price: "50.00", discount: "20"})
				mock.ExpectQuery(regexp.QuoteMeta("WHERE gl.is_active = true AND gl.stock > 0 GROUP BY gl.id, g.id, p.id, r.id, u.id ORDER BY gl.created_at DESC, gl.price ASC LIMIT $1 OFFSET $2")).
					WithArgs(50, 0).
					WillReturnRows(rows)
			},
			expected: []uuid.UUID{a},
		},
		{
			name:   "Search ranks by similarity then price",
			search: "elden",
			limit:  10,
			offset: 10,
			mockSetup: func() {
				rows := pgxmock.NewRows(viewCols)
				addViewRow(rows, gameID, sellerID, viewRow{id: a, title: "Elden Ring", price: "15.00", discount: "0", similarity: 0.8})
				addViewRow(rows, gameID, sellerID, viewRow{id: b, title: "Elden Ring", price: "20.00", discount: "0", similarity: 0.8})
				addViewRow(rows, gameID, sellerID, viewRow{id: c, title: "Elden Ring DLC", price: "10.00", discount: "0", similarity: 0.5})
				mock.ExpectQuery(regexp.QuoteMeta("similarity(g.title, $1) AS similarity_score")).
					WithArgs("elden", 10, 10).
					WillReturnRows(rows)
			},
			expected: []uuid.UUID{a, b, c},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM game_listings gl")).
					WithArgs(50, 0).
					WillReturnError(errors.New("database error"))
			},
			limit:     50,
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			views, err := repo.ListActive(context.Background(), tt.search, tt.limit, tt.offset)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, views)
				return
			}
			require.NoError(t, err)
			ids := make([]uuid.UUID, len(views))
			for i, v := range views {
				ids[i] = v.ID
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestRepository_ListActive_SearchQueryShape(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE gl.is_active = true AND gl.stock > 0 AND (g.title ILIKE '%' || $1 || '%' OR g.title % $1) GROUP BY gl.id, g.id, p.id, r.id, u.id ORDER BY similarity_score DESC, gl.price ASC LIMIT $2 OFFSET $3")).
		WithArgs("witcher", 50, 0).
		WillReturnRows(pgxmock.NewRows(viewCols))

	views, err := repo.ListActive(context.Background(), "witcher", 50, 0)
	require.NoError(t, err)
	assert.Empty(t, views)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListActive_Pricing(t *testing.T) {
	repo, mock := NewMock(t)
	gameID, sellerID, id := uuid.New(), uuid.New(), uuid.New()

	rows := pgxmock.NewRows(viewCols)
	addViewRow(rows, gameID, sellerID, viewRow{id: id, title: "Elden Ring", price: "50.00", discount: "20"})
	mock.ExpectQuery(regexp.QuoteMeta("0::real AS similarity_score")).WithArgs(50, 0).WillReturnRows(rows)

	views, err := repo.ListActive(context.Background(), "", 50, 0)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "40.00", views[0].DiscountedPrice.StringFixed(2))
	assert.Equal(t, "3.60", views[0].Cashback.StringFixed(2))
	assert.Equal(t, "Ona Onaite", views[0].SellerName)
	assert.Equal(t, 4, views[0].SellerReviews)
	assert.Equal(t, 2, views[0].WishlistCount)
}

func TestRepository_ListByGameAndSeller(t *testing.T) {
	repo, mock := NewMock(t)
	gameID, sellerID := uuid.New(), uuid.New()
	cheap, pricey := uuid.New(), uuid.New()

	byGame := pgxmock.NewRows(viewCols)
	addViewRow(byGame, gameID, sellerID, viewRow{id: cheap, title: "Elden Ring", price: "30.00", discount: "0"})
	addViewRow(byGame, gameID, sellerID, viewRow{id: pricey, title: "Elden Ring", price: "45.00", discount: "0"})
	mock.ExpectQuery(regexp.QuoteMeta("WHERE gl.game_id = $1 AND gl.is_active = true AND gl.stock > 0 GROUP BY gl.id, g.id, p.id, r.id, u.id ORDER BY gl.price ASC")).
		WithArgs(gameID).
		WillReturnRows(byGame)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE gl.seller_id = $1 GROUP BY gl.id, g.id, p.id, r.id, u.id ORDER BY gl.created_at DESC")).
		WithArgs(sellerID).
		WillReturnRows(pgxmock.NewRows(viewCols))

	offers, err := repo.ListByGame(context.Background(), gameID)
	require.NoError(t, err)
	require.Len(t, offers, 2)
	assert.Equal(t, cheap, offers[0].ID)

	own, err := repo.ListBySeller(context.Background(), sellerID)
	require.NoError(t, err)
	assert.Empty(t, own)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func listingRow(id, gameID, sellerID uuid.UUID, stock int) *pgxmock.Rows {
	now := time.Now()
	return pgxmock.NewRows(listingCols).AddRow(id, gameID, sellerID, 7, 2, decimal.RequireFromString("50.00"),
		decimal.RequireFromString("20.00"), "EUR", stock, true, now, now)
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	id, gameID, sellerID := uuid.New(), uuid.New(), uuid.New()
	query := regexp.QuoteMeta("FROM game_listings WHERE id = $1")

	mock.ExpectQuery(query).WithArgs(id).WillReturnRows(listingRow(id, gameID, sellerID, 3))
	mock.ExpectQuery(query).WithArgs(id).WillReturnError(pgx.ErrNoRows)

	listing, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 3, listing.Stock)
	assert.Equal(t, sellerID, listing.SellerID)

	listing, err = repo.FindByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Nil(t, listing)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	id, gameID, sellerID := uuid.New(), uuid.New(), uuid.New()
	insert := regexp.QuoteMeta("INSERT INTO game_listings (game_id, seller_id, platform_id, region_id, price, discount_percentage, currency, stock, is_active)")
	input := func() *domain.Listing {
		return &domain.Listing{
			GameID: gameID, SellerID: sellerID, PlatformID: 7, RegionID: 2,
			Price: decimal.RequireFromString("50.00"), DiscountPercentage: decimal.RequireFromString("20.00"),
			Currency: "EUR", Stock: 3, IsActive: true,
		}
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
		wantErr   bool
	}{
		{
			name: "Created",
			mockSetup: func() {
				l := input()
				mock.ExpectQuery(insert).
					WithArgs(gameID, sellerID, 7, 2, l.Price, l.DiscountPercentage, "EUR", 3, true).
					WillReturnRows(listingRow(id, gameID, sellerID, 3))
			},
		},
		{
			name: "Unknown game",
			mockSetup: func() {
				l := input()
				mock.ExpectQuery(insert).
					WithArgs(gameID, sellerID, 7, 2, l.Price, l.DiscountPercentage, "EUR", 3, true).
					WillReturnError(&pgconn.PgError{Code: "23503"})
			},
			wantErr:   true,
			expectErr: domain.ErrValidation,
		},
		{
			name: "Numeric overflow",
			mockSetup: func() {
				l := input()
				mock.ExpectQuery(insert).
					WithArgs(gameID, sellerID, 7, 2, l.Price, l.DiscountPercentage, "EUR", 3, true).
					WillReturnError(&pgconn.PgError{Code: "22003"})
			},
			wantErr:   true,
			expectErr: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			listing, err := repo.Create(context.Background(), input())
			if tt.wantErr {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, listing)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, listing.ID)
		})
	}
}

func TestRepository_UpdateAndDeleteAreSellerScoped(t *testing.T) {
	repo, mock := NewMock(t)
	id, gameID, owner, stranger := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	stock := 9
	update := regexp.QuoteMeta("SET price = COALESCE($3::numeric, price)")
	scope := regexp.QuoteMeta("WHERE id = $1 AND seller_id = $2")
	upd := domain.ListingUpdate{Stock: &stock}

	mock.ExpectQuery(update).
		WithArgs(id, owner, (*decimal.Decimal)(nil), (*decimal.Decimal)(nil), &stock, (*bool)(nil)).
		WillReturnRows(listingRow(id, gameID, owner, 9))
	mock.ExpectQuery(update).
		WithArgs(id, stranger, (*decimal.Decimal)(nil), (*decimal.Decimal)(nil), &stock, (*bool)(nil)).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery("DELETE FROM game_listings " + scope).
		WithArgs(id, stranger).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery("DELETE FROM game_listings " + scope).
		WithArgs(id, owner).
		WillReturnRows(listingRow(id, gameID, owner, 9))

	updated, err := repo.Update(context.Background(), id, owner, upd)
	require.NoError(t, err)
	assert.Equal(t, 9, updated.Stock)

	updated, err = repo.Update(context.Background(), id, stranger, upd)
	assert.NoError(t, err)
	assert.Nil(t, updated)

	deleted, err := repo.Delete(context.Background(), id, stranger)
	assert.NoError(t, err)
	assert.Nil(t, deleted)

	deleted, err = repo.Delete(context.Background(), id, owner)
	require.NoError(t, err)
	assert.Equal(t, id, deleted.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateNumericOverflow(t *testing.T) {
	repo, mock := NewMock(t)
	id, seller := uuid.New(), uuid.New()
	price := decimal.RequireFromString("1000000000")
	upd := domain.ListingUpdate{Price: &price}

	mock.ExpectQuery(regexp.QuoteMeta("SET price = COALESCE($3::numeric, price)")).
		WithArgs(id, seller, &price, (*decimal.Decimal)(nil), (*int)(nil), (*bool)(nil)).
		WillReturnError(&pgconn.PgError{Code: "22003"})

	listing, err := repo.Update(context.Background(), id, seller, upd)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Nil(t, listing)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DecrementStock(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()
	query := regexp.QuoteMeta("SET stock = stock - $2, updated_at = NOW() WHERE id = $1 AND is_active = true AND stock >= $2")

	tests := []struct {
		name      string
		mockSetup func()
		expected  bool
		expectErr bool
	}{
		{
			name: "Enough stock",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs(id, 2).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expected: true,
		},
		{
			name: "Not enough stock",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs(id, 2).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expected: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs(id, 2).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			ok, err := repo.DecrementStock(context.Background(), id, 2)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, ok)
		})
	}
}
