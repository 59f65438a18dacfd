package cartservice

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gamemarket/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockCartRepo, *MockListingRepo) {
	ctrl := gomock.NewController(t)
	cartRepo := NewMockCartRepo(ctrl)
	listingRepo := NewMockListingRepo(ctrl)
	return New(cartRepo, listingRepo), cartRepo, listingRepo
}

func pricedItem(qty int, price, discount string) domain.CartItemView {
	v := domain.CartItemView{
		CartItem:           domain.CartItem{ID: uuid.New(), ListingID: uuid.New(), Quantity: qty},
		Price:              decimal.RequireFromString(price),
		DiscountPercentage: decimal.RequireFromString(discount),
	}
	v.ApplyPricing()
	return v
}

func TestGetCart(t *testing.T) {
	service, cartRepo, _ := NewMock(t)
	ctx := context.Background()
	userID := uuid.New()
	cart := &domain.Cart{ID: uuid.New(), UserID: userID}

	tests := []struct {
		name             string
		items            []domain.CartItemView
		expectedTotal    string
		expectedCashback string
		expectedRows     int
		expectedQuantity int
	}{
		{
			name:             "Two rows",
			items:            []domain.CartItemView{pricedItem(2, "10.00", "9"), pricedItem(1, "10.00", "9")},
			expectedTotal:    "27.30",
			expectedCashback: "2.46",
			expectedRows:     2,
			expectedQuantity: 3,
		},
		{
			name:             "Empty cart",
			items:            []domain.CartItemView{},
			expectedTotal:    "0.00",
			expectedCashback: "0.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cartRepo.EXPECT().GetOrCreate(ctx, userID).Return(cart, nil)
			cartRepo.EXPECT().ListItems(ctx, cart.ID).Return(tt.items, nil)

			summary, err := service.GetCart(ctx, userID)
			require.NoError(t, err)
			assert.Equal(t, cart.ID, summary.CartID)
			assert.Equal(t, tt.expectedTotal, summary.Total.StringFixed(2))
			assert.Equal(t, tt.expectedCashback, summary.TotalCashback.StringFixed(2))
			assert.Equal(t, tt.expectedRows, summary.ItemCount)
			assert.Equal(t, tt.expectedQuantity, summary.TotalQuantity)
		})
	}
}

func TestAddItem(t *testing.T) {
	service, cartRepo, listingRepo := NewMock(t)
	ctx := context.Background()
	userID := uuid.New()
	listingID := uuid.New()
	cart := &domain.Cart{ID: uuid.New(), UserID: userID}

	tests := []struct {
		name          string
		qty           int
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Added",
			qty:  2,
			prepareMock: func() {
				listingRepo.EXPECT().FindByID(ctx, listingID).Return(&domain.Listing{ID: listingID, IsActive: true, Stock: 5}, nil)
				cartRepo.EXPECT().GetOrCreate(ctx, userID).Return(cart, nil)
				cartRepo.EXPECT().AddItem(ctx, cart.ID, listingID, 2).Return(&domain.CartItem{CartID: cart.ID, ListingID: listingID, Quantity: 2}, nil)
			},
		},
		{
			name:          "Zero quantity",
			qty:           0,
			prepareMock:   func() {},
			expectedError: domain.ErrValidation,
		},
		{
			name: "Listing missing",
			qty:  1,
			prepareMock: func() {
				listingRepo.EXPECT().FindByID(ctx, listingID).Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
		{
			name: "Listing inactive",
			qty:  1,
			prepareMock: func() {
				listingRepo.EXPECT().FindByID(ctx, listingID).Return(&domain.Listing{ID: listingID, Stock: 5}, nil)
			},
			expectedError: domain.ErrNotFound,
		},
		{
			name: "Insufficient stock",
			qty:  6,
			prepareMock: func() {
				listingRepo.EXPECT().FindByID(ctx, listingID).Return(&domain.Listing{ID: listingID, IsActive: true, Stock: 5}, nil)
			},
			expectedError: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			item, err := service.AddItem(ctx, userID, listingID, tt.qty)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, item)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.qty, item.Quantity)
		})
	}
}

// The stock check looks at the requested quantity only, so repeated adds can exceed stock.
// Checkout rejects the order when the stock decrement fails.
func TestAddItem_StockNotReservedAcrossAdds(t *testing.T) {
	service, cartRepo, listingRepo := NewMock(t)
	ctx := context.Background()
	userID := uuid.New()
	listingID := uuid.New()
	cart := &domain.Cart{ID: uuid.New(), UserID: userID}

	listingRepo.EXPECT().FindByID(ctx, listingID).Return(&domain.Listing{ID: listingID, IsActive: true, Stock: 1}, nil).Times(2)
	cartRepo.EXPECT().GetOrCreate(ctx, userID).Return(cart, nil).Times(2)
	gomock.InOrder(
		cartRepo.EXPECT().AddItem(ctx, cart.ID, listingID, 1).Return(&domain.CartItem{Quantity: 1}, nil),
		cartRepo.EXPECT().AddItem(ctx, cart.ID, listingID, 1).Return(&domain.CartItem{Quantity: 2}, nil),
	)

	_, err := service.AddItem(ctx, userID, listingID, 1)
	require.NoError(t, err)
	item, err := service.AddItem(ctx, userID, listingID, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)
}

func TestUpdateItem(t *testing.T) {
	service, cartRepo, listingRepo := NewMock(t)
	ctx := context.Background()
	userID := uuid.New()
	listingID := uuid.New()
	cart := &domain.Cart{ID: uuid.New(), UserID: userID}

	tests := []struct {
		name          string
		qty           int
		prepareMock   func()
		expectNil     bool
		expectedError error
	}{
		{
			name: "Quantity set",
			qty:  3,
			prepareMock: func() {
				listingRepo.EXPECT().FindByID(ctx, listingID).Return(&domain.Listing{ID: listingID, IsActive: true, Stock: 5}, nil)
				cartRepo.EXPECT().GetOrCreate(ctx, userID).Return(cart, nil)
				cartRepo.EXPECT().SetItemQuantity(ctx, cart.ID, listingID, 3).Return(&domain.CartItem{Quantity: 3}, nil)
			},
		},
		{
			name: "Zero removes the row",
			qty:  0,
			prepareMock: func() {
				cartRepo.EXPECT().GetOrCreate(ctx, userID).Return(cart, nil)
				cartRepo.EXPECT().RemoveItem(ctx, cart.ID, listingID).Return(true, nil)
			},
			expectNil: true,
		},
		{
			name: "Zero for an item not in the cart",
			qty:  0,
			prepareMock: func() {
				cartRepo.EXPECT().GetOrCreate(ctx, userID).Return(cart, nil)
				cartRepo.EXPECT().RemoveItem(ctx, cart.ID, listingID).Return(false, nil)
			},
			expectNil: true,
		},
		{
			name:          "Negative quantity",
			qty:           -1,
			prepareMock:   func() {},
			expectedError: domain.ErrValidation,
		},
		{
			name: "Listing missing",
			qty:  1,
			prepareMock: func() {
				listingRepo.EXPECT().FindByID(ctx, listingID).Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
		{
			name: "Above stock",
			qty:  9,
			prepareMock: func() {
				listingRepo.EXPECT().FindByID(ctx, listingID).Return(&domain.Listing{ID: listingID, IsActive: true, Stock: 5}, nil)
			},
			expectedError: domain.ErrValidation,
		},
		{
			name: "Item not in cart",
			qty:  2,
			prepareMock: func() {
				listingRepo.EXPECT().FindByID(ctx, listingID).Return(&domain.Listing{ID: listingID, IsActive: true, Stock: 5}, nil)
				cartRepo.EXPECT().GetOrCreate(ctx, userID).Return(cart, nil)
				cartRepo.EXPECT().SetItemQuantity(ctx, cart.ID, listingID, 2).Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			item, err := service.UpdateItem(ctx, userID, listingID, tt.qty)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			if tt.expectNil {
				assert.Nil(t, item)
				return
			}
			assert.Equal(t, tt.qty, item.Quantity)
		})
	}
}

func TestRemoveItem(t *testing.T) {
	service, cartRepo, _ := NewMock(t)
	ctx := context.Background()
	userID := uuid.New()
	listingID := uuid.New()
	cart := &domain.Cart{ID: uuid.New(), UserID: userID}

	cartRepo.EXPECT().GetOrCreate(ctx, userID).Return(cart, nil).Times(2)
	cartRepo.EXPECT().RemoveItem(ctx, cart.ID, listingID).Return(true, nil)
	assert.NoError(t, service.RemoveItem(ctx, userID, listingID))

	cartRepo.EXPECT().RemoveItem(ctx, cart.ID, listingID).Return(false, nil)
	assert.ErrorIs(t, service.RemoveItem(ctx, userID, listingID), domain.ErrNotFound)
}

func TestClearAndCount(t *testing.T) {
	service, cartRepo, _ := NewMock(t)
	ctx := context.Background()
	userID := uuid.New()
	cart := &domain.Cart{ID: uuid.New(), UserID: userID}

	cartRepo.EXPECT().GetOrCreate(ctx, userID).Return(cart, nil).Times(2)
	cartRepo.EXPECT().Clear(ctx, cart.ID).Return(nil)
	cartRepo.EXPECT().Count(ctx, cart.ID).Return(2, 5, nil)

	assert.NoError(t, service.Clear(ctx, userID))
	rows, qty, err := service.Count(ctx, userID)
	assert.NoError(t, err)
	assert.Equal(t, 2, rows)
	assert.Equal(t, 5, qty)
}
