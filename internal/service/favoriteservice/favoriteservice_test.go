package favoriteservice

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gamemarket/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockFavoriteRepo, *MockListingRepo) {
	ctrl := gomock.NewController(t)
	favoriteRepo := NewMockFavoriteRepo(ctrl)
	listingRepo := NewMockListingRepo(ctrl)
	return New(favoriteRepo, listingRepo), favoriteRepo, listingRepo
}

func TestAdd(t *testing.T) {
	service, favoriteRepo, listingRepo := NewMock(t)
	ctx := context.Background()
	userID := uuid.New()
	listingID := uuid.New()
	gameID := uuid.New()
	fav := domain.Favorite{UserID: userID, ListingID: listingID, GameID: gameID}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Added",
			prepareMock: func() {
				listingRepo.EXPECT().FindByID(ctx, listingID).Return(&domain.Listing{ID: listingID, GameID: gameID}, nil)
				favoriteRepo.EXPECT().Add(ctx, fav).Return(&fav, nil)
			},
		},
		{
			name: "Duplicate is a no-op",
			prepareMock: func() {
				listingRepo.EXPECT().FindByID(ctx, listingID).Return(&domain.Listing{ID: listingID, GameID: gameID}, nil)
				favoriteRepo.EXPECT().Add(ctx, fav).Return(nil, nil)
			},
		},
		{
			name: "Listing missing",
			prepareMock: func() {
				listingRepo.EXPECT().FindByID(ctx, listingID).Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.Add(ctx, userID, listingID)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRemove(t *testing.T) {
	service, favoriteRepo, _ := NewMock(t)
	ctx := context.Background()
	userID := uuid.New()
	listingID := uuid.New()

	favoriteRepo.EXPECT().Remove(ctx, userID, listingID).Return(true, nil)
	assert.NoError(t, service.Remove(ctx, userID, listingID))

	favoriteRepo.EXPECT().Remove(ctx, userID, listingID).Return(false, nil)
	err := service.Remove(ctx, userID, listingID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "listing not found in favorites")
}

func TestListAndCheck(t *testing.T) {
	service, favoriteRepo, _ := NewMock(t)
	ctx := context.Background()
	userID := uuid.New()
	listingID := uuid.New()

	favoriteRepo.EXPECT().ListByUser(ctx, userID).Return([]domain.FavoriteView{{WishlistCount: 3}}, nil)
	favoriteRepo.EXPECT().Exists(ctx, userID, listingID).Return(true, nil)

	views, err := service.List(ctx, userID)
	assert.NoError(t, err)
	assert.Equal(t, 3, views[0].WishlistCount)

	ok, err := service.IsFavorite(ctx, userID, listingID)
	assert.NoError(t, err)
	assert.True(t, ok)
}
