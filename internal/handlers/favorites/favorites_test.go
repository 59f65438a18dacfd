package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gamemarket/internal/domain"
	"github.com/GlebRadaev/gamemarket/internal/dto"
	"github.com/GlebRadaev/gamemarket/pkg/auth"
)

var userID = uuid.MustParse("7c9e6679-7425-40de-944b-e07fc1f90ae7")

func NewMock(t *testing.T) (*FavoriteHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func request(method, listingID string) *http.Request {
	r := httptest.NewRequest(method, "/api/v1/favorites/"+listingID, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("listingID", listingID)
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
	ctx = auth.WithIdentity(ctx, auth.Identity{UserID: userID, Role: domain.RoleBuyer})
	return r.WithContext(ctx)
}

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)
	added := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	fav := domain.FavoriteView{
		Favorite:           domain.Favorite{UserID: userID, ListingID: uuid.New(), GameID: uuid.New(), CreatedAt: added},
		GameTitle:          "Hades",
		Price:              decimal.RequireFromString("50.00"),
		DiscountPercentage: decimal.RequireFromString("20"),
		WishlistCount:      4,
	}
	fav.ApplyPricing()

	service.EXPECT().List(gomock.Any(), userID).Return([]domain.FavoriteView{fav}, nil)
	w := httptest.NewRecorder()
	handler.List(w, request(http.MethodGet, ""))

	assert.Equal(t, http.StatusOK, w.Code)
	var body []dto.FavoriteResponseDTO
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	if assert.Len(t, body, 1) {
		assert.Equal(t, "40.00", body[0].DiscountedPrice)
		assert.Equal(t, 4, body[0].WishlistCount)
		assert.Equal(t, "2024-05-01T10:00:00Z", body[0].AddedAt)
	}
}

func TestAddHandler(t *testing.T) {
	handler, service := NewMock(t)
	listingID := uuid.New()

	tests := []struct {
		name         string
		id           string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Added",
			id:   listingID.String(),
			prepareMock: func() {
				service.EXPECT().Add(gomock.Any(), userID, listingID).Return(nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Added twice",
			id:   listingID.String(),
			prepareMock: func() {
				service.EXPECT().Add(gomock.Any(), userID, listingID).Return(nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Unknown listing",
			id:   listingID.String(),
			prepareMock: func() {
				service.EXPECT().Add(gomock.Any(), userID, listingID).Return(fmt.Errorf("%w: listing not found", domain.ErrNotFound))
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Invalid id",
			id:           "x",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.Add(w, request(http.MethodPost, tt.id))
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestRemoveHandler(t *testing.T) {
	handler, service := NewMock(t)
	listingID := uuid.New()

	service.EXPECT().Remove(gomock.Any(), userID, listingID).Return(nil)
	w := httptest.NewRecorder()
	handler.Remove(w, request(http.MethodDelete, listingID.String()))
	assert.Equal(t, http.StatusOK, w.Code)

	service.EXPECT().Remove(gomock.Any(), userID, listingID).Return(fmt.Errorf("%w: listing not found in favorites", domain.ErrNotFound))
	w = httptest.NewRecorder()
	handler.Remove(w, request(http.MethodDelete, listingID.String()))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"status":"fail","message":"listing not found in favorites"}`, w.Body.String())
}

func TestCheckHandler(t *testing.T) {
	handler, service := NewMock(t)
	listingID := uuid.New()

	service.EXPECT().IsFavorite(gomock.Any(), userID, listingID).Return(true, nil)
	w := httptest.NewRecorder()
	handler.Check(w, request(http.MethodGet, listingID.String()))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"isFavorite":true}`, w.Body.String())

	service.EXPECT().IsFavorite(gomock.Any(), userID, listingID).Return(false, errors.New("db down"))
	w = httptest.NewRecorder()
	handler.Check(w, request(http.MethodGet, listingID.String()))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
