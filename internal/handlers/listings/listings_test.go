package listings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gamemarket/internal/domain"
	"github.com/GlebRadaev/gamemarket/internal/dto"
	"github.com/GlebRadaev/gamemarket/pkg/auth"
)

var sellerID = uuid.MustParse("b9d7d1a4-8a4f-4c1e-9d55-3c1a0f1f2e10")

func NewMock(t *testing.T) (*ListingHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func asSeller(r *http.Request) *http.Request {
	return r.WithContext(auth.WithIdentity(r.Context(), auth.Identity{UserID: sellerID, Role: domain.RoleSeller}))
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func view(price, discount string) domain.ListingView {
	v := domain.ListingView{
		Listing: domain.Listing{
			ID:                 uuid.New(),
			Price:              decimal.RequireFromString(price),
			DiscountPercentage: decimal.RequireFromString(discount),
			Currency:           "EUR",
			Stock:              3,
			IsActive:           true,
		},
		GameTitle: "Elden Ring",
	}
	v.ApplyPricing()
	return v
}

func TestMarketplaceHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		url           string
		prepareMock   func()
		expectedCode  int
		expectedPage  int
		expectedLimit int
	}{
		{
			name: "Default page",
			url:  "/api/v1/listings",
			prepareMock: func() {
				service.EXPECT().ListMarketplace(gomock.Any(), "", 0, 0).Return([]domain.ListingView{view("50.00", "20")}, nil)
			},
			expectedCode:  http.StatusOK,
			expectedPage:  1,
			expectedLimit: domain.DefaultPageSize,
		},
		{
			name: "Search with clamped limit",
			url:  "/api/v1/listings?search=elden&page=3&limit=500",
			prepareMock: func() {
				service.EXPECT().ListMarketplace(gomock.Any(), "elden", 3, 500).Return(nil, nil)
			},
			expectedCode:  http.StatusOK,
			expectedPage:  3,
			expectedLimit: domain.MaxPageSize,
		},
		{
			name: "Huge page is clamped",
			url:  "/api/v1/listings?page=1000000000&limit=100",
			prepareMock: func() {
				service.EXPECT().ListMarketplace(gomock.Any(), "", 1000000000, 100).Return(nil, nil)
			},
			expectedCode:  http.StatusOK,
			expectedPage:  domain.MaxPage,
			expectedLimit: domain.MaxPageSize,
		},
		{
			name: "Database error",
			url:  "/api/v1/listings",
			prepareMock: func() {
				service.EXPECT().ListMarketplace(gomock.Any(), "", 0, 0).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.Marketplace(w, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode != http.StatusOK {
				return
			}
			var body dto.ListingPageResponseDTO
			assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, tt.expectedPage, body.Page)
			assert.Equal(t, tt.expectedLimit, body.Limit)
			assert.Equal(t, len(body.Listings), body.Results)
			for _, l := range body.Listings {
				assert.Equal(t, "40.00", l.DiscountedPrice)
				assert.Equal(t, "3.60", l.Cashback)
			}
		})
	}
}

func TestMyListingsHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().ListMine(gomock.Any(), sellerID).Return([]domain.ListingView{view("10", "0"), view("20", "0")}, nil)
	w := httptest.NewRecorder()
	handler.MyListings(w, asSeller(httptest.NewRequest(http.MethodGet, "/api/v1/my-listings", nil)))
	assert.Equal(t, http.StatusOK, w.Code)
	var body dto.ListingListResponseDTO
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, 2, body.Results)

	w = httptest.NewRecorder()
	handler.MyListings(w, httptest.NewRequest(http.MethodGet, "/api/v1/my-listings", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateListingHandler(t *testing.T) {
	handler, service := NewMock(t)
	gameID := uuid.New()

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Created",
			body: fmt.Sprintf(`{"game_id":"%s","platform":"Steam","region":"EU","price":"50.00","discount_percentage":"20","stock":10}`, gameID),
			prepareMock: func() {
				service.EXPECT().CreateListing(gomock.Any(), domain.ListingDraft{
					GameID:             gameID,
					SellerID:           sellerID,
					Platform:           "Steam",
					Region:             "EU",
					Price:              decimal.RequireFromString("50.00"),
					DiscountPercentage: decimal.RequireFromString("20"),
					Stock:              10,
				}).Return(&domain.Listing{
					ID: uuid.New(), GameID: gameID, SellerID: sellerID,
					Price: decimal.RequireFromString("50.00"), DiscountPercentage: decimal.RequireFromString("20"),
					Currency: "EUR", Stock: 10, IsActive: true,
				}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Invalid game id",
			body:         `{"game_id":"42","platform":"Steam","region":"EU","price":"50.00","stock":10}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Price not numeric",
			body:         fmt.Sprintf(`{"game_id":"%s","platform":"Steam","region":"EU","price":"free","stock":10}`, gameID),
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Unknown game",
			body: fmt.Sprintf(`{"game_id":"%s","platform":"Steam","region":"EU","price":"50.00","stock":1}`, gameID),
			prepareMock: func() {
				service.EXPECT().CreateListing(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("%w: game not found", domain.ErrNotFound))
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.CreateListing(w, asSeller(httptest.NewRequest(http.MethodPost, "/api/v1/listings", strings.NewReader(tt.body))))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusCreated {
				var body dto.ListingResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, "50.00", body.Price)
				assert.Equal(t, "40.00", body.DiscountedPrice)
				assert.Equal(t, sellerID.String(), body.SellerID)
			}
		})
	}
}

func TestUpdateListingHandler(t *testing.T) {
	handler, service := NewMock(t)
	listingID := uuid.New()
	price := decimal.RequireFromString("45.00")
	stock := 0

	tests := []struct {
		name         string
		id           string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Updated",
			id:   listingID.String(),
			body: `{"price":"45.00","stock":0}`,
			prepareMock: func() {
				service.EXPECT().UpdateListing(gomock.Any(), listingID, sellerID, domain.ListingUpdate{Price: &price, Stock: &stock}).
					Return(&domain.Listing{ID: listingID, SellerID: sellerID, Price: price}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Foreign listing",
			id:   listingID.String(),
			body: `{"stock":3}`,
			prepareMock: func() {
				service.EXPECT().UpdateListing(gomock.Any(), listingID, sellerID, gomock.Any()).
					Return(nil, fmt.Errorf("%w: listing not found", domain.ErrNotFound))
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Invalid id",
			id:           "abc",
			body:         `{"stock":3}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Negative stock",
			id:           listingID.String(),
			body:         `{"stock":-1}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPatch, "/api/v1/listings/"+tt.id, strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			handler.UpdateListing(w, withURLParam(asSeller(r), "id", tt.id))
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestDeleteListingHandler(t *testing.T) {
	handler, service := NewMock(t)
	listingID := uuid.New()

	service.EXPECT().DeleteListing(gomock.Any(), listingID, sellerID).Return(nil)
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodDelete, "/api/v1/listings/"+listingID.String(), nil)
	handler.DeleteListing(w, withURLParam(asSeller(r), "id", listingID.String()))
	assert.Equal(t, http.StatusOK, w.Code)

	service.EXPECT().DeleteListing(gomock.Any(), listingID, sellerID).Return(fmt.Errorf("%w: listing not found", domain.ErrNotFound))
	w = httptest.NewRecorder()
	handler.DeleteListing(w, withURLParam(asSeller(r), "id", listingID.String()))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"status":"fail","message":"listing not found"}`, w.Body.String())
}
