package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gamemarket/internal/domain"
	"github.com/GlebRadaev/gamemarket/internal/handlers/auth"
	"github.com/GlebRadaev/gamemarket/internal/handlers/balance"
	"github.com/GlebRadaev/gamemarket/internal/handlers/cart"
	"github.com/GlebRadaev/gamemarket/internal/handlers/favorites"
	"github.com/GlebRadaev/gamemarket/internal/handlers/games"
	"github.com/GlebRadaev/gamemarket/internal/handlers/listings"
	"github.com/GlebRadaev/gamemarket/internal/handlers/orders"
	"github.com/GlebRadaev/gamemarket/internal/handlers/visitors"
	"github.com/GlebRadaev/gamemarket/internal/service"
	pkgauth "github.com/GlebRadaev/gamemarket/pkg/auth"
)

// roleAuthenticator authenticates every request as a caller with the role from the X-Role header.
type roleAuthenticator struct{}

func (roleAuthenticator) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role := domain.Role(r.Header.Get("X-Role"))
		if role == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		ctx := pkgauth.WithIdentity(r.Context(), pkgauth.Identity{UserID: uuid.New(), Role: role})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:     auth.NewMockService(ctrl),
		GameService:     games.NewMockService(ctrl),
		ListingService:  listings.NewMockService(ctrl),
		CartService:     cart.NewMockService(ctrl),
		FavoriteService: favorites.NewMockService(ctrl),
		BalanceService:  balance.NewMockService(ctrl),
		OrderService:    orders.NewMockService(ctrl),
		VisitorService:  visitors.NewMockService(ctrl),
	}

	h := New(services, roleAuthenticator{}, Options{})
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.CartHandler)
	assert.NotNil(t, h.VisitorHandler)
}

func newRouter(t *testing.T, authenticator Authenticator) chi.Router {
	router := chi.NewRouter()
	newHandlers(t, authenticator).InitRoutes(router)
	return router
}

func newHandlers(t *testing.T, authenticator Authenticator) *Handlers {
	ctrl := gomock.NewController(t)

	ok := func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockGameHandler := NewMockGameHandler(ctrl)
	mockListingHandler := NewMockListingHandler(ctrl)
	mockCartHandler := NewMockCartHandler(ctrl)
	mockFavoriteHandler := NewMockFavoriteHandler(ctrl)
	mockBalanceHandler := NewMockBalanceHandler(ctrl)
	mockOrderHandler := NewMockOrderHandler(ctrl)
	mockVisitorHandler := NewMockVisitorHandler(ctrl)

	mockAuthHandler.EXPECT().Signup(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockAuthHandler.EXPECT().Logout(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockAuthHandler.EXPECT().Profile(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockAuthHandler.EXPECT().GoogleLogin(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockAuthHandler.EXPECT().GoogleCallback(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockGameHandler.EXPECT().ListGames(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockGameHandler.EXPECT().SearchGames(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockGameHandler.EXPECT().GetGame(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockGameHandler.EXPECT().CreateGame(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockGameHandler.EXPECT().ListPlatforms(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockGameHandler.EXPECT().ListRegions(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockListingHandler.EXPECT().Marketplace(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockListingHandler.EXPECT().MyListings(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockListingHandler.EXPECT().CreateListing(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockListingHandler.EXPECT().UpdateListing(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockListingHandler.EXPECT().DeleteListing(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockCartHandler.EXPECT().GetCart(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockCartHandler.EXPECT().Count(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockCartHandler.EXPECT().AddItem(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockCartHandler.EXPECT().UpdateItem(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockCartHandler.EXPECT().RemoveItem(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockCartHandler.EXPECT().Clear(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockFavoriteHandler.EXPECT().List(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockFavoriteHandler.EXPECT().Add(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockFavoriteHandler.EXPECT().Remove(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockFavoriteHandler.EXPECT().Check(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockBalanceHandler.EXPECT().GetBalance(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockBalanceHandler.EXPECT().Deposit(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockBalanceHandler.EXPECT().Withdraw(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockBalanceHandler.EXPECT().History(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockOrderHandler.EXPECT().Checkout(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockOrderHandler.EXPECT().GetOrders(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockOrderHandler.EXPECT().GetOrder(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockVisitorHandler.EXPECT().TrackVisitor(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()

	return &Handlers{
		AuthHandler:     mockAuthHandler,
		GameHandler:     mockGameHandler,
		ListingHandler:  mockListingHandler,
		CartHandler:     mockCartHandler,
		FavoriteHandler: mockFavoriteHandler,
		BalanceHandler:  mockBalanceHandler,
		OrderHandler:    mockOrderHandler,
		VisitorHandler:  mockVisitorHandler,
		authenticator:   authenticator,
	}
}

func TestInitRoutes_Anonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no token: the real middleware rejects before touching the jwt service
	authenticator := pkgauth.NewMiddleware(pkgauth.NewMockJWTServiceInterface(ctrl), nil)
	router := newRouter(t, authenticator)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/v1/users/signup", http.StatusOK},
		{"POST", "/api/v1/users/login", http.StatusOK},
		{"POST", "/api/v1/users/logout", http.StatusOK},
		{"GET", "/api/v1/auth/google", http.StatusOK},
		{"GET", "/api/v1/auth/google/callback", http.StatusOK},
		{"GET", "/api/v1/listings", http.StatusOK},
		{"GET", "/api/v1/games", http.StatusOK},
		{"GET", "/api/v1/games/search", http.StatusOK},
		{"GET", "/api/v1/games/" + uuid.NewString(), http.StatusOK},
		{"GET", "/api/v1/platforms", http.StatusOK},
		{"GET", "/api/v1/regions", http.StatusOK},
		{"POST", "/api/v1/track-visitor", http.StatusOK},
		{"GET", "/metrics", http.StatusOK},
		{"GET", "/api/v1/users/profile", http.StatusUnauthorized},
		{"POST", "/api/v1/games", http.StatusUnauthorized},
		{"POST", "/api/v1/listings", http.StatusUnauthorized},
		{"GET", "/api/v1/my-listings", http.StatusUnauthorized},
		{"PATCH", "/api/v1/listings/" + uuid.NewString(), http.StatusUnauthorized},
		{"DELETE", "/api/v1/listings/" + uuid.NewString(), http.StatusUnauthorized},
		{"GET", "/api/v1/cart", http.StatusUnauthorized},
		{"POST", "/api/v1/cart/items", http.StatusUnauthorized},
		{"GET", "/api/v1/favorites", http.StatusUnauthorized},
		{"GET", "/api/v1/balance", http.StatusUnauthorized},
		{"POST", "/api/v1/balance/withdraw", http.StatusUnauthorized},
		{"POST", "/api/v1/orders/checkout", http.StatusUnauthorized},
		{"GET", "/api/v1/orders", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestInitRoutes_Roles(t *testing.T) {
	router := newRouter(t, roleAuthenticator{})

	tests := []struct {
		method string
		url    string
		role   domain.Role
		status int
	}{
		{"POST", "/api/v1/games", domain.RoleBuyer, http.StatusForbidden},
		{"POST", "/api/v1/games", domain.RoleSeller, http.StatusOK},
		{"POST", "/api/v1/listings", domain.RoleAdmin, http.StatusOK},
		{"GET", "/api/v1/my-listings", domain.RoleBuyer, http.StatusForbidden},
		{"PATCH", "/api/v1/listings/" + uuid.NewString(), domain.RoleSeller, http.StatusOK},
		{"GET", "/api/v1/cart", domain.RoleSeller, http.StatusForbidden},
		{"GET", "/api/v1/cart", domain.RoleBuyer, http.StatusOK},
		{"GET", "/api/v1/cart/count", domain.RoleBuyer, http.StatusOK},
		{"PATCH", "/api/v1/cart/items/" + uuid.NewString(), domain.RoleBuyer, http.StatusOK},
		{"POST", "/api/v1/orders/checkout", domain.RoleBuyer, http.StatusOK},
		{"POST", "/api/v1/orders/checkout", domain.RoleAdmin, http.StatusForbidden},
		{"GET", "/api/v1/orders/ORD-1", domain.RoleBuyer, http.StatusOK},
		{"GET", "/api/v1/favorites", domain.RoleSeller, http.StatusOK},
		{"GET", "/api/v1/favorites/" + uuid.NewString() + "/check", domain.RoleBuyer, http.StatusOK},
		{"POST", "/api/v1/balance/deposit", domain.RoleSeller, http.StatusOK},
		{"GET", "/api/v1/balance/history", domain.RoleBuyer, http.StatusOK},
		{"GET", "/api/v1/users/profile", domain.RoleAdmin, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url+" as "+string(tt.role), func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			req.Header.Set("X-Role", string(tt.role))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestInitRoutes_CORS(t *testing.T) {
	const frontend = "http://localhost:3000"
	h := newHandlers(t, roleAuthenticator{})
	h.frontendURL = frontend
	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		name         string
		method       string
		url          string
		origin       string
		headers      map[string]string
		expectedCode int
		allowOrigin  string
	}{
		{
			name:   "Preflight from frontend",
			method: http.MethodOptions,
			url:    "/api/v1/orders/checkout",
			origin: frontend,
			headers: map[string]string{
				"Access-Control-Request-Method":  "POST",
				"Access-Control-Request-Headers": "Idempotency-Key, Content-Type",
			},
			expectedCode: http.StatusOK,
			allowOrigin:  frontend,
		},
		{
			name:         "Simple request from frontend",
			method:       http.MethodGet,
			url:          "/api/v1/games",
			origin:       frontend,
			expectedCode: http.StatusOK,
			allowOrigin:  frontend,
		},
		{
			name:         "Foreign origin gets no grant",
			method:       http.MethodGet,
			url:          "/api/v1/games",
			origin:       "http://evil.example",
			expectedCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			req.Header.Set("Origin", tt.origin)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, tt.allowOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			if tt.allowOrigin != "" {
				assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
			}
		})
	}
}
