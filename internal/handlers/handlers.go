package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/gamemarket/docs"
	"github.com/GlebRadaev/gamemarket/internal/domain"
	authhandlers "github.com/GlebRadaev/gamemarket/internal/handlers/auth"
	balancehandlers "github.com/GlebRadaev/gamemarket/internal/handlers/balance"
	carthandlers "github.com/GlebRadaev/gamemarket/internal/handlers/cart"
	favoritehandlers "github.com/GlebRadaev/gamemarket/internal/handlers/favorites"
	gamehandlers "github.com/GlebRadaev/gamemarket/internal/handlers/games"
	listinghandlers "github.com/GlebRadaev/gamemarket/internal/handlers/listings"
	orderhandlers "github.com/GlebRadaev/gamemarket/internal/handlers/orders"
	visitorhandlers "github.com/GlebRadaev/gamemarket/internal/handlers/visitors"
	"github.com/GlebRadaev/gamemarket/internal/service"
	"github.com/GlebRadaev/gamemarket/pkg/auth"
	"github.com/GlebRadaev/gamemarket/pkg/metrics"
)

type AuthHandler interface {
	Signup(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Profile(w http.ResponseWriter, r *http.Request)
	GoogleLogin(w http.ResponseWriter, r *http.Request)
	GoogleCallback(w http.ResponseWriter, r *http.Request)
}

type GameHandler interface {
	ListGames(w http.ResponseWriter, r *http.Request)
	SearchGames(w http.ResponseWriter, r *http.Request)
	GetGame(w http.ResponseWriter, r *http.Request)
	CreateGame(w http.ResponseWriter, r *http.Request)
	ListPlatforms(w http.ResponseWriter, r *http.Request)
	ListRegions(w http.ResponseWriter, r *http.Request)
}

type ListingHandler interface {
	Marketplace(w http.ResponseWriter, r *http.Request)
	MyListings(w http.ResponseWriter, r *http.Request)
	CreateListing(w http.ResponseWriter, r *http.Request)
	UpdateListing(w http.ResponseWriter, r *http.Request)
	DeleteListing(w http.ResponseWriter, r *http.Request)
}

type CartHandler interface {
	GetCart(w http.ResponseWriter, r *http.Request)
	Count(w http.ResponseWriter, r *http.Request)
	AddItem(w http.ResponseWriter, r *http.Request)
	UpdateItem(w http.ResponseWriter, r *http.Request)
	RemoveItem(w http.ResponseWriter, r *http.Request)
	Clear(w http.ResponseWriter, r *http.Request)
}

type FavoriteHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Add(w http.ResponseWriter, r *http.Request)
	Remove(w http.ResponseWriter, r *http.Request)
	Check(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	Deposit(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	Checkout(w http.ResponseWriter, r *http.Request)
	GetOrders(w http.ResponseWriter, r *http.Request)
	GetOrder(w http.ResponseWriter, r *http.Request)
}

type VisitorHandler interface {
	TrackVisitor(w http.ResponseWriter, r *http.Request)
}

type Authenticator interface {
	Authenticate(next http.Handler) http.Handler
}

type Options struct {
	Auth           authhandlers.Options
	Google         authhandlers.OAuthProvider
	RequestTimeout time.Duration
}

type Handlers struct {
	AuthHandler     AuthHandler
	GameHandler     GameHandler
	ListingHandler  ListingHandler
	CartHandler     CartHandler
	FavoriteHandler FavoriteHandler
	BalanceHandler  BalanceHandler
	OrderHandler    OrderHandler
	VisitorHandler  VisitorHandler

	authenticator  Authenticator
	requestTimeout time.Duration
	frontendURL    string
}

func New(s *service.Services, authenticator Authenticator, opts Options) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService, opts.Google, opts.Auth),
		GameHandler:     gamehandlers.New(s.GameService),
		ListingHandler:  listinghandlers.New(s.ListingService),
		CartHandler:     carthandlers.New(s.CartService),
		FavoriteHandler: favoritehandlers.New(s.FavoriteService),
		BalanceHandler:  balancehandlers.New(s.BalanceService),
		OrderHandler:    orderhandlers.New(s.OrderService),
		VisitorHandler:  visitorhandlers.New(s.VisitorService),
		authenticator:   authenticator,
		requestTimeout:  opts.RequestTimeout,
		frontendURL:     opts.Auth.FrontendURL,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		metrics.Middleware,
	)
	if h.frontendURL != "" {
		r.Use(corsMiddleware(h.frontendURL))
	}
	if h.requestTimeout > 0 {
		r.Use(middleware.Timeout(h.requestTimeout))
	}
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	sellers := auth.RequireRole(domain.RoleSeller, domain.RoleAdmin)
	buyers := auth.RequireRole(domain.RoleBuyer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/signup", h.AuthHandler.Signup)
			r.Post("/login", h.AuthHandler.Login)
			r.Post("/logout", h.AuthHandler.Logout)
			r.With(h.authenticator.Authenticate).Get("/profile", h.AuthHandler.Profile)
		})
		r.Get("/auth/google", h.AuthHandler.GoogleLogin)
		r.Get("/auth/google/callback", h.AuthHandler.GoogleCallback)

		r.Get("/listings", h.ListingHandler.Marketplace)
		r.Get("/games", h.GameHandler.ListGames)
		r.Get("/games/search", h.GameHandler.SearchGames)
		r.Get("/games/{id}", h.GameHandler.GetGame)
		r.Get("/platforms", h.GameHandler.ListPlatforms)
		r.Get("/regions", h.GameHandler.ListRegions)
		r.Post("/track-visitor", h.VisitorHandler.TrackVisitor)

		r.Group(func(r chi.Router) {
			r.Use(h.authenticator.Authenticate)

			r.Group(func(r chi.Router) {
				r.Use(sellers)
				r.Post("/games", h.GameHandler.CreateGame)
				r.Post("/listings", h.ListingHandler.CreateListing)
				r.Get("/my-listings", h.ListingHandler.MyListings)
				r.Patch("/listings/{id}", h.ListingHandler.UpdateListing)
				r.Delete("/listings/{id}", h.ListingHandler.DeleteListing)
			})

			r.Route("/favorites", func(r chi.Router) {
				r.Get("/", h.FavoriteHandler.List)
				r.Post("/{listingID}", h.FavoriteHandler.Add)
				r.Delete("/{listingID}", h.FavoriteHandler.Remove)
				r.Get("/{listingID}/check", h.FavoriteHandler.Check)
			})

			r.Route("/balance", func(r chi.Router) {
				r.Get("/", h.BalanceHandler.GetBalance)
				r.Post("/deposit", h.BalanceHandler.Deposit)
				r.Post("/withdraw", h.BalanceHandler.Withdraw)
				r.Get("/history", h.BalanceHandler.History)
			})

			r.Route("/cart", func(r chi.Router) {
				r.Use(buyers)
				r.Get("/", h.CartHandler.GetCart)
				r.Delete("/", h.CartHandler.Clear)
				r.Get("/count", h.CartHandler.Count)
				r.Post("/items", h.CartHandler.AddItem)
				r.Patch("/items/{listingID}", h.CartHandler.UpdateItem)
				r.Delete("/items/{listingID}", h.CartHandler.RemoveItem)
			})

			r.Route("/orders", func(r chi.Router) {
				r.Use(buyers)
				r.Post("/checkout", h.OrderHandler.Checkout)
				r.Get("/", h.OrderHandler.GetOrders)
				r.Get("/{number}", h.OrderHandler.GetOrder)
			})
		})
	})

	return r
}

// corsMiddleware lets the single frontend origin call the API with the session cookie.
func corsMiddleware(origin string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   []string{origin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Idempotency-Key"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
