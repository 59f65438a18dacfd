package service

import (
	"time"

	"github.com/GlebRadaev/gamemarket/internal/handlers/auth"
	"github.com/GlebRadaev/gamemarket/internal/handlers/balance"
	"github.com/GlebRadaev/gamemarket/internal/handlers/cart"
	"github.com/GlebRadaev/gamemarket/internal/handlers/favorites"
	"github.com/GlebRadaev/gamemarket/internal/handlers/games"
	"github.com/GlebRadaev/gamemarket/internal/handlers/listings"
	"github.com/GlebRadaev/gamemarket/internal/handlers/orders"
	"github.com/GlebRadaev/gamemarket/internal/handlers/visitors"
	"github.com/GlebRadaev/gamemarket/internal/notify"
	"github.com/GlebRadaev/gamemarket/internal/pg"
	"github.com/GlebRadaev/gamemarket/internal/repo"
	"github.com/GlebRadaev/gamemarket/internal/service/authservice"
	"github.com/GlebRadaev/gamemarket/internal/service/balanceservice"
	"github.com/GlebRadaev/gamemarket/internal/service/cartservice"
	"github.com/GlebRadaev/gamemarket/internal/service/favoriteservice"
	"github.com/GlebRadaev/gamemarket/internal/service/gameservice"
	"github.com/GlebRadaev/gamemarket/internal/service/listingservice"
	"github.com/GlebRadaev/gamemarket/internal/service/orderservice"
	"github.com/GlebRadaev/gamemarket/internal/service/visitorservice"
	pkgauth "github.com/GlebRadaev/gamemarket/pkg/auth"
)

type Options struct {
	Hash     pkgauth.HashServiceInterface
	JWT      pkgauth.JWTServiceInterface
	Notifier notify.NotifierI
	// Idempotency is left nil when Redis is not configured.
	Idempotency orderservice.IdempotencyStore
	TokenTTL    time.Duration
}

type Services struct {
	AuthService     auth.Service
	GameService     games.Service
	ListingService  listings.Service
	CartService     cart.Service
	FavoriteService favorites.Service
	BalanceService  balance.Service
	OrderService    orders.Service
	VisitorService  visitors.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, opts Options) *Services {
	return &Services{
		AuthService:     authservice.New(repo.UserRepo, opts.Hash, opts.JWT, opts.Notifier, opts.TokenTTL),
		GameService:     gameservice.New(repo.GameRepo, repo.ListingRepo),
		ListingService:  listingservice.New(repo.ListingRepo, repo.GameRepo),
		CartService:     cartservice.New(repo.CartRepo, repo.ListingRepo),
		FavoriteService: favoriteservice.New(repo.FavoriteRepo, repo.ListingRepo),
		BalanceService:  balanceservice.New(repo.BalanceRepo, repo.HistoryRepo),
		OrderService: orderservice.New(orderservice.Repos{
			Orders:   repo.OrderRepo,
			Carts:    repo.CartRepo,
			Listings: repo.ListingRepo,
			Balances: repo.BalanceRepo,
			Users:    repo.UserRepo,
		}, txManager, opts.Notifier, opts.Idempotency),
		VisitorService: visitorservice.New(opts.Notifier),
	}
}
