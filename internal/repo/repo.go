package repo

import (
	"github.com/GlebRadaev/gamemarket/internal/pg"
	balancerepo "github.com/GlebRadaev/gamemarket/internal/repo/balance-repo"
	cartrepo "github.com/GlebRadaev/gamemarket/internal/repo/cart-repo"
	favoriterepo "github.com/GlebRadaev/gamemarket/internal/repo/favorite-repo"
	gamerepo "github.com/GlebRadaev/gamemarket/internal/repo/game-repo"
	historyrepo "github.com/GlebRadaev/gamemarket/internal/repo/history-repo"
	listingrepo "github.com/GlebRadaev/gamemarket/internal/repo/listing-repo"
	orderrepo "github.com/GlebRadaev/gamemarket/internal/repo/order-repo"
	userrepo "github.com/GlebRadaev/gamemarket/internal/repo/user-repo"
	"github.com/GlebRadaev/gamemarket/internal/service/authservice"
	"github.com/GlebRadaev/gamemarket/internal/service/balanceservice"
	"github.com/GlebRadaev/gamemarket/internal/service/cartservice"
	"github.com/GlebRadaev/gamemarket/internal/service/favoriteservice"
	"github.com/GlebRadaev/gamemarket/internal/service/gameservice"
	"github.com/GlebRadaev/gamemarket/internal/service/listingservice"
	"github.com/GlebRadaev/gamemarket/internal/service/orderservice"
)

// The repository contracts below are the union of what the services consume.

type UserRepo interface {
	authservice.Repo
}

type GameRepo interface {
	gameservice.GameRepo
	listingservice.CatalogRepo
}

type ListingRepo interface {
	gameservice.ListingRepo
	listingservice.ListingRepo
	cartservice.ListingRepo
	orderservice.ListingRepo
}

type CartRepo interface {
	cartservice.CartRepo
}

type Repositories struct {
	UserRepo     UserRepo
	GameRepo     GameRepo
	ListingRepo  ListingRepo
	CartRepo     CartRepo
	FavoriteRepo favoriteservice.FavoriteRepo
	BalanceRepo  balanceservice.BalanceRepo
	HistoryRepo  balanceservice.HistoryRepo
	OrderRepo    orderservice.OrderRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:     userrepo.New(conn, txManager),
		GameRepo:     gamerepo.New(conn, txManager),
		ListingRepo:  listingrepo.New(conn),
		CartRepo:     cartrepo.New(conn),
		FavoriteRepo: favoriterepo.New(conn),
		BalanceRepo:  balancerepo.New(conn, txManager),
		HistoryRepo:  historyrepo.New(conn),
		OrderRepo:    orderrepo.New(conn, txManager),
	}
}
