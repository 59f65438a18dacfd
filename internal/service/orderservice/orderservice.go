package orderservice

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gamemarket/internal/domain"
	"github.com/GlebRadaev/gamemarket/internal/notify"
	"github.com/GlebRadaev/gamemarket/internal/pg"
	"github.com/GlebRadaev/gamemarket/internal/redisx"
	"github.com/GlebRadaev/gamemarket/internal/service/cartservice"
	"github.com/GlebRadaev/gamemarket/pkg/metrics"
	"github.com/GlebRadaev/gamemarket/pkg/validate"
)

const PaymentMethodBalance = "balance"

type OrderRepo interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	FindByNumber(ctx context.Context, orderNumber string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Order, error)
}

type CartRepo interface {
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*domain.Cart, error)
	ListItems(ctx context.Context, cartID uuid.UUID) ([]domain.CartItemView, error)
	Clear(ctx context.Context, cartID uuid.UUID) error
}

type ListingRepo interface {
	DecrementStock(ctx context.Context, id uuid.UUID, qty int) (bool, error)
}

type BalanceRepo interface {
	Apply(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, entryType domain.EntryType, description string) (*domain.BalanceEntry, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type IdempotencyStore interface {
	Reserve(ctx context.Context, userID uuid.UUID, key string) (string, bool, error)
	Complete(ctx context.Context, userID uuid.UUID, key, orderNumber string) error
	Release(ctx context.Context, userID uuid.UUID, key string) error
}

type Repos struct {
	Orders   OrderRepo
	Carts    CartRepo
	Listings ListingRepo
	Balances BalanceRepo
	Users    UserRepo
}

type Service struct {
	repos     Repos
	txManager pg.TXManager
	notifier  notify.NotifierI
	idem      IdempotencyStore
	newNumber func() (string, error)
}

// New builds the checkout service. idem may be nil, in which case idempotency keys are ignored.
func New(repos Repos, txManager pg.TXManager, notifier notify.NotifierI, idem IdempotencyStore) *Service {
	return &Service{
		repos:     repos,
		txManager: txManager,
		notifier:  notifier,
		idem:      idem,
		newNumber: GenerateOrderNumber,
	}
}

// GenerateOrderNumber returns a 16 digit number that passes the Luhn check.
func GenerateOrderNumber() (string, error) {
	prefix := fmt.Sprintf("%010d%05d", time.Now().Unix()%1e10, rand.IntN(100000))
	number, ok := validate.WithLunaCheckDigit(prefix)
	if !ok {
		return "", fmt.Errorf("can't build order number from %s", prefix)
	}
	return number, nil
}

// Checkout turns the cart into a completed order paid from the balance. With a non empty
// idempotencyKey a repeated call returns the order created by the first one.
func (s *Service) Checkout(ctx context.Context, userID uuid.UUID, idempotencyKey string) (*domain.Order, error) {
	if idempotencyKey == "" || s.idem == nil {
		return s.checkout(ctx, userID)
	}

	stored, reserved, err := s.idem.Reserve(ctx, userID, idempotencyKey)
	if err != nil {
		zap.L().Warn("idempotency store unavailable, checking out without it", zap.Error(err))
		return s.checkout(ctx, userID)
	}
	if !reserved {
		return s.replay(ctx, userID, stored)
	}

	order, err := s.checkout(ctx, userID)
	// the key must leave the pending state even when the request ctx is already canceled
	storeCtx := context.WithoutCancel(ctx)
	if err != nil {
		if relErr := s.idem.Release(storeCtx, userID, idempotencyKey); relErr != nil {
			zap.L().Warn("can't release idempotency key", zap.Error(relErr))
		}
		return nil, err
	}
	if err := s.idem.Complete(storeCtx, userID, idempotencyKey, order.OrderNumber); err != nil {
		zap.L().Warn("can't store idempotency key", zap.Error(err))
	}
	return order, nil
}

func (s *Service) replay(ctx context.Context, userID uuid.UUID, stored string) (*domain.Order, error) {
	if stored == redisx.Pending {
		return nil, fmt.Errorf("%w: checkout with this idempotency key is in progress", domain.ErrConflict)
	}
	order, err := s.repos.Orders.FindByNumber(ctx, stored)
	if err != nil {
		return nil, err
	}
	if order == nil || order.UserID != userID {
		return nil, fmt.Errorf("%w: idempotency key already used", domain.ErrConflict)
	}
	metrics.CheckoutReplayedTotal.Inc()
	zap.L().Info("checkout replayed", zap.String("order", order.OrderNumber))
	return order, nil
}

func (s *Service) checkout(ctx context.Context, userID uuid.UUID) (*domain.Order, error) {
	var order *domain.Order
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		cart, err := s.repos.Carts.GetOrCreate(ctx, userID)
		if err != nil {
			return err
		}
		items, err := s.repos.Carts.ListItems(ctx, cart.ID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return fmt.Errorf("%w: cart is empty", domain.ErrValidation)
		}

		for _, it := range items {
			ok, err := s.repos.Listings.DecrementStock(ctx, it.ListingID, it.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: insufficient stock for %s", domain.ErrValidation, it.GameTitle)
			}
		}

		number, err := s.newNumber()
		if err != nil {
			return err
		}
		summary := cartservice.Summarize(cart.ID, items)
		order = newOrder(userID, number, summary)
		if _, err := s.repos.Orders.Create(ctx, order); err != nil {
			return err
		}

		_, err = s.repos.Balances.Apply(ctx, userID, summary.Total.Neg(), domain.EntryPurchase, "Order "+number)
		if err != nil {
			if errors.Is(err, domain.ErrInsufficientFunds) {
				return fmt.Errorf("%w: balance does not cover %s", domain.ErrInsufficientFunds, summary.Total.StringFixed(2))
			}
			return err
		}
		if summary.TotalCashback.IsPositive() {
			_, err = s.repos.Balances.Apply(ctx, userID, summary.TotalCashback, domain.EntryCashback, "Cashback for order "+number)
			if err != nil {
				return err
			}
		}
		return s.repos.Carts.Clear(ctx, cart.ID)
	})
	if err != nil {
		metrics.CheckoutFailedTotal.WithLabelValues(failureReason(err)).Inc()
		zap.L().Info("checkout failed", zap.String("user", userID.String()), zap.Error(err))
		return nil, err
	}

	metrics.OrdersCreatedTotal.Inc()
	zap.L().Info("order created", zap.String("order", order.OrderNumber), zap.String("total", order.TotalAmount.StringFixed(2)))

	user, err := s.repos.Users.FindByID(ctx, userID)
	if err != nil {
		zap.L().Warn("can't load user for notification", zap.Error(err))
	}
	s.notifier.Notify(ctx, notify.CheckoutEvent(user, order))
	return order, nil
}

func newOrder(userID uuid.UUID, number string, summary *domain.CartSummary) *domain.Order {
	order := &domain.Order{
		UserID:        userID,
		OrderNumber:   number,
		TotalAmount:   summary.Total,
		TotalCashback: summary.TotalCashback,
		PaymentMethod: PaymentMethodBalance,
		Status:        domain.OrderCompleted,
		Items:         make([]domain.OrderItem, len(summary.Items)),
	}
	for i, it := range summary.Items {
		order.Items[i] = domain.OrderItem{
			ListingID:       it.ListingID,
			GameTitle:       it.GameTitle,
			PlatformName:    it.PlatformName,
			RegionName:      it.RegionName,
			Quantity:        it.Quantity,
			PriceAtPurchase: it.DiscountedPrice,
		}
	}
	return order
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return "validation"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	default:
		return "internal"
	}
}

func (s *Service) GetOrders(ctx context.Context, userID uuid.UUID) ([]domain.Order, error) {
	orders, err := s.repos.Orders.ListByUser(ctx, userID)
	if err != nil {
		zap.L().Error("can't get orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

// GetOrder returns an order of userID by number. Orders of other users are reported as not found.
func (s *Service) GetOrder(ctx context.Context, userID uuid.UUID, orderNumber string) (*domain.Order, error) {
	if !validate.IsLuna(orderNumber) {
		return nil, fmt.Errorf("%w: invalid order number", domain.ErrValidation)
	}
	order, err := s.repos.Orders.FindByNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	if order == nil || order.UserID != userID {
		return nil, fmt.Errorf("%w: order not found", domain.ErrNotFound)
	}
	return order, nil
}
