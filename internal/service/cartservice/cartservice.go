package cartservice

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gamemarket/internal/domain"
	"github.com/GlebRadaev/gamemarket/pkg/metrics"
)

type CartRepo interface {
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*domain.Cart, error)
	AddItem(ctx context.Context, cartID, listingID uuid.UUID, qty int) (*domain.CartItem, error)
	SetItemQuantity(ctx context.Context, cartID, listingID uuid.UUID, qty int) (*domain.CartItem, error)
	RemoveItem(ctx context.Context, cartID, listingID uuid.UUID) (bool, error)
	Clear(ctx context.Context, cartID uuid.UUID) error
	ListItems(ctx context.Context, cartID uuid.UUID) ([]domain.CartItemView, error)
	Count(ctx context.Context, cartID uuid.UUID) (int, int, error)
}

type ListingRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error)
}

type Service struct {
	cartRepo    CartRepo
	listingRepo ListingRepo
}

func New(cartRepo CartRepo, listingRepo ListingRepo) *Service {
	return &Service{
		cartRepo:    cartRepo,
		listingRepo: listingRepo,
	}
}

// GetCart returns the cart with per row and cart level totals.
func (s *Service) GetCart(ctx context.Context, userID uuid.UUID) (*domain.CartSummary, error) {
	cart, err := s.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	items, err := s.cartRepo.ListItems(ctx, cart.ID)
	if err != nil {
		return nil, err
	}
	return Summarize(cart.ID, items), nil
}

// Summarize totals already priced cart rows.
func Summarize(cartID uuid.UUID, items []domain.CartItemView) *domain.CartSummary {
	summary := &domain.CartSummary{
		CartID:        cartID,
		Items:         items,
		Total:         decimal.Zero,
		TotalCashback: decimal.Zero,
		ItemCount:     len(items),
	}
	for _, it := range items {
		summary.Total = summary.Total.Add(it.Subtotal)
		summary.TotalCashback = summary.TotalCashback.Add(it.TotalCashback)
		summary.TotalQuantity += it.Quantity
	}
	summary.Total = domain.RoundMoney(summary.Total)
	summary.TotalCashback = domain.RoundMoney(summary.TotalCashback)
	return summary
}

// AddItem puts qty units of a listing into the cart, adding to any quantity already there.
// Stock is compared with qty alone and is not reserved; checkout decrements it atomically.
func (s *Service) AddItem(ctx context.Context, userID, listingID uuid.UUID, qty int) (*domain.CartItem, error) {
	if qty < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", domain.ErrValidation)
	}
	listing, err := s.listingRepo.FindByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing == nil || !listing.IsActive {
		return nil, fmt.Errorf("%w: listing not found or inactive", domain.ErrNotFound)
	}
	if listing.Stock < qty {
		return nil, fmt.Errorf("%w: insufficient stock", domain.ErrValidation)
	}

	cart, err := s.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	item, err := s.cartRepo.AddItem(ctx, cart.ID, listingID, qty)
	if err != nil {
		return nil, err
	}
	metrics.CartItemsAddedTotal.Inc()
	zap.L().Debug("cart item added", zap.String("cart", cart.ID.String()), zap.Int("quantity", item.Quantity))
	return item, nil
}

// UpdateItem sets the quantity of a cart row. Zero removes the row and returns nil.
func (s *Service) UpdateItem(ctx context.Context, userID, listingID uuid.UUID, qty int) (*domain.CartItem, error) {
	if qty < 0 {
		return nil, fmt.Errorf("%w: quantity cannot be negative", domain.ErrValidation)
	}
	if qty == 0 {
		// setting zero is idempotent: an item already gone is not an error
		cart, err := s.cartRepo.GetOrCreate(ctx, userID)
		if err != nil {
			return nil, err
		}
		_, err = s.cartRepo.RemoveItem(ctx, cart.ID, listingID)
		return nil, err
	}

	listing, err := s.listingRepo.FindByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, fmt.Errorf("%w: listing not found", domain.ErrNotFound)
	}
	if qty > listing.Stock {
		return nil, fmt.Errorf("%w: insufficient stock", domain.ErrValidation)
	}

	cart, err := s.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	item, err := s.cartRepo.SetItemQuantity(ctx, cart.ID, listingID, qty)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: item not found in cart", domain.ErrNotFound)
	}
	return item, nil
}

func (s *Service) RemoveItem(ctx context.Context, userID, listingID uuid.UUID) error {
	cart, err := s.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return err
	}
	removed, err := s.cartRepo.RemoveItem(ctx, cart.ID, listingID)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("%w: item not found in cart", domain.ErrNotFound)
	}
	return nil
}

func (s *Service) Clear(ctx context.Context, userID uuid.UUID) error {
	cart, err := s.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return err
	}
	return s.cartRepo.Clear(ctx, cart.ID)
}

// Count returns the number of cart rows and the sum of their quantities.
func (s *Service) Count(ctx context.Context, userID uuid.UUID) (int, int, error) {
	cart, err := s.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return 0, 0, err
	}
	return s.cartRepo.Count(ctx, cart.ID)
}
