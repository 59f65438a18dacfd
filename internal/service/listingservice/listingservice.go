package listingservice

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gamemarket/internal/domain"
)

const DefaultCurrency = "EUR"

var (
	maxDiscount = decimal.NewFromInt(100)
	// largest value of a DECIMAL(10, 2) price column
	maxPrice = decimal.RequireFromString("99999999.99")
)

type ListingRepo interface {
	ListActive(ctx context.Context, search string, limit, offset int) ([]domain.ListingView, error)
	ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]domain.ListingView, error)
	Create(ctx context.Context, l *domain.Listing) (*domain.Listing, error)
	Update(ctx context.Context, id, sellerID uuid.UUID, upd domain.ListingUpdate) (*domain.Listing, error)
	Delete(ctx context.Context, id, sellerID uuid.UUID) (*domain.Listing, error)
}

type CatalogRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Game, error)
	FindPlatform(ctx context.Context, ident string) (*domain.Platform, error)
	FindRegion(ctx context.Context, ident string) (*domain.Region, error)
}

type Service struct {
	listingRepo ListingRepo
	catalogRepo CatalogRepo
}

func New(listingRepo ListingRepo, catalogRepo CatalogRepo) *Service {
	return &Service{
		listingRepo: listingRepo,
		catalogRepo: catalogRepo,
	}
}

// ListMarketplace returns one page of purchasable listings, optionally filtered by a title search.
func (s *Service) ListMarketplace(ctx context.Context, search string, page, limit int) ([]domain.ListingView, error) {
	limit, offset := domain.Paginate(page, limit)
	return s.listingRepo.ListActive(ctx, strings.TrimSpace(search), limit, offset)
}

func (s *Service) ListMine(ctx context.Context, sellerID uuid.UUID) ([]domain.ListingView, error) {
	return s.listingRepo.ListBySeller(ctx, sellerID)
}

func (s *Service) CreateListing(ctx context.Context, draft domain.ListingDraft) (*domain.Listing, error) {
	if err := validatePricing(&draft.Price, &draft.DiscountPercentage, &draft.Stock); err != nil {
		return nil, err
	}
	currency := strings.ToUpper(strings.TrimSpace(draft.Currency))
	if currency == "" {
		currency = DefaultCurrency
	}

	game, err := s.catalogRepo.GetByID(ctx, draft.GameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, fmt.Errorf("%w: game not found", domain.ErrNotFound)
	}
	platform, err := s.catalogRepo.FindPlatform(ctx, strings.TrimSpace(draft.Platform))
	if err != nil {
		return nil, err
	}
	if platform == nil {
		return nil, fmt.Errorf("%w: unknown platform %q", domain.ErrValidation, draft.Platform)
	}
	region, err := s.catalogRepo.FindRegion(ctx, strings.TrimSpace(draft.Region))
	if err != nil {
		return nil, err
	}
	if region == nil {
		return nil, fmt.Errorf("%w: unknown region %q", domain.ErrValidation, draft.Region)
	}

	listing, err := s.listingRepo.Create(ctx, &domain.Listing{
		GameID:             game.ID,
		SellerID:           draft.SellerID,
		PlatformID:         platform.ID,
		RegionID:           region.ID,
		Price:              draft.Price,
		DiscountPercentage: draft.DiscountPercentage,
		Currency:           currency,
		Stock:              draft.Stock,
		IsActive:           true,
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("listing created", zap.String("id", listing.ID.String()), zap.String("seller", draft.SellerID.String()))
	return listing, nil
}

// UpdateListing changes a listing owned by sellerID. A listing of another seller is reported
// as not found.
func (s *Service) UpdateListing(ctx context.Context, id, sellerID uuid.UUID, upd domain.ListingUpdate) (*domain.Listing, error) {
	if upd.Price == nil && upd.DiscountPercentage == nil && upd.Stock == nil && upd.IsActive == nil {
		return nil, fmt.Errorf("%w: nothing to update", domain.ErrValidation)
	}
	if err := validatePricing(upd.Price, upd.DiscountPercentage, upd.Stock); err != nil {
		return nil, err
	}

	listing, err := s.listingRepo.Update(ctx, id, sellerID, upd)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, fmt.Errorf("%w: listing not found", domain.ErrNotFound)
	}
	return listing, nil
}

func (s *Service) DeleteListing(ctx context.Context, id, sellerID uuid.UUID) error {
	listing, err := s.listingRepo.Delete(ctx, id, sellerID)
	if err != nil {
		return err
	}
	if listing == nil {
		return fmt.Errorf("%w: listing not found", domain.ErrNotFound)
	}
	zap.L().Info("listing deleted", zap.String("id", id.String()))
	return nil
}

// validatePricing checks the fields that are set. Nil pointers are skipped.
func validatePricing(price, discount *decimal.Decimal, stock *int) error {
	if price != nil && !price.IsPositive() {
		return fmt.Errorf("%w: price must be greater than 0", domain.ErrValidation)
	}
	if price != nil && price.GreaterThan(maxPrice) {
		return fmt.Errorf("%w: price must not exceed %s", domain.ErrValidation, maxPrice.StringFixed(2))
	}
	if discount != nil && (discount.IsNegative() || discount.GreaterThan(maxDiscount)) {
		return fmt.Errorf("%w: discount_percentage must be between 0 and 100", domain.ErrValidation)
	}
	if stock != nil && *stock < 0 {
		return fmt.Errorf("%w: stock cannot be negative", domain.ErrValidation)
	}
	return nil
}
