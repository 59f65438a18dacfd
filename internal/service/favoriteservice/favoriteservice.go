package favoriteservice

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/GlebRadaev/gamemarket/internal/domain"
)

type FavoriteRepo interface {
	Add(ctx context.Context, fav domain.Favorite) (*domain.Favorite, error)
	Remove(ctx context.Context, userID, listingID uuid.UUID) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.FavoriteView, error)
	Exists(ctx context.Context, userID, listingID uuid.UUID) (bool, error)
}

type ListingRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error)
}

type Service struct {
	favoriteRepo FavoriteRepo
	listingRepo  ListingRepo
}

func New(favoriteRepo FavoriteRepo, listingRepo ListingRepo) *Service {
	return &Service{
		favoriteRepo: favoriteRepo,
		listingRepo:  listingRepo,
	}
}

// Add marks a listing as favorite. Adding it twice is not an error.
func (s *Service) Add(ctx context.Context, userID, listingID uuid.UUID) error {
	listing, err := s.listingRepo.FindByID(ctx, listingID)
	if err != nil {
		return err
	}
	if listing == nil {
		return fmt.Errorf("%w: listing not found", domain.ErrNotFound)
	}
	_, err = s.favoriteRepo.Add(ctx, domain.Favorite{
		UserID:    userID,
		ListingID: listingID,
		GameID:    listing.GameID,
	})
	return err
}

func (s *Service) Remove(ctx context.Context, userID, listingID uuid.UUID) error {
	removed, err := s.favoriteRepo.Remove(ctx, userID, listingID)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("%w: listing not found in favorites", domain.ErrNotFound)
	}
	return nil
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]domain.FavoriteView, error) {
	return s.favoriteRepo.ListByUser(ctx, userID)
}

func (s *Service) IsFavorite(ctx context.Context, userID, listingID uuid.UUID) (bool, error) {
	return s.favoriteRepo.Exists(ctx, userID, listingID)
}
