package gameservice

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/gamemarket/internal/domain"
)

const searchLimit = 20

type GameRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Game, error)
	List(ctx context.Context, limit, offset int) ([]domain.Game, error)
	Search(ctx context.Context, query string, limit int) ([]domain.Game, error)
	Create(ctx context.Context, game *domain.Game, platformIDs []int) (*domain.Game, error)
	ListPlatforms(ctx context.Context) ([]domain.Platform, error)
	ListRegions(ctx context.Context) ([]domain.Region, error)
}

type ListingRepo interface {
	ListByGame(ctx context.Context, gameID uuid.UUID) ([]domain.ListingView, error)
}

type Service struct {
	gameRepo    GameRepo
	listingRepo ListingRepo
}

func New(gameRepo GameRepo, listingRepo ListingRepo) *Service {
	return &Service{
		gameRepo:    gameRepo,
		listingRepo: listingRepo,
	}
}

func (s *Service) ListGames(ctx context.Context, page, limit int) ([]domain.Game, error) {
	limit, offset := domain.Paginate(page, limit)
	return s.gameRepo.List(ctx, limit, offset)
}

func (s *Service) SearchGames(ctx context.Context, query string) ([]domain.Game, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", domain.ErrValidation)
	}
	return s.gameRepo.Search(ctx, query, searchLimit)
}

// GetGameDetails loads the game and its purchasable listings concurrently.
func (s *Service) GetGameDetails(ctx context.Context, id uuid.UUID) (*domain.Game, []domain.ListingView, error) {
	var (
		game     *domain.Game
		listings []domain.ListingView
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		game, err = s.gameRepo.GetByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		listings, err = s.listingRepo.ListByGame(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to load game details", zap.Error(err))
		return nil, nil, err
	}
	if game == nil {
		return nil, nil, fmt.Errorf("%w: game not found", domain.ErrNotFound)
	}
	return game, listings, nil
}

func (s *Service) CreateGame(ctx context.Context, game *domain.Game, platformIDs []int) (*domain.Game, error) {
	game.Title = strings.TrimSpace(game.Title)
	if game.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	ids := uniquePositive(platformIDs)
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: at least one platform is required", domain.ErrValidation)
	}

	created, err := s.gameRepo.Create(ctx, game, ids)
	if err != nil {
		return nil, err
	}
	zap.L().Info("game created", zap.String("id", created.ID.String()), zap.String("title", created.Title))
	return created, nil
}

func (s *Service) ListPlatforms(ctx context.Context) ([]domain.Platform, error) {
	return s.gameRepo.ListPlatforms(ctx)
}

func (s *Service) ListRegions(ctx context.Context) ([]domain.Region, error) {
	return s.gameRepo.ListRegions(ctx)
}

func uniquePositive(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
