package favoriterepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gamemarket/internal/domain"
	"github.com/GlebRadaev/gamemarket/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Add stores a favorite. Adding the same listing twice is a no-op and returns nil, nil.
func (r *Repository) Add(ctx context.Context, fav domain.Favorite) (*domain.Favorite, error) {
	query := `
		INSERT INTO favorite_games (user_id, listing_id, game_id) VALUES ($1, $2, $3)
		ON CONFLICT (user_id, listing_id) DO NOTHING
		RETURNING user_id, listing_id, game_id, created_at
	`
	var created domain.Favorite
	err := r.db.QueryRow(ctx, query, fav.UserID, fav.ListingID, fav.GameID).
		Scan(&created.UserID, &created.ListingID, &created.GameID, &created.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to add favorite", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

// Remove deletes a favorite and reports whether there was one.
func (r *Repository) Remove(ctx context.Context, userID, listingID uuid.UUID) (bool, error) {
	query := "DELETE FROM favorite_games WHERE user_id = $1 AND listing_id = $2 RETURNING listing_id"
	var removed uuid.UUID
	if err := r.db.QueryRow(ctx, query, userID, listingID).Scan(&removed); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		zap.L().Error("failed to remove favorite", zap.Error(err))
		return false, err
	}
	return true, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.FavoriteView, error) {
	query := `
		SELECT fg.user_id, fg.listing_id, fg.game_id, fg.created_at,
		       g.title, g.image_url, p.name, r.name,
		       gl.price, gl.discount_percentage, gl.currency, gl.stock,
		       (SELECT COUNT(*) FROM favorite_games w WHERE w.listing_id = fg.listing_id)::int AS wishlist_count
		FROM favorite_games fg
		JOIN game_listings gl ON gl.id = fg.listing_id
		JOIN games g ON g.id = fg.game_id
		JOIN platforms p ON p.id = gl.platform_id
		JOIN regions r ON r.id = gl.region_id
		WHERE fg.user_id = $1
		ORDER BY fg.created_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to list favorites", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	favorites := make([]domain.FavoriteView, 0)
	for rows.Next() {
		var v domain.FavoriteView
		err := rows.Scan(&v.UserID, &v.ListingID, &v.GameID, &v.CreatedAt,
			&v.GameTitle, &v.ImageURL, &v.PlatformName, &v.RegionName,
			&v.Price, &v.DiscountPercentage, &v.Currency, &v.Stock, &v.WishlistCount)
		if err != nil {
			zap.L().Error("failed to scan favorite", zap.Error(err))
			return nil, err
		}
		v.ApplyPricing()
		favorites = append(favorites, v)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate favorites", zap.Error(err))
		return nil, err
	}
	return favorites, nil
}

func (r *Repository) Exists(ctx context.Context, userID, listingID uuid.UUID) (bool, error) {
	query := "SELECT EXISTS (SELECT 1 FROM favorite_games WHERE user_id = $1 AND listing_id = $2)"
	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, listingID).Scan(&exists); err != nil {
		zap.L().Error("failed to check favorite", zap.Error(err))
		return false, err
	}
	return exists, nil
}
