package listingrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gamemarket/internal/domain"
	"github.com/GlebRadaev/gamemarket/internal/pg"
)

const listingColumns = `id, game_id, seller_id, platform_id, region_id, price, discount_percentage,
	currency, stock, is_active, created_at, updated_at`

// viewSelect joins a listing with everything a marketplace card shows. The single %s is the
// similarity expression.
const viewSelect = `
	SELECT gl.id, gl.game_id, gl.seller_id, gl.platform_id, gl.region_id, gl.price, gl.discount_percentage,
	       gl.currency, gl.stock, gl.is_active, gl.created_at, gl.updated_at,
	       g.title, g.description, g.image_url, g.publisher, g.developer,
	       p.name, r.name, r.code,
	       TRIM(CONCAT(u.first_name, ' ', u.last_name)) AS seller_name,
	       ROUND(COALESCE(AVG(sr.rating), 0), 2) AS seller_rating,
	       COUNT(DISTINCT sr.id) AS seller_reviews,
	       COUNT(DISTINCT fg.user_id) AS wishlist_count,
	       %s AS similarity_score
	FROM game_listings gl
	JOIN games g ON g.id = gl.game_id
	JOIN platforms p ON p.id = gl.platform_id
	JOIN regions r ON r.id = gl.region_id
	JOIN users u ON u.id = gl.seller_id
	LEFT JOIN seller_ratings sr ON sr.seller_id = gl.seller_id
	LEFT JOIN favorite_games fg ON fg.listing_id = gl.id
`

const (
	visible     = "gl.is_active = true AND gl.stock > 0"
	groupByView = "GROUP BY gl.id, g.id, p.id, r.id, u.id"
	noRank      = "0::real"
)

var errOutOfRange = fmt.Errorf("%w: price or discount out of range", domain.ErrValidation)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanListing(row pgx.Row) (*domain.Listing, error) {
	var l domain.Listing
	err := row.Scan(&l.ID, &l.GameID, &l.SellerID, &l.PlatformID, &l.RegionID, &l.Price,
		&l.DiscountPercentage, &l.Currency, &l.Stock, &l.IsActive, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *Repository) queryViews(ctx context.Context, query string, args ...any) ([]domain.ListingView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to query listings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	views := make([]domain.ListingView, 0)
	for rows.Next() {
		var v domain.ListingView
		err := rows.Scan(&v.ID, &v.GameID, &v.SellerID, &v.PlatformID, &v.RegionID, &v.Price,
			&v.DiscountPercentage, &v.Currency, &v.Stock, &v.IsActive, &v.CreatedAt, &v.UpdatedAt,
			&v.GameTitle, &v.GameDescription, &v.ImageURL, &v.Publisher, &v.Developer,
			&v.PlatformName, &v.RegionName, &v.RegionCode,
			&v.SellerName, &v.SellerRating, &v.SellerReviews, &v.WishlistCount, &v.Similarity)
		if err != nil {
			zap.L().Error("failed to scan listing", zap.Error(err))
			return nil, err
		}
		v.ApplyPricing()
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate listings", zap.Error(err))
		return nil, err
	}
	return views, nil
}

// ListActive returns purchasable listings. With a search term rows match the game title by
// substring or trigram similarity and are ranked by similarity, cheapest first on ties.
// Without one the newest listings come first.
func (r *Repository) ListActive(ctx context.Context, search string, limit, offset int) ([]domain.ListingView, error) {
	if search == "" {
		query := fmt.Sprintf(viewSelect, noRank) + `
			WHERE ` + visible + `
			` + groupByView + `
			ORDER BY gl.created_at DESC, gl.price ASC
			LIMIT $1 OFFSET $2`
		return r.queryViews(ctx, query, limit, offset)
	}

	query := fmt.Sprintf(viewSelect, "similarity(g.title, $1)") + `
		WHERE ` + visible + `
		  AND (g.title ILIKE '%' || $1 || '%' OR g.title % $1)
		` + groupByView + `
		ORDER BY similarity_score DESC, gl.price ASC
		LIMIT $2 OFFSET $3`
	return r.queryViews(ctx, query, search, limit, offset)
}

// ListByGame returns the purchasable offers for one game, cheapest first.
func (r *Repository) ListByGame(ctx context.Context, gameID uuid.UUID) ([]domain.ListingView, error) {
	query := fmt.Sprintf(viewSelect, noRank) + `
		WHERE gl.game_id = $1 AND ` + visible + `
		` + groupByView + `
		ORDER BY gl.price ASC`
	return r.queryViews(ctx, query, gameID)
}

// ListBySeller returns every listing of a seller, including inactive and sold out ones.
func (r *Repository) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]domain.ListingView, error) {
	query := fmt.Sprintf(viewSelect, noRank) + `
		WHERE gl.seller_id = $1
		` + groupByView + `
		ORDER BY gl.created_at DESC`
	return r.queryViews(ctx, query, sellerID)
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	listing, err := scanListing(r.db.QueryRow(ctx, "SELECT "+listingColumns+" FROM game_listings WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to find listing", zap.Error(err))
		return nil, err
	}
	return listing, nil
}

func (r *Repository) Create(ctx context.Context, l *domain.Listing) (*domain.Listing, error) {
	query := `
		INSERT INTO game_listings (game_id, seller_id, platform_id, region_id, price, discount_percentage, currency, stock, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + listingColumns
	created, err := scanListing(r.db.QueryRow(ctx, query,
		l.GameID, l.SellerID, l.PlatformID, l.RegionID, l.Price, l.DiscountPercentage, l.Currency, l.Stock, l.IsActive))
	if err != nil {
		if pg.IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: game, platform or region does not exist", domain.ErrValidation)
		}
		if pg.IsNumericOutOfRange(err) {
			return nil, errOutOfRange
		}
		zap.L().Error("failed to create listing", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// Update applies a partial update to a listing owned by sellerID. It returns nil, nil when
// there is no such listing for that seller.
func (r *Repository) Update(ctx context.Context, id, sellerID uuid.UUID, upd domain.ListingUpdate) (*domain.Listing, error) {
	query := `
		UPDATE game_listings
		SET price = COALESCE($3::numeric, price),
		    discount_percentage = COALESCE($4::numeric, discount_percentage),
		    stock = COALESCE($5::int, stock),
		    is_active = COALESCE($6::boolean, is_active),
		    updated_at = NOW()
		WHERE id = $1 AND seller_id = $2
		RETURNING ` + listingColumns
	listing, err := scanListing(r.db.QueryRow(ctx, query, id, sellerID, upd.Price, upd.DiscountPercentage, upd.Stock, upd.IsActive))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if pg.IsNumericOutOfRange(err) {
			return nil, errOutOfRange
		}
		zap.L().Error("failed to update listing", zap.Error(err))
		return nil, err
	}
	return listing, nil
}

// Delete removes a listing owned by sellerID and returns it, or nil, nil when absent.
func (r *Repository) Delete(ctx context.Context, id, sellerID uuid.UUID) (*domain.Listing, error) {
	query := "DELETE FROM game_listings WHERE id = $1 AND seller_id = $2 RETURNING " + listingColumns
	listing, err := scanListing(r.db.QueryRow(ctx, query, id, sellerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to delete listing", zap.Error(err))
		return nil, err
	}
	return listing, nil
}

// DecrementStock takes qty units from an active listing. It reports false when the listing
// is inactive or has fewer than qty units left.
func (r *Repository) DecrementStock(ctx context.Context, id uuid.UUID, qty int) (bool, error) {
	query := `
		UPDATE game_listings
		SET stock = stock - $2, updated_at = NOW()
		WHERE id = $1 AND is_active = true AND stock >= $2
	`
	tag, err := r.db.Exec(ctx, query, id, qty)
	if err != nil {
		zap.L().Error("failed to decrement stock", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
