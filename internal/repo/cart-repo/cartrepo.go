package cartrepo

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

const itemColumns = "id, cart_id, listing_id, quantity, created_at"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanItem(row pgx.Row) (*domain.CartItem, error) {
	var item domain.CartItem
	if err := row.Scan(&item.ID, &item.CartID, &item.ListingID, &item.Quantity, &item.CreatedAt); err != nil {
		return nil, err
	}
	return &item, nil
}

// GetOrCreate returns the user's cart, creating it on first use in a single statement.
func (r *Repository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*domain.Cart, error) {
	query := `
		INSERT INTO cart (user_id) VALUES ($1)
		ON CONFLICT (user_id) DO UPDATE SET updated_at = NOW()
		RETURNING id, user_id, created_at, updated_at
	`
	var cart domain.Cart
	err := r.db.QueryRow(ctx, query, userID).Scan(&cart.ID, &cart.UserID, &cart.CreatedAt, &cart.UpdatedAt)
	if err != nil {
		if pg.IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: user does not exist", domain.ErrNotFound)
		}
		zap.L().Error("failed to get or create cart", zap.Error(err))
		return nil, err
	}
	return &cart, nil
}

// AddItem puts qty units of a listing into the cart, adding to the quantity already there.
func (r *Repository) AddItem(ctx context.Context, cartID, listingID uuid.UUID, qty int) (*domain.CartItem, error) {
	query := `
		INSERT INTO cart_items (cart_id, listing_id, quantity) VALUES ($1, $2, $3)
		ON CONFLICT (cart_id, listing_id) DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
		RETURNING ` + itemColumns
	item, err := scanItem(r.db.QueryRow(ctx, query, cartID, listingID, qty))
	if err != nil {
		zap.L().Error("failed to add cart item", zap.Error(err))
		return nil, err
	}
	return item, nil
}

// SetItemQuantity overwrites the quantity of an item already in the cart.
// It returns nil, nil when the listing is not in the cart.
func (r *Repository) SetItemQuantity(ctx context.Context, cartID, listingID uuid.UUID, qty int) (*domain.CartItem, error) {
	query := `
		UPDATE cart_items SET quantity = $3
		WHERE cart_id = $1 AND listing_id = $2
		RETURNING ` + itemColumns
	item, err := scanItem(r.db.QueryRow(ctx, query, cartID, listingID, qty))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to update cart item", zap.Error(err))
		return nil, err
	}
	return item, nil
}

func (r *Repository) RemoveItem(ctx context.Context, cartID, listingID uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM cart_items WHERE cart_id = $1 AND listing_id = $2", cartID, listingID)
	if err != nil {
		zap.L().Error("failed to remove cart item", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) Clear(ctx context.Context, cartID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, "DELETE FROM cart_items WHERE cart_id = $1", cartID); err != nil {
		zap.L().Error("failed to clear cart", zap.Error(err))
		return err
	}
	return nil
}

// ListItems returns the cart contents with listing details, most recently added first.
func (r *Repository) ListItems(ctx context.Context, cartID uuid.UUID) ([]domain.CartItemView, error) {
	query := `
		SELECT ci.id, ci.cart_id, ci.listing_id, ci.quantity, ci.created_at,
		       g.id, g.title, g.image_url, p.name, r.name,
		       TRIM(CONCAT(u.first_name, ' ', u.last_name)),
		       gl.price, gl.discount_percentage, gl.currency, gl.stock
		FROM cart_items ci
		JOIN game_listings gl ON gl.id = ci.listing_id
		JOIN games g ON g.id = gl.game_id
		JOIN platforms p ON p.id = gl.platform_id
		JOIN regions r ON r.id = gl.region_id
		JOIN users u ON u.id = gl.seller_id
		WHERE ci.cart_id = $1
		ORDER BY ci.created_at DESC
	`
	rows, err := r.db.Query(ctx, query, cartID)
	if err != nil {
		zap.L().Error("failed to list cart items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.CartItemView, 0)
	for rows.Next() {
		var v domain.CartItemView
		err := rows.Scan(&v.ID, &v.CartID, &v.ListingID, &v.Quantity, &v.CreatedAt,
			&v.GameID, &v.GameTitle, &v.ImageURL, &v.PlatformName, &v.RegionName,
			&v.SellerName, &v.Price, &v.DiscountPercentage, &v.Currency, &v.Stock)
		if err != nil {
			zap.L().Error("failed to scan cart item", zap.Error(err))
			return nil, err
		}
		v.ApplyPricing()
		items = append(items, v)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate cart items", zap.Error(err))
		return nil, err
	}
	return items, nil
}

// Count returns the number of distinct items and the total quantity in the cart.
func (r *Repository) Count(ctx context.Context, cartID uuid.UUID) (int, int, error) {
	query := "SELECT COUNT(*), COALESCE(SUM(quantity), 0) FROM cart_items WHERE cart_id = $1"
	var items, quantity int
	if err := r.db.QueryRow(ctx, query, cartID).Scan(&items, &quantity); err != nil {
		zap.L().Error("failed to count cart items", zap.Error(err))
		return 0, 0, err
	}
	return items, quantity, nil
}
