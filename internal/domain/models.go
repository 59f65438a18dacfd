package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type User struct {
	ID            uuid.UUID `db:"id"`
	Email         string    `db:"email"`
	PasswordHash  string    `db:"password"`
	FirstName     string    `db:"first_name"`
	LastName      string    `db:"last_name"`
	GoogleID      string    `db:"google_id"`
	OAuthProvider string    `db:"oauth_provider"`
	Role          Role      `db:"role"`
	IsActive      bool      `db:"is_active"`
	CreatedAt     time.Time `db:"created_at"`
}

// ExternalProfile is what an identity provider tells us about a user.
type ExternalProfile struct {
	Provider  string
	SubjectID string
	Email     string
	FirstName string
	LastName  string
}

type Platform struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type Region struct {
	ID   int    `db:"id"`
	Name string `db:"name"`
	Code string `db:"code"`
}

type Game struct {
	ID          uuid.UUID  `db:"id"`
	Title       string     `db:"title"`
	Description string     `db:"description"`
	Publisher   string     `db:"publisher"`
	Developer   string     `db:"developer"`
	ReleaseDate *time.Time `db:"release_date"`
	ImageURL    string     `db:"image_url"`
	Platforms   []Platform `db:"platforms"`
	CreatedAt   time.Time  `db:"created_at"`
}

type Listing struct {
	ID                 uuid.UUID       `db:"id"`
	GameID             uuid.UUID       `db:"game_id"`
	SellerID           uuid.UUID       `db:"seller_id"`
	PlatformID         int             `db:"platform_id"`
	RegionID           int             `db:"region_id"`
	Price              decimal.Decimal `db:"price"`
	DiscountPercentage decimal.Decimal `db:"discount_percentage"`
	Currency           string          `db:"currency"`
	Stock              int             `db:"stock"`
	IsActive           bool            `db:"is_active"`
	CreatedAt          time.Time       `db:"created_at"`
	UpdatedAt          time.Time       `db:"updated_at"`
}

// Purchasable reports whether the listing can be shown in the marketplace and bought.
func (l *Listing) Purchasable() bool {
	return l.IsActive && l.Stock > 0
}

// ListingUpdate carries a partial update; nil fields keep their stored value.
type ListingUpdate struct {
	Price              *decimal.Decimal
	DiscountPercentage *decimal.Decimal
	Stock              *int
	IsActive           *bool
}

// ListingView is a listing joined with its game, platform, region and seller,
// plus the aggregates shown on marketplace cards.
type ListingView struct {
	Listing
	GameTitle       string          `db:"game_title"`
	GameDescription string          `db:"game_description"`
	ImageURL        string          `db:"image_url"`
	Publisher       string          `db:"publisher"`
	Developer       string          `db:"developer"`
	PlatformName    string          `db:"platform_name"`
	RegionName      string          `db:"region_name"`
	RegionCode      string          `db:"region_code"`
	SellerName      string          `db:"seller_name"`
	SellerRating    decimal.Decimal `db:"seller_rating"`
	SellerReviews   int             `db:"seller_reviews"`
	WishlistCount   int             `db:"wishlist_count"`
	Similarity      float32         `db:"similarity_score"`
	DiscountedPrice decimal.Decimal `db:"-"`
	Cashback        decimal.Decimal `db:"-"`
}

// ApplyPricing fills the derived price fields from the stored price and discount.
func (v *ListingView) ApplyPricing() {
	v.DiscountedPrice = DiscountedPrice(v.Price, v.DiscountPercentage)
	v.Cashback = Cashback(v.DiscountedPrice)
}

type Cart struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type CartItem struct {
	ID        uuid.UUID `db:"id"`
	CartID    uuid.UUID `db:"cart_id"`
	ListingID uuid.UUID `db:"listing_id"`
	Quantity  int       `db:"quantity"`
	CreatedAt time.Time `db:"created_at"`
}

type CartItemView struct {
	CartItem
	GameID             uuid.UUID       `db:"game_id"`
	GameTitle          string          `db:"game_title"`
	ImageURL           string          `db:"image_url"`
	PlatformName       string          `db:"platform_name"`
	RegionName         string          `db:"region_name"`
	SellerName         string          `db:"seller_name"`
	Price              decimal.Decimal `db:"price"`
	DiscountPercentage decimal.Decimal `db:"discount_percentage"`
	Currency           string          `db:"currency"`
	Stock              int             `db:"stock"`
	DiscountedPrice    decimal.Decimal `db:"-"`
	Cashback           decimal.Decimal `db:"-"`
	Subtotal           decimal.Decimal `db:"-"`
	TotalCashback      decimal.Decimal `db:"-"`
}

// ApplyPricing fills the per-unit and per-row derived amounts.
func (v *CartItemView) ApplyPricing() {
	qty := decimal.NewFromInt(int64(v.Quantity))
	v.DiscountedPrice = DiscountedPrice(v.Price, v.DiscountPercentage)
	v.Cashback = Cashback(v.DiscountedPrice)
	v.Subtotal = qty.Mul(v.DiscountedPrice)
	v.TotalCashback = qty.Mul(v.Cashback)
}

type CartSummary struct {
	CartID        uuid.UUID
	Items         []CartItemView
	Total         decimal.Decimal
	TotalCashback decimal.Decimal
	ItemCount     int
	TotalQuantity int
}

type Favorite struct {
	UserID    uuid.UUID `db:"user_id"`
	ListingID uuid.UUID `db:"listing_id"`
	GameID    uuid.UUID `db:"game_id"`
	CreatedAt time.Time `db:"created_at"`
}

type FavoriteView struct {
	Favorite
	GameTitle          string          `db:"game_title"`
	ImageURL           string          `db:"image_url"`
	PlatformName       string          `db:"platform_name"`
	RegionName         string          `db:"region_name"`
	Price              decimal.Decimal `db:"price"`
	DiscountPercentage decimal.Decimal `db:"discount_percentage"`
	Currency           string          `db:"currency"`
	Stock              int             `db:"stock"`
	WishlistCount      int             `db:"wishlist_count"`
	DiscountedPrice    decimal.Decimal `db:"-"`
	Cashback           decimal.Decimal `db:"-"`
}

func (v *FavoriteView) ApplyPricing() {
	v.DiscountedPrice = DiscountedPrice(v.Price, v.DiscountPercentage)
	v.Cashback = Cashback(v.DiscountedPrice)
}

type Balance struct {
	UserID    uuid.UUID       `db:"user_id"`
	Amount    decimal.Decimal `db:"balance"`
	Currency  string          `db:"currency"`
	UpdatedAt time.Time       `db:"updated_at"`
}

type BalanceEntry struct {
	ID            uuid.UUID       `db:"id"`
	UserID        uuid.UUID       `db:"user_id"`
	Amount        decimal.Decimal `db:"amount"`
	Type          EntryType       `db:"type"`
	Description   string          `db:"description"`
	BalanceBefore decimal.Decimal `db:"balance_before"`
	BalanceAfter  decimal.Decimal `db:"balance_after"`
	CreatedAt     time.Time       `db:"created_at"`
}

type EntryType string

const (
	EntryDeposit    EntryType = "deposit"
	EntryWithdrawal EntryType = "withdrawal"
	EntryPurchase   EntryType = "purchase"
	EntryRefund     EntryType = "refund"
	EntryCashback   EntryType = "cashback"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
	OrderRefunded  OrderStatus = "refunded"
)

type Order struct {
	ID            uuid.UUID       `db:"id"`
	UserID        uuid.UUID       `db:"user_id"`
	OrderNumber   string          `db:"order_number"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	TotalCashback decimal.Decimal `db:"total_cashback"`
	PaymentMethod string          `db:"payment_method"`
	Status        OrderStatus     `db:"status"`
	Items         []OrderItem     `db:"-"`
	CreatedAt     time.Time       `db:"created_at"`
}

type OrderItem struct {
	ID              uuid.UUID       `db:"id"`
	OrderID         uuid.UUID       `db:"order_id"`
	ListingID       uuid.UUID       `db:"listing_id"`
	GameTitle       string          `db:"game_title"`
	PlatformName    string          `db:"platform_name"`
	RegionName      string          `db:"region_name"`
	Quantity        int             `db:"quantity"`
	PriceAtPurchase decimal.Decimal `db:"price_at_purchase"`
}

// Visit is an anonymous page view reported by the frontend.
type Visit struct {
	Page      string
	Referrer  string
	UserAgent string
	Language  string
	Screen    string
	IP        string
}

// ListingDraft is a new listing as submitted by a seller. Platform and Region are
// identifiers to resolve: a numeric id or a name (regions also accept a code).
type ListingDraft struct {
	GameID             uuid.UUID
	SellerID           uuid.UUID
	Platform           string
	Region             string
	Price              decimal.Decimal
	DiscountPercentage decimal.Decimal
	Currency           string
	Stock              int
}
