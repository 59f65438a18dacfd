package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/GlebRadaev/gamemarket/internal/domain"
)

const dateLayout = "2006-01-02"

func NewUserResponse(u *domain.User) UserResponseDTO {
	return UserResponseDTO{
		ID:        u.ID.String(),
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role.String(),
	}
}

func NewGameResponse(g *domain.Game) GameResponseDTO {
	resp := GameResponseDTO{
		ID:          g.ID.String(),
		Title:       g.Title,
		Description: g.Description,
		Publisher:   g.Publisher,
		Developer:   g.Developer,
		ImageURL:    g.ImageURL,
		Platforms:   make([]PlatformDTO, len(g.Platforms)),
	}
	if g.ReleaseDate != nil {
		resp.ReleaseDate = g.ReleaseDate.Format(dateLayout)
	}
	for i, p := range g.Platforms {
		resp.Platforms[i] = PlatformDTO{ID: p.ID, Name: p.Name}
	}
	return resp
}

func NewListingResponse(v *domain.ListingView) ListingResponseDTO {
	return ListingResponseDTO{
		ID:                 v.ID.String(),
		GameID:             v.GameID.String(),
		Title:              v.GameTitle,
		Description:        v.GameDescription,
		ImageURL:           v.ImageURL,
		Publisher:          v.Publisher,
		Developer:          v.Developer,
		SellerID:           v.SellerID.String(),
		SellerName:         v.SellerName,
		SellerRating:       v.SellerRating.StringFixed(2),
		SellerReviews:      v.SellerReviews,
		PlatformID:         v.PlatformID,
		PlatformName:       v.PlatformName,
		RegionID:           v.RegionID,
		RegionName:         v.RegionName,
		RegionCode:         v.RegionCode,
		Price:              v.Price.StringFixed(2),
		DiscountPercentage: v.DiscountPercentage.StringFixed(2),
		DiscountedPrice:    v.DiscountedPrice.StringFixed(2),
		Cashback:           v.Cashback.StringFixed(2),
		Currency:           v.Currency,
		Stock:              v.Stock,
		IsActive:           v.IsActive,
		WishlistCount:      v.WishlistCount,
		SimilarityScore:    v.Similarity,
	}
}

func NewListingResponses(views []domain.ListingView) []ListingResponseDTO {
	resp := make([]ListingResponseDTO, len(views))
	for i := range views {
		resp[i] = NewListingResponse(&views[i])
	}
	return resp
}

// NewListingRecordResponse presents a bare listing row, with the derived prices filled in.
func NewListingRecordResponse(l *domain.Listing) ListingResponseDTO {
	v := domain.ListingView{Listing: *l}
	v.ApplyPricing()
	return NewListingResponse(&v)
}

func NewGameResponses(games []domain.Game) []GameResponseDTO {
	resp := make([]GameResponseDTO, len(games))
	for i := range games {
		resp[i] = NewGameResponse(&games[i])
	}
	return resp
}

func NewPlatformResponses(platforms []domain.Platform) []PlatformDTO {
	resp := make([]PlatformDTO, len(platforms))
	for i, p := range platforms {
		resp[i] = PlatformDTO{ID: p.ID, Name: p.Name}
	}
	return resp
}

func NewRegionResponses(regions []domain.Region) []RegionDTO {
	resp := make([]RegionDTO, len(regions))
	for i, r := range regions {
		resp[i] = RegionDTO{ID: r.ID, Name: r.Name, Code: r.Code}
	}
	return resp
}

func NewCartResponse(s *domain.CartSummary) CartResponseDTO {
	resp := CartResponseDTO{
		Items:         make([]CartItemResponseDTO, len(s.Items)),
		Total:         s.Total.StringFixed(2),
		TotalCashback: s.TotalCashback.StringFixed(2),
		ItemCount:     s.ItemCount,
		TotalQuantity: s.TotalQuantity,
	}
	for i, it := range s.Items {
		resp.Items[i] = CartItemResponseDTO{
			ID:                 it.ID.String(),
			ListingID:          it.ListingID.String(),
			GameID:             it.GameID.String(),
			Title:              it.GameTitle,
			ImageURL:           it.ImageURL,
			PlatformName:       it.PlatformName,
			RegionName:         it.RegionName,
			SellerName:         it.SellerName,
			Quantity:           it.Quantity,
			Stock:              it.Stock,
			Price:              it.Price.StringFixed(2),
			DiscountPercentage: it.DiscountPercentage.StringFixed(2),
			DiscountedPrice:    it.DiscountedPrice.StringFixed(2),
			Cashback:           it.Cashback.StringFixed(2),
			Subtotal:           it.Subtotal.StringFixed(2),
			TotalCashback:      it.TotalCashback.StringFixed(2),
			Currency:           it.Currency,
		}
	}
	return resp
}

func NewFavoriteResponses(views []domain.FavoriteView) []FavoriteResponseDTO {
	resp := make([]FavoriteResponseDTO, len(views))
	for i, v := range views {
		resp[i] = FavoriteResponseDTO{
			ListingID:          v.ListingID.String(),
			GameID:             v.GameID.String(),
			Title:              v.GameTitle,
			ImageURL:           v.ImageURL,
			PlatformName:       v.PlatformName,
			RegionName:         v.RegionName,
			Price:              v.Price.StringFixed(2),
			DiscountPercentage: v.DiscountPercentage.StringFixed(2),
			DiscountedPrice:    v.DiscountedPrice.StringFixed(2),
			Cashback:           v.Cashback.StringFixed(2),
			Currency:           v.Currency,
			Stock:              v.Stock,
			WishlistCount:      v.WishlistCount,
			AddedAt:            v.CreatedAt.Format(time.RFC3339),
		}
	}
	return resp
}

func NewBalanceResponse(b *domain.Balance) BalanceResponseDTO {
	currency := b.Currency
	if currency == "" {
		currency = "EUR"
	}
	return BalanceResponseDTO{Balance: b.Amount.StringFixed(2), Currency: currency}
}

func NewBalanceEntryResponse(e *domain.BalanceEntry) BalanceEntryResponseDTO {
	return BalanceEntryResponseDTO{
		ID:            e.ID.String(),
		Amount:        e.Amount.StringFixed(2),
		Type:          string(e.Type),
		Description:   e.Description,
		BalanceBefore: e.BalanceBefore.StringFixed(2),
		BalanceAfter:  e.BalanceAfter.StringFixed(2),
		CreatedAt:     e.CreatedAt.Format(time.RFC3339),
	}
}

func NewBalanceEntryResponses(entries []domain.BalanceEntry) []BalanceEntryResponseDTO {
	resp := make([]BalanceEntryResponseDTO, len(entries))
	for i := range entries {
		resp[i] = NewBalanceEntryResponse(&entries[i])
	}
	return resp
}

func NewOrderResponses(orders []domain.Order) []OrderResponseDTO {
	resp := make([]OrderResponseDTO, len(orders))
	for i := range orders {
		resp[i] = NewOrderResponse(&orders[i])
	}
	return resp
}

func NewOrderResponse(o *domain.Order) OrderResponseDTO {
	resp := OrderResponseDTO{
		Number:        o.OrderNumber,
		Status:        string(o.Status),
		TotalAmount:   o.TotalAmount.StringFixed(2),
		TotalCashback: o.TotalCashback.StringFixed(2),
		PaymentMethod: o.PaymentMethod,
		CreatedAt:     o.CreatedAt.Format(time.RFC3339),
	}
	for _, it := range o.Items {
		item := OrderItemResponseDTO{
			GameTitle:       it.GameTitle,
			PlatformName:    it.PlatformName,
			RegionName:      it.RegionName,
			Quantity:        it.Quantity,
			PriceAtPurchase: it.PriceAtPurchase.StringFixed(2),
		}
		if it.ListingID != uuid.Nil {
			item.ListingID = it.ListingID.String()
		}
		resp.Items = append(resp.Items, item)
	}
	return resp
}
