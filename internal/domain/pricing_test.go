package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestDiscountedPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    string
		discount string
		expected string
	}{
		{name: "no discount", price: "59.99", discount: "0", expected: "59.99"},
		{name: "twenty percent", price: "50.00", discount: "20", expected: "40.00"},
		{name: "rounds half up", price: "10.05", discount: "50", expected: "5.03"},
		{name: "fractional discount", price: "19.99", discount: "12.5", expected: "17.49"},
		{name: "full discount", price: "50.00", discount: "100", expected: "0.00"},
		{name: "discount above hundred is clamped", price: "50.00", discount: "150", expected: "0.00"},
		{name: "negative discount is clamped", price: "50.00", discount: "-5", expected: "50.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiscountedPrice(d(tt.price), d(tt.discount))
			assert.Equal(t, tt.expected, got.StringFixed(2))
			assert.False(t, got.IsNegative())
		})
	}
}

func TestCashback(t *testing.T) {
	tests := []struct {
		name       string
		discounted string
		expected   string
	}{
		{name: "forty euro", discounted: "40.00", expected: "3.60"},
		{name: "rounded to cents", discounted: "17.49", expected: "1.57"},
		{name: "zero", discounted: "0", expected: "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Cashback(d(tt.discounted)).StringFixed(2))
		})
	}
}

func TestListingView_ApplyPricing(t *testing.T) {
	v := ListingView{Listing: Listing{Price: d("50.00"), DiscountPercentage: d("20")}}
	v.ApplyPricing()

	assert.Equal(t, "40.00", v.DiscountedPrice.StringFixed(2))
	assert.Equal(t, "3.60", v.Cashback.StringFixed(2))
}

func TestCartItemView_ApplyPricing(t *testing.T) {
	v := CartItemView{
		CartItem:           CartItem{Quantity: 2},
		Price:              d("10.00"),
		DiscountPercentage: d("9"),
	}
	v.ApplyPricing()

	assert.Equal(t, "9.10", v.DiscountedPrice.StringFixed(2))
	assert.Equal(t, "0.82", v.Cashback.StringFixed(2))
	assert.Equal(t, "18.20", v.Subtotal.StringFixed(2))
	assert.Equal(t, "1.64", v.TotalCashback.StringFixed(2))
}

func TestListing_Purchasable(t *testing.T) {
	assert.True(t, (&Listing{IsActive: true, Stock: 1}).Purchasable())
	assert.False(t, (&Listing{IsActive: true, Stock: 0}).Purchasable())
	assert.False(t, (&Listing{IsActive: false, Stock: 3}).Purchasable())
}
