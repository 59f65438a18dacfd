package domain

import "github.com/shopspring/decimal"

// CashbackRate is the loyalty rebate paid on every purchase.
var CashbackRate = decimal.RequireFromString("0.09")

var (
	hundred     = decimal.NewFromInt(100)
	maxDiscount = hundred
)

const moneyPlaces = 2

// DiscountedPrice is price × (1 − discount/100) rounded to cents. The discount is clamped
// to [0, 100], so the result is never negative.
func DiscountedPrice(price, discountPercentage decimal.Decimal) decimal.Decimal {
	pct := decimal.Max(decimal.Zero, decimal.Min(discountPercentage, maxDiscount))
	v := price.Mul(hundred.Sub(pct)).Div(hundred).Round(moneyPlaces)
	if v.IsNegative() {
		return decimal.Zero
	}
	return v
}

// Cashback is the rebate on an already discounted price, rounded to cents.
func Cashback(discountedPrice decimal.Decimal) decimal.Decimal {
	return discountedPrice.Mul(CashbackRate).Round(moneyPlaces)
}

// RoundMoney rounds an aggregate amount to cents.
func RoundMoney(v decimal.Decimal) decimal.Decimal {
	return v.Round(moneyPlaces)
}
