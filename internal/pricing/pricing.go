// Package pricing computes effective unit prices and cart totals from
// quantity-tiered bulk discounts. All functions are pure.
package pricing

import (
	"sort"

	"dito-store/internal/model"
)

// LinePrice is the priced result for a single cart line.
type LinePrice struct {
	EffectiveUnitPrice float64
	DiscountPerUnit    float64
}

// CartTotals aggregates priced lines across a cart.
type CartTotals struct {
	Subtotal       float64 // discounts already netted in
	DiscountAmount float64
	ItemCount      int
}

// PriceLine selects the applicable discount tier for a quantity and returns
// the effective unit price. The tier with the largest MinQty not exceeding
// quantity wins; among tiers with equal MinQty the higher percentage wins.
// No qualifying tier means no discount.
func PriceLine(unitPrice float64, quantity int, tiers []model.BulkDiscount) LinePrice {
	if quantity < 1 || len(tiers) == 0 {
		return LinePrice{EffectiveUnitPrice: unitPrice}
	}

	sorted := make([]model.BulkDiscount, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].MinQty != sorted[j].MinQty {
			return sorted[i].MinQty > sorted[j].MinQty
		}
		return sorted[i].Percentage > sorted[j].Percentage
	})

	for _, tier := range sorted {
		if quantity >= tier.MinQty {
			discount := unitPrice * (tier.Percentage / 100)
			return LinePrice{
				EffectiveUnitPrice: unitPrice - discount,
				DiscountPerUnit:    discount,
			}
		}
	}

	return LinePrice{EffectiveUnitPrice: unitPrice}
}

// Line pairs a product snapshot with a quantity for totalling.
type Line struct {
	UnitPrice float64
	Quantity  int
	Tiers     []model.BulkDiscount
}

// Totals prices every line and sums the cart.
func Totals(lines []Line) CartTotals {
	var t CartTotals
	for _, line := range lines {
		priced := PriceLine(line.UnitPrice, line.Quantity, line.Tiers)
		t.Subtotal += priced.EffectiveUnitPrice * float64(line.Quantity)
		t.DiscountAmount += priced.DiscountPerUnit * float64(line.Quantity)
		t.ItemCount += line.Quantity
	}
	return t
}
