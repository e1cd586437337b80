package pricing

import (
	"testing"

	"dito-store/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestPriceLine_TierSelection(t *testing.T) {
	tiers := []model.BulkDiscount{
		{MinQty: 3, Percentage: 5},
		{MinQty: 10, Percentage: 12},
	}

	tests := []struct {
		name         string
		quantity     int
		wantUnit     float64
		wantDiscount float64
	}{
		{"below first tier", 2, 1000, 0},
		{"at first tier", 3, 950, 50},
		{"between tiers", 5, 950, 50},
		{"at second tier", 10, 880, 120},
		{"above second tier", 12, 880, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PriceLine(1000, tt.quantity, tiers)
			assert.InDelta(t, tt.wantUnit, got.EffectiveUnitPrice, 0.001)
			assert.InDelta(t, tt.wantDiscount, got.DiscountPerUnit, 0.001)
		})
	}
}

func TestPriceLine_NoTiers(t *testing.T) {
	got := PriceLine(1990, 7, nil)
	assert.Equal(t, 1990.0, got.EffectiveUnitPrice)
	assert.Equal(t, 0.0, got.DiscountPerUnit)
}

func TestPriceLine_DuplicateMinQty_HigherPercentageWins(t *testing.T) {
	tiers := []model.BulkDiscount{
		{MinQty: 5, Percentage: 8},
		{MinQty: 5, Percentage: 15},
	}

	got := PriceLine(200, 5, tiers)
	assert.InDelta(t, 30.0, got.DiscountPerUnit, 0.001)
	assert.InDelta(t, 170.0, got.EffectiveUnitPrice, 0.001)
}

func TestPriceLine_DoesNotMutateInput(t *testing.T) {
	tiers := []model.BulkDiscount{
		{MinQty: 3, Percentage: 5},
		{MinQty: 10, Percentage: 12},
	}

	PriceLine(100, 10, tiers)

	assert.Equal(t, 3, tiers[0].MinQty)
	assert.Equal(t, 10, tiers[1].MinQty)
}

func TestTotals(t *testing.T) {
	lines := []Line{
		{UnitPrice: 1990, Quantity: 3, Tiers: []model.BulkDiscount{{MinQty: 3, Percentage: 5}}},
		{UnitPrice: 49, Quantity: 2},
	}

	got := Totals(lines)

	// 3 x (1990 - 99.50) + 2 x 49
	assert.InDelta(t, 5769.5, got.Subtotal, 0.001)
	assert.InDelta(t, 298.5, got.DiscountAmount, 0.001)
	assert.Equal(t, 5, got.ItemCount)
}

func TestTotals_DiscountNeverNegative(t *testing.T) {
	lines := []Line{
		{UnitPrice: 990, Quantity: 1, Tiers: []model.BulkDiscount{{MinQty: 5, Percentage: 10}}},
		{UnitPrice: 49, Quantity: 4},
	}

	got := Totals(lines)

	assert.GreaterOrEqual(t, got.DiscountAmount, 0.0)
	assert.InDelta(t, 990+4*49, got.Subtotal, 0.001)
}

func TestTotals_Empty(t *testing.T) {
	got := Totals(nil)
	assert.Equal(t, CartTotals{}, got)
}
