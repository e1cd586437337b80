package sheetdb

import (
	"testing"

	"dito-store/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeProductRow_Lenient(t *testing.T) {
	t.Run("short row decodes with defaults", func(t *testing.T) {
		p := decodeProductRow([]interface{}{"p1", "Modem"})

		assert.Equal(t, "p1", p.ID)
		assert.Equal(t, "Modem", p.Name)
		assert.Equal(t, 0.0, p.Price)
		assert.Nil(t, p.BulkDiscounts)
	})

	t.Run("malformed blob keeps flat fields", func(t *testing.T) {
		row := encodeProductRow(model.Product{ID: "p1", Name: "Modem", Price: 1990, Stock: 5})
		row[12] = "{not json"

		p := decodeProductRow(row)

		assert.Equal(t, 1990.0, p.Price)
		assert.Equal(t, 5, p.Stock)
		assert.Nil(t, p.BulkDiscounts)
	})

	t.Run("numeric cells arrive as strings", func(t *testing.T) {
		row := []interface{}{"p1", "Modem", "", "Modems", "1,990", "12", "3"}

		p := decodeProductRow(row)

		assert.Equal(t, 1990.0, p.Price)
		assert.Equal(t, 12, p.Stock)
		assert.Equal(t, 3, p.MinStockLevel)
	})
}

func TestOrderRow_RoundTripNestedFields(t *testing.T) {
	order := model.Order{
		Number:      "#ORD-1a2b",
		Customer:    "Maria Clara",
		Total:       2090,
		ShippingFee: 100,
		Status:      model.OrderProcessing,
		Items:       1,
		OrderItems: []model.OrderItem{
			{ProductID: "dito-wowfi-pro", Name: "DITO Home WoWFi Pro", Quantity: 1, Price: 1990},
		},
		ReferralID:     "AFF-DEMO",
		Commission:     99.5,
		CommissionPaid: true,
		ShippingDetails: &model.ShippingDetails{
			Province: "Cavite",
			City:     "Imus",
		},
	}

	got := decodeOrderRow(encodeOrderRow(order))

	require.Len(t, got.OrderItems, 1)
	assert.Equal(t, "dito-wowfi-pro", got.OrderItems[0].ProductID)
	assert.True(t, got.CommissionPaid)
	require.NotNil(t, got.ShippingDetails)
	assert.Equal(t, "Cavite", got.ShippingDetails.Province)
}

func TestDecodeOrderRow_UnknownStatusDefaultsToPending(t *testing.T) {
	row := encodeOrderRow(model.Order{Status: "Lost"})

	got := decodeOrderRow(row)

	assert.Equal(t, model.OrderPending, got.Status)
}

func TestDecodeSettings_FlatKeyMigration(t *testing.T) {
	rows := [][]interface{}{
		{"shipping.enabled", "true"},
		{"shipping.baseFee", "175"},
		{"shipping.freeThreshold", 2500.0},
		{"shipping.calculationType", "zone"},
		{"shipping.zones", `[{"name":"Cavite","fee":80,"days":"1-2 Days"}]`},
	}

	shipping, payment, smtp := decodeSettings(rows)

	assert.True(t, shipping.Enabled)
	assert.Equal(t, 175.0, shipping.BaseFee)
	assert.Equal(t, 2500.0, shipping.FreeThreshold)
	require.Len(t, shipping.Zones, 1)
	assert.Equal(t, "Cavite", shipping.Zones[0].Name)

	// unset sections fall back to defaults
	assert.True(t, payment.COD.Enabled)
	assert.Equal(t, "smtp.gmail.com", smtp.Host)
}

func TestDecodeSettings_Empty(t *testing.T) {
	shipping, _, _ := decodeSettings(nil)

	assert.Equal(t, DefaultShippingSettings(), shipping)
}
