package shipping

import (
	"testing"

	"dito-store/internal/model"

	"github.com/stretchr/testify/assert"
)

func zoneSettings() model.ShippingSettings {
	return model.ShippingSettings{
		Enabled:         true,
		BaseFee:         150,
		FreeThreshold:   2000,
		CalculationType: model.ShippingZone,
		Zones: []model.Zone{
			{Name: "Metro Manila", Fee: 100, Days: "1-3 Days"},
			{Name: "Luzon", Fee: 150, Days: "3-5 Days"},
			{Name: "Visayas", Fee: 200, Days: "5-7 Days"},
			{Name: "Mindanao", Fee: 250, Days: "7-10 Days"},
		},
	}
}

func TestResolveFee_Disabled(t *testing.T) {
	cfg := zoneSettings()
	cfg.Enabled = false

	got := ResolveFee(500, "Cebu", "Cebu City", cfg)

	assert.Equal(t, 0.0, got.Fee)
	assert.True(t, got.FreeShipping)
}

func TestResolveFee_FreeThreshold(t *testing.T) {
	cfg := zoneSettings()

	below := ResolveFee(1999, "Metro Manila", "Makati", cfg)
	assert.Equal(t, 100.0, below.Fee)
	assert.False(t, below.FreeShipping)

	at := ResolveFee(2000, "Metro Manila", "Makati", cfg)
	assert.Equal(t, 0.0, at.Fee)
	assert.True(t, at.FreeShipping)
}

func TestResolveFee_Flat(t *testing.T) {
	cfg := zoneSettings()
	cfg.CalculationType = model.ShippingFlat
	cfg.BaseFee = 120

	got := ResolveFee(500, "Davao del Sur", "Davao City", cfg)

	assert.Equal(t, 120.0, got.Fee)
}

func TestResolveFee_SpecificZoneBeatsRegion(t *testing.T) {
	cfg := zoneSettings()
	cfg.Zones = append([]model.Zone{{Name: "Cavite", Fee: 80, Days: "1-2 Days"}}, cfg.Zones...)

	got := ResolveFee(500, "Cavite", "Imus", cfg)

	assert.Equal(t, 80.0, got.Fee)
	assert.Equal(t, "Cavite", got.Zone)
}

func TestResolveFee_RegionFallback(t *testing.T) {
	cfg := zoneSettings()

	got := ResolveFee(500, "Cavite", "Imus", cfg)

	assert.Equal(t, 150.0, got.Fee)
	assert.Equal(t, "Luzon", got.Zone)
}

func TestResolveFee_CityMatch(t *testing.T) {
	cfg := zoneSettings()

	got := ResolveFee(500, "", "Metro Manila - Quezon City", cfg)

	assert.Equal(t, 100.0, got.Fee)
}

func TestResolveFee_EmptyAddressUsesBaseFee(t *testing.T) {
	cfg := zoneSettings()

	got := ResolveFee(500, "", "", cfg)

	assert.Equal(t, 150.0, got.Fee)
	assert.Empty(t, got.Zone)
}

func TestResolveFee_UnknownProvinceUsesBaseFee(t *testing.T) {
	cfg := zoneSettings()
	cfg.BaseFee = 300

	got := ResolveFee(500, "Somewhere Else", "", cfg)

	assert.Equal(t, 300.0, got.Fee)
}

func TestRegion(t *testing.T) {
	tests := []struct {
		province string
		want     string
	}{
		{"Metro Manila", "metro manila"},
		{"manila", "metro manila"},
		{"Cavite", "luzon"},
		{"Nueva Ecija", "luzon"},
		{"Cebu", "visayas"},
		{"Negros Occidental", "visayas"},
		{"Davao del Norte", "mindanao"},
		{"Zamboanga Sibugay", "mindanao"},
		{"", ""},
		{"Atlantis", ""},
	}

	for _, tt := range tests {
		t.Run(tt.province, func(t *testing.T) {
			assert.Equal(t, tt.want, Region(tt.province))
		})
	}
}
