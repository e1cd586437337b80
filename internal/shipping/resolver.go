// Package shipping resolves delivery fees from the admin-configured shipping
// policy and a static Philippine province-to-region classification.
package shipping

import (
	"strings"

	"dito-store/internal/model"
)

// ResolveFee maps a subtotal and destination to a shipping quote.
//
// Resolution order: shipping disabled -> 0; free threshold met -> 0; flat
// calculation -> base fee; zone calculation -> specific zone substring match
// (first configured zone wins), then coarse region exact match, then base fee.
// Every destination resolves to some fee; an empty address falls through to
// the base fee and callers should treat the quote as provisional.
func ResolveFee(subtotal float64, province, city string, cfg model.ShippingSettings) model.ShippingQuote {
	if !cfg.Enabled {
		return model.ShippingQuote{FreeShipping: true}
	}

	if cfg.FreeThreshold > 0 && subtotal >= cfg.FreeThreshold {
		return model.ShippingQuote{FreeShipping: true}
	}

	if cfg.CalculationType == model.ShippingFlat {
		return model.ShippingQuote{Fee: cfg.BaseFee}
	}

	userProvince := strings.ToLower(strings.TrimSpace(province))
	userCity := strings.ToLower(strings.TrimSpace(city))

	// Specific zone match, e.g. a "Cavite" zone overriding the Luzon rate.
	for _, zone := range cfg.Zones {
		zoneName := strings.ToLower(zone.Name)
		if zoneName == "" {
			continue
		}
		if userProvince != "" && (strings.Contains(userProvince, zoneName) || strings.Contains(zoneName, userProvince)) {
			return model.ShippingQuote{Fee: zone.Fee, Zone: zone.Name, Days: zone.Days}
		}
		if userCity != "" && strings.Contains(userCity, zoneName) {
			return model.ShippingQuote{Fee: zone.Fee, Zone: zone.Name, Days: zone.Days}
		}
	}

	// Broad region match, e.g. a "Luzon" zone covering an unzoned "Cavite".
	if region := Region(userProvince); region != "" {
		for _, zone := range cfg.Zones {
			if strings.ToLower(zone.Name) == region {
				return model.ShippingQuote{Fee: zone.Fee, Zone: zone.Name, Days: zone.Days}
			}
		}
	}

	return model.ShippingQuote{Fee: cfg.BaseFee}
}
