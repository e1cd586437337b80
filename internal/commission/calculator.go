// Package commission computes affiliate earnings for referred orders.
package commission

import "dito-store/internal/model"

// Rule is a product's commission configuration at placement time.
type Rule struct {
	Type  model.CommissionType
	Value float64
}

// RuleLookup resolves the commission rule for a product ID. A false return
// means the product has no configured rule and the default applies.
type RuleLookup func(productID string) (Rule, bool)

// Calculate sums per-item commission contributions for an order. An empty
// referral ID earns nothing. Items whose product carries no rule default to
// percentage at model.DefaultCommissionPercentage. The result is computed once
// at order placement and stored immutably on the order.
func Calculate(items []model.OrderItem, referralID string, lookup RuleLookup) float64 {
	if referralID == "" || len(items) == 0 {
		return 0
	}

	var total float64
	for _, item := range items {
		rule := Rule{Type: model.CommissionPercentage, Value: model.DefaultCommissionPercentage}
		if lookup != nil {
			// A zero-value rule means the product's commission columns were
			// blank; the default stands.
			if r, ok := lookup(item.ProductID); ok && (r.Type != "" || r.Value != 0) {
				rule = r
				if rule.Type == "" {
					rule.Type = model.CommissionPercentage
				}
			}
		}

		switch rule.Type {
		case model.CommissionFixed:
			total += rule.Value * float64(item.Quantity)
		default:
			total += item.Price * (rule.Value / 100) * float64(item.Quantity)
		}
	}

	return total
}

// DeliveredFallback derives the commission for orders credited without a
// stored commission value: 5% of the merchandise total.
func DeliveredFallback(total, shippingFee float64) float64 {
	return (total - shippingFee) * 0.05
}
