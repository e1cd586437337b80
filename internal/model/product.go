package model

import "time"

// BulkDiscount is a quantity-tiered discount rule. The tier with the largest
// MinQty that the cart quantity still satisfies applies.
type BulkDiscount struct {
	MinQty     int     `json:"minQty" db:"min_qty"`
	Percentage float64 `json:"percentage" db:"percentage"`
}

// CommissionType selects how an affiliate commission is derived from a product.
type CommissionType string

const (
	CommissionFixed      CommissionType = "fixed"
	CommissionPercentage CommissionType = "percentage"
)

// DefaultCommissionPercentage applies when a product carries no commission rule.
const DefaultCommissionPercentage = 5

// Product represents a catalogue item (hardware or prepaid SIM pack).
type Product struct {
	ID              string            `json:"id" db:"id"`
	Name            string            `json:"name" db:"name"`
	Subtitle        string            `json:"subtitle,omitempty" db:"subtitle"`
	Description     string            `json:"description,omitempty" db:"description"`
	Price           float64           `json:"price" db:"price"`
	CostPrice       float64           `json:"costPrice,omitempty" db:"cost_price"`
	Category        string            `json:"category" db:"category"`
	Image           string            `json:"image,omitempty" db:"image"`
	Gallery         []string          `json:"gallery,omitempty" db:"gallery"`
	Specs           map[string]string `json:"specs,omitempty" db:"specs"`
	Features        []string          `json:"features,omitempty" db:"features"`
	SKU             string            `json:"sku,omitempty" db:"sku"`
	Stock           int               `json:"stock" db:"stock"`
	MinStockLevel   int               `json:"minStockLevel" db:"min_stock_level"`
	BulkDiscounts   []BulkDiscount    `json:"bulkDiscounts,omitempty" db:"bulk_discounts"`
	CommissionType  CommissionType    `json:"commissionType,omitempty" db:"commission_type"`
	CommissionValue float64           `json:"commissionValue,omitempty" db:"commission_value"`
	CreatedAt       time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time         `json:"updatedAt" db:"updated_at"`
}

// LowStock reports whether the product is at or below its reorder threshold.
func (p *Product) LowStock() bool {
	return p.Stock <= p.MinStockLevel
}

// StockDecrement records units sold for a single product at order placement.
type StockDecrement struct {
	ProductID string
	Quantity  int
}
