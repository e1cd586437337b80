package service

import (
	"context"

	"dito-store/internal/cart"
	"dito-store/internal/model"

	"github.com/google/uuid"
)

// CatalogService defines operations for product management.
type CatalogService interface {
	// GetAll retrieves all products with pagination.
	GetAll(ctx context.Context, limit, offset int) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// Save creates or replaces a product.
	Save(ctx context.Context, p *model.Product) error

	// Delete removes a product from the catalogue.
	Delete(ctx context.Context, id string) error

	// LowStock lists products at or below their reorder point.
	LowStock(ctx context.Context) ([]model.Product, error)
}

// CartView is the API shape of a cart: its lines plus priced totals.
type CartView struct {
	ID             string      `json:"id"`
	Items          []cart.Item `json:"items"`
	Subtotal       float64     `json:"subtotal"`
	DiscountAmount float64     `json:"discountAmount"`
	ItemCount      int         `json:"itemCount"`
}

// CartService defines operations on session carts.
type CartService interface {
	// Create opens a new empty cart.
	Create(ctx context.Context) *CartView

	// Get retrieves a cart with priced totals.
	Get(ctx context.Context, cartID string) (*CartView, error)

	// AddItem adds one unit of a product to the cart.
	AddItem(ctx context.Context, cartID, productID string) (*CartView, error)

	// SetQuantity sets a line's quantity; below 1 removes the line.
	SetQuantity(ctx context.Context, cartID, productID string, qty int) (*CartView, error)

	// RemoveItem drops a line from the cart.
	RemoveItem(ctx context.Context, cartID, productID string) (*CartView, error)

	// Delete discards the whole cart.
	Delete(ctx context.Context, cartID string) error
}

// OrderService defines checkout and order management operations.
type OrderService interface {
	// Checkout converts a cart into a placed order: prices the lines,
	// resolves the shipping fee, computes the referral commission and
	// decrements stock.
	Checkout(ctx context.Context, req *model.CheckoutRequest) (*model.Order, error)

	// QuoteShipping resolves a provisional shipping fee for a destination.
	QuoteShipping(ctx context.Context, req *model.ShippingQuoteRequest) (*model.ShippingQuote, error)

	// GetAll retrieves all orders, newest first.
	GetAll(ctx context.Context) ([]model.Order, error)

	// GetByID retrieves an order by its ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// UpdateStatus moves an order between states. The transition to
	// Delivered credits the referral commission exactly once.
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (*model.Order, error)

	// SetFulfillment records the courier assignment for an order.
	SetFulfillment(ctx context.Context, id uuid.UUID, req *model.FulfillmentRequest) error

	// Delete removes an order.
	Delete(ctx context.Context, id uuid.UUID) error
}

// AffiliateService defines partner management operations.
type AffiliateService interface {
	// GetAll retrieves all affiliates.
	GetAll(ctx context.Context) ([]model.Affiliate, error)

	// GetByID retrieves an affiliate by ID.
	GetByID(ctx context.Context, id string) (*model.Affiliate, error)

	// Register creates a new affiliate with a zeroed ledger.
	Register(ctx context.Context, a *model.Affiliate) (*model.Affiliate, error)

	// Update replaces an affiliate's profile fields, preserving the ledger.
	Update(ctx context.Context, a *model.Affiliate) (*model.Affiliate, error)

	// RecordClick counts a referral link visit.
	RecordClick(ctx context.Context, id string) error

	// Dashboard aggregates an affiliate's ledger, referred orders and
	// pending payout total.
	Dashboard(ctx context.Context, id string) (*model.AffiliateDashboard, error)
}

// PayoutService defines the payout request lifecycle.
type PayoutService interface {
	// GetAll retrieves all payout requests.
	GetAll(ctx context.Context) ([]model.PayoutRequest, error)

	// Request reserves a payout against the affiliate's wallet balance.
	Request(ctx context.Context, input *model.PayoutRequestInput) (*model.PayoutRequest, error)

	// Resolve approves or rejects a pending payout.
	Resolve(ctx context.Context, id uuid.UUID, status model.PayoutStatus) (*model.PayoutRequest, error)
}

// SettingsService defines store configuration operations.
type SettingsService interface {
	Shipping(ctx context.Context) (model.ShippingSettings, error)
	SaveShipping(ctx context.Context, s model.ShippingSettings) (model.ShippingSettings, error)
	Payment(ctx context.Context) (model.PaymentSettings, error)
	SavePayment(ctx context.Context, s model.PaymentSettings) (model.PaymentSettings, error)
	SMTP(ctx context.Context) (model.SMTPSettings, error)
	SaveSMTP(ctx context.Context, s model.SMTPSettings) (model.SMTPSettings, error)
}

// CustomerService defines registered customer operations.
type CustomerService interface {
	GetAll(ctx context.Context) ([]model.Customer, error)
	Register(ctx context.Context, c *model.Customer) (*model.Customer, error)
	DeleteByEmail(ctx context.Context, email string) error
}
