package repository

import (
	"context"

	"dito-store/internal/model"

	"github.com/google/uuid"
)

// ProductRepository defines the interface for catalogue data access.
type ProductRepository interface {
	// GetAll retrieves all products with pagination support.
	GetAll(ctx context.Context, limit, offset int) ([]model.Product, error)

	// GetByID retrieves a single product by its ID. Returns nil when absent.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// GetByIDs retrieves multiple products by their IDs.
	GetByIDs(ctx context.Context, ids []string) ([]model.Product, error)

	// Upsert creates or replaces a product record.
	Upsert(ctx context.Context, p *model.Product) error

	// Delete removes a product. Historical order items keep their frozen copy.
	Delete(ctx context.Context, id string) error

	// DecrementStock reduces stock for sold items, clamping at zero.
	DecrementStock(ctx context.Context, decrements []model.StockDecrement) error

	// LowStock lists products at or below their minimum stock level.
	LowStock(ctx context.Context) ([]model.Product, error)
}

// OrderRepository defines the interface for order data access and the
// order-side ledger mutations.
type OrderRepository interface {
	// GetAll retrieves all orders, newest first.
	GetAll(ctx context.Context) ([]model.Order, error)

	// GetByID retrieves an order by its ID. Returns nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// GetByReferral retrieves all orders attributed to an affiliate.
	GetByReferral(ctx context.Context, affiliateID string) ([]model.Order, error)

	// Create inserts a new order and decrements product stock for its items
	// in a single atomic operation.
	Create(ctx context.Context, order *model.Order, decrements []model.StockDecrement) error

	// UpdateStatus moves an order to a new state and returns the updated
	// order together with the state it held before.
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (*model.Order, model.OrderStatus, error)

	// CreditCommission atomically marks the order's commission as paid and
	// credits the affiliate's wallet and lifetime earnings. Returns false
	// without mutating anything when the commission was already paid.
	CreditCommission(ctx context.Context, orderID uuid.UUID, affiliateID string, amount float64) (bool, error)

	// SetFulfillment records the courier assignment for an order.
	SetFulfillment(ctx context.Context, id uuid.UUID, courier, trackingNumber string) error

	// Delete removes an order. Any commission already credited is orphaned.
	Delete(ctx context.Context, id uuid.UUID) error
}

// AffiliateRepository defines the interface for partner data access.
type AffiliateRepository interface {
	// GetAll retrieves all affiliates.
	GetAll(ctx context.Context) ([]model.Affiliate, error)

	// GetByID retrieves an affiliate by ID. Returns nil when absent.
	GetByID(ctx context.Context, id string) (*model.Affiliate, error)

	// Create inserts a new affiliate.
	Create(ctx context.Context, a *model.Affiliate) error

	// Update replaces an affiliate's profile fields.
	Update(ctx context.Context, a *model.Affiliate) error

	// RecordClick increments the affiliate's click-through counter.
	RecordClick(ctx context.Context, id string) error

	// AddSales adds a referred order's merchandise value to totalSales.
	AddSales(ctx context.Context, id string, amount float64) error
}

// PayoutRepository defines the interface for payout requests. Reservation and
// resolution are single atomic operations against the ledger of record.
type PayoutRepository interface {
	// GetAll retrieves all payout requests, newest first.
	GetAll(ctx context.Context) ([]model.PayoutRequest, error)

	// GetByAffiliate retrieves an affiliate's payout requests.
	GetByAffiliate(ctx context.Context, affiliateID string) ([]model.PayoutRequest, error)

	// Reserve creates a pending payout and debits the wallet in one atomic
	// step. Fails with model.ErrInsufficientFunds when the balance does not
	// cover the amount.
	Reserve(ctx context.Context, p *model.PayoutRequest) error

	// Resolve moves a pending payout to Approved or Rejected. Rejection
	// refunds the reserved amount; approval keeps the debit. Resolving a
	// non-pending payout fails with model.ErrPayoutResolved.
	Resolve(ctx context.Context, id uuid.UUID, status model.PayoutStatus) (*model.PayoutRequest, error)
}

// CustomerRepository defines the interface for registered customer records.
type CustomerRepository interface {
	// GetAll retrieves all customers.
	GetAll(ctx context.Context) ([]model.Customer, error)

	// Create inserts a new customer.
	Create(ctx context.Context, c *model.Customer) error

	// DeleteByEmail removes a customer account.
	DeleteByEmail(ctx context.Context, email string) error
}

// SettingsRepository defines the interface for the typed settings store.
type SettingsRepository interface {
	Shipping(ctx context.Context) (model.ShippingSettings, error)
	SaveShipping(ctx context.Context, s model.ShippingSettings) error
	Payment(ctx context.Context) (model.PaymentSettings, error)
	SavePayment(ctx context.Context, s model.PaymentSettings) error
	SMTP(ctx context.Context) (model.SMTPSettings, error)
	SaveSMTP(ctx context.Context, s model.SMTPSettings) error
}

// Repositories bundles one backend's full repository set.
type Repositories struct {
	Products   ProductRepository
	Orders     OrderRepository
	Affiliates AffiliateRepository
	Payouts    PayoutRepository
	Customers  CustomerRepository
	Settings   SettingsRepository
}
