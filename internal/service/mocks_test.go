package service

import (
	"context"

	"dito-store/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll(ctx context.Context, limit, offset int) ([]model.Product, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) GetByIDs(ctx context.Context, ids []string) ([]model.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) Upsert(ctx context.Context, p *model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) DecrementStock(ctx context.Context, decrements []model.StockDecrement) error {
	args := m.Called(ctx, decrements)
	return args.Error(0)
}

func (m *MockProductRepository) LowStock(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

// MockOrderRepository is a mock implementation of repository.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByReferral(ctx context.Context, affiliateID string) ([]model.Order, error) {
	args := m.Called(ctx, affiliateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderRepository) Create(ctx context.Context, order *model.Order, decrements []model.StockDecrement) error {
	args := m.Called(ctx, order, decrements)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (*model.Order, model.OrderStatus, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*model.Order), args.Get(1).(model.OrderStatus), args.Error(2)
}

func (m *MockOrderRepository) CreditCommission(ctx context.Context, orderID uuid.UUID, affiliateID string, amount float64) (bool, error) {
	args := m.Called(ctx, orderID, affiliateID, amount)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) SetFulfillment(ctx context.Context, id uuid.UUID, courier, trackingNumber string) error {
	args := m.Called(ctx, id, courier, trackingNumber)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAffiliateRepository is a mock implementation of repository.AffiliateRepository.
type MockAffiliateRepository struct {
	mock.Mock
}

func (m *MockAffiliateRepository) GetAll(ctx context.Context) ([]model.Affiliate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Affiliate), args.Error(1)
}

func (m *MockAffiliateRepository) GetByID(ctx context.Context, id string) (*model.Affiliate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Affiliate), args.Error(1)
}

func (m *MockAffiliateRepository) Create(ctx context.Context, a *model.Affiliate) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAffiliateRepository) Update(ctx context.Context, a *model.Affiliate) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAffiliateRepository) RecordClick(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAffiliateRepository) AddSales(ctx context.Context, id string, amount float64) error {
	args := m.Called(ctx, id, amount)
	return args.Error(0)
}

// MockPayoutRepository is a mock implementation of repository.PayoutRepository.
type MockPayoutRepository struct {
	mock.Mock
}

func (m *MockPayoutRepository) GetAll(ctx context.Context) ([]model.PayoutRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PayoutRequest), args.Error(1)
}

func (m *MockPayoutRepository) GetByAffiliate(ctx context.Context, affiliateID string) ([]model.PayoutRequest, error) {
	args := m.Called(ctx, affiliateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PayoutRequest), args.Error(1)
}

func (m *MockPayoutRepository) Reserve(ctx context.Context, p *model.PayoutRequest) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPayoutRepository) Resolve(ctx context.Context, id uuid.UUID, status model.PayoutStatus) (*model.PayoutRequest, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PayoutRequest), args.Error(1)
}

// MockSettingsRepository is a mock implementation of repository.SettingsRepository.
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Shipping(ctx context.Context) (model.ShippingSettings, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.ShippingSettings), args.Error(1)
}

func (m *MockSettingsRepository) SaveShipping(ctx context.Context, s model.ShippingSettings) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSettingsRepository) Payment(ctx context.Context) (model.PaymentSettings, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.PaymentSettings), args.Error(1)
}

func (m *MockSettingsRepository) SavePayment(ctx context.Context, s model.PaymentSettings) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSettingsRepository) SMTP(ctx context.Context) (model.SMTPSettings, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.SMTPSettings), args.Error(1)
}

func (m *MockSettingsRepository) SaveSMTP(ctx context.Context, s model.SMTPSettings) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
