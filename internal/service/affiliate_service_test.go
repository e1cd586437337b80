package service

import (
	"context"
	"strings"
	"testing"

	"dito-store/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAffiliateService_Register_ZeroesLedger(t *testing.T) {
	ctx := context.Background()
	affiliateRepo := new(MockAffiliateRepository)
	svc := NewAffiliateService(affiliateRepo, new(MockOrderRepository), new(MockPayoutRepository), zerolog.Nop())

	affiliateRepo.On("Create", ctx, mock.AnythingOfType("*model.Affiliate")).Return(nil)

	a, err := svc.Register(ctx, &model.Affiliate{
		FirstName:     "Maria",
		LastName:      "Santos",
		Email:         "maria@example.com",
		WalletBalance: 9999, // ignored
		Clicks:        42,   // ignored
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(a.ID, "AFF-"))
	assert.Equal(t, "Maria Santos", a.Name)
	assert.Equal(t, model.AffiliateActive, a.Status)
	assert.Zero(t, a.WalletBalance)
	assert.Zero(t, a.TotalSales)
	assert.Zero(t, a.LifetimeEarnings)
	assert.Zero(t, a.Clicks)
	assert.False(t, a.JoinDate.IsZero())
}

func TestAffiliateService_Register_RequiresEmail(t *testing.T) {
	ctx := context.Background()
	svc := NewAffiliateService(new(MockAffiliateRepository), new(MockOrderRepository), new(MockPayoutRepository), zerolog.Nop())

	_, err := svc.Register(ctx, &model.Affiliate{Name: "Maria Santos"})
	require.Error(t, err)
	var domainErr *model.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, model.ErrCodeMissingField, domainErr.Code)
}

func TestAffiliateService_Update_PreservesLedger(t *testing.T) {
	ctx := context.Background()
	affiliateRepo := new(MockAffiliateRepository)
	svc := NewAffiliateService(affiliateRepo, new(MockOrderRepository), new(MockPayoutRepository), zerolog.Nop())

	existing := &model.Affiliate{
		ID: "AFF-001", Name: "Maria Santos", Email: "maria@example.com",
		WalletBalance: 500, TotalSales: 4000, LifetimeEarnings: 750, Clicks: 12,
		Status: model.AffiliateActive,
	}
	affiliateRepo.On("GetByID", ctx, "AFF-001").Return(existing, nil)
	affiliateRepo.On("Update", ctx, mock.AnythingOfType("*model.Affiliate")).Return(nil)

	updated, err := svc.Update(ctx, &model.Affiliate{
		ID:            "AFF-001",
		Name:          "Maria R. Santos",
		Email:         "maria@example.com",
		GcashNumber:   "09170000000",
		WalletBalance: 0, // must not overwrite the ledger
	})
	require.NoError(t, err)

	assert.Equal(t, "Maria R. Santos", updated.Name)
	assert.Equal(t, "09170000000", updated.GcashNumber)
	assert.InDelta(t, 500, updated.WalletBalance, 0.001)
	assert.InDelta(t, 4000, updated.TotalSales, 0.001)
	assert.Equal(t, 12, updated.Clicks)
}

func TestAffiliateService_Dashboard(t *testing.T) {
	ctx := context.Background()
	affiliateRepo := new(MockAffiliateRepository)
	orderRepo := new(MockOrderRepository)
	payoutRepo := new(MockPayoutRepository)
	svc := NewAffiliateService(affiliateRepo, orderRepo, payoutRepo, zerolog.Nop())

	affiliateRepo.On("GetByID", ctx, "AFF-001").Return(&model.Affiliate{ID: "AFF-001", WalletBalance: 500}, nil)
	orderRepo.On("GetByReferral", ctx, "AFF-001").Return([]model.Order{
		{ReferralID: "AFF-001", Total: 2780},
	}, nil)
	payoutRepo.On("GetByAffiliate", ctx, "AFF-001").Return([]model.PayoutRequest{
		{AffiliateID: "AFF-001", Amount: 200, Status: model.PayoutPending},
		{AffiliateID: "AFF-001", Amount: 150, Status: model.PayoutApproved},
		{AffiliateID: "AFF-001", Amount: 100, Status: model.PayoutPending},
	}, nil)

	dash, err := svc.Dashboard(ctx, "AFF-001")
	require.NoError(t, err)

	assert.Len(t, dash.ReferredOrders, 1)
	// Only pending requests count toward the locked total.
	assert.InDelta(t, 300, dash.PendingPayouts, 0.001)
}

func TestAffiliateService_Dashboard_NotFound(t *testing.T) {
	ctx := context.Background()
	affiliateRepo := new(MockAffiliateRepository)
	svc := NewAffiliateService(affiliateRepo, new(MockOrderRepository), new(MockPayoutRepository), zerolog.Nop())

	affiliateRepo.On("GetByID", ctx, "AFF-GONE").Return(nil, nil)

	_, err := svc.Dashboard(ctx, "AFF-GONE")
	assert.ErrorIs(t, err, model.ErrAffiliateNotFound)
}
