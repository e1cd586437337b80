package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dito-store/internal/model"
	"dito-store/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// affiliateService implements AffiliateService.
type affiliateService struct {
	affiliateRepo repository.AffiliateRepository
	orderRepo     repository.OrderRepository
	payoutRepo    repository.PayoutRepository
	logger        zerolog.Logger
}

// NewAffiliateService creates a new affiliate service.
func NewAffiliateService(
	affiliateRepo repository.AffiliateRepository,
	orderRepo repository.OrderRepository,
	payoutRepo repository.PayoutRepository,
	logger zerolog.Logger,
) AffiliateService {
	return &affiliateService{
		affiliateRepo: affiliateRepo,
		orderRepo:     orderRepo,
		payoutRepo:    payoutRepo,
		logger:        logger.With().Str("service", "affiliate").Logger(),
	}
}

func (s *affiliateService) GetAll(ctx context.Context) ([]model.Affiliate, error) {
	affiliates, err := s.affiliateRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list affiliates")
		return nil, fmt.Errorf("failed to list affiliates: %w", err)
	}
	return affiliates, nil
}

func (s *affiliateService) GetByID(ctx context.Context, id string) (*model.Affiliate, error) {
	a, err := s.affiliateRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("affiliate_id", id).Msg("failed to get affiliate")
		return nil, fmt.Errorf("failed to get affiliate: %w", err)
	}
	return a, nil
}

// Register creates a new affiliate. The ledger starts at zero regardless of
// what the request carries.
func (s *affiliateService) Register(ctx context.Context, a *model.Affiliate) (*model.Affiliate, error) {
	if strings.TrimSpace(a.Name) == "" {
		a.Name = strings.TrimSpace(a.FirstName + " " + a.LastName)
	}
	if a.Name == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "Affiliate name is required")
	}
	if strings.TrimSpace(a.Email) == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "Affiliate email is required")
	}

	if a.ID == "" {
		a.ID = newAffiliateID()
	}
	a.WalletBalance = 0
	a.TotalSales = 0
	a.LifetimeEarnings = 0
	a.Clicks = 0
	if a.Status == "" {
		a.Status = model.AffiliateActive
	}
	if a.JoinDate.IsZero() {
		a.JoinDate = time.Now().UTC()
	}

	if err := s.affiliateRepo.Create(ctx, a); err != nil {
		s.logger.Error().Err(err).Str("affiliate_id", a.ID).Msg("failed to create affiliate")
		return nil, fmt.Errorf("failed to create affiliate: %w", err)
	}

	s.logger.Info().Str("affiliate_id", a.ID).Str("name", a.Name).Msg("affiliate registered")
	return a, nil
}

// Update replaces profile fields only; the ledger columns are owned by the
// order and payout flows.
func (s *affiliateService) Update(ctx context.Context, a *model.Affiliate) (*model.Affiliate, error) {
	existing, err := s.affiliateRepo.GetByID(ctx, a.ID)
	if err != nil {
		s.logger.Error().Err(err).Str("affiliate_id", a.ID).Msg("failed to load affiliate")
		return nil, fmt.Errorf("failed to load affiliate: %w", err)
	}
	if existing == nil {
		return nil, model.ErrAffiliateNotFound
	}

	existing.Name = a.Name
	existing.Email = a.Email
	existing.FirstName = a.FirstName
	existing.LastName = a.LastName
	existing.Mobile = a.Mobile
	existing.Address = a.Address
	existing.AgencyName = a.AgencyName
	existing.GcashName = a.GcashName
	existing.GcashNumber = a.GcashNumber
	if a.Status != "" {
		existing.Status = a.Status
	}

	if err := s.affiliateRepo.Update(ctx, existing); err != nil {
		s.logger.Error().Err(err).Str("affiliate_id", a.ID).Msg("failed to update affiliate")
		return nil, fmt.Errorf("failed to update affiliate: %w", err)
	}

	return existing, nil
}

func (s *affiliateService) RecordClick(ctx context.Context, id string) error {
	if err := s.affiliateRepo.RecordClick(ctx, id); err != nil {
		if err == model.ErrAffiliateNotFound {
			return err
		}
		s.logger.Error().Err(err).Str("affiliate_id", id).Msg("failed to record click")
		return fmt.Errorf("failed to record click: %w", err)
	}
	return nil
}

// Dashboard aggregates the affiliate's ledger with referred orders and the
// total still locked in pending payouts.
func (s *affiliateService) Dashboard(ctx context.Context, id string) (*model.AffiliateDashboard, error) {
	a, err := s.affiliateRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("affiliate_id", id).Msg("failed to load affiliate")
		return nil, fmt.Errorf("failed to load affiliate: %w", err)
	}
	if a == nil {
		return nil, model.ErrAffiliateNotFound
	}

	orders, err := s.orderRepo.GetByReferral(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("affiliate_id", id).Msg("failed to load referred orders")
		return nil, fmt.Errorf("failed to load referred orders: %w", err)
	}

	payouts, err := s.payoutRepo.GetByAffiliate(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("affiliate_id", id).Msg("failed to load payouts")
		return nil, fmt.Errorf("failed to load payouts: %w", err)
	}

	var pending float64
	for _, p := range payouts {
		if p.Status == model.PayoutPending {
			pending += p.Amount
		}
	}

	return &model.AffiliateDashboard{
		Affiliate:      *a,
		ReferredOrders: orders,
		PendingPayouts: pending,
	}, nil
}

// newAffiliateID mints a short referral code, e.g. AFF-3F7A2C.
func newAffiliateID() string {
	return "AFF-" + strings.ToUpper(uuid.NewString()[:6])
}
