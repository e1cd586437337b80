package service

import (
	"context"
	"fmt"
	"time"

	"dito-store/internal/model"
	"dito-store/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// payoutService implements PayoutService.
type payoutService struct {
	payoutRepo    repository.PayoutRepository
	affiliateRepo repository.AffiliateRepository
	logger        zerolog.Logger
}

// NewPayoutService creates a new payout service.
func NewPayoutService(
	payoutRepo repository.PayoutRepository,
	affiliateRepo repository.AffiliateRepository,
	logger zerolog.Logger,
) PayoutService {
	return &payoutService{
		payoutRepo:    payoutRepo,
		affiliateRepo: affiliateRepo,
		logger:        logger.With().Str("service", "payout").Logger(),
	}
}

func (s *payoutService) GetAll(ctx context.Context) ([]model.PayoutRequest, error) {
	payouts, err := s.payoutRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list payouts")
		return nil, fmt.Errorf("failed to list payouts: %w", err)
	}
	return payouts, nil
}

// Request reserves a payout: the amount leaves the wallet immediately so the
// same balance cannot back two pending requests.
func (s *payoutService) Request(ctx context.Context, input *model.PayoutRequestInput) (*model.PayoutRequest, error) {
	if input == nil || input.AffiliateID == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "Affiliate ID is required")
	}
	if input.Amount < model.MinimumPayout {
		return nil, model.ErrBelowMinimum
	}

	affiliate, err := s.affiliateRepo.GetByID(ctx, input.AffiliateID)
	if err != nil {
		s.logger.Error().Err(err).Str("affiliate_id", input.AffiliateID).Msg("failed to load affiliate")
		return nil, fmt.Errorf("failed to load affiliate: %w", err)
	}
	if affiliate == nil {
		return nil, model.ErrAffiliateNotFound
	}

	payout := &model.PayoutRequest{
		ID:            uuid.New(),
		AffiliateID:   affiliate.ID,
		AffiliateName: affiliate.Name,
		Amount:        input.Amount,
		Method:        input.Method,
		AccountName:   input.AccountName,
		AccountNumber: input.AccountNumber,
		Status:        model.PayoutPending,
		DateRequested: time.Now().UTC(),
	}
	if payout.Method == "" {
		payout.Method = "gcash"
	}
	if payout.AccountName == "" {
		payout.AccountName = affiliate.GcashName
	}
	if payout.AccountNumber == "" {
		payout.AccountNumber = affiliate.GcashNumber
	}

	if err := s.payoutRepo.Reserve(ctx, payout); err != nil {
		if err == model.ErrInsufficientFunds || err == model.ErrAffiliateNotFound {
			return nil, err
		}
		s.logger.Error().Err(err).Str("affiliate_id", input.AffiliateID).Msg("failed to reserve payout")
		return nil, fmt.Errorf("failed to reserve payout: %w", err)
	}

	s.logger.Info().
		Str("payout_id", payout.ID.String()).
		Str("affiliate_id", payout.AffiliateID).
		Float64("amount", payout.Amount).
		Msg("payout requested")

	return payout, nil
}

// Resolve approves or rejects a pending payout. Only those two states are
// reachable from Pending; resolution is terminal.
func (s *payoutService) Resolve(ctx context.Context, id uuid.UUID, status model.PayoutStatus) (*model.PayoutRequest, error) {
	if status != model.PayoutApproved && status != model.PayoutRejected {
		return nil, model.NewDomainError(model.ErrCodeInvalidStatus, "Payout status must be Approved or Rejected")
	}

	payout, err := s.payoutRepo.Resolve(ctx, id, status)
	if err != nil {
		if err == model.ErrPayoutNotFound || err == model.ErrPayoutResolved {
			return nil, err
		}
		s.logger.Error().Err(err).Str("payout_id", id.String()).Msg("failed to resolve payout")
		return nil, fmt.Errorf("failed to resolve payout: %w", err)
	}

	s.logger.Info().
		Str("payout_id", id.String()).
		Str("status", string(status)).
		Msg("payout resolved")

	return payout, nil
}
