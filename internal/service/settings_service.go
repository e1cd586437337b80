package service

import (
	"context"
	"fmt"

	"dito-store/internal/model"
	"dito-store/internal/repository"

	"github.com/rs/zerolog"
)

// settingsService implements SettingsService.
type settingsService struct {
	settingsRepo repository.SettingsRepository
	logger       zerolog.Logger
}

// NewSettingsService creates a new settings service.
func NewSettingsService(settingsRepo repository.SettingsRepository, logger zerolog.Logger) SettingsService {
	return &settingsService{
		settingsRepo: settingsRepo,
		logger:       logger.With().Str("service", "settings").Logger(),
	}
}

func (s *settingsService) Shipping(ctx context.Context) (model.ShippingSettings, error) {
	return s.settingsRepo.Shipping(ctx)
}

func (s *settingsService) SaveShipping(ctx context.Context, cfg model.ShippingSettings) (model.ShippingSettings, error) {
	if cfg.BaseFee < 0 {
		return model.ShippingSettings{}, model.NewDomainError(model.ErrCodeMissingField, "Base shipping fee cannot be negative")
	}
	if cfg.FreeThreshold < 0 {
		return model.ShippingSettings{}, model.NewDomainError(model.ErrCodeMissingField, "Free shipping threshold cannot be negative")
	}
	if cfg.CalculationType == "" {
		cfg.CalculationType = model.ShippingFlat
	}
	for _, z := range cfg.Zones {
		if z.Name == "" || z.Fee < 0 {
			return model.ShippingSettings{}, model.NewDomainError(model.ErrCodeMissingField, "Shipping zones need a name and a non-negative fee")
		}
	}

	if err := s.settingsRepo.SaveShipping(ctx, cfg); err != nil {
		s.logger.Error().Err(err).Msg("failed to save shipping settings")
		return model.ShippingSettings{}, fmt.Errorf("failed to save shipping settings: %w", err)
	}

	s.logger.Info().
		Bool("enabled", cfg.Enabled).
		Str("calculation", string(cfg.CalculationType)).
		Int("zones", len(cfg.Zones)).
		Msg("shipping settings saved")
	return cfg, nil
}

func (s *settingsService) Payment(ctx context.Context) (model.PaymentSettings, error) {
	return s.settingsRepo.Payment(ctx)
}

func (s *settingsService) SavePayment(ctx context.Context, cfg model.PaymentSettings) (model.PaymentSettings, error) {
	if err := s.settingsRepo.SavePayment(ctx, cfg); err != nil {
		s.logger.Error().Err(err).Msg("failed to save payment settings")
		return model.PaymentSettings{}, fmt.Errorf("failed to save payment settings: %w", err)
	}

	s.logger.Info().Msg("payment settings saved")
	return cfg, nil
}

func (s *settingsService) SMTP(ctx context.Context) (model.SMTPSettings, error) {
	return s.settingsRepo.SMTP(ctx)
}

func (s *settingsService) SaveSMTP(ctx context.Context, cfg model.SMTPSettings) (model.SMTPSettings, error) {
	if err := s.settingsRepo.SaveSMTP(ctx, cfg); err != nil {
		s.logger.Error().Err(err).Msg("failed to save smtp settings")
		return model.SMTPSettings{}, fmt.Errorf("failed to save smtp settings: %w", err)
	}

	s.logger.Info().Msg("smtp settings saved")
	return cfg, nil
}
