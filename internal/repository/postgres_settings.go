package repository

import (
	"context"
	"fmt"

	"dito-store/internal/model"
	"dito-store/internal/sheetdb"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const (
	settingsKeyShipping = "shipping"
	settingsKeyPayment  = "payment"
	settingsKeySMTP     = "smtp"
)

// postgresSettingsRepository implements SettingsRepository using PostgreSQL.
// Each settings group is one jsonb row keyed by name; a fresh database serves
// the same defaults as the demo snapshot until an admin saves.
type postgresSettingsRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPostgresSettingsRepository creates a PostgreSQL-backed settings repository.
func NewPostgresSettingsRepository(pool *pgxpool.Pool, logger zerolog.Logger) SettingsRepository {
	return &postgresSettingsRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "settings").Logger(),
	}
}

func (r *postgresSettingsRepository) Shipping(ctx context.Context) (model.ShippingSettings, error) {
	var s model.ShippingSettings
	found, err := r.load(ctx, settingsKeyShipping, &s)
	if err != nil {
		return model.ShippingSettings{}, err
	}
	if !found {
		return sheetdb.DefaultShippingSettings(), nil
	}
	return s, nil
}

func (r *postgresSettingsRepository) SaveShipping(ctx context.Context, s model.ShippingSettings) error {
	return r.save(ctx, settingsKeyShipping, s)
}

func (r *postgresSettingsRepository) Payment(ctx context.Context) (model.PaymentSettings, error) {
	var s model.PaymentSettings
	found, err := r.load(ctx, settingsKeyPayment, &s)
	if err != nil {
		return model.PaymentSettings{}, err
	}
	if !found {
		return sheetdb.DefaultPaymentSettings(), nil
	}
	return s, nil
}

func (r *postgresSettingsRepository) SavePayment(ctx context.Context, s model.PaymentSettings) error {
	return r.save(ctx, settingsKeyPayment, s)
}

func (r *postgresSettingsRepository) SMTP(ctx context.Context) (model.SMTPSettings, error) {
	var s model.SMTPSettings
	found, err := r.load(ctx, settingsKeySMTP, &s)
	if err != nil {
		return model.SMTPSettings{}, err
	}
	if !found {
		return sheetdb.DefaultSMTPSettings(), nil
	}
	return s, nil
}

func (r *postgresSettingsRepository) SaveSMTP(ctx context.Context, s model.SMTPSettings) error {
	return r.save(ctx, settingsKeySMTP, s)
}

func (r *postgresSettingsRepository) load(ctx context.Context, key string, dst any) (bool, error) {
	err := r.pool.QueryRow(ctx, `SELECT value FROM settings WHERE key = $1`, key).Scan(dst)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		r.logger.Error().Err(err).Str("key", key).Msg("failed to load settings")
		return false, fmt.Errorf("failed to load settings %q: %w", key, err)
	}
	return true, nil
}

func (r *postgresSettingsRepository) save(ctx context.Context, key string, value any) error {
	query := `
		INSERT INTO settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`

	_, err := r.pool.Exec(ctx, query, key, value)
	if err != nil {
		r.logger.Error().Err(err).Str("key", key).Msg("failed to save settings")
		return fmt.Errorf("failed to save settings %q: %w", key, err)
	}

	return nil
}
