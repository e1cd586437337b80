package repository

import (
	"context"
	"fmt"

	"dito-store/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const affiliateColumns = `
	id, name, email, wallet_balance, total_sales, lifetime_earnings, clicks,
	status, first_name, last_name, mobile, address, agency_name, gcash_name,
	gcash_number, join_date
`

// postgresAffiliateRepository implements AffiliateRepository using PostgreSQL.
type postgresAffiliateRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPostgresAffiliateRepository creates a PostgreSQL-backed affiliate repository.
func NewPostgresAffiliateRepository(pool *pgxpool.Pool, logger zerolog.Logger) AffiliateRepository {
	return &postgresAffiliateRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "affiliate").Logger(),
	}
}

func (r *postgresAffiliateRepository) GetAll(ctx context.Context) ([]model.Affiliate, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM affiliates
		ORDER BY join_date
	`, affiliateColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query affiliates")
		return nil, fmt.Errorf("failed to query affiliates: %w", err)
	}
	defer rows.Close()

	var affiliates []model.Affiliate
	for rows.Next() {
		var a model.Affiliate
		if err := scanAffiliate(rows, &a); err != nil {
			return nil, fmt.Errorf("failed to scan affiliate: %w", err)
		}
		affiliates = append(affiliates, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating affiliates: %w", err)
	}

	return affiliates, nil
}

func (r *postgresAffiliateRepository) GetByID(ctx context.Context, id string) (*model.Affiliate, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM affiliates
		WHERE id = $1
	`, affiliateColumns)

	var a model.Affiliate
	err := scanAffiliate(r.pool.QueryRow(ctx, query, id), &a)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("affiliate_id", id).Msg("affiliate not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("affiliate_id", id).Msg("failed to query affiliate")
		return nil, fmt.Errorf("failed to query affiliate: %w", err)
	}

	return &a, nil
}

func (r *postgresAffiliateRepository) Create(ctx context.Context, a *model.Affiliate) error {
	query := `
		INSERT INTO affiliates (
			id, name, email, wallet_balance, total_sales, lifetime_earnings, clicks,
			status, first_name, last_name, mobile, address, agency_name, gcash_name,
			gcash_number, join_date
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := r.pool.Exec(ctx, query,
		a.ID, a.Name, a.Email, a.WalletBalance, a.TotalSales, a.LifetimeEarnings, a.Clicks,
		a.Status, a.FirstName, a.LastName, a.Mobile, a.Address, a.AgencyName, a.GcashName,
		a.GcashNumber, a.JoinDate,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("affiliate_id", a.ID).Msg("failed to create affiliate")
		return fmt.Errorf("failed to create affiliate: %w", err)
	}

	return nil
}

func (r *postgresAffiliateRepository) Update(ctx context.Context, a *model.Affiliate) error {
	query := `
		UPDATE affiliates
		SET name = $2, email = $3, status = $4, first_name = $5, last_name = $6,
			mobile = $7, address = $8, agency_name = $9, gcash_name = $10, gcash_number = $11
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		a.ID, a.Name, a.Email, a.Status, a.FirstName, a.LastName,
		a.Mobile, a.Address, a.AgencyName, a.GcashName, a.GcashNumber,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("affiliate_id", a.ID).Msg("failed to update affiliate")
		return fmt.Errorf("failed to update affiliate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrAffiliateNotFound
	}

	return nil
}

func (r *postgresAffiliateRepository) RecordClick(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE affiliates SET clicks = clicks + 1 WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("affiliate_id", id).Msg("failed to record click")
		return fmt.Errorf("failed to record click: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrAffiliateNotFound
	}

	return nil
}

func (r *postgresAffiliateRepository) AddSales(ctx context.Context, id string, amount float64) error {
	tag, err := r.pool.Exec(ctx, `UPDATE affiliates SET total_sales = total_sales + $2 WHERE id = $1`, id, amount)
	if err != nil {
		r.logger.Error().Err(err).Str("affiliate_id", id).Msg("failed to add sales")
		return fmt.Errorf("failed to add sales: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrAffiliateNotFound
	}

	return nil
}

func scanAffiliate(row pgx.Row, a *model.Affiliate) error {
	return row.Scan(
		&a.ID, &a.Name, &a.Email, &a.WalletBalance, &a.TotalSales, &a.LifetimeEarnings,
		&a.Clicks, &a.Status, &a.FirstName, &a.LastName, &a.Mobile, &a.Address,
		&a.AgencyName, &a.GcashName, &a.GcashNumber, &a.JoinDate,
	)
}
