package repository

import (
	"context"
	"fmt"
	"time"

	"dito-store/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const payoutColumns = `
	id, affiliate_id, affiliate_name, amount, method, account_name,
	account_number, status, date_requested, date_processed
`

// postgresPayoutRepository implements PayoutRepository using PostgreSQL.
type postgresPayoutRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPostgresPayoutRepository creates a PostgreSQL-backed payout repository.
func NewPostgresPayoutRepository(pool *pgxpool.Pool, logger zerolog.Logger) PayoutRepository {
	return &postgresPayoutRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "payout").Logger(),
	}
}

func (r *postgresPayoutRepository) GetAll(ctx context.Context) ([]model.PayoutRequest, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM payouts
		ORDER BY date_requested DESC
	`, payoutColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query payouts")
		return nil, fmt.Errorf("failed to query payouts: %w", err)
	}
	defer rows.Close()

	return scanPayouts(rows)
}

func (r *postgresPayoutRepository) GetByAffiliate(ctx context.Context, affiliateID string) ([]model.PayoutRequest, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM payouts
		WHERE affiliate_id = $1
		ORDER BY date_requested DESC
	`, payoutColumns)

	rows, err := r.pool.Query(ctx, query, affiliateID)
	if err != nil {
		r.logger.Error().Err(err).Str("affiliate_id", affiliateID).Msg("failed to query payouts")
		return nil, fmt.Errorf("failed to query payouts: %w", err)
	}
	defer rows.Close()

	return scanPayouts(rows)
}

// Reserve debits the wallet and inserts the pending payout in one
// transaction. The conditional UPDATE rejects the reservation when the
// balance no longer covers the amount.
func (r *postgresPayoutRepository) Reserve(ctx context.Context, p *model.PayoutRequest) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE affiliates
		SET wallet_balance = wallet_balance - $2
		WHERE id = $1 AND wallet_balance >= $2
	`, p.AffiliateID, p.Amount)
	if err != nil {
		r.logger.Error().Err(err).Str("affiliate_id", p.AffiliateID).Msg("failed to debit wallet")
		return fmt.Errorf("failed to debit wallet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM affiliates WHERE id = $1)`, p.AffiliateID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check affiliate: %w", err)
		}
		if !exists {
			return model.ErrAffiliateNotFound
		}
		return model.ErrInsufficientFunds
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO payouts (
			id, affiliate_id, affiliate_name, amount, method, account_name,
			account_number, status, date_requested, date_processed
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, p.ID, p.AffiliateID, p.AffiliateName, p.Amount, p.Method, p.AccountName,
		p.AccountNumber, p.Status, p.DateRequested, p.DateProcessed)
	if err != nil {
		r.logger.Error().Err(err).Str("payout_id", p.ID.String()).Msg("failed to insert payout")
		return fmt.Errorf("failed to insert payout: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit payout reservation: %w", err)
	}

	r.logger.Info().
		Str("payout_id", p.ID.String()).
		Str("affiliate_id", p.AffiliateID).
		Float64("amount", p.Amount).
		Msg("payout reserved")
	return nil
}

// Resolve finalises a pending payout. The conditional UPDATE makes the
// decision terminal; rejection refunds the reserved amount in the same
// transaction.
func (r *postgresPayoutRepository) Resolve(ctx context.Context, id uuid.UUID, status model.PayoutStatus) (*model.PayoutRequest, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	updateQuery := fmt.Sprintf(`
		UPDATE payouts
		SET status = $2, date_processed = $3
		WHERE id = $1 AND status = $4
		RETURNING %s
	`, payoutColumns)

	var p model.PayoutRequest
	err = scanPayout(tx.QueryRow(ctx, updateQuery, id, status, time.Now().UTC(), model.PayoutPending), &p)
	if err != nil {
		if err == pgx.ErrNoRows {
			var exists bool
			if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM payouts WHERE id = $1)`, id).Scan(&exists); err != nil {
				return nil, fmt.Errorf("failed to check payout: %w", err)
			}
			if !exists {
				return nil, model.ErrPayoutNotFound
			}
			return nil, model.ErrPayoutResolved
		}
		r.logger.Error().Err(err).Str("payout_id", id.String()).Msg("failed to resolve payout")
		return nil, fmt.Errorf("failed to resolve payout: %w", err)
	}

	if status == model.PayoutRejected {
		tag, err := tx.Exec(ctx, `
			UPDATE affiliates
			SET wallet_balance = wallet_balance + $2
			WHERE id = $1
		`, p.AffiliateID, p.Amount)
		if err != nil {
			r.logger.Error().Err(err).Str("affiliate_id", p.AffiliateID).Msg("failed to refund wallet")
			return nil, fmt.Errorf("failed to refund wallet: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return nil, model.ErrAffiliateNotFound
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit payout resolution: %w", err)
	}

	r.logger.Info().
		Str("payout_id", id.String()).
		Str("status", string(status)).
		Msg("payout resolved")
	return &p, nil
}

func scanPayout(row pgx.Row, p *model.PayoutRequest) error {
	return row.Scan(
		&p.ID, &p.AffiliateID, &p.AffiliateName, &p.Amount, &p.Method, &p.AccountName,
		&p.AccountNumber, &p.Status, &p.DateRequested, &p.DateProcessed,
	)
}

func scanPayouts(rows pgx.Rows) ([]model.PayoutRequest, error) {
	var payouts []model.PayoutRequest
	for rows.Next() {
		var p model.PayoutRequest
		if err := scanPayout(rows, &p); err != nil {
			return nil, fmt.Errorf("failed to scan payout: %w", err)
		}
		payouts = append(payouts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payouts: %w", err)
	}

	return payouts, nil
}
