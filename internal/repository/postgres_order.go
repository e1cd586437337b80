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

const orderColumns = `
	id, number, customer, total, shipping_fee, status, items, order_items,
	referral_id, commission, commission_paid, payment_method, proof_of_payment,
	shipping_details, courier, tracking_number, created_at, updated_at
`

// postgresOrderRepository implements OrderRepository using PostgreSQL.
type postgresOrderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPostgresOrderRepository creates a PostgreSQL-backed order repository.
func NewPostgresOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &postgresOrderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

func (r *postgresOrderRepository) GetAll(ctx context.Context) ([]model.Order, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM orders
		ORDER BY created_at DESC
	`, orderColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	return scanOrders(rows)
}

func (r *postgresOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM orders
		WHERE id = $1
	`, orderColumns)

	var o model.Order
	err := scanOrder(r.pool.QueryRow(ctx, query, id), &o)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("order_id", id.String()).Msg("order not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to query order")
		return nil, fmt.Errorf("failed to query order: %w", err)
	}

	return &o, nil
}

func (r *postgresOrderRepository) GetByReferral(ctx context.Context, affiliateID string) ([]model.Order, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM orders
		WHERE referral_id = $1
		ORDER BY created_at DESC
	`, orderColumns)

	rows, err := r.pool.Query(ctx, query, affiliateID)
	if err != nil {
		r.logger.Error().Err(err).Str("affiliate_id", affiliateID).Msg("failed to query referred orders")
		return nil, fmt.Errorf("failed to query referred orders: %w", err)
	}
	defer rows.Close()

	return scanOrders(rows)
}

// Create inserts the order and applies its stock decrements in one
// transaction.
func (r *postgresOrderRepository) Create(ctx context.Context, order *model.Order, decrements []model.StockDecrement) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	insertQuery := `
		INSERT INTO orders (
			id, number, customer, total, shipping_fee, status, items, order_items,
			referral_id, commission, commission_paid, payment_method, proof_of_payment,
			shipping_details, courier, tracking_number, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`
	_, err = tx.Exec(ctx, insertQuery,
		order.ID, order.Number, order.Customer, order.Total, order.ShippingFee,
		order.Status, order.Items, order.OrderItems, order.ReferralID, order.Commission,
		order.CommissionPaid, order.PaymentMethod, order.ProofOfPayment,
		order.ShippingDetails, order.Courier, order.TrackingNumber,
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to create order")
		return fmt.Errorf("failed to create order: %w", err)
	}

	decrementQuery := `
		UPDATE products
		SET stock = GREATEST(stock - $2, 0), updated_at = NOW()
		WHERE id = $1
	`
	for _, d := range decrements {
		if _, err := tx.Exec(ctx, decrementQuery, d.ProductID, d.Quantity); err != nil {
			r.logger.Error().Err(err).
				Str("order_id", order.ID.String()).
				Str("product_id", d.ProductID).
				Msg("failed to decrement stock")
			return fmt.Errorf("failed to decrement stock: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to commit order")
		return fmt.Errorf("failed to commit order: %w", err)
	}

	r.logger.Debug().Str("order_id", order.ID.String()).Msg("order created successfully")
	return nil
}

func (r *postgresOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (*model.Order, model.OrderStatus, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var previous model.OrderStatus
	err = tx.QueryRow(ctx, `SELECT status FROM orders WHERE id = $1 FOR UPDATE`, id).Scan(&previous)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", model.ErrOrderNotFound
		}
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to lock order")
		return nil, "", fmt.Errorf("failed to lock order: %w", err)
	}

	updateQuery := fmt.Sprintf(`
		UPDATE orders
		SET status = $2, updated_at = $3
		WHERE id = $1
		RETURNING %s
	`, orderColumns)

	var o model.Order
	if err := scanOrder(tx.QueryRow(ctx, updateQuery, id, status, time.Now().UTC()), &o); err != nil {
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to update order status")
		return nil, "", fmt.Errorf("failed to update order status: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, "", fmt.Errorf("failed to commit status update: %w", err)
	}

	return &o, previous, nil
}

// CreditCommission flips the paid flag and credits the wallet in one
// transaction. The conditional UPDATE is the idempotency gate: a second
// delivery transition matches zero rows and leaves the wallet untouched.
func (r *postgresOrderRepository) CreditCommission(ctx context.Context, orderID uuid.UUID, affiliateID string, amount float64) (bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE orders
		SET commission_paid = TRUE, updated_at = NOW()
		WHERE id = $1 AND commission_paid = FALSE
	`, orderID)
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", orderID.String()).Msg("failed to mark commission paid")
		return false, fmt.Errorf("failed to mark commission paid: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM orders WHERE id = $1)`, orderID).Scan(&exists); err != nil {
			return false, fmt.Errorf("failed to check order: %w", err)
		}
		if !exists {
			return false, model.ErrOrderNotFound
		}
		return false, nil
	}

	tag, err = tx.Exec(ctx, `
		UPDATE affiliates
		SET wallet_balance = wallet_balance + $2, lifetime_earnings = lifetime_earnings + $2
		WHERE id = $1
	`, affiliateID, amount)
	if err != nil {
		r.logger.Error().Err(err).Str("affiliate_id", affiliateID).Msg("failed to credit wallet")
		return false, fmt.Errorf("failed to credit wallet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return false, model.ErrAffiliateNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("failed to commit commission credit: %w", err)
	}

	r.logger.Info().
		Str("order_id", orderID.String()).
		Str("affiliate_id", affiliateID).
		Float64("amount", amount).
		Msg("commission credited")
	return true, nil
}

func (r *postgresOrderRepository) SetFulfillment(ctx context.Context, id uuid.UUID, courier, trackingNumber string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE orders
		SET courier = $2, tracking_number = $3, updated_at = NOW()
		WHERE id = $1
	`, id, courier, trackingNumber)
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to set fulfillment")
		return fmt.Errorf("failed to set fulfillment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrOrderNotFound
	}

	return nil
}

func (r *postgresOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to delete order")
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrOrderNotFound
	}

	return nil
}

func scanOrder(row pgx.Row, o *model.Order) error {
	return row.Scan(
		&o.ID, &o.Number, &o.Customer, &o.Total, &o.ShippingFee, &o.Status, &o.Items,
		&o.OrderItems, &o.ReferralID, &o.Commission, &o.CommissionPaid, &o.PaymentMethod,
		&o.ProofOfPayment, &o.ShippingDetails, &o.Courier, &o.TrackingNumber,
		&o.CreatedAt, &o.UpdatedAt,
	)
}

func scanOrders(rows pgx.Rows) ([]model.Order, error) {
	var orders []model.Order
	for rows.Next() {
		var o model.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	return orders, nil
}
