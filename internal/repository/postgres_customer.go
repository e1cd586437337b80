package repository

import (
	"context"
	"fmt"

	"dito-store/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// postgresCustomerRepository implements CustomerRepository using PostgreSQL.
type postgresCustomerRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPostgresCustomerRepository creates a PostgreSQL-backed customer repository.
func NewPostgresCustomerRepository(pool *pgxpool.Pool, logger zerolog.Logger) CustomerRepository {
	return &postgresCustomerRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "customer").Logger(),
	}
}

func (r *postgresCustomerRepository) GetAll(ctx context.Context) ([]model.Customer, error) {
	query := `
		SELECT id, username, first_name, last_name, email, mobile, join_date
		FROM customers
		ORDER BY join_date
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query customers")
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	var customers []model.Customer
	for rows.Next() {
		var c model.Customer
		err := rows.Scan(&c.ID, &c.Username, &c.FirstName, &c.LastName, &c.Email, &c.Mobile, &c.JoinDate)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customers: %w", err)
	}

	return customers, nil
}

func (r *postgresCustomerRepository) Create(ctx context.Context, c *model.Customer) error {
	query := `
		INSERT INTO customers (id, username, first_name, last_name, email, mobile, join_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query, c.ID, c.Username, c.FirstName, c.LastName, c.Email, c.Mobile, c.JoinDate)
	if err != nil {
		r.logger.Error().Err(err).Str("customer_id", c.ID).Msg("failed to create customer")
		return fmt.Errorf("failed to create customer: %w", err)
	}

	return nil
}

func (r *postgresCustomerRepository) DeleteByEmail(ctx context.Context, email string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM customers WHERE LOWER(email) = LOWER($1)`, email)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to delete customer")
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	return nil
}
