package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// NewPostgresRepositories wires the full repository set over one shared pool.
func NewPostgresRepositories(pool *pgxpool.Pool, logger zerolog.Logger) Repositories {
	return Repositories{
		Products:   NewPostgresProductRepository(pool, logger),
		Orders:     NewPostgresOrderRepository(pool, logger),
		Affiliates: NewPostgresAffiliateRepository(pool, logger),
		Payouts:    NewPostgresPayoutRepository(pool, logger),
		Customers:  NewPostgresCustomerRepository(pool, logger),
		Settings:   NewPostgresSettingsRepository(pool, logger),
	}
}
