package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema is the full storefront schema. Structured blobs (galleries, specs,
// frozen order lines, discount tiers, settings groups) live in jsonb columns;
// everything the queries filter or update on is a flat column.
const schema = `
	CREATE TABLE IF NOT EXISTS products (
		id VARCHAR(100) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		subtitle VARCHAR(255) NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		price DOUBLE PRECISION NOT NULL,
		cost_price DOUBLE PRECISION NOT NULL DEFAULT 0,
		category VARCHAR(100) NOT NULL DEFAULT '',
		image TEXT NOT NULL DEFAULT '',
		gallery JSONB NOT NULL DEFAULT '[]',
		specs JSONB NOT NULL DEFAULT '{}',
		features JSONB NOT NULL DEFAULT '[]',
		sku VARCHAR(100) NOT NULL DEFAULT '',
		stock INTEGER NOT NULL DEFAULT 0,
		min_stock_level INTEGER NOT NULL DEFAULT 0,
		bulk_discounts JSONB NOT NULL DEFAULT '[]',
		commission_type VARCHAR(20) NOT NULL DEFAULT 'percentage',
		commission_value DOUBLE PRECISION NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS orders (
		id UUID PRIMARY KEY,
		number VARCHAR(50) NOT NULL,
		customer VARCHAR(255) NOT NULL DEFAULT '',
		total DOUBLE PRECISION NOT NULL,
		shipping_fee DOUBLE PRECISION NOT NULL DEFAULT 0,
		status VARCHAR(20) NOT NULL,
		items INTEGER NOT NULL DEFAULT 0,
		order_items JSONB NOT NULL DEFAULT '[]',
		referral_id VARCHAR(50) NOT NULL DEFAULT '',
		commission DOUBLE PRECISION NOT NULL DEFAULT 0,
		commission_paid BOOLEAN NOT NULL DEFAULT FALSE,
		payment_method VARCHAR(50) NOT NULL DEFAULT '',
		proof_of_payment TEXT NOT NULL DEFAULT '',
		shipping_details JSONB,
		courier VARCHAR(100) NOT NULL DEFAULT '',
		tracking_number VARCHAR(100) NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_orders_referral_id ON orders(referral_id);

	CREATE TABLE IF NOT EXISTS affiliates (
		id VARCHAR(50) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		wallet_balance DOUBLE PRECISION NOT NULL DEFAULT 0,
		total_sales DOUBLE PRECISION NOT NULL DEFAULT 0,
		lifetime_earnings DOUBLE PRECISION NOT NULL DEFAULT 0,
		clicks INTEGER NOT NULL DEFAULT 0,
		status VARCHAR(20) NOT NULL DEFAULT 'active',
		first_name VARCHAR(100) NOT NULL DEFAULT '',
		last_name VARCHAR(100) NOT NULL DEFAULT '',
		mobile VARCHAR(50) NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		agency_name VARCHAR(255) NOT NULL DEFAULT '',
		gcash_name VARCHAR(255) NOT NULL DEFAULT '',
		gcash_number VARCHAR(50) NOT NULL DEFAULT '',
		join_date TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS payouts (
		id UUID PRIMARY KEY,
		affiliate_id VARCHAR(50) NOT NULL REFERENCES affiliates(id),
		affiliate_name VARCHAR(255) NOT NULL DEFAULT '',
		amount DOUBLE PRECISION NOT NULL,
		method VARCHAR(50) NOT NULL,
		account_name VARCHAR(255) NOT NULL DEFAULT '',
		account_number VARCHAR(100) NOT NULL DEFAULT '',
		status VARCHAR(20) NOT NULL,
		date_requested TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		date_processed TIMESTAMPTZ
	);

	CREATE INDEX IF NOT EXISTS idx_payouts_affiliate_id ON payouts(affiliate_id);

	CREATE TABLE IF NOT EXISTS customers (
		id VARCHAR(50) PRIMARY KEY,
		username VARCHAR(100) NOT NULL DEFAULT '',
		first_name VARCHAR(100) NOT NULL DEFAULT '',
		last_name VARCHAR(100) NOT NULL DEFAULT '',
		email VARCHAR(255) NOT NULL,
		mobile VARCHAR(50) NOT NULL DEFAULT '',
		join_date TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS settings (
		key VARCHAR(50) PRIMARY KEY,
		value JSONB NOT NULL
	);
`

// Migrate creates the storefront schema if it does not exist yet.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
