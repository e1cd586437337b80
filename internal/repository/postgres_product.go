package repository

import (
	"context"
	"fmt"

	"dito-store/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const productColumns = `
	id, name, subtitle, description, price, cost_price, category, image,
	gallery, specs, features, sku, stock, min_stock_level, bulk_discounts,
	commission_type, commission_value, created_at, updated_at
`

// postgresProductRepository implements ProductRepository using PostgreSQL.
type postgresProductRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPostgresProductRepository creates a PostgreSQL-backed product repository.
func NewPostgresProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &postgresProductRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

func (r *postgresProductRepository) GetAll(ctx context.Context, limit, offset int) ([]model.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products
		ORDER BY name
		LIMIT $1 OFFSET $2
	`, productColumns)
	if limit <= 0 {
		limit = 1000
	}

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		r.logger.Error().Err(err).
			Int("limit", limit).
			Int("offset", offset).
			Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *postgresProductRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products
		WHERE id = $1
	`, productColumns)

	var p model.Product
	err := scanProduct(r.pool.QueryRow(ctx, query, id), &p)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return &p, nil
}

func (r *postgresProductRepository) GetByIDs(ctx context.Context, ids []string) ([]model.Product, error) {
	if len(ids) == 0 {
		return []model.Product{}, nil
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM products
		WHERE id = ANY($1)
		ORDER BY name
	`, productColumns)

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		r.logger.Error().Err(err).Int("count", len(ids)).Msg("failed to query products by IDs")
		return nil, fmt.Errorf("failed to query products by IDs: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *postgresProductRepository) Upsert(ctx context.Context, p *model.Product) error {
	query := `
		INSERT INTO products (
			id, name, subtitle, description, price, cost_price, category, image,
			gallery, specs, features, sku, stock, min_stock_level, bulk_discounts,
			commission_type, commission_value, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			subtitle = EXCLUDED.subtitle,
			description = EXCLUDED.description,
			price = EXCLUDED.price,
			cost_price = EXCLUDED.cost_price,
			category = EXCLUDED.category,
			image = EXCLUDED.image,
			gallery = EXCLUDED.gallery,
			specs = EXCLUDED.specs,
			features = EXCLUDED.features,
			sku = EXCLUDED.sku,
			stock = EXCLUDED.stock,
			min_stock_level = EXCLUDED.min_stock_level,
			bulk_discounts = EXCLUDED.bulk_discounts,
			commission_type = EXCLUDED.commission_type,
			commission_value = EXCLUDED.commission_value,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.pool.Exec(ctx, query,
		p.ID, p.Name, p.Subtitle, p.Description, p.Price, p.CostPrice, p.Category, p.Image,
		p.Gallery, p.Specs, p.Features, p.SKU, p.Stock, p.MinStockLevel, p.BulkDiscounts,
		p.CommissionType, p.CommissionValue, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", p.ID).Msg("failed to upsert product")
		return fmt.Errorf("failed to upsert product: %w", err)
	}

	return nil
}

func (r *postgresProductRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrProductNotFound
	}

	return nil
}

func (r *postgresProductRepository) DecrementStock(ctx context.Context, decrements []model.StockDecrement) error {
	if len(decrements) == 0 {
		return nil
	}

	query := `
		UPDATE products
		SET stock = GREATEST(stock - $2, 0), updated_at = NOW()
		WHERE id = $1
	`

	batch := &pgx.Batch{}
	for _, d := range decrements {
		batch.Queue(query, d.ProductID, d.Quantity)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < len(decrements); i++ {
		if _, err := results.Exec(); err != nil {
			r.logger.Error().Err(err).
				Str("product_id", decrements[i].ProductID).
				Msg("failed to decrement stock")
			return fmt.Errorf("failed to decrement stock: %w", err)
		}
	}

	return nil
}

func (r *postgresProductRepository) LowStock(ctx context.Context) ([]model.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products
		WHERE min_stock_level > 0 AND stock <= min_stock_level
		ORDER BY stock
	`, productColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query low stock products")
		return nil, fmt.Errorf("failed to query low stock products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

func scanProduct(row pgx.Row, p *model.Product) error {
	return row.Scan(
		&p.ID, &p.Name, &p.Subtitle, &p.Description, &p.Price, &p.CostPrice, &p.Category, &p.Image,
		&p.Gallery, &p.Specs, &p.Features, &p.SKU, &p.Stock, &p.MinStockLevel, &p.BulkDiscounts,
		&p.CommissionType, &p.CommissionValue, &p.CreatedAt, &p.UpdatedAt,
	)
}

func scanProducts(rows pgx.Rows) ([]model.Product, error) {
	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}
