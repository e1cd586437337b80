package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dito-store/internal/model"
	"dito-store/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// catalogService implements CatalogService.
type catalogService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(productRepo repository.ProductRepository, logger zerolog.Logger) CatalogService {
	return &catalogService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "catalog").Logger(),
	}
}

func (s *catalogService) GetAll(ctx context.Context, limit, offset int) ([]model.Product, error) {
	products, err := s.productRepo.GetAll(ctx, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *catalogService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	p, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to get product")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return p, nil
}

// Save creates or replaces a product. Missing IDs are generated; commission
// defaults to the store-wide percentage when the type is left blank.
func (s *catalogService) Save(ctx context.Context, p *model.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "Product name is required")
	}
	if p.Price < 0 {
		return model.NewDomainError(model.ErrCodeMissingField, "Product price cannot be negative")
	}
	if p.Stock < 0 {
		p.Stock = 0
	}
	for _, tier := range p.BulkDiscounts {
		if tier.MinQty < 1 || tier.Percentage < 0 || tier.Percentage > 100 {
			return model.NewDomainError(model.ErrCodeMissingField, "Bulk discount tiers need minQty >= 1 and a percentage between 0 and 100")
		}
	}

	now := time.Now().UTC()
	if p.ID == "" {
		p.ID = uuid.NewString()
		p.CreatedAt = now
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	if p.CommissionType == "" {
		p.CommissionType = model.CommissionPercentage
		if p.CommissionValue == 0 {
			p.CommissionValue = model.DefaultCommissionPercentage
		}
	}

	if err := s.productRepo.Upsert(ctx, p); err != nil {
		s.logger.Error().Err(err).Str("product_id", p.ID).Msg("failed to save product")
		return fmt.Errorf("failed to save product: %w", err)
	}

	s.logger.Info().Str("product_id", p.ID).Str("name", p.Name).Msg("product saved")
	return nil
}

func (s *catalogService) Delete(ctx context.Context, id string) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		if err == model.ErrProductNotFound {
			return err
		}
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

func (s *catalogService) LowStock(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.LowStock(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to query low stock products")
		return nil, fmt.Errorf("failed to query low stock products: %w", err)
	}
	return products, nil
}
