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

// customerService implements CustomerService.
type customerService struct {
	customerRepo repository.CustomerRepository
	logger       zerolog.Logger
}

// NewCustomerService creates a new customer service.
func NewCustomerService(customerRepo repository.CustomerRepository, logger zerolog.Logger) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		logger:       logger.With().Str("service", "customer").Logger(),
	}
}

func (s *customerService) GetAll(ctx context.Context) ([]model.Customer, error) {
	customers, err := s.customerRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list customers")
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

func (s *customerService) Register(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	if strings.TrimSpace(c.Email) == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "Customer email is required")
	}

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Username == "" {
		c.Username = c.Email
	}
	if c.JoinDate.IsZero() {
		c.JoinDate = time.Now().UTC()
	}

	if err := s.customerRepo.Create(ctx, c); err != nil {
		s.logger.Error().Err(err).Str("customer_id", c.ID).Msg("failed to create customer")
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	s.logger.Info().Str("customer_id", c.ID).Msg("customer registered")
	return c, nil
}

func (s *customerService) DeleteByEmail(ctx context.Context, email string) error {
	if err := s.customerRepo.DeleteByEmail(ctx, email); err != nil {
		s.logger.Error().Err(err).Msg("failed to delete customer")
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	return nil
}
