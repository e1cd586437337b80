package service

import (
	"context"
	"fmt"

	"dito-store/internal/cart"
	"dito-store/internal/model"
	"dito-store/internal/repository"

	"github.com/rs/zerolog"
)

// cartService implements CartService over the in-memory cart manager.
type cartService struct {
	carts       *cart.Manager
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(carts *cart.Manager, productRepo repository.ProductRepository, logger zerolog.Logger) CartService {
	return &cartService{
		carts:       carts,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "cart").Logger(),
	}
}

func (s *cartService) Create(ctx context.Context) *CartView {
	c := s.carts.Create()
	s.logger.Debug().Str("cart_id", c.ID()).Msg("cart created")
	return viewOf(c)
}

func (s *cartService) Get(ctx context.Context, cartID string) (*CartView, error) {
	var view *CartView
	found := s.carts.With(cartID, func(c *cart.Cart) {
		view = viewOf(c)
	})
	if !found {
		return nil, model.ErrCartNotFound
	}
	return view, nil
}

// AddItem validates the product against live stock before the cart mutation.
func (s *cartService) AddItem(ctx context.Context, cartID, productID string) (*CartView, error) {
	p, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", productID).Msg("failed to load product for cart")
		return nil, fmt.Errorf("failed to load product: %w", err)
	}
	if p == nil {
		return nil, model.ErrProductNotFound
	}

	var view *CartView
	var added bool
	found := s.carts.With(cartID, func(c *cart.Cart) {
		added = c.AddItem(*p)
		view = viewOf(c)
	})
	if !found {
		return nil, model.ErrCartNotFound
	}
	if !added {
		return nil, model.ErrInsufficientStock
	}
	return view, nil
}

func (s *cartService) SetQuantity(ctx context.Context, cartID, productID string, qty int) (*CartView, error) {
	var view *CartView
	found := s.carts.With(cartID, func(c *cart.Cart) {
		c.SetQuantity(productID, qty)
		view = viewOf(c)
	})
	if !found {
		return nil, model.ErrCartNotFound
	}
	return view, nil
}

func (s *cartService) RemoveItem(ctx context.Context, cartID, productID string) (*CartView, error) {
	var view *CartView
	found := s.carts.With(cartID, func(c *cart.Cart) {
		c.RemoveItem(productID)
		view = viewOf(c)
	})
	if !found {
		return nil, model.ErrCartNotFound
	}
	return view, nil
}

func (s *cartService) Delete(ctx context.Context, cartID string) error {
	s.carts.Delete(cartID)
	return nil
}

func viewOf(c *cart.Cart) *CartView {
	totals := c.Totals()
	return &CartView{
		ID:             c.ID(),
		Items:          c.Items(),
		Subtotal:       totals.Subtotal,
		DiscountAmount: totals.DiscountAmount,
		ItemCount:      totals.ItemCount,
	}
}
