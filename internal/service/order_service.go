package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dito-store/internal/cart"
	"dito-store/internal/commission"
	"dito-store/internal/model"
	"dito-store/internal/repository"
	"dito-store/internal/shipping"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo     repository.OrderRepository
	productRepo   repository.ProductRepository
	affiliateRepo repository.AffiliateRepository
	settingsRepo  repository.SettingsRepository
	carts         *cart.Manager
	logger        zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	affiliateRepo repository.AffiliateRepository,
	settingsRepo repository.SettingsRepository,
	carts *cart.Manager,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:     orderRepo,
		productRepo:   productRepo,
		affiliateRepo: affiliateRepo,
		settingsRepo:  settingsRepo,
		carts:         carts,
		logger:        logger.With().Str("service", "order").Logger(),
	}
}

// Checkout converts a cart into a placed order. The cart's discounted
// subtotal plus the resolved shipping fee becomes the order total; commission
// is computed once here and stored immutably on the order.
func (s *orderService) Checkout(ctx context.Context, req *model.CheckoutRequest) (*model.Order, error) {
	if err := validateCheckoutRequest(req); err != nil {
		return nil, err
	}

	// Freeze the cart lines under the manager lock.
	var items []model.OrderItem
	var subtotal float64
	var itemCount int
	found := s.carts.With(req.CartID, func(c *cart.Cart) {
		items = c.OrderItems()
		totals := c.Totals()
		subtotal = totals.Subtotal
		itemCount = totals.ItemCount
	})
	if !found {
		return nil, model.ErrCartNotFound
	}
	if len(items) == 0 {
		return nil, model.ErrEmptyCart
	}

	productIDs := make([]string, len(items))
	decrements := make([]model.StockDecrement, len(items))
	for i, item := range items {
		productIDs[i] = item.ProductID
		decrements[i] = model.StockDecrement{ProductID: item.ProductID, Quantity: item.Quantity}
	}

	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load products for checkout")
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	if len(products) != len(productIDs) {
		s.logger.Warn().
			Int("expected", len(productIDs)).
			Int("found", len(products)).
			Msg("cart references missing products")
		return nil, model.ErrProductNotFound
	}

	shippingCfg, err := s.settingsRepo.Shipping(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load shipping settings")
		return nil, fmt.Errorf("failed to load shipping settings: %w", err)
	}
	quote := shipping.ResolveFee(subtotal, req.ShippingDetails.Province, req.ShippingDetails.City, shippingCfg)

	// An unknown referral ID places the order without attribution.
	referralID := strings.TrimSpace(req.ReferralID)
	if referralID != "" {
		affiliate, err := s.affiliateRepo.GetByID(ctx, referralID)
		if err != nil {
			s.logger.Error().Err(err).Str("affiliate_id", referralID).Msg("failed to load referral affiliate")
			return nil, fmt.Errorf("failed to load affiliate: %w", err)
		}
		if affiliate == nil {
			s.logger.Warn().Str("affiliate_id", referralID).Msg("unknown referral ID, placing order without attribution")
			referralID = ""
		}
	}

	// Products with blank commission columns carry no rule; leaving them out
	// of the lookup lets the percentage default apply.
	rules := make(map[string]commission.Rule, len(products))
	for _, p := range products {
		if p.CommissionType == "" && p.CommissionValue == 0 {
			continue
		}
		rules[p.ID] = commission.Rule{Type: p.CommissionType, Value: p.CommissionValue}
	}
	commissionAmount := commission.Calculate(items, referralID, func(productID string) (commission.Rule, bool) {
		r, ok := rules[productID]
		return r, ok
	})

	now := time.Now().UTC()
	details := req.ShippingDetails
	order := &model.Order{
		ID:              uuid.New(),
		Number:          newOrderNumber(now),
		Customer:        strings.TrimSpace(details.FirstName + " " + details.LastName),
		Total:           subtotal + quote.Fee,
		ShippingFee:     quote.Fee,
		Status:          model.OrderPending,
		Items:           itemCount,
		OrderItems:      items,
		ReferralID:      referralID,
		Commission:      commissionAmount,
		PaymentMethod:   req.PaymentMethod,
		ProofOfPayment:  req.ProofOfPayment,
		ShippingDetails: &details,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.orderRepo.Create(ctx, order, decrements); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to create order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// The merchandise value counts toward the affiliate's sales volume at
	// placement; the commission itself waits for delivery.
	if referralID != "" {
		if err := s.affiliateRepo.AddSales(ctx, referralID, subtotal); err != nil {
			s.logger.Error().Err(err).
				Str("order_id", order.ID.String()).
				Str("affiliate_id", referralID).
				Msg("failed to record referred sales volume")
		}
	}

	s.carts.With(req.CartID, func(c *cart.Cart) { c.Clear() })

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("number", order.Number).
		Float64("total", order.Total).
		Str("referral_id", referralID).
		Msg("order placed")

	return order, nil
}

func (s *orderService) QuoteShipping(ctx context.Context, req *model.ShippingQuoteRequest) (*model.ShippingQuote, error) {
	cfg, err := s.settingsRepo.Shipping(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load shipping settings")
		return nil, fmt.Errorf("failed to load shipping settings: %w", err)
	}

	quote := shipping.ResolveFee(req.Subtotal, req.Province, req.City, cfg)
	return &quote, nil
}

func (s *orderService) GetAll(ctx context.Context) ([]model.Order, error) {
	orders, err := s.orderRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (s *orderService) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

// UpdateStatus moves an order between states. The transition into Delivered
// credits the referral commission; the paid flag on the order makes repeat
// transitions a no-op, and a later demotion does not claw the credit back.
func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (*model.Order, error) {
	if !model.ValidOrderStatus(status) {
		return nil, model.ErrInvalidStatus
	}

	order, previous, err := s.orderRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		if err == model.ErrOrderNotFound {
			return nil, err
		}
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to update order status")
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	if status == model.OrderDelivered && order.ReferralID != "" {
		amount := order.Commission
		if amount <= 0 {
			amount = commission.DeliveredFallback(order.Total, order.ShippingFee)
		}

		credited, err := s.orderRepo.CreditCommission(ctx, id, order.ReferralID, amount)
		if err != nil {
			s.logger.Error().Err(err).
				Str("order_id", id.String()).
				Str("affiliate_id", order.ReferralID).
				Msg("failed to credit commission")
			return nil, fmt.Errorf("failed to credit commission: %w", err)
		}
		if credited {
			order.CommissionPaid = true
			s.logger.Info().
				Str("order_id", id.String()).
				Str("affiliate_id", order.ReferralID).
				Float64("amount", amount).
				Msg("commission credited on delivery")
		}
	}

	s.logger.Info().
		Str("order_id", id.String()).
		Str("from", string(previous)).
		Str("to", string(status)).
		Msg("order status updated")

	return order, nil
}

func (s *orderService) SetFulfillment(ctx context.Context, id uuid.UUID, req *model.FulfillmentRequest) error {
	if err := s.orderRepo.SetFulfillment(ctx, id, req.Courier, req.TrackingNumber); err != nil {
		if err == model.ErrOrderNotFound {
			return err
		}
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to set fulfillment")
		return fmt.Errorf("failed to set fulfillment: %w", err)
	}
	return nil
}

func (s *orderService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.orderRepo.Delete(ctx, id); err != nil {
		if err == model.ErrOrderNotFound {
			return err
		}
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to delete order")
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}

func validateCheckoutRequest(req *model.CheckoutRequest) error {
	if req == nil || req.CartID == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "Cart ID is required")
	}
	if strings.TrimSpace(req.ShippingDetails.FirstName) == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "Shipping first name is required")
	}
	if strings.TrimSpace(req.ShippingDetails.Mobile) == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "Shipping mobile number is required")
	}
	if strings.TrimSpace(req.PaymentMethod) == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "Payment method is required")
	}
	return nil
}

// newOrderNumber derives a human-readable order reference. Uniqueness comes
// from the order UUID; the number is for support conversations.
func newOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(uuid.NewString()[:8])
	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), suffix)
}
