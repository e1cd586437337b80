package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the fulfillment state of an order. The conceptual progression
// is Pending -> Processing -> Shipped -> Delivered, but admins may set any
// state directly.
type OrderStatus string

const (
	OrderPending    OrderStatus = "Pending"
	OrderProcessing OrderStatus = "Processing"
	OrderShipped    OrderStatus = "Shipped"
	OrderDelivered  OrderStatus = "Delivered"
)

// ValidOrderStatus reports whether s is one of the known order states.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered:
		return true
	}
	return false
}

// ShippingDetails is the destination address captured at checkout.
type ShippingDetails struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Mobile    string `json:"mobile"`
	Street    string `json:"street"`
	Province  string `json:"province"`
	City      string `json:"city"`
	Barangay  string `json:"barangay"`
	ZipCode   string `json:"zipCode"`
}

// OrderItem is a frozen copy of a product line at placement time. It is
// deliberately decoupled from the live Product record.
type OrderItem struct {
	ProductID string  `json:"productId" db:"product_id"`
	Name      string  `json:"name" db:"name"`
	Quantity  int     `json:"quantity" db:"quantity"`
	Price     float64 `json:"price" db:"price"`
}

// Order represents a placed customer order.
type Order struct {
	ID              uuid.UUID        `json:"id" db:"id"`
	Number          string           `json:"number" db:"number"`
	Customer        string           `json:"customer" db:"customer"`
	Total           float64          `json:"total" db:"total"`
	ShippingFee     float64          `json:"shippingFee" db:"shipping_fee"`
	Status          OrderStatus      `json:"status" db:"status"`
	Items           int              `json:"items" db:"items"`
	OrderItems      []OrderItem      `json:"orderItems" db:"order_items"`
	ReferralID      string           `json:"referralId,omitempty" db:"referral_id"`
	Commission      float64          `json:"commission" db:"commission"`
	CommissionPaid  bool             `json:"commissionPaid" db:"commission_paid"`
	PaymentMethod   string           `json:"paymentMethod" db:"payment_method"`
	ProofOfPayment  string           `json:"proofOfPayment,omitempty" db:"proof_of_payment"`
	ShippingDetails *ShippingDetails `json:"shippingDetails,omitempty" db:"shipping_details"`
	Courier         string           `json:"courier,omitempty" db:"courier"`
	TrackingNumber  string           `json:"trackingNumber,omitempty" db:"tracking_number"`
	CreatedAt       time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time        `json:"updatedAt" db:"updated_at"`
}

// Subtotal is the merchandise total with discounts already netted in.
func (o *Order) Subtotal() float64 {
	return o.Total - o.ShippingFee
}

// CheckoutRequest is the payload for placing an order from a cart.
type CheckoutRequest struct {
	CartID          string          `json:"cartId"`
	ShippingDetails ShippingDetails `json:"shippingDetails"`
	PaymentMethod   string          `json:"paymentMethod"`
	ReferralID      string          `json:"referralId,omitempty"`
	ProofOfPayment  string          `json:"proofOfPayment,omitempty"`
}

// StatusUpdateRequest is the admin payload for moving an order between states.
type StatusUpdateRequest struct {
	Status OrderStatus `json:"status"`
}

// FulfillmentRequest is the admin payload for courier assignment.
type FulfillmentRequest struct {
	Courier        string `json:"courier"`
	TrackingNumber string `json:"trackingNumber"`
}

// ShippingQuoteRequest asks for a provisional fee before checkout.
type ShippingQuoteRequest struct {
	Subtotal float64 `json:"subtotal"`
	Province string  `json:"province"`
	City     string  `json:"city"`
}

// ShippingQuote is the resolved fee for a destination.
type ShippingQuote struct {
	Fee          float64 `json:"fee"`
	FreeShipping bool    `json:"freeShipping"`
	Zone         string  `json:"zone,omitempty"`
	Days         string  `json:"days,omitempty"`
}
