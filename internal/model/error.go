package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON        = "INVALID_JSON"
	ErrCodeMissingField       = "MISSING_FIELD"
	ErrCodeProductNotFound    = "PRODUCT_NOT_FOUND"
	ErrCodeOrderNotFound      = "ORDER_NOT_FOUND"
	ErrCodeCartNotFound       = "CART_NOT_FOUND"
	ErrCodeAffiliateNotFound  = "AFFILIATE_NOT_FOUND"
	ErrCodePayoutNotFound     = "PAYOUT_NOT_FOUND"
	ErrCodeInvalidQuantity    = "INVALID_QUANTITY"
	ErrCodeInsufficientStock  = "INSUFFICIENT_STOCK"
	ErrCodeEmptyCart          = "EMPTY_CART"
	ErrCodeInvalidStatus      = "INVALID_STATUS"
	ErrCodeBelowMinimumPayout = "BELOW_MINIMUM_PAYOUT"
	ErrCodeInsufficientFunds  = "INSUFFICIENT_FUNDS"
	ErrCodePayoutResolved     = "PAYOUT_ALREADY_RESOLVED"
	ErrCodeInvalidProof       = "INVALID_PROOF"
	ErrCodeProofTooLarge      = "PROOF_TOO_LARGE"
	ErrCodeUnauthorised       = "UNAUTHORIZED"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound   = NewDomainError(ErrCodeProductNotFound, "One or more products not found")
	ErrOrderNotFound     = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrCartNotFound      = NewDomainError(ErrCodeCartNotFound, "Cart not found")
	ErrAffiliateNotFound = NewDomainError(ErrCodeAffiliateNotFound, "Affiliate not found")
	ErrPayoutNotFound    = NewDomainError(ErrCodePayoutNotFound, "Payout request not found")
	ErrInvalidQuantity   = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrInsufficientStock = NewDomainError(ErrCodeInsufficientStock, "Requested quantity exceeds available stock")
	ErrEmptyCart         = NewDomainError(ErrCodeEmptyCart, "Cart has no items")
	ErrInvalidStatus     = NewDomainError(ErrCodeInvalidStatus, "Unknown order status")
	ErrBelowMinimum      = NewDomainError(ErrCodeBelowMinimumPayout, "Minimum payout is 100")
	ErrInsufficientFunds = NewDomainError(ErrCodeInsufficientFunds, "Payout amount exceeds wallet balance")
	ErrPayoutResolved    = NewDomainError(ErrCodePayoutResolved, "Payout request has already been resolved")
	ErrInvalidProof      = NewDomainError(ErrCodeInvalidProof, "Proof of payment is not a readable image")
	ErrProofTooLarge     = NewDomainError(ErrCodeProofTooLarge, "Proof of payment exceeds the storage size limit")
)
