package handler

import (
	"net/http"

	"dito-store/internal/model"
	"dito-store/internal/service"

	"github.com/rs/zerolog"
)

// CustomerHandler handles customer account HTTP requests.
type CustomerHandler struct {
	customers service.CustomerService
	logger    zerolog.Logger
}

// NewCustomerHandler creates a new customer handler.
func NewCustomerHandler(customers service.CustomerService, logger zerolog.Logger) *CustomerHandler {
	return &CustomerHandler{
		customers: customers,
		logger:    logger.With().Str("handler", "customer").Logger(),
	}
}

// Register handles POST /api/customers requests.
func (h *CustomerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var c model.Customer
	if err := decodeBody(r, &c); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	created, err := h.customers.Register(r.Context(), &c)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}
