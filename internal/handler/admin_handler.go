package handler

import (
	"net/http"

	"dito-store/internal/model"
	"dito-store/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AdminHandler handles back-office HTTP requests: payout resolution, store
// settings and customer accounts.
type AdminHandler struct {
	payouts   service.PayoutService
	settings  service.SettingsService
	customers service.CustomerService
	logger    zerolog.Logger
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(
	payouts service.PayoutService,
	settings service.SettingsService,
	customers service.CustomerService,
	logger zerolog.Logger,
) *AdminHandler {
	return &AdminHandler{
		payouts:   payouts,
		settings:  settings,
		customers: customers,
		logger:    logger.With().Str("handler", "admin").Logger(),
	}
}

// GetPayouts handles GET /api/admin/payouts requests.
func (h *AdminHandler) GetPayouts(w http.ResponseWriter, r *http.Request) {
	payouts, err := h.payouts.GetAll(r.Context())
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	if payouts == nil {
		payouts = []model.PayoutRequest{}
	}

	writeJSON(w, http.StatusOK, payouts)
}

// ResolvePayout handles PUT /api/admin/payouts/{id} requests.
func (h *AdminHandler) ResolvePayout(w http.ResponseWriter, r *http.Request, rawID string) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "invalid payout ID format", h.logger)
		return
	}

	var req struct {
		Status model.PayoutStatus `json:"status"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	payout, err := h.payouts.Resolve(r.Context(), id, req.Status)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, payout)
}

// Settings handles GET and PUT on /api/admin/settings/{group}.
func (h *AdminHandler) Settings(w http.ResponseWriter, r *http.Request, group string) {
	switch group {
	case "shipping":
		h.shippingSettings(w, r)
	case "payment":
		h.paymentSettings(w, r)
	case "smtp":
		h.smtpSettings(w, r)
	default:
		writeError(w, http.StatusNotFound, model.ErrCodeMissingField, "unknown settings group", h.logger)
	}
}

func (h *AdminHandler) shippingSettings(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		cfg, err := h.settings.Shipping(r.Context())
		if err != nil {
			writeDomainError(w, err, h.logger)
			return
		}
		writeJSON(w, http.StatusOK, cfg)
		return
	}

	var cfg model.ShippingSettings
	if err := decodeBody(r, &cfg); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	saved, err := h.settings.SaveShipping(r.Context(), cfg)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (h *AdminHandler) paymentSettings(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		cfg, err := h.settings.Payment(r.Context())
		if err != nil {
			writeDomainError(w, err, h.logger)
			return
		}
		writeJSON(w, http.StatusOK, cfg)
		return
	}

	var cfg model.PaymentSettings
	if err := decodeBody(r, &cfg); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	saved, err := h.settings.SavePayment(r.Context(), cfg)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (h *AdminHandler) smtpSettings(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		cfg, err := h.settings.SMTP(r.Context())
		if err != nil {
			writeDomainError(w, err, h.logger)
			return
		}
		writeJSON(w, http.StatusOK, cfg)
		return
	}

	var cfg model.SMTPSettings
	if err := decodeBody(r, &cfg); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	saved, err := h.settings.SaveSMTP(r.Context(), cfg)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// GetCustomers handles GET /api/admin/customers requests.
func (h *AdminHandler) GetCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customers.GetAll(r.Context())
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	if customers == nil {
		customers = []model.Customer{}
	}

	writeJSON(w, http.StatusOK, customers)
}

// DeleteCustomer handles DELETE /api/admin/customers/{email} requests, with
// the email also accepted as a query parameter for older clients.
func (h *AdminHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request, email string) {
	if email == "" {
		email = r.URL.Query().Get("email")
	}
	if email == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "email is required", h.logger)
		return
	}

	if err := h.customers.DeleteByEmail(r.Context(), email); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"deleted": email})
}
