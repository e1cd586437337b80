package handler

import (
	"net/http"

	"dito-store/internal/model"
	"dito-store/internal/service"

	"github.com/rs/zerolog"
)

// AffiliateHandler handles affiliate programme HTTP requests.
type AffiliateHandler struct {
	affiliates service.AffiliateService
	payouts    service.PayoutService
	logger     zerolog.Logger
}

// NewAffiliateHandler creates a new affiliate handler.
func NewAffiliateHandler(affiliates service.AffiliateService, payouts service.PayoutService, logger zerolog.Logger) *AffiliateHandler {
	return &AffiliateHandler{
		affiliates: affiliates,
		payouts:    payouts,
		logger:     logger.With().Str("handler", "affiliate").Logger(),
	}
}

// Register handles POST /api/affiliates requests.
func (h *AffiliateHandler) Register(w http.ResponseWriter, r *http.Request) {
	var a model.Affiliate
	if err := decodeBody(r, &a); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	created, err := h.affiliates.Register(r.Context(), &a)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// Dashboard handles GET /api/affiliates/{id}/dashboard requests.
func (h *AffiliateHandler) Dashboard(w http.ResponseWriter, r *http.Request, id string) {
	dash, err := h.affiliates.Dashboard(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, dash)
}

// Click handles POST /api/referrals/{id}/click requests.
func (h *AffiliateHandler) Click(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.affiliates.RecordClick(r.Context(), id); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"referralId": id})
}

// RequestPayout handles POST /api/payouts requests.
func (h *AffiliateHandler) RequestPayout(w http.ResponseWriter, r *http.Request) {
	var input model.PayoutRequestInput
	if err := decodeBody(r, &input); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	payout, err := h.payouts.Request(r.Context(), &input)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, payout)
}

// GetAll handles GET /api/admin/affiliates requests.
func (h *AffiliateHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	affiliates, err := h.affiliates.GetAll(r.Context())
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	if affiliates == nil {
		affiliates = []model.Affiliate{}
	}

	writeJSON(w, http.StatusOK, affiliates)
}

// Update handles PUT /api/admin/affiliates/{id} requests.
func (h *AffiliateHandler) Update(w http.ResponseWriter, r *http.Request, id string) {
	var a model.Affiliate
	if err := decodeBody(r, &a); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	a.ID = id

	updated, err := h.affiliates.Update(r.Context(), &a)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}
