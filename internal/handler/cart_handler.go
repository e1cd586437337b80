package handler

import (
	"net/http"
	"strings"

	"dito-store/internal/model"
	"dito-store/internal/service"

	"github.com/rs/zerolog"
)

// CartHandler handles session cart HTTP requests.
type CartHandler struct {
	carts  service.CartService
	logger zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(carts service.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		carts:  carts,
		logger: logger.With().Str("handler", "cart").Logger(),
	}
}

// Create handles POST /api/carts requests.
func (h *CartHandler) Create(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusCreated, h.carts.Create(r.Context()))
}

// Get handles GET /api/carts/{id} requests.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request, cartID string) {
	view, err := h.carts.Get(r.Context(), cartID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Delete handles DELETE /api/carts/{id} requests.
func (h *CartHandler) Delete(w http.ResponseWriter, r *http.Request, cartID string) {
	if err := h.carts.Delete(r.Context(), cartID); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"deleted": cartID})
}

// AddItem handles POST /api/carts/{id}/items requests.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request, cartID string) {
	var req struct {
		ProductID string `json:"productId"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	if strings.TrimSpace(req.ProductID) == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "productId is required", h.logger)
		return
	}

	view, err := h.carts.AddItem(r.Context(), cartID, req.ProductID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// UpdateItem handles PUT /api/carts/{id}/items/{productID} requests.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request, cartID, productID string) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	view, err := h.carts.SetQuantity(r.Context(), cartID, productID, req.Quantity)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// RemoveItem handles DELETE /api/carts/{id}/items/{productID} requests.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request, cartID, productID string) {
	view, err := h.carts.RemoveItem(r.Context(), cartID, productID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, view)
}
