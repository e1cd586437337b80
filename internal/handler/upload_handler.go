package handler

import (
	"encoding/base64"
	"net/http"
	"strings"
	"time"

	"dito-store/internal/model"
	"dito-store/internal/upload"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// UploadHandler handles proof of payment uploads.
type UploadHandler struct {
	processor *upload.Processor
	storage   upload.Storage
	logger    zerolog.Logger
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(processor *upload.Processor, storage upload.Storage, logger zerolog.Logger) *UploadHandler {
	return &UploadHandler{
		processor: processor,
		storage:   storage,
		logger:    logger.With().Str("handler", "upload").Logger(),
	}
}

// Proof handles POST /api/uploads/proof requests. The image is shrunk and
// recompressed; the response carries the inline data URI for the order record
// plus the archived copy's location.
func (h *UploadHandler) Proof(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Image string `json:"image"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	if strings.TrimSpace(req.Image) == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "image is required", h.logger)
		return
	}

	processed, err := h.processor.Process(req.Image)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	location := ""
	if h.storage != nil {
		raw, decodeErr := base64.StdEncoding.DecodeString(strings.TrimPrefix(processed, "data:image/jpeg;base64,"))
		if decodeErr == nil {
			name := "proof-" + time.Now().UTC().Format("20060102T150405") + "-" + uuid.NewString()[:8] + ".jpg"
			loc, saveErr := h.storage.Save(r.Context(), name, raw)
			if saveErr != nil {
				// The inline copy is the source of truth; archival is best effort.
				h.logger.Warn().Err(saveErr).Msg("failed to archive proof image")
			} else {
				location = loc
			}
		}
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"proofOfPayment": processed,
		"location":       location,
	})
}
