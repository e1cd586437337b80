// Package upload processes and stores customer-submitted proof of payment
// images. Images are shrunk and recompressed so the encoded result fits the
// storage budget of a spreadsheet cell.
package upload

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"

	"dito-store/internal/model"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"
)

const (
	// MaxDimension is the longest edge of a stored proof image in pixels.
	MaxDimension = 600

	// JPEGQuality is the recompression quality for stored proofs.
	JPEGQuality = 60

	// MaxEncodedLength caps the base64 payload. A spreadsheet cell holds
	// 50,000 characters; the data URI header leaves a little slack.
	MaxEncodedLength = 50_000
)

// Processor normalises proof of payment images.
type Processor struct {
	logger zerolog.Logger
}

// NewProcessor creates a proof image processor.
func NewProcessor(logger zerolog.Logger) *Processor {
	return &Processor{logger: logger.With().Str("component", "proof-processor").Logger()}
}

// Process decodes a base64 proof image (with or without a data URI header),
// shrinks it to MaxDimension on the longest edge, recompresses it as JPEG and
// returns the result as a data URI. Fails with model.ErrProofTooLarge when
// even the recompressed image exceeds the storage cap.
func (p *Processor) Process(encoded string) (string, error) {
	raw, err := decodePayload(encoded)
	if err != nil {
		return "", err
	}

	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		p.logger.Warn().Err(err).Int("bytes", len(raw)).Msg("proof image failed to decode")
		return "", model.ErrInvalidProof
	}

	bounds := img.Bounds()
	if bounds.Dx() > MaxDimension || bounds.Dy() > MaxDimension {
		img = imaging.Fit(img, MaxDimension, MaxDimension, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(JPEGQuality)); err != nil {
		return "", fmt.Errorf("failed to encode proof image: %w", err)
	}

	out := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
	if len(out) > MaxEncodedLength {
		p.logger.Warn().
			Int("encoded_length", len(out)).
			Int("limit", MaxEncodedLength).
			Msg("proof image exceeds storage cap after recompression")
		return "", model.ErrProofTooLarge
	}

	p.logger.Debug().
		Int("width", img.Bounds().Dx()).
		Int("height", img.Bounds().Dy()).
		Int("encoded_length", len(out)).
		Msg("proof image processed")

	return out, nil
}

// decodePayload strips an optional data URI header and base64-decodes the
// rest. Malformed payloads are the client's fault and surface as a domain
// error.
func decodePayload(encoded string) ([]byte, error) {
	payload := strings.TrimSpace(encoded)
	if payload == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "Proof of payment image is required")
	}

	if strings.HasPrefix(payload, "data:") {
		idx := strings.Index(payload, "base64,")
		if idx < 0 {
			return nil, model.NewDomainError(model.ErrCodeInvalidProof, "Proof of payment data URI is not base64 encoded")
		}
		payload = payload[idx+len("base64,"):]
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, model.NewDomainError(model.ErrCodeInvalidProof, "Proof of payment is not valid base64")
	}
	return raw, nil
}
