package handler

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dito-store/internal/model"
	"dito-store/internal/upload"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func proofPNG(t *testing.T) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 40, 30))
	for y := 0; y < 30; y++ {
		for x := 0; x < 40; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 6), G: uint8(y * 8), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestUploadHandler_Proof(t *testing.T) {
	logger := zerolog.Nop()
	h := NewUploadHandler(upload.NewProcessor(logger), nil, logger)

	tests := []struct {
		name           string
		image          string
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "Valid image",
			image:          "data:image/png;base64," + proofPNG(t),
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Missing image",
			image:          "",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeMissingField,
		},
		{
			name:           "Invalid base64",
			image:          "!!!not-base64!!!",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidProof,
		},
		{
			name:           "Data URI without base64 marker",
			image:          "data:image/png;not-base64-at-all",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidProof,
		},
		{
			name:           "Decodable base64 but not an image",
			image:          base64.StdEncoding.EncodeToString([]byte("not an image")),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidProof,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := json.Marshal(map[string]string{"image": tt.image})
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/api/uploads/proof", bytes.NewReader(body))
			w := httptest.NewRecorder()
			h.Proof(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedCode != "" {
				var resp model.ErrorResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.expectedCode, resp.Error)
				return
			}

			var resp map[string]string
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.True(t, strings.HasPrefix(resp["proofOfPayment"], "data:image/jpeg;base64,"))
		})
	}
}

func TestUploadHandler_Proof_InvalidJSON(t *testing.T) {
	logger := zerolog.Nop()
	h := NewUploadHandler(upload.NewProcessor(logger), nil, logger)

	req := httptest.NewRequest(http.MethodPost, "/api/uploads/proof", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	h.Proof(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
