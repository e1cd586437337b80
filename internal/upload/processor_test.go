package upload

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"strings"
	"testing"

	"dito-store/internal/model"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testImagePNG renders a gradient so JPEG recompression has real content to
// work with.
func testImagePNG(t *testing.T, width, height int) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestProcessor_Process_ShrinksLargeImage(t *testing.T) {
	p := NewProcessor(zerolog.Nop())

	encoded := "data:image/png;base64," + testImagePNG(t, 1200, 800)
	out, err := p.Process(encoded)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(out, "data:image/jpeg;base64,"))
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(out, "data:image/jpeg;base64,"))
	require.NoError(t, err)

	img, err := imaging.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, MaxDimension, img.Bounds().Dx())
	assert.LessOrEqual(t, img.Bounds().Dy(), MaxDimension)
	assert.LessOrEqual(t, len(out), MaxEncodedLength)
}

func TestProcessor_Process_SmallImageKeepsDimensions(t *testing.T) {
	p := NewProcessor(zerolog.Nop())

	// Raw base64 without a data URI header is accepted too.
	out, err := p.Process(testImagePNG(t, 200, 150))
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(out, "data:image/jpeg;base64,"))
	require.NoError(t, err)

	img, err := imaging.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 150, img.Bounds().Dy())
}

func TestProcessor_Process_RejectsGarbage(t *testing.T) {
	p := NewProcessor(zerolog.Nop())

	// Every malformed payload is a domain error so the handler can answer 4xx.
	cases := []struct {
		name     string
		payload  string
		wantCode string
	}{
		{"empty", "", model.ErrCodeMissingField},
		{"data URI without base64 marker", "data:image/png;not-base64-at-all", model.ErrCodeInvalidProof},
		{"invalid base64", "!!!not-base64!!!", model.ErrCodeInvalidProof},
		{"not an image", base64.StdEncoding.EncodeToString([]byte("not an image")), model.ErrCodeInvalidProof},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := p.Process(tc.payload)
			require.Error(t, err)
			var domainErr *model.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, tc.wantCode, domainErr.Code)
		})
	}
}

func TestFileStorage_Save(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStorage(dir, zerolog.Nop())
	require.NoError(t, err)

	location, err := store.Save(context.Background(), "proof-123.jpg", []byte("jpeg bytes"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "proof-123.jpg"), location)

	// Path traversal in the name is flattened to the base name.
	location, err = store.Save(context.Background(), "../../etc/passwd", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "passwd"), location)
}

func TestFallbackStorage_UsesFileWhenS3Disabled(t *testing.T) {
	dir := t.TempDir()
	fileStore, err := NewFileStorage(dir, zerolog.Nop())
	require.NoError(t, err)

	store := NewFallbackStorage(nil, fileStore, false, zerolog.Nop())
	location, err := store.Save(context.Background(), "proof.jpg", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "proof.jpg"), location)
}
