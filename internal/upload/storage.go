package upload

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Storage persists processed proof images and returns a reference for the
// order record.
type Storage interface {
	// Save writes the image bytes under the given name and returns the
	// stored location.
	Save(ctx context.Context, name string, data []byte) (string, error)
}

// fileStorage implements Storage on the local file system.
type fileStorage struct {
	dir    string
	logger zerolog.Logger
}

// NewFileStorage creates a local file system storage rooted at dir.
func NewFileStorage(dir string, logger zerolog.Logger) (Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}

	return &fileStorage{
		dir:    dir,
		logger: logger.With().Str("component", "file-storage").Logger(),
	}, nil
}

func (s *fileStorage) Save(ctx context.Context, name string, data []byte) (string, error) {
	path := filepath.Join(s.dir, filepath.Base(name))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		s.logger.Error().Err(err).Str("path", path).Msg("failed to write upload")
		return "", fmt.Errorf("failed to write upload %s: %w", path, err)
	}

	s.logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("upload stored")
	return path, nil
}
