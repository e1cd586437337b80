package upload

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// s3Storage implements Storage for writing proof images to AWS S3.
type s3Storage struct {
	client *s3.Client
	bucket string
	prefix string
	logger zerolog.Logger
}

// NewS3Storage creates an S3-based upload storage.
func NewS3Storage(ctx context.Context, bucket, region, prefix string, logger zerolog.Logger) (Storage, error) {
	logger = logger.With().Str("component", "s3-storage").Logger()

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := s3.NewFromConfig(cfg)

	logger.Info().
		Str("bucket", bucket).
		Str("region", region).
		Str("prefix", prefix).
		Msg("S3 storage initialised")

	return &s3Storage{
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: logger,
	}, nil
}

func (s *s3Storage) Save(ctx context.Context, name string, data []byte) (string, error) {
	key := path.Join(s.prefix, path.Base(name))

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/jpeg"),
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("bucket", s.bucket).
			Str("key", key).
			Msg("failed to put object to S3")
		return "", fmt.Errorf("failed to put object to S3 (bucket=%s, key=%s): %w", s.bucket, key, err)
	}

	location := fmt.Sprintf("s3://%s/%s", s.bucket, key)
	s.logger.Debug().Str("location", location).Int("bytes", len(data)).Msg("upload stored in S3")
	return location, nil
}

// fallbackStorage tries S3 first, then falls back to the local file system.
type fallbackStorage struct {
	s3Storage   Storage
	fileStorage Storage
	s3Enabled   bool
	logger      zerolog.Logger
}

// NewFallbackStorage creates a storage that tries S3 first, then falls back
// to the local file system. If s3Storage is nil only the file storage is used.
func NewFallbackStorage(s3Storage, fileStorage Storage, s3Enabled bool, logger zerolog.Logger) Storage {
	return &fallbackStorage{
		s3Storage:   s3Storage,
		fileStorage: fileStorage,
		s3Enabled:   s3Enabled,
		logger:      logger.With().Str("component", "fallback-storage").Logger(),
	}
}

func (s *fallbackStorage) Save(ctx context.Context, name string, data []byte) (string, error) {
	if s.s3Enabled && s.s3Storage != nil {
		location, err := s.s3Storage.Save(ctx, name, data)
		if err == nil {
			return location, nil
		}

		s.logger.Warn().
			Err(err).
			Str("name", name).
			Msg("failed to store upload in S3, falling back to local file system")
	}

	return s.fileStorage.Save(ctx, name, data)
}
