package media

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/barberconnect/barberconnect-api/internal/config"
)

// Storage uploads processed photos to an S3-compatible bucket. A nil
// Storage (no bucket configured) disables photo uploads.
type Storage struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewStorage(cfg *config.Config) *Storage {
	if cfg.S3Bucket == "" {
		return nil
	}

	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		),
	}
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	baseURL := cfg.S3BaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}

	return &Storage{
		client:  s3.New(opts),
		bucket:  cfg.S3Bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (s *Storage) Upload(ctx context.Context, key string, data []byte) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", err
	}

	return s.baseURL + "/" + key, nil
}
