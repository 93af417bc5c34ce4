// Package storage persists donation photos in an S3-compatible bucket
// (MinIO in development, R2 or S3 in production). All calls go through a
// circuit breaker so a slow object store cannot stall donation posting.
package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sony/gobreaker"

	"github.com/Lslreddy/surplus-to-success/pkg/config"
	"github.com/Lslreddy/surplus-to-success/pkg/logger"
)

const uploadTimeout = 10 * time.Second

// PhotoStore uploads donation photos and resolves their public URLs.
type PhotoStore struct {
	client  *s3.Client
	bucket  string
	baseURL string
	breaker *gobreaker.CircuitBreaker
	log     logger.Logger
}

// NewPhotoStore builds a PhotoStore against the configured S3-compatible
// endpoint. Path-style addressing is used because MinIO and R2 both expect it.
func NewPhotoStore(ctx context.Context, cfg *config.Config, log logger.Logger) (*PhotoStore, error) {
	scheme := "http"
	if cfg.StorageUseSSL {
		scheme = "https"
	}
	endpoint := fmt.Sprintf("%s://%s", scheme, cfg.StorageEndpoint)

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion("auto"),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.StorageAccessKey, cfg.StorageSecretKey, "",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("load storage config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	baseURL := cfg.PhotoBaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("%s/%s", endpoint, cfg.StorageBucket)
	}

	return &PhotoStore{
		client:  client,
		bucket:  cfg.StorageBucket,
		baseURL: baseURL,
		breaker: newBreaker(log),
		log:     log,
	}, nil
}

// newBreaker opens after 3 consecutive failures and probes again after 10s,
// keeping a flaky object store from queueing up donation posts behind it.
func newBreaker(log logger.Logger) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "photo-storage",
		MaxRequests: 3,
		Interval:    10 * time.Second,
		Timeout:     10 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state change", "name", name, "from", from.String(), "to", to.String())
		},
	})
}

// Upload stores body under key and returns the public photo URL.
// Fails fast with the breaker's ErrOpenState while the store is down.
func (p *PhotoStore) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	_, err := p.breaker.Execute(func() (any, error) {
		return p.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(p.bucket),
			Key:         aws.String(key),
			Body:        body,
			ContentType: aws.String(contentType),
		})
	})
	if err != nil {
		return "", fmt.Errorf("upload photo %s: %w", key, err)
	}

	return fmt.Sprintf("%s/%s", p.baseURL, key), nil
}

// Delete removes a stored photo. Best-effort — donation rows keep working
// with a dangling photo_url.
func (p *PhotoStore) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	_, err := p.breaker.Execute(func() (any, error) {
		return p.client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(p.bucket),
			Key:    aws.String(key),
		})
	})
	if err != nil {
		return fmt.Errorf("delete photo %s: %w", key, err)
	}
	return nil
}
