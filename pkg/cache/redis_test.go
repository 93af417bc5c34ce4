package cache

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Lslreddy/surplus-to-success/pkg/config"
)

func newTestConfig(url string) *config.Config {
	return &config.Config{
		RedisURL: url,
	}
}

func TestNewRedisClient_InvalidURL(t *testing.T) {
	_, err := NewRedisClient(newTestConfig("not-a-valid-url"))
	if err == nil {
		t.Fatal("expected error for invalid URL, got nil")
	}
}

func TestNewRedisClient_UnreachableHost(t *testing.T) {
	_, err := NewRedisClient(newTestConfig("redis://localhost:19999"))
	if err == nil {
		t.Fatal("expected error when Redis is unreachable, got nil")
	}
}

// Integration tests — skipped unless REDIS_URL is set.
func TestRedisIntegration(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}

	t.Run("Ping_Success", func(t *testing.T) {
		rc, err := NewRedisClient(newTestConfig(redisURL))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer rc.Close() //nolint:errcheck

		if err := rc.Ping(context.Background()); err != nil {
			t.Fatalf("Ping failed: %v", err)
		}
	})

	t.Run("DonationCache_RoundTrip", func(t *testing.T) {
		rc, err := NewRedisClient(newTestConfig(redisURL))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer rc.Close() //nolint:errcheck

		ctx := context.Background()
		dc := NewDonationCache(rc)
		now := time.Now().UTC().Truncate(time.Millisecond)
		want := &CachedDonation{
			ID:            uuid.New(),
			DonorID:       uuid.New(),
			Title:         "Surplus sandwich trays",
			CategoryID:    uuid.New(),
			Quantity:      12,
			Unit:          "trays",
			Freshness:     "warm",
			ExpiryTime:    now.Add(4 * time.Hour),
			PickupAddress: "42 Market St",
			Status:        "available",
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := dc.Set(ctx, want); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		defer dc.Delete(ctx, want.ID) //nolint:errcheck

		got, err := dc.Get(ctx, want.ID)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got.Title != want.Title || got.Quantity != want.Quantity || got.Status != want.Status {
			t.Errorf("round trip mismatch: got %+v, want %+v", got, want)
		}
		if !got.ExpiryTime.Equal(want.ExpiryTime) {
			t.Errorf("expiry mismatch: got %s, want %s", got.ExpiryTime, want.ExpiryTime)
		}
	})

	t.Run("DonationCache_MissReturnsNil", func(t *testing.T) {
		rc, err := NewRedisClient(newTestConfig(redisURL))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer rc.Close() //nolint:errcheck

		dc := NewDonationCache(rc)
		_, err = dc.Get(context.Background(), uuid.New())
		if !errors.Is(err, redis.Nil) {
			t.Fatalf("expected redis.Nil on miss, got %v", err)
		}
	})

	t.Run("DonationCache_DeleteRemovesEntry", func(t *testing.T) {
		rc, err := NewRedisClient(newTestConfig(redisURL))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer rc.Close() //nolint:errcheck

		ctx := context.Background()
		dc := NewDonationCache(rc)
		now := time.Now().UTC()
		d := &CachedDonation{
			ID: uuid.New(), DonorID: uuid.New(), CategoryID: uuid.New(),
			Title: "x", Quantity: 1, Unit: "box", Freshness: "cold",
			ExpiryTime: now.Add(time.Hour), PickupAddress: "y",
			Status: "available", CreatedAt: now, UpdatedAt: now,
		}
		if err := dc.Set(ctx, d); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		if err := dc.Delete(ctx, d.ID); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, err := dc.Get(ctx, d.ID); !errors.Is(err, redis.Nil) {
			t.Fatalf("expected redis.Nil after delete, got %v", err)
		}
	})
}
