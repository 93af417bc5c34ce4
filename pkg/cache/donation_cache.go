package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// DonationCacheTTL is the time-to-live for cached donations. Short,
	// because status changes hands fast once receivers start claiming.
	DonationCacheTTL = 15 * time.Minute

	donationCacheKeyPrefix = "donation"
)

// CachedDonation is the donation read model stored in Redis as a hash.
// It carries the full aggregate so a cache hit can serve the detail
// endpoint without touching Postgres. Status here is advisory — the
// conditional UPDATE in Postgres is the source of truth for races.
type CachedDonation struct {
	ID                 uuid.UUID
	DonorID            uuid.UUID
	Title              string
	Description        string
	CategoryID         uuid.UUID
	Quantity           int
	Unit               string
	Freshness          string
	ExpiryTime         time.Time
	PickupAddress      string
	PickupInstructions string
	PhotoURL           string
	Status             string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// DonationCache provides structured read/write operations for donation cache
// entries. Key format: "donation:{donationID}"
type DonationCache struct {
	client *RedisClient
}

// NewDonationCache creates a DonationCache backed by the given RedisClient.
func NewDonationCache(r *RedisClient) *DonationCache {
	return &DonationCache{client: r}
}

// Get retrieves a cached donation by ID.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *DonationCache) Get(ctx context.Context, donationID uuid.UUID) (*CachedDonation, error) {
	key := c.key(donationID)
	vals, err := c.client.Client().HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil // key not found
	}

	id, err := uuid.Parse(vals["id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse id: %w", err)
	}
	donorID, err := uuid.Parse(vals["donor_id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse donor_id: %w", err)
	}
	categoryID, err := uuid.Parse(vals["category_id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse category_id: %w", err)
	}
	quantity, err := strconv.Atoi(vals["quantity"])
	if err != nil {
		return nil, fmt.Errorf("cache parse quantity: %w", err)
	}
	expiryTime, err := time.Parse(time.RFC3339Nano, vals["expiry_time"])
	if err != nil {
		return nil, fmt.Errorf("cache parse expiry_time: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, vals["created_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse created_at: %w", err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, vals["updated_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse updated_at: %w", err)
	}

	return &CachedDonation{
		ID:                 id,
		DonorID:            donorID,
		Title:              vals["title"],
		Description:        vals["description"],
		CategoryID:         categoryID,
		Quantity:           quantity,
		Unit:               vals["unit"],
		Freshness:          vals["freshness"],
		ExpiryTime:         expiryTime,
		PickupAddress:      vals["pickup_address"],
		PickupInstructions: vals["pickup_instructions"],
		PhotoURL:           vals["photo_url"],
		Status:             vals["status"],
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}, nil
}

// Set writes a cached donation as a Redis hash with the standard TTL.
// Uses a pipeline to set all fields and the TTL atomically.
func (c *DonationCache) Set(ctx context.Context, d *CachedDonation) error {
	key := c.key(d.ID)
	pipe := c.client.Client().Pipeline()
	pipe.HSet(ctx, key,
		"id", d.ID.String(),
		"donor_id", d.DonorID.String(),
		"title", d.Title,
		"description", d.Description,
		"category_id", d.CategoryID.String(),
		"quantity", strconv.Itoa(d.Quantity),
		"unit", d.Unit,
		"freshness", d.Freshness,
		"expiry_time", d.ExpiryTime.UTC().Format(time.RFC3339Nano),
		"pickup_address", d.PickupAddress,
		"pickup_instructions", d.PickupInstructions,
		"photo_url", d.PhotoURL,
		"status", d.Status,
		"created_at", d.CreatedAt.UTC().Format(time.RFC3339Nano),
		"updated_at", d.UpdatedAt.UTC().Format(time.RFC3339Nano),
	)
	pipe.Expire(ctx, key, DonationCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached donation. Called on any status transition so a
// stale available entry never outlives a won claim race.
func (c *DonationCache) Delete(ctx context.Context, donationID uuid.UUID) error {
	if err := c.client.Client().Del(ctx, c.key(donationID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "donation:{donationID}"
func (c *DonationCache) key(donationID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", donationCacheKeyPrefix, donationID)
}
