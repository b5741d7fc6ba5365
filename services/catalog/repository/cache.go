package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/kormo-app/kormo/internal/pkg/models"
)

const (
	approvedKeyPrefix = "catalog:approved:"
	approvedCacheTTL  = 5 * time.Minute
)

// ListingCache implements catalog.ListingCache on Redis. Approved-listing
// query results are cached per filter and flushed wholesale on any listing
// mutation.
type ListingCache struct {
	client *redis.Client
}

// NewListingCache creates a new Redis-backed listing cache
func NewListingCache(client *redis.Client) *ListingCache {
	return &ListingCache{client: client}
}

func approvedKey(filter models.ListingFilter) string {
	return fmt.Sprintf("%st=%s|l=%s|c=%s",
		approvedKeyPrefix, filter.Title, filter.Location, filter.Category)
}

// GetApproved returns the cached result for a filter, or (nil, nil) on a miss
func (c *ListingCache) GetApproved(ctx context.Context, filter models.ListingFilter) ([]models.ServiceListing, error) {
	data, err := c.client.Get(ctx, approvedKey(filter)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read listing cache: %w", err)
	}

	var listings []models.ServiceListing
	if err := json.Unmarshal(data, &listings); err != nil {
		return nil, fmt.Errorf("failed to decode cached listings: %w", err)
	}

	return listings, nil
}

// SetApproved caches the result for a filter with a short TTL
func (c *ListingCache) SetApproved(ctx context.Context, filter models.ListingFilter, listings []models.ServiceListing) error {
	data, err := json.Marshal(listings)
	if err != nil {
		return fmt.Errorf("failed to encode listings for cache: %w", err)
	}

	if err := c.client.Set(ctx, approvedKey(filter), data, approvedCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to write listing cache: %w", err)
	}

	return nil
}

// Invalidate drops every cached approved-listing result
func (c *ListingCache) Invalidate(ctx context.Context) error {
	keys, err := c.client.Keys(ctx, approvedKeyPrefix+"*").Result()
	if err != nil {
		return fmt.Errorf("failed to scan listing cache keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to flush listing cache: %w", err)
	}

	return nil
}
