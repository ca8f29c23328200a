package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/talentforge/jobboard-service/internal/domain/models"
)

// ErrCacheMiss signals the listing is not cached.
var ErrCacheMiss = errors.New("cache miss")

// JobListingCache keeps public job listings in Redis for a short TTL. A miss
// or a marshalling problem is never fatal; callers fall back to the store.
type JobListingCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewJobListingCache creates the cache wrapper.
func NewJobListingCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *JobListingCache {
	return &JobListingCache{client: client, ttl: ttl, logger: logger}
}

func listingKey(filter models.JobFilter) string {
	return fmt.Sprintf("jobs:public:q=%s:loc=%s:type=%s:page=%d:per=%d",
		filter.Query, filter.Location, filter.JobType, filter.Page, filter.PerPage)
}

// Get returns a cached listing page, or ErrCacheMiss.
func (c *JobListingCache) Get(ctx context.Context, filter models.JobFilter) (*models.Page[*models.Job], error) {
	raw, err := c.client.Get(ctx, listingKey(filter)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to read job listing cache: %w", err)
	}

	var page models.Page[*models.Job]
	if err := json.Unmarshal([]byte(raw), &page); err != nil {
		return nil, fmt.Errorf("failed to decode cached job listing: %w", err)
	}
	return &page, nil
}

// Set stores a listing page under its filter key.
func (c *JobListingCache) Set(ctx context.Context, filter models.JobFilter, page *models.Page[*models.Job]) error {
	raw, err := json.Marshal(page)
	if err != nil {
		return fmt.Errorf("failed to encode job listing: %w", err)
	}
	if err := c.client.Set(ctx, listingKey(filter), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write job listing cache: %w", err)
	}
	return nil
}

// Invalidate drops every cached listing page. Called after any write that
// changes public visibility.
func (c *JobListingCache) Invalidate(ctx context.Context) {
	iter := c.client.Scan(ctx, 0, "jobs:public:*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			c.logger.Warn("Failed to drop cached job listing", zap.String("key", iter.Val()), zap.Error(err))
		}
	}
	if err := iter.Err(); err != nil {
		c.logger.Warn("Job listing cache invalidation scan failed", zap.Error(err))
	}
}
