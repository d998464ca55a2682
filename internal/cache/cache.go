// Package cache stores recomputed assessment results so repeated results
// lookups skip the store and the scoring engine.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/silverpath/funnel-api/internal/domain"
)

// ResultsCache caches assessment results by assessment id
type ResultsCache interface {
	// Get reports found=false on a miss
	Get(ctx context.Context, assessmentID int64) (*domain.AssessmentResults, bool, error)
	Set(ctx context.Context, assessmentID int64, results *domain.AssessmentResults) error
}

// ResultsKey returns the cache key for an assessment's results
func ResultsKey(assessmentID int64) string {
	return fmt.Sprintf("funnel:assessment:%d:results", assessmentID)
}

// RedisResultsCache stores results as JSON strings with a TTL
type RedisResultsCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisResultsCache creates a results cache over a Redis client
func NewRedisResultsCache(client redis.Cmdable, ttl time.Duration) *RedisResultsCache {
	return &RedisResultsCache{client: client, ttl: ttl}
}

func (c *RedisResultsCache) Get(ctx context.Context, assessmentID int64) (*domain.AssessmentResults, bool, error) {
	val, err := c.client.Get(ctx, ResultsKey(assessmentID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached results: %w", err)
	}

	var results domain.AssessmentResults
	if err := json.Unmarshal([]byte(val), &results); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached results: %w", err)
	}
	return &results, true, nil
}

func (c *RedisResultsCache) Set(ctx context.Context, assessmentID int64, results *domain.AssessmentResults) error {
	data, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	if err := c.client.Set(ctx, ResultsKey(assessmentID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache results: %w", err)
	}
	return nil
}

// NoopResultsCache never stores anything. Used when Redis is disabled.
type NoopResultsCache struct{}

func (NoopResultsCache) Get(context.Context, int64) (*domain.AssessmentResults, bool, error) {
	return nil, false, nil
}

func (NoopResultsCache) Set(context.Context, int64, *domain.AssessmentResults) error {
	return nil
}

var (
	_ ResultsCache = (*RedisResultsCache)(nil)
	_ ResultsCache = NoopResultsCache{}
)
