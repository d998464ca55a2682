package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/silverpath/funnel-api/internal/cache"
	"github.com/silverpath/funnel-api/internal/config"
	"github.com/silverpath/funnel-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResults() *domain.AssessmentResults {
	return &domain.AssessmentResults{
		Score:        107,
		Strengths:    []string{"Solid senior customer foundation"},
		Improvements: []string{},
		ActionPlan: []domain.ActionItem{
			{Title: "Implement Multi-Channel Senior Strategy", Description: "Add direct mail"},
		},
		ProjectedImpact: domain.ProjectedImpact{CustomerGrowth: "2.5x", AdditionalRevenue: "$850K", CustomerLTV: "45%"},
	}
}

func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestResultsKey(t *testing.T) {
	assert.Equal(t, "funnel:assessment:42:results", cache.ResultsKey(42))
}

func TestRedisResultsCache_RoundTrip(t *testing.T) {
	mr, client := setupMiniredis(t)
	c := cache.NewRedisResultsCache(client, time.Hour)
	ctx := context.Background()

	_, found, err := c.Get(ctx, 1)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, 1, sampleResults()))
	assert.True(t, mr.Exists(cache.ResultsKey(1)))
	assert.Equal(t, time.Hour, mr.TTL(cache.ResultsKey(1)))

	got, found, err := c.Get(ctx, 1)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, sampleResults(), got)
}

func TestRedisResultsCache_Expiry(t *testing.T) {
	mr, client := setupMiniredis(t)
	c := cache.NewRedisResultsCache(client, time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, 7, sampleResults()))
	mr.FastForward(2 * time.Minute)

	_, found, err := c.Get(ctx, 7)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisResultsCache_CorruptValue(t *testing.T) {
	mr, client := setupMiniredis(t)
	c := cache.NewRedisResultsCache(client, time.Minute)

	require.NoError(t, mr.Set(cache.ResultsKey(3), "not json"))

	_, found, err := c.Get(context.Background(), 3)
	assert.Error(t, err)
	assert.False(t, found)
}

func TestRedisResultsCache_ClientErrors(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := cache.NewRedisResultsCache(client, time.Minute)
	ctx := context.Background()

	mock.ExpectGet(cache.ResultsKey(5)).SetErr(errors.New("connection refused"))
	_, found, err := c.Get(ctx, 5)
	assert.Error(t, err)
	assert.False(t, found)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisResultsCache_SetWhenServerDown(t *testing.T) {
	mr, client := setupMiniredis(t)
	c := cache.NewRedisResultsCache(client, time.Minute)

	mr.Close()
	assert.Error(t, c.Set(context.Background(), 5, sampleResults()))
}

func TestNoopResultsCache(t *testing.T) {
	var c cache.ResultsCache = cache.NoopResultsCache{}
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, 1, sampleResults()))
	got, found, err := c.Get(ctx, 1)
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, got)
}

func TestNewRedisClient(t *testing.T) {
	mr, _ := setupMiniredis(t)

	addr := mr.Addr()

	client, err := cache.NewRedisClient(context.Background(), &config.RedisConfig{Address: addr})
	require.NoError(t, err)
	assert.NoError(t, client.Close())

	mr.Close()
	_, err = cache.NewRedisClient(context.Background(), &config.RedisConfig{Address: addr})
	assert.Error(t, err)
}
