package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/homeandown/listings-api/internal/api/metrics"
	"github.com/homeandown/listings-api/internal/core/domain"
)

const (
	agentCacheKey = "directory:agents"
	agentCacheTTL = time.Minute
)

// AgentCache stores the agent directory as a single TTL'd JSON blob. The
// directory changes rarely and has no filters, so one key is enough; staleness
// is bounded by the TTL rather than invalidation.
type AgentCache struct {
	client *redis.Client
}

func NewAgentCache(client *redis.Client) *AgentCache {
	return &AgentCache{client: client}
}

// Get returns the cached directory, or ok=false when the key is absent.
func (c *AgentCache) Get(ctx context.Context) ([]domain.AgentProfile, bool, error) {
	raw, err := c.client.Get(ctx, agentCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.AgentCacheTotal.WithLabelValues("miss").Inc()
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("agent cache get: %w", err)
	}

	var profiles []domain.AgentProfile
	if err := json.Unmarshal(raw, &profiles); err != nil {
		return nil, false, fmt.Errorf("agent cache decode: %w", err)
	}

	metrics.AgentCacheTotal.WithLabelValues("hit").Inc()
	return profiles, true, nil
}

// Set stores the directory with the cache TTL.
func (c *AgentCache) Set(ctx context.Context, profiles []domain.AgentProfile) error {
	raw, err := json.Marshal(profiles)
	if err != nil {
		return fmt.Errorf("agent cache encode: %w", err)
	}
	return c.client.Set(ctx, agentCacheKey, raw, agentCacheTTL).Err()
}
