package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/teamtrack/employee-system/internal/core/ports"
)

const (
	summaryKey = "dashboard:summary"
	summaryTTL = time.Minute
)

// SummaryCache stores the dashboard summary in Redis for a short TTL so the
// aggregate queries are not re-run on every dashboard load.
type SummaryCache struct {
	client *redis.Client
}

// NewSummaryCache creates a SummaryCache wrapping the given Redis client.
func NewSummaryCache(client *redis.Client) *SummaryCache {
	return &SummaryCache{client: client}
}

// Get returns the cached summary; the bool reports whether the key was warm.
func (c *SummaryCache) Get(ctx context.Context) (*ports.DashboardSummary, bool, error) {
	raw, err := c.client.Get(ctx, summaryKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("summary cache get: %w", err)
	}

	var summary ports.DashboardSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, false, fmt.Errorf("summary cache decode: %w", err)
	}
	return &summary, true, nil
}

// Set stores the summary; the entry expires after summaryTTL.
func (c *SummaryCache) Set(ctx context.Context, s *ports.DashboardSummary) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("summary cache encode: %w", err)
	}
	return c.client.Set(ctx, summaryKey, raw, summaryTTL).Err()
}
