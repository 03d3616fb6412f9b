package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"main/model"

	"github.com/redis/go-redis/v9"
)

const (
	leaderboardKey = "leaderboard:top"
	leaderboardTTL = 60 * time.Second
)

// LeaderboardCache keeps the computed leaderboard page in Redis for a
// short TTL so the ranking query does not run on every request.
type LeaderboardCache struct {
	client *redis.Client
}

// NewLeaderboardCache connects to Redis and verifies the connection.
func NewLeaderboardCache(redisURL string) (*LeaderboardCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &LeaderboardCache{client: client}, nil
}

// Get returns the cached page, or nil on a miss.
func (c *LeaderboardCache) Get(ctx context.Context) ([]model.LeaderboardEntry, error) {
	data, err := c.client.Get(ctx, leaderboardKey).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard from cache: %v", err)
	}

	var entries []model.LeaderboardEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal leaderboard: %v", err)
	}
	return entries, nil
}

func (c *LeaderboardCache) Set(ctx context.Context, entries []model.LeaderboardEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal leaderboard: %v", err)
	}
	if err := c.client.Set(ctx, leaderboardKey, data, leaderboardTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache leaderboard: %v", err)
	}
	return nil
}

func (c *LeaderboardCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, leaderboardKey).Err()
}

func (c *LeaderboardCache) Close() error {
	return c.client.Close()
}
