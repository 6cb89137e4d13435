package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Quadmor009/Design-Gym/internal/models"
)

const (
	leaderboardKeyPrefix = "leaderboard:entries:"
	leaderboardTTL       = 30 * time.Second
)

// LeaderboardCache caches ranked leaderboard reads per level filter in
// Redis. A nil cache (Redis not configured) misses on every call, so
// callers fall through to the database.
type LeaderboardCache struct {
	client *redis.Client
	ctx    context.Context
}

// NewLeaderboardCache creates a new leaderboard cache. client may be nil.
func NewLeaderboardCache(client *redis.Client) *LeaderboardCache {
	if client == nil {
		return nil
	}
	return &LeaderboardCache{
		client: client,
		ctx:    context.Background(),
	}
}

// Get returns the cached entries for a level filter, or (nil, false) on miss.
func (c *LeaderboardCache) Get(level models.Level) ([]models.LeaderboardEntry, bool) {
	if c == nil {
		return nil, false
	}
	data, err := c.client.Get(c.ctx, leaderboardKeyPrefix+string(level)).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		return nil, false
	}
	var entries []models.LeaderboardEntry
	if err := json.Unmarshal([]byte(data), &entries); err != nil {
		return nil, false
	}
	return entries, true
}

// Set stores the entries for a level filter with a short TTL.
func (c *LeaderboardCache) Set(level models.Level, entries []models.LeaderboardEntry) {
	if c == nil {
		return
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return
	}
	c.client.Set(c.ctx, leaderboardKeyPrefix+string(level), data, leaderboardTTL)
}

// Invalidate drops every cached level filter after a successful write,
// so reads lag the write by at most one cache fill.
func (c *LeaderboardCache) Invalidate() {
	if c == nil {
		return
	}
	for _, level := range []models.Level{models.LevelBeginner, models.LevelMid, models.LevelExpert, models.LevelAll, "global"} {
		c.client.Del(c.ctx, leaderboardKeyPrefix+string(level))
	}
}
