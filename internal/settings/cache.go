package settings

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/KennethOlusegun/barberBoss-sub001/internal/models"
)

const (
	cacheKey = "barberboss:settings"
	cacheTTL = time.Minute
)

// Cache keeps the settings row in Redis for a minute so the scheduling
// hot path does not hit the database on every validation. A nil client
// disables caching entirely; every method degrades to a no-op.
type Cache struct {
	client *redis.Client
}

func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// NewRedisClient connects to Redis, or returns nil when addr is empty or
// the server is unreachable. Callers must tolerate a nil client.
func NewRedisClient(addr string) *redis.Client {
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}
	return client
}

func (c *Cache) Get(ctx context.Context) *models.Settings {
	if c == nil || c.client == nil {
		return nil
	}

	raw, err := c.client.Get(ctx, cacheKey).Bytes()
	if err != nil {
		return nil
	}

	var st models.Settings
	if err := json.Unmarshal(raw, &st); err != nil {
		return nil
	}
	return &st
}

func (c *Cache) Set(ctx context.Context, st *models.Settings) {
	if c == nil || c.client == nil {
		return
	}

	raw, err := json.Marshal(st)
	if err != nil {
		return
	}
	c.client.Set(ctx, cacheKey, raw, cacheTTL)
}

func (c *Cache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(ctx, cacheKey)
}
