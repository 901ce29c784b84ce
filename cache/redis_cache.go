package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	redis "github.com/redis/go-redis/v9"

	"shelfwise/models"
)

// RedisSearchCache caches supplier search results in Redis.
type RedisSearchCache struct {
	client *redis.Client
}

func NewRedisSearchCache(addr, password string, db int) *RedisSearchCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &RedisSearchCache{client: client}
}

func (c *RedisSearchCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisSearchCache) Close() error {
	return c.client.Close()
}

// Key normalizes an item name into a cache key.
func Key(itemName string) string {
	return "supplier-search:" + strings.ToLower(strings.TrimSpace(itemName))
}

func (c *RedisSearchCache) Get(ctx context.Context, key string) ([]models.SupplierSearchResult, bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var results []models.SupplierSearchResult
	if err := json.Unmarshal([]byte(val), &results); err != nil {
		return nil, false, err
	}
	return results, true, nil
}

func (c *RedisSearchCache) Set(ctx context.Context, key string, value []models.SupplierSearchResult, ttl time.Duration) error {
	if len(value) == 0 {
		return nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, ttl).Err()
}
