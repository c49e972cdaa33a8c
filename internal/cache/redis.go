package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/Maaz-R-Khan/truck-logistics-app/config"
)

// CacheClient defines the interface for cache operations
type CacheClient interface {
	// Entity caching, keyed by collection and document key
	GetEntity(ctx context.Context, collection, key string, out interface{}) error
	SetEntity(ctx context.Context, collection, key string, entity interface{}) error
	DeleteEntity(ctx context.Context, collection, key string) error

	// Dashboard summary caching
	GetDashboard(ctx context.Context, out interface{}) error
	SetDashboard(ctx context.Context, summary interface{}, ttl time.Duration) error

	// Clear all cache
	FlushAll(ctx context.Context) error
}

// RedisClient implements CacheClient using Redis
type RedisClient struct {
	client  *redis.Client
	enabled bool
	ttl     time.Duration
}

// ErrCacheMiss is returned when a key is absent or caching is disabled.
var ErrCacheMiss = redis.Nil

// NewRedisClient creates a new Redis client
func NewRedisClient(cfg *config.RedisConfig) (CacheClient, error) {
	if !cfg.Enabled {
		return &RedisClient{enabled: false}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{
		client:  client,
		enabled: true,
		ttl:     time.Hour, // Default TTL
	}, nil
}

// Prefix keys to avoid collisions
func entityKey(collection, key string) string {
	return fmt.Sprintf("entity:%s:%s", collection, key)
}

const dashboardKey = "dashboard:summary"

// GetEntity retrieves a cached entity into out
func (c *RedisClient) GetEntity(ctx context.Context, collection, key string, out interface{}) error {
	if !c.enabled {
		return ErrCacheMiss
	}

	data, err := c.client.Get(ctx, entityKey(collection, key)).Bytes()
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

// SetEntity caches an entity
func (c *RedisClient) SetEntity(ctx context.Context, collection, key string, entity interface{}) error {
	if !c.enabled {
		return nil
	}

	data, err := json.Marshal(entity)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, entityKey(collection, key), data, c.ttl).Err()
}

// DeleteEntity removes a cached entity
func (c *RedisClient) DeleteEntity(ctx context.Context, collection, key string) error {
	if !c.enabled {
		return nil
	}
	return c.client.Del(ctx, entityKey(collection, key)).Err()
}

// GetDashboard retrieves the cached dashboard summary into out
func (c *RedisClient) GetDashboard(ctx context.Context, out interface{}) error {
	if !c.enabled {
		return ErrCacheMiss
	}

	data, err := c.client.Get(ctx, dashboardKey).Bytes()
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

// SetDashboard caches the dashboard summary with the given TTL
func (c *RedisClient) SetDashboard(ctx context.Context, summary interface{}, ttl time.Duration) error {
	if !c.enabled {
		return nil
	}

	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, dashboardKey, data, ttl).Err()
}

// FlushAll clears all cache
func (c *RedisClient) FlushAll(ctx context.Context) error {
	if !c.enabled {
		return nil
	}
	return c.client.FlushAll(ctx).Err()
}
