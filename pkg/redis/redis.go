package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aerovent/aerovent-backend/config"
	"github.com/aerovent/aerovent-backend/pkg/logger"
	"github.com/redis/go-redis/v9"
)

var (
	client   *redis.Client
	cacheTTL time.Duration
)

// Init initializes the Redis connection used for short-lived catalog caches
// (filter domains, stats). Redis is optional: when disabled every helper
// degrades to a cache miss.
func Init(cfg *config.RedisConfig) error {
	if !cfg.Enabled {
		logger.Info("Redis cache disabled, catalog caches will be computed per request", nil)
		return nil
	}

	logger.Info("Initializing Redis connection", map[string]interface{}{
		"host": cfg.Host,
		"port": cfg.Port,
		"db":   cfg.DB,
	})

	client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	cacheTTL = cfg.CacheTTL

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client = nil
		logger.Error("Failed to connect to Redis", err, map[string]interface{}{
			"host": cfg.Host,
			"port": cfg.Port,
		})
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Redis connection established successfully", nil)
	return nil
}

// Enabled reports whether the cache is available
func Enabled() bool {
	return client != nil
}

// Close closes the Redis connection
func Close() error {
	if client != nil {
		logger.Info("Closing Redis connection", nil)
		return client.Close()
	}
	return nil
}

// GetJSON loads a cached JSON value into dest. Returns false on a miss or
// any cache failure; callers always have a fresh-compute fallback.
func GetJSON(ctx context.Context, key string, dest interface{}) bool {
	if client == nil {
		return false
	}

	val, err := client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		logger.Warn("Redis read failed, falling back to database", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return false
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		logger.Warn("Discarding unreadable cache entry", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return false
	}
	return true
}

// SetJSON stores a JSON value with the configured TTL. Failures are logged
// and swallowed: the cache is best effort.
func SetJSON(ctx context.Context, key string, value interface{}) {
	if client == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		logger.Warn("Failed to encode cache entry", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return
	}

	if err := client.Set(ctx, key, data, cacheTTL).Err(); err != nil {
		logger.Warn("Redis write failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}
