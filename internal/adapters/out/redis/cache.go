// Package redis provides the go-redis backed implementation of the cache port.
// Entries are stored as JSON under the structured keys built by the cachekeys
// package. Single-entity entries are overwritten and evicted by command
// handlers; everything else ages out through the configured TTL.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fleet/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

// Cache implements ports.Cache on a Redis client. Failures are logged and
// reported to the caller, but callers treat the cache as best-effort and
// never fail a request over it.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCache creates a cache around an established Redis client. All entries
// share one TTL; the staleness window of listing and aggregate entries is
// exactly this duration.
func NewCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// NewClient connects to Redis and verifies the connection with a ping.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return client, nil
}

// Get looks up key and decodes the cached JSON into dest. Returns false on a
// miss.
func (c *Cache) Get(ctx context.Context, key ports.CacheKey, dest any) (bool, error) {
	data, err := c.client.Get(ctx, key.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		c.logger.Warn("cache get failed", "key", key.String(), "error", err)
		return false, err
	}

	if err = json.Unmarshal(data, dest); err != nil {
		// A decode failure means the entry is unusable; drop it so the next
		// read repopulates from the database.
		c.logger.Warn("cache entry corrupt, evicting", "key", key.String(), "error", err)
		_ = c.client.Del(ctx, key.String()).Err()
		return false, err
	}

	return true, nil
}

// Set stores value as JSON under key with the configured TTL.
func (c *Cache) Set(ctx context.Context, key ports.CacheKey, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("cache set marshal failed", "key", key.String(), "error", err)
		return err
	}

	if err = c.client.Set(ctx, key.String(), data, c.ttl).Err(); err != nil {
		c.logger.Warn("cache set failed", "key", key.String(), "error", err)
		return err
	}

	return nil
}

// Delete evicts key. Deleting an absent key is not an error.
func (c *Cache) Delete(ctx context.Context, key ports.CacheKey) error {
	if err := c.client.Del(ctx, key.String()).Err(); err != nil {
		c.logger.Warn("cache delete failed", "key", key.String(), "error", err)
		return err
	}
	return nil
}
