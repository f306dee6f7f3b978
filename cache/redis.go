package cache

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// LookupResult is the three-way outcome of a cache read. Miss and
// Unavailable both send the caller down the fresh-computation path; they are
// kept distinct so unavailability can be logged.
type LookupResult int

const (
	Hit LookupResult = iota
	Miss
	Unavailable
)

type RedisCache struct {
	client *redis.Client
}

// CreateRedisCache builds the client without pinging: an unreachable Redis
// must not prevent startup, every cache operation degrades to a miss.
func CreateRedisCache(config RedisConfig) *RedisCache {
	addr := config.Host + ":" + strconv.Itoa(config.Port)
	if config.Port == 0 {
		addr = config.Host + ":6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: config.Password,
		DB:       config.DB,
		PoolSize: config.PoolSize,
	})

	return &RedisCache{client: client}
}

// CreateRedisCacheWithClient wraps an existing client, used by tests.
func CreateRedisCacheWithClient(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Client() *redis.Client {
	return c.client
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Lookup reads a key and classifies the outcome. The error is non-nil only
// when the result is Unavailable.
func (c *RedisCache) Lookup(ctx context.Context, key string) (string, LookupResult, error) {
	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", Miss, nil
	}
	if err != nil {
		return "", Unavailable, err
	}
	return val, Hit, nil
}

func (c *RedisCache) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

// Delete is idempotent: removing a key that does not exist is not an error.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// TTL returns the remaining lifetime of a key. Keys without an expiry or
// missing keys report a non-positive duration.
func (c *RedisCache) TTL(ctx context.Context, key string) (time.Duration, error) {
	return c.client.TTL(ctx, key).Result()
}
