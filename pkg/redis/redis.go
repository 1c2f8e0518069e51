package redis

import (
	"context"
	"fmt"
	"time"

	"shootystats/pkg/config"

	"github.com/redis/go-redis/v9"
)

// The response cache is best effort: a slow redis must never stall a stats
// request, so every operation carries a short timeout and a failed call just
// falls through to the database.
const operationTimeout = 500 * time.Millisecond

// RedisClient wraps the raw client with the timeouts and result unwrapping
// the response cache expects.
type RedisClient struct {
	*redis.Client
}

// NewClient connects to the configured redis and verifies it responds.
func NewClient() (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         config.Redis.Host + ":" + config.Redis.Port,
		Password:     config.Redis.Password,
		DB:           0,
		MaxRetries:   2,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  operationTimeout,
		WriteTimeout: operationTimeout,
		PoolSize:     50,
		MinIdleConns: 5,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("couldn't reach redis at %s: %w", config.Redis.Host, err)
	}

	return &RedisClient{
		Client: client,
	}, nil
}

// Close the client connection.
func (r *RedisClient) Close() error {
	return r.Client.Close()
}

// Get returns the stored value directly. A missing key surfaces as
// redis.Nil, which the caches treat as a plain miss.
func (r *RedisClient) Get(ctx context.Context, key string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	return r.Client.Get(ctx, key).Result()
}

// Set stores a serialized response under its cache key.
func (r *RedisClient) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	return r.Client.Set(ctx, key, value, ttl).Err()
}
