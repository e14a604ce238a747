package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client defines the datastore operations the application relies on.
type Client interface {
	// Ping checks that the server is reachable and accepts our credentials.
	Ping(ctx context.Context) error
	// Addr returns the configured server address.
	Addr() string
	// Close releases the connection pool.
	Close() error
}

// NewClient creates a Redis client based on the configuration.
// The connection is lazy; call Ping to verify it. The store is optional,
// so callers should treat a failed ping as a warning.
func NewClient(cfg Config) Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DialTimeout:  timeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	})
	return &redisClientWrapper{Client: rdb}
}

type redisClientWrapper struct {
	*redis.Client
}

func (c *redisClientWrapper) Ping(ctx context.Context) error {
	if err := c.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to reach redis at %s: %w", c.Addr(), err)
	}
	return nil
}

func (c *redisClientWrapper) Addr() string {
	return c.Client.Options().Addr
}
