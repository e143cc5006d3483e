package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"summit-connect/internal/platform/config"
)

// Client wraps the go-redis client so the record store can be health-checked
// and closed through one handle.
type Client struct {
	*redis.Client
}

// New dials the record store. Returns nil if the URL is empty (Redis not
// configured; the caller falls back to another backend).
func New(cfg config.RedisConfig) (*Client, error) {
	if cfg.URL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns
	opts.DialTimeout = cfg.DialTimeout
	opts.ReadTimeout = cfg.ReadTimeout
	opts.WriteTimeout = cfg.WriteTimeout

	client := redis.NewClient(opts)

	// Fail at startup rather than on the first request.
	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Client{Client: client}, nil
}

// Health pings the store; used by the readiness endpoint.
func (c *Client) Health(ctx context.Context) error {
	return c.Ping(ctx).Err()
}

func (c *Client) Close() error {
	return c.Client.Close()
}
