package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/nandoripardo888/TO--DO/config"
)

// Client wraps the Redis connection. Currently used for the task statistics
// cache; the service degrades gracefully when Redis is unavailable.
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient connects to Redis and pings it.
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	logger.Info("redis connected", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── statistics cache ──

const statsPrefix = "task:stats:"

// GetTaskStats returns the cached statistics JSON for a task, or "" on miss.
func (c *Client) GetTaskStats(ctx context.Context, taskID string) (string, error) {
	val, err := c.rdb.Get(ctx, statsPrefix+taskID).Result()
	if err == goredis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// SetTaskStats caches the statistics JSON for a task.
func (c *Client) SetTaskStats(ctx context.Context, taskID, payload string, ttl time.Duration) error {
	return c.rdb.Set(ctx, statsPrefix+taskID, payload, ttl).Err()
}

// InvalidateTaskStats drops the cached statistics for a task.
func (c *Client) InvalidateTaskStats(ctx context.Context, taskID string) error {
	return c.rdb.Del(ctx, statsPrefix+taskID).Err()
}

// Close closes the Redis connection.
func (c *Client) Close() error {
	return c.rdb.Close()
}
