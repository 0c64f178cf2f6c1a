package greeting

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/redis/go-redis/v9"
)

// Counter hands out strictly increasing greeting ids starting at 1.
type Counter interface {
	Next(ctx context.Context) (int64, error)
}

// AtomicCounter is an in-process Counter.  The zero value is ready to use
// and starts from 1.
type AtomicCounter struct {
	n atomic.Int64
}

func (c *AtomicCounter) Next(context.Context) (int64, error) {
	return c.n.Add(1), nil
}

// RedisCounter keeps the sequence in Redis with INCR.  Replicas pointed at
// the same key share one sequence per deployment, and any process start
// restarts it for all of them (see NewRedisCounter).
type RedisCounter struct {
	rdb *redis.Client
	key string
}

// NewRedisCounter deletes key so numbering restarts with the process, then
// returns a counter backed by it.
func NewRedisCounter(ctx context.Context, rdb *redis.Client, key string) (*RedisCounter, error) {
	if err := rdb.Del(ctx, key).Err(); err != nil {
		return nil, fmt.Errorf("reset counter %s: %w", key, err)
	}
	return &RedisCounter{rdb: rdb, key: key}, nil
}

func (c *RedisCounter) Next(ctx context.Context) (int64, error) {
	n, err := c.rdb.Incr(ctx, c.key).Result()
	if err != nil {
		return 0, fmt.Errorf("incr %s: %w", c.key, err)
	}
	return n, nil
}
