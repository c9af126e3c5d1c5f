package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Counter keys cover at most one month, so anything older than two months
// is garbage and can expire on its own.
const counterTTL = 62 * 24 * time.Hour

// RedisCounters implements usage.CounterStore on Redis INCR. It carries no
// audit log; pair it with a SQL store or run audits best-effort elsewhere.
type RedisCounters struct {
	client *redis.Client
}

func NewRedisCounters(ctx context.Context, addr string, dialTimeout time.Duration) (*RedisCounters, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        addr,
		DialTimeout: dialTimeout,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisCounters{client: client}, nil
}

func (r *RedisCounters) Close() error {
	return r.client.Close()
}

func (r *RedisCounters) IncrementAndGet(ctx context.Context, key string) (int64, error) {
	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, counterTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("increment counter %s: %w", key, err)
	}
	return incr.Val(), nil
}

func (r *RedisCounters) Read(ctx context.Context, key string) (int64, error) {
	count, err := r.client.Get(ctx, key).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("read counter %s: %w", key, err)
	}
	return count, nil
}
