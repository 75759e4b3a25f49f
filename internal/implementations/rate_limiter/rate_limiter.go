package ratelimiter

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	e "assistant/internal/core/domain/errors"
	"assistant/internal/core/domain/logging"
	ratelimiter "assistant/internal/core/domain/rate_limiter"

	"github.com/go-redis/redis/v9"
)

func windowKey(key string, limit ratelimiter.Limit, now time.Time) string {
	switch limit.Interval {
	case ratelimiter.Hour:
		return fmt.Sprintf("%s::h%d", key, now.Hour())
	case ratelimiter.Minute:
		return fmt.Sprintf("%s::m%d", key, now.Minute())
	default:
		panic("invalid rate limiting interval")
	}
}

// Redis shares fixed window counters between assistant instances.
type Redis struct {
	redisClient *redis.Client
	log         logging.Logger
	now         func() time.Time
}

func NewRedis(redisClient *redis.Client, log logging.Logger, now func() time.Time) *Redis {
	if redisClient == nil {
		panic(e.NewNilArgumentError("redisClient"))
	}
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &Redis{redisClient: redisClient, log: log, now: now}
}

func (r *Redis) CheckLimit(ctx context.Context, key string, limit ratelimiter.Limit) ratelimiter.Result {
	k := windowKey(key, limit, r.now())

	cmds, err := r.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, k)
		pipe.Expire(ctx, k, limit.Interval.Duration())
		return nil
	})
	if errors.Is(err, context.Canceled) {
		return ratelimiter.NotAllowed()
	}
	if err != nil {
		r.log.Error(ctx, "Could not check rate limit due to Redis client error.", logging.Entry("err", err))
		return ratelimiter.Allowed()
	}
	intCmd := cmds[0].(*redis.IntCmd)
	if intCmd.Val() > int64(limit.Value) {
		return ratelimiter.NotAllowed()
	}
	return ratelimiter.Allowed()
}

type window struct {
	key     string
	count   uint16
	expires time.Time
}

// Memory keeps the counters in process.
type Memory struct {
	now     func() time.Time
	windows map[string]window
	lock    sync.Mutex
}

func NewMemory(now func() time.Time) *Memory {
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &Memory{now: now, windows: make(map[string]window)}
}

func (m *Memory) CheckLimit(ctx context.Context, key string, limit ratelimiter.Limit) ratelimiter.Result {
	m.lock.Lock()
	defer m.lock.Unlock()

	now := m.now()
	k := windowKey(key, limit, now)
	w, ok := m.windows[key]
	if !ok || w.key != k || !now.Before(w.expires) {
		w = window{key: k, expires: now.Add(limit.Interval.Duration())}
	}
	if w.count < limit.Value {
		w.count++
		m.windows[key] = w
		return ratelimiter.Allowed()
	}
	m.windows[key] = w
	return ratelimiter.NotAllowed()
}
