package skyscrapper

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-redis/redis_rate/v10"
	"golang.org/x/time/rate"
)

// Limiter decides whether one more provider call may go out under key.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RedisLimiter shares the provider budget across every instance of the service.
type RedisLimiter struct {
	limiter      *redis_rate.Limiter
	rateLimitRPS int
}

func NewRedisLimiter(limiter *redis_rate.Limiter, rateLimitRPS int) *RedisLimiter {
	return &RedisLimiter{
		limiter:      limiter,
		rateLimitRPS: rateLimitRPS,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	res, err := l.limiter.Allow(ctx, key, redis_rate.PerSecond(l.rateLimitRPS))
	if err != nil {
		return false, fmt.Errorf("failed to rate limit: %w", err)
	}

	return res.Allowed > 0, nil
}

// LocalLimiter keeps one token bucket per key in process memory.
type LocalLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	rps      float64
	burst    int
}

func NewLocalLimiter(rps float64, burst int) *LocalLimiter {
	if burst < 1 {
		burst = 1
	}

	return &LocalLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
		burst:    burst,
	}
}

func (l *LocalLimiter) Allow(_ context.Context, key string) (bool, error) {
	return l.getLimiter(key).Allow(), nil
}

func (l *LocalLimiter) getLimiter(key string) *rate.Limiter {
	l.mu.RLock()
	limiter, exists := l.limiters[key]
	l.mu.RUnlock()

	if exists {
		return limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if limiter, exists = l.limiters[key]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rate.Limit(l.rps), l.burst)
	l.limiters[key] = limiter
	return limiter
}
