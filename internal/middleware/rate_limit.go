package middleware

import (
	"hash/fnv"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/ap-savings-service/internal/domain/dto"
	"github.com/guttosm/ap-savings-service/internal/i18n"
)

const defaultNumShards = 16

type visitor struct {
	tokens    int
	lastReset time.Time
}

type rateLimiterShard struct {
	mu       sync.Mutex
	visitors map[string]*visitor
}

// ShardedRateLimiter is a fixed-window per-IP limiter. Visitors are spread
// over shards by FNV hash so that concurrent clients rarely share a lock.
type ShardedRateLimiter struct {
	shards    []*rateLimiterShard
	numShards int
	rate      int
	window    time.Duration
	stopCh    chan struct{}
	stopOnce  sync.Once
	now       func() time.Time
}

// NewRateLimiter creates a rate limiter allowing rate requests per window per client IP.
func NewRateLimiter(rate int, window time.Duration) *ShardedRateLimiter {
	return NewShardedRateLimiter(rate, window, defaultNumShards)
}

// NewShardedRateLimiter creates a rate limiter with a custom shard count.
func NewShardedRateLimiter(rate int, window time.Duration, numShards int) *ShardedRateLimiter {
	if numShards <= 0 {
		numShards = defaultNumShards
	}

	shards := make([]*rateLimiterShard, numShards)
	for i := range shards {
		shards[i] = &rateLimiterShard{visitors: make(map[string]*visitor)}
	}

	rl := &ShardedRateLimiter{
		shards:    shards,
		numShards: numShards,
		rate:      rate,
		window:    window,
		stopCh:    make(chan struct{}),
		now:       time.Now,
	}

	go rl.cleanup()
	return rl
}

func (rl *ShardedRateLimiter) getShard(identifier string) *rateLimiterShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(identifier))
	return rl.shards[h.Sum32()%uint32(rl.numShards)]
}

func (rl *ShardedRateLimiter) checkRateLimit(identifier string) (allowed bool, remaining int) {
	shard := rl.getShard(identifier)

	shard.mu.Lock()
	defer shard.mu.Unlock()

	now := rl.now()
	v, exists := shard.visitors[identifier]
	if !exists || now.Sub(v.lastReset) > rl.window {
		shard.visitors[identifier] = &visitor{tokens: rl.rate - 1, lastReset: now}
		return true, rl.rate - 1
	}

	if v.tokens <= 0 {
		return false, 0
	}

	v.tokens--
	return true, v.tokens
}

// RateLimit returns a middleware that limits requests per client IP.
func (rl *ShardedRateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, remaining := rl.checkRateLimit(c.ClientIP())

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.rate))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				dto.NewError(dto.ErrCodeRateLimit, i18n.T(i18n.ErrKeyRateLimitExceeded)).WithRequestID(GetRequestID(c)))
			return
		}

		c.Next()
	}
}

func (rl *ShardedRateLimiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanupExpired()
		case <-rl.stopCh:
			return
		}
	}
}

func (rl *ShardedRateLimiter) cleanupExpired() {
	now := rl.now()
	threshold := rl.window * 2

	for _, shard := range rl.shards {
		shard.mu.Lock()
		for id, v := range shard.visitors {
			if now.Sub(v.lastReset) > threshold {
				delete(shard.visitors, id)
			}
		}
		shard.mu.Unlock()
	}
}

// Stop ends the cleanup goroutine. It is safe to call more than once.
func (rl *ShardedRateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

// Stats returns the number of tracked visitors, in total and per shard.
func (rl *ShardedRateLimiter) Stats() (totalVisitors int, perShard []int) {
	perShard = make([]int, rl.numShards)
	for i, shard := range rl.shards {
		shard.mu.Lock()
		perShard[i] = len(shard.visitors)
		totalVisitors += perShard[i]
		shard.mu.Unlock()
	}
	return totalVisitors, perShard
}
