package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/guttosm/ap-savings-service/internal/domain/model"
	"github.com/guttosm/ap-savings-service/internal/logger"
	"github.com/guttosm/ap-savings-service/internal/metrics"
)

const (
	redisKeyPrefix    = "ap-savings:estimate:"
	redisOpTimeout    = 200 * time.Millisecond
	redisDialTimeout  = 2 * time.Second
	redisCheckTimeout = 2 * time.Second
)

// RedisCache shares estimates between service instances through Redis.
// Redis failures degrade to cache misses and are never surfaced to callers.
type RedisCache struct {
	client redis.UniversalClient
	ttl    time.Duration
	prefix string
}

// NewRedisClient creates a client for addr with short timeouts suited to a cache.
func NewRedisClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  redisDialTimeout,
		ReadTimeout:  redisOpTimeout,
		WriteTimeout: redisOpTimeout,
	})
}

// NewRedisCache wraps client. A ttl <= 0 stores entries without expiration.
func NewRedisCache(client redis.UniversalClient, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl, prefix: redisKeyPrefix}
}

func (r *RedisCache) key(key int) string {
	return r.prefix + strconv.Itoa(key)
}

// Get returns the cached estimate for key.
func (r *RedisCache) Get(key int) (model.SavingsEstimate, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	raw, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log := logger.Logger()
			log.Warn().Err(err).Int("key", key).Msg("Redis cache get failed")
			metrics.RecordCacheOperation("get", "error")
		} else {
			metrics.RecordCacheOperation("get", "miss")
		}
		return model.SavingsEstimate{}, false
	}

	var estimate model.SavingsEstimate
	if err := json.Unmarshal(raw, &estimate); err != nil {
		log := logger.Logger()
		log.Warn().Err(err).Int("key", key).Msg("Discarding undecodable cached estimate")
		metrics.RecordCacheOperation("get", "error")
		return model.SavingsEstimate{}, false
	}

	metrics.RecordCacheOperation("get", "hit")
	return estimate, true
}

// Set stores value under key with the configured TTL.
func (r *RedisCache) Set(key int, value model.SavingsEstimate) {
	raw, err := json.Marshal(value)
	if err != nil {
		metrics.RecordCacheOperation("set", "error")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	if err := r.client.Set(ctx, r.key(key), raw, r.ttl).Err(); err != nil {
		log := logger.Logger()
		log.Warn().Err(err).Int("key", key).Msg("Redis cache set failed")
		metrics.RecordCacheOperation("set", "error")
		return
	}
	metrics.RecordCacheOperation("set", "success")
}

// Stop closes the Redis client.
func (r *RedisCache) Stop() {
	if err := r.client.Close(); err != nil {
		log := logger.Logger()
		log.Warn().Err(err).Msg("Failed to close Redis client")
	}
}

// Check pings Redis; it backs the readiness probe.
func (r *RedisCache) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, redisCheckTimeout)
	defer cancel()
	return r.client.Ping(ctx).Err()
}
