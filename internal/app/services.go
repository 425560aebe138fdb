package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/ap-savings-service/config"
	"github.com/guttosm/ap-savings-service/internal/service"
	"github.com/guttosm/ap-savings-service/internal/service/cache"
)

const redisPingTimeout = 2 * time.Second

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Estimator  *service.SavingsEstimatorService
	Reports    service.ReportGenerator
	RedisCache *cache.RedisCache
}

// InitializeServices builds the estimator with its cache and the report generator.
// A configured but unreachable Redis falls back to the in-process cache.
func InitializeServices(cfg config.Config) *ServiceComponents {
	components := &ServiceComponents{
		Reports: service.NewPDFReportService(cfg.Page.Title),
	}

	var opts []service.Option
	if redisCache := connectRedis(cfg.Cache); redisCache != nil {
		components.RedisCache = redisCache
		opts = append(opts, service.WithCacheInterface(redisCache))
	} else if cfg.Cache.Size > 0 {
		opts = append(opts, service.WithCache(cfg.Cache.Size, cfg.Cache.TTL))
	}

	components.Estimator = service.NewSavingsEstimatorService(opts...)
	return components
}

func connectRedis(cfg config.CacheConfig) *cache.RedisCache {
	if cfg.RedisAddr == "" {
		return nil
	}

	redisCache := cache.NewRedisCache(cache.NewRedisClient(cfg.RedisAddr), cfg.TTL)

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := redisCache.Check(ctx); err != nil {
		log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("Redis unreachable - using in-process cache")
		redisCache.Stop()
		return nil
	}

	log.Info().Str("addr", cfg.RedisAddr).Msg("Connected to Redis")
	return redisCache
}
