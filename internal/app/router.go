package app

import (
	"github.com/guttosm/ap-savings-service/config"
	"github.com/guttosm/ap-savings-service/internal/domain/model"
	"github.com/guttosm/ap-savings-service/internal/http"
	"github.com/guttosm/ap-savings-service/internal/middleware"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	PageHandler   *http.PageHandler
	HealthHandler *http.HealthHandler
	RateLimiter   *middleware.ShardedRateLimiter
	Config        http.RouterConfig
}

// InitializeRouter builds the handlers and router configuration.
// The returned rate limiter, when non-nil, must be stopped on shutdown.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	presets []model.CostPreset,
	cfg config.Config,
) *RouterComponents {
	defaults := cfg.DefaultInput()

	handler := http.NewHandler(services.Estimator, services.Reports,
		http.WithPresets(presets),
		http.WithDefaults(defaults),
	)
	pageHandler := http.NewPageHandler(services.Estimator, http.PageConfig{
		Title:    cfg.Page.Title,
		Theme:    cfg.Page.Theme,
		Defaults: defaults,
		Presets:  presets,
	})

	var limiter *middleware.ShardedRateLimiter
	if cfg.Server.RateLimit > 0 {
		limiter = middleware.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateWindow)
	}

	healthHandler := http.NewHealthHandler()
	if services.RedisCache != nil {
		healthHandler.RegisterOptionalChecker("redis", services.RedisCache)
	}
	if dbComponents != nil {
		if dbComponents.DB != nil {
			healthHandler.RegisterOptionalChecker("mongodb", http.HealthCheckFunc(dbComponents.DB.HealthCheck))
		}
		healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		healthHandler.RegisterStats("request_log", asyncLoggerStats)
	}
	if limiter != nil {
		healthHandler.RegisterStats("rate_limiter", func() map[string]int64 {
			visitors, _ := limiter.Stats()
			return map[string]int64{"visitors": int64(visitors)}
		})
	}

	return &RouterComponents{
		Handler:       handler,
		PageHandler:   pageHandler,
		HealthHandler: healthHandler,
		RateLimiter:   limiter,
		Config: http.RouterConfig{
			RateLimiter: limiter,
			EnableAuth:  cfg.Auth.Enabled,
			APIKeys:     cfg.Auth.APIKeys,
			CORSOrigins: cfg.Server.CORSOrigins,
			SwaggerUser: cfg.Server.SwaggerUser,
			SwaggerPass: cfg.Server.SwaggerPass,
		},
	}
}

// asyncLoggerStats reports the request-log pipeline counters, or nil when it is not running.
func asyncLoggerStats() map[string]int64 {
	al := middleware.GetAsyncLogger()
	if al == nil {
		return nil
	}
	enqueued, dropped, written, failed := al.Stats()
	return map[string]int64{
		"enqueued": enqueued,
		"dropped":  dropped,
		"written":  written,
		"errors":   failed,
	}
}
