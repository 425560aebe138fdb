// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/ap-savings-service/config"
	"github.com/guttosm/ap-savings-service/internal/http"
	"github.com/guttosm/ap-savings-service/internal/middleware"
)

// App is the wired application: the router plus the resources to release on shutdown.
type App struct {
	Router *gin.Engine

	services *ServiceComponents
	database *DatabaseComponents
	limiter  *middleware.ShardedRateLimiter
}

// InitializeApp validates cfg and wires all application dependencies.
// Optional dependencies (MongoDB log sink, Redis cache) that cannot be reached are
// logged and skipped; configuration errors are returned.
func InitializeApp(cfg config.Config) (*App, error) {
	InitializeLogger(cfg.Log)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	presets, err := config.LoadCostPresets(cfg.Estimator.PresetsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load cost presets: %w", err)
	}

	services := InitializeServices(cfg)
	database := InitializeDatabase(cfg.Database)
	if database != nil {
		middleware.InitAsyncLogger(database.LoggingService, middleware.DefaultAsyncLoggerConfig())
	}

	components := InitializeRouter(services, database, presets, cfg)

	log.Info().
		Str("theme", cfg.Page.Theme).
		Int("presets", len(presets)).
		Bool("mongodb", database != nil).
		Bool("redis", services.RedisCache != nil).
		Msg("Application initialized")

	return &App{
		Router:   http.NewRouter(components.Handler, components.PageHandler, components.HealthHandler, components.Config),
		services: services,
		database: database,
		limiter:  components.RateLimiter,
	}, nil
}

// Close drains the request-log pipeline and releases the limiter, caches and connections.
func (a *App) Close(ctx context.Context) error {
	middleware.StopAsyncLogger()
	if a.limiter != nil {
		a.limiter.Stop()
	}

	var errs []error
	if a.services != nil {
		a.services.Estimator.Close()
	}
	if a.database != nil && a.database.DB != nil {
		if err := a.database.DB.Close(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to close MongoDB: %w", err))
		}
	}
	return errors.Join(errs...)
}
