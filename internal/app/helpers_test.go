package app

import (
	"time"

	"github.com/guttosm/ap-savings-service/config"
	"github.com/guttosm/ap-savings-service/internal/domain/model"
	"github.com/guttosm/ap-savings-service/internal/web"
)

// testConfig returns a valid configuration with every optional dependency disabled.
func testConfig() config.Config {
	return config.Config{
		Server: config.ServerConfig{
			Port:       "8080",
			RateLimit:  100,
			RateWindow: time.Minute,
		},
		Log: config.LogConfig{Level: "error"},
		Cache: config.CacheConfig{
			Size: 100,
			TTL:  time.Minute,
		},
		Database: config.DatabaseConfig{
			DatabaseName:                   "ap_savings",
			LogsTTL:                        30 * 24 * time.Hour,
			CircuitBreakerFailureThreshold: 5,
			CircuitBreakerSuccessThreshold: 2,
			CircuitBreakerTimeout:          30 * time.Second,
		},
		Estimator: config.EstimatorConfig{
			DefaultTargetApRate: model.DefaultTargetApRate,
			DefaultCostPerDay:   model.DefaultCostPerDay,
		},
		Page: config.PageConfig{
			Theme: web.ThemeCard,
			Title: "Dosing Down, DOGE-ing Up",
		},
	}
}
