package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/ap-savings-service/internal/i18n"
	"github.com/guttosm/ap-savings-service/internal/metrics"
	"github.com/guttosm/ap-savings-service/internal/middleware"
	"github.com/guttosm/ap-savings-service/internal/web"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	// RateLimiter guards the /api group; nil disables rate limiting. The caller owns
	// the limiter and stops it on shutdown.
	RateLimiter *middleware.ShardedRateLimiter
	APIKeys     map[string]bool
	EnableAuth  bool
	CORSOrigins []string
	SwaggerUser string
	SwaggerPass string
}

// DefaultRouterConfig returns a configuration without rate limiting, API keys or
// swagger credentials.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{}
}

// NewRouter creates the gin engine serving the calculator page, the API and the
// infrastructure endpoints. pageHandler may be nil for an API-only router.
// The page, its assets and its estimate endpoint are public and unlimited; the
// rate limiter and API-key auth apply to /api only.
func NewRouter(handler *Handler, pageHandler *PageHandler, healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	if pageHandler != nil {
		router.SetHTMLTemplate(web.Templates())
		router.StaticFS("/static", web.StaticFS())
		NewPageRoutes(pageHandler).RegisterRoutes(&router.RouterGroup)
	}

	api := router.Group("/api")
	if cfg.RateLimiter != nil {
		api.Use(cfg.RateLimiter.RateLimit())
	}
	if cfg.EnableAuth && len(cfg.APIKeys) > 0 {
		api.Use(middleware.APIKeyAuth(cfg.APIKeys))
	}
	if handler != nil {
		NewSavingsRoutes(handler).RegisterRoutes(api)
	}

	router.NoRoute(func(c *gin.Context) {
		NewResponseBuilder(c).Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
	})

	return router
}

func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	allowedOrigins := cfg.CORSOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:8080", "http://127.0.0.1:8080"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:  allowedOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Accept-Encoding", "X-API-Key", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		MaxAge:        12 * time.Hour,
	}))

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(),
		middleware.ErrorHandler(),
	)
}

func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler != nil {
		healthHandler.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}
