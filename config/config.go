// Package config provides configuration management for the savings service.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/samber/lo"

	"github.com/guttosm/ap-savings-service/internal/domain/model"
	"github.com/guttosm/ap-savings-service/internal/web"
)

// Config holds the complete application configuration.
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	Cache     CacheConfig
	Auth      AuthConfig
	Database  DatabaseConfig
	Estimator EstimatorConfig
	Page      PageConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port        string
	RateLimit   int
	RateWindow  time.Duration
	CORSOrigins []string
	SwaggerUser string
	SwaggerPass string
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level  string
	Pretty bool
}

// CacheConfig holds estimate cache configuration.
// Size 0 disables the in-process cache; a non-empty RedisAddr replaces it with Redis.
type CacheConfig struct {
	Size      int
	TTL       time.Duration
	RedisAddr string
}

// AuthConfig holds API key authentication configuration.
type AuthConfig struct {
	Enabled bool
	APIKeys map[string]bool
}

// DatabaseConfig holds MongoDB configuration. MongoDB only stores request logs.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	Enabled      bool

	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// EstimatorConfig holds the initial calculator inputs and the cost preset source.
type EstimatorConfig struct {
	DefaultTargetApRate float64
	DefaultCostPerDay   int
	PresetsFile         string
}

// PageConfig holds calculator page configuration.
type PageConfig struct {
	Theme string
	Title string
}

// LoadDotEnv loads variables from the given .env files (".env" when none are
// given) without overriding variables already set. A missing file is not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	existing := lo.Filter(paths, func(p string, _ int) bool {
		_, err := os.Stat(p)
		return err == nil
	})
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("failed to load env files: %w", err)
	}
	return nil
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			RateLimit:   getEnvInt("RATE_LIMIT", 100),
			RateWindow:  getEnvDuration("RATE_WINDOW", time.Minute),
			CORSOrigins: parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser: getEnv("SWAGGER_USER", ""),
			SwaggerPass: getEnv("SWAGGER_PASS", ""),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
		Cache: CacheConfig{
			Size:      getEnvInt("CACHE_SIZE", 1000),
			TTL:       getEnvDuration("CACHE_TTL", 5*time.Minute),
			RedisAddr: getEnv("REDIS_ADDR", ""),
		},
		Auth: AuthConfig{
			Enabled: getEnvBool("AUTH_ENABLED", false),
			APIKeys: parseAPIKeys(os.Getenv("API_KEYS")),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "ap_savings"),
			LogsTTL:                        getEnvDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Estimator: EstimatorConfig{
			DefaultTargetApRate: getEnvFloat("DEFAULT_TARGET_AP_RATE", model.DefaultTargetApRate),
			DefaultCostPerDay:   getEnvInt("DEFAULT_COST_PER_DAY", model.DefaultCostPerDay),
			PresetsFile:         getEnv("PRESETS_FILE", ""),
		},
		Page: PageConfig{
			Theme: strings.ToLower(getEnv("PAGE_THEME", web.ThemeCard)),
			Title: getEnv("PAGE_TITLE", "Dosing Down, DOGE-ing Up"),
		},
	}
}

// DefaultInput returns the configured initial calculator inputs.
func (c Config) DefaultInput() model.SavingsInput {
	return model.SavingsInput{
		TargetApRate: c.Estimator.DefaultTargetApRate,
		CostPerDay:   c.Estimator.DefaultCostPerDay,
	}
}

// Validate rejects configurations that would put a control outside its domain
// or leave a feature half-configured.
func (c Config) Validate() error {
	var errs []error

	if err := c.DefaultInput().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("default input: %w", err))
	}
	if !web.ValidTheme(c.Page.Theme) {
		errs = append(errs, fmt.Errorf("PAGE_THEME %q: must be %q or %q", c.Page.Theme, web.ThemeCard, web.ThemePlain))
	}
	if c.Server.RateLimit < 0 {
		errs = append(errs, errors.New("RATE_LIMIT must not be negative"))
	}
	if c.Server.RateLimit > 0 && c.Server.RateWindow <= 0 {
		errs = append(errs, errors.New("RATE_WINDOW must be positive when rate limiting is enabled"))
	}
	if c.Cache.Size < 0 {
		errs = append(errs, errors.New("CACHE_SIZE must not be negative"))
	}
	if c.Auth.Enabled && len(c.Auth.APIKeys) == 0 {
		errs = append(errs, errors.New("AUTH_ENABLED requires at least one key in API_KEYS"))
	}
	if (c.Server.SwaggerUser == "") != (c.Server.SwaggerPass == "") {
		errs = append(errs, errors.New("SWAGGER_USER and SWAGGER_PASS must be set together"))
	}

	return errors.Join(errs...)
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

// splitList splits a comma-separated value, trimming blanks and dropping duplicates.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := lo.Map(strings.Split(s, ","), func(p string, _ int) string {
		return strings.TrimSpace(p)
	})
	return lo.Uniq(lo.Compact(parts))
}

func parseAPIKeys(s string) map[string]bool {
	keys := splitList(s)
	if len(keys) == 0 {
		return nil
	}
	return lo.SliceToMap(keys, func(k string) (string, bool) {
		return k, true
	})
}

func parseCORSOrigins(s string) []string {
	defaults := []string{
		"http://localhost:8080",
		"http://127.0.0.1:8080",
	}
	return lo.Uniq(append(defaults, splitList(s)...))
}
