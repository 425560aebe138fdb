package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/ap-savings-service/config"
	"github.com/guttosm/ap-savings-service/internal/circuitbreaker"
	"github.com/guttosm/ap-savings-service/internal/repository"
	"github.com/guttosm/ap-savings-service/internal/service"
)

const logsTTLTimeout = 5 * time.Second

// DatabaseComponents holds the request-log sink.
type DatabaseComponents struct {
	DB                 *repository.MongoDB
	LoggingService     service.LoggingService
	LogsCircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects the MongoDB request-log sink.
// Returns nil if the sink is disabled or the connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without request log sink")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	ctx, cancel := context.WithTimeout(context.Background(), logsTTLTimeout)
	defer cancel()
	if ttlDays := int(cfg.LogsTTL.Hours() / 24); ttlDays > 0 {
		if err := db.SetLogsTTL(ctx, ttlDays); err != nil {
			log.Warn().Err(err).Int("ttl_days", ttlDays).Msg("Failed to set logs TTL index")
		}
	}

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)

	return &DatabaseComponents{
		DB:                 db,
		LoggingService:     service.NewLoggingService(logsRepo),
		LogsCircuitBreaker: logsCB,
	}
}
