package app

import (
	"github.com/guttosm/ap-savings-service/config"
	"github.com/guttosm/ap-savings-service/internal/logger"
)

// InitializeLogger initializes the JSON logger from the log configuration.
func InitializeLogger(cfg config.LogConfig) {
	level := cfg.Level
	if level == "" {
		level = "info"
	}
	logger.Init(level, cfg.Pretty)
}
