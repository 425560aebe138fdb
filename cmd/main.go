// Package main is the entry point for the ap-savings-service application.
//
// @title           AP Savings Calculator API
// @version         1.0.0
// @description     Estimates the annual Medicare/Medicaid savings from reducing the
// @description     antipsychotic (AP) drug rate among U.S. nursing home residents.
//
// @contact.name   API Support
// @contact.url    https://github.com/guttosm/ap-savings-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @tag.name        Savings
// @tag.description Savings estimate operations
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/ap-savings-service/config"
	_ "github.com/guttosm/ap-savings-service/docs" // swagger docs
	"github.com/guttosm/ap-savings-service/internal/app"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatal().Err(err).Msg("Failed to load .env")
	}
	cfg := config.Load()

	application, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	server := app.NewServer(application.Router, cfg.Server.Port)
	runErr := server.Run()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := application.Close(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to release resources")
	}

	if runErr != nil {
		log.Fatal().Err(runErr).Msg("Server error")
	}
}
