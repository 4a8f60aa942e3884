package main

import (
	"os"

	"github.com/okandemir/melodia/internal/pkg/logger"
	"github.com/okandemir/melodia/internal/server"
)

// @title Melodia API
// @version 1.0
// @description Lesson scheduling backend for music schools: courses, enrollments, holidays, and recurring lesson generation

// @contact.name API Support
// @contact.email support@melodia.local

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until a shutdown signal or a fatal server error.
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
