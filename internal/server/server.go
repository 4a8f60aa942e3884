package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/okandemir/melodia/internal/bootstrap"
	"github.com/okandemir/melodia/internal/config"
	"github.com/okandemir/melodia/internal/scheduler"
)

// Server represents the API server and its lifecycle.
type Server struct {
	config    *config.Config
	router    *gin.Engine
	dbPool    *pgxpool.Pool
	scheduler *scheduler.Scheduler
	logger    zerolog.Logger
	http      *http.Server
}

// NewServer builds a fully wired server: config, logger, database,
// dependencies, and routes.
func NewServer() (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize configuration: %w", err)
	}

	dbPool, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to set up database: %w", err)
	}

	deps, err := bootstrap.BuildDependencies(cfg, dbPool, lgr)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to build dependencies: %w", err)
	}

	router := bootstrap.SetupRouter(cfg, deps, lgr)

	return &Server{
		config:    cfg,
		router:    router,
		dbPool:    dbPool,
		scheduler: deps.Scheduler,
		logger:    lgr,
	}, nil
}

// Run starts the HTTP server and blocks until a shutdown signal arrives.
func (s *Server) Run() error {
	s.http = &http.Server{
		Addr:         fmt.Sprintf(":%s", s.config.Server.Port),
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info().Str("port", s.config.Server.Port).Msg("Starting API server")
		serverErrors <- s.http.ListenAndServe()
	}()

	if s.scheduler != nil {
		s.scheduler.Start()
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		s.logger.Info().Str("signal", sig.String()).Msg("Shutdown signal received, starting graceful shutdown")
		return s.Shutdown()
	}
}

// Shutdown stops the scheduler, drains in-flight requests, and closes the
// database pool.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.scheduler != nil {
		s.scheduler.Stop()
	}

	if err := s.http.Shutdown(ctx); err != nil {
		s.logger.Error().Err(err).Msg("Graceful shutdown failed, forcing close")
		if closeErr := s.http.Close(); closeErr != nil {
			return fmt.Errorf("failed to force close server: %w", closeErr)
		}
	}

	s.dbPool.Close()
	s.logger.Info().Msg("Server stopped")
	return nil
}
