// Package server provides the HTTP API for the travel planner.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/Prateekkumar12345/AI-Travel-Planner/internal/config"
	"github.com/Prateekkumar12345/AI-Travel-Planner/internal/planner"
)

// Server is the HTTP server for the travel planner API.
type Server struct {
	assistant *planner.Assistant
	config    *config.ServerConfig
	retrieval *config.RetrievalConfig
	logger    *zap.Logger
	server    *http.Server
}

// NewServer creates a server with the given dependencies.
func NewServer(
	assistant *planner.Assistant,
	cfg *config.ServerConfig,
	retrieval *config.RetrievalConfig,
	logger *zap.Logger,
) *Server {
	return &Server{
		assistant: assistant,
		config:    cfg,
		retrieval: retrieval,
		logger:    logger,
	}
}

// Routes builds the router. Exposed for handler tests.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(120 * time.Second))
	r.Use(middleware.Compress(5))

	r.Post("/api/v1/destinations", s.handleBuildDestination)
	r.Get("/api/v1/destinations/{destination}", s.handleDestinationInfo)
	r.Post("/api/v1/destinations/query", s.handleQueryFacts)
	r.Post("/api/v1/itinerary", s.handleItinerary)
	r.Post("/api/v1/ask", s.handleAsk)
	r.Get("/api/v1/status", s.handleStatus)
	r.Get("/health", s.handleHealth)

	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.Routes(),
	}
	s.logger.Info("Starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
