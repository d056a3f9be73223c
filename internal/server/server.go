// Package server provides the HTTP API for FoodLens.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/foodlens/foodlens/internal/config"
	"github.com/foodlens/foodlens/internal/models"
	"github.com/foodlens/foodlens/internal/store"
	"github.com/foodlens/foodlens/pkg/utils"
)

// maxUploadBytes caps label photo uploads.
const maxUploadBytes = 10 << 20

// Analyzer is the analysis backend the server dispatches uploads to.
type Analyzer interface {
	Analyze(ctx context.Context, imageBytes []byte, profile models.UserProfile) (*models.HealthReport, error)
}

// Server is the HTTP server for the FoodLens API.
type Server struct {
	analyzer Analyzer
	reports  *store.ReportCache
	config   *config.ServerConfig
	logger   *zap.Logger
	server   *http.Server
}

// NewServer creates a server with the given dependencies.
func NewServer(analyzer Analyzer, reports *store.ReportCache, cfg *config.ServerConfig, logger *zap.Logger) *Server {
	return &Server{
		analyzer: analyzer,
		reports:  reports,
		config:   cfg,
		logger:   utils.LoggerOrNop(logger),
	}
}

// Router builds the request router.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))

	r.Post("/api/v1/analyze", s.handleAnalyze)
	r.Get("/api/v1/results", s.handleResults)
	r.Get("/api/v1/reports/{id}", s.handleGetReport)
	r.Get("/health", s.handleHealth)
	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.Router(),
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
