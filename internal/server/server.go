// Package server provides the HTTP API and the HTML overview page.
package server

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/fr4nk3nst1ner/talentscope/internal/config"
	"github.com/fr4nk3nst1ner/talentscope/internal/metrics"
	"github.com/fr4nk3nst1ner/talentscope/internal/predictor"
)

const shutdownTimeout = 10 * time.Second

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	cfg        *config.AppConfig
	logger     *zap.Logger
	metrics    *metrics.Metrics

	// delayed honors the configured computing delay, instant skips it
	delayed *predictor.Predictor
	instant *predictor.Predictor

	page *template.Template
}

// New creates a new server instance. A nil logger disables logging and a
// nil metrics set gets a fresh registry.
func New(cfg *config.AppConfig, logger *zap.Logger, m *metrics.Metrics) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if m == nil {
		m = metrics.New()
	}

	page, err := parsePage()
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:     cfg,
		logger:  logger,
		metrics: m,
		delayed: predictor.New(cfg.Predictor.Delay, predictor.WithObserver(m)),
		instant: predictor.New(0, predictor.WithObserver(m)),
		page:    page,
	}

	mux := http.NewServeMux()
	s.handle(mux, "GET /health", s.handleHealth)
	s.handle(mux, "GET /{$}", s.handleIndex)

	s.handle(mux, "GET /api/summary", s.handleSummary)
	s.handle(mux, "GET /api/estimate", s.handleEstimateQuery)
	s.handle(mux, "POST /api/estimate", s.handleEstimateBody)

	// Predictor tables
	s.handle(mux, "GET /api/roles", s.handleRoles)
	s.handle(mux, "GET /api/locations", s.handleLocations)
	s.handle(mux, "GET /api/tiers", s.handleTiers)

	// Market data
	s.handle(mux, "GET /api/skills", s.handleSkills)
	s.handle(mux, "GET /api/skills/{name}", s.handleSkill)
	s.handle(mux, "GET /api/companies", s.handleCompanies)
	s.handle(mux, "GET /api/locations/stats", s.handleLocationStats)
	s.handle(mux, "GET /api/states", s.handleStates)
	s.handle(mux, "GET /api/states/{name}", s.handleState)
	s.handle(mux, "GET /api/trends", s.handleTrends)

	mux.Handle("GET /metrics", promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      s.withRequestID(s.withLogging(s.withCORS(s.withBasicAuth(mux)))),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler returns the fully wrapped handler
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run listens on the configured port until ctx is done
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down gracefully
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting",
			zap.String("addr", ln.Addr().String()),
			zap.Bool("auth", s.cfg.Auth.Enabled()),
			zap.Duration("delay", s.delayed.Delay()))
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	<-errCh
	s.logger.Info("server stopped")
	return nil
}

// handle registers h under pattern and records metrics labelled with the pattern
func (s *Server) handle(mux *http.ServeMux, pattern string, h http.HandlerFunc) {
	mux.Handle(pattern, s.instrument(pattern, h))
}
