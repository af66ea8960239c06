// SPDX-License-Identifier: MIT

// Package server exposes the diffgap computation over HTTP:
//
//	GET /v1/gaps?seed=&points=&sigma=&method=&exact=&withPoints=
//	GET /v1/sweep?seed=&points=&sigmas=0.1,0.3&method=  (at most maxSigmas values, no exact)
//	GET /metrics
//	GET /healthz
//
// Every request is independent; the server holds no computation state.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/diffgap/builder"
	"github.com/katalvlaran/diffgap/calculi"
)

// Per-request limits.
const (
	DefaultMaxPoints = 500 // points per request
	DefaultMaxSigmas = 16  // σ values per sweep
)

// Server holds the HTTP interface.
type Server struct {
	httpServer *http.Server
	handler    http.Handler
	logger     *slog.Logger
	defaults   calculi.Input
	sigmas     []float64
	maxPoints  int
	maxSigmas  int
	opts       []calculi.Option
	sampler    []builder.BuilderOption
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithDefaults sets the parameters used when a query omits them.
func WithDefaults(in calculi.Input) Option {
	return func(s *Server) { s.defaults = in }
}

// WithSweepSigmas sets the default σ list of /v1/sweep.
func WithSweepSigmas(sigmas []float64) Option {
	return func(s *Server) { s.sigmas = append([]float64(nil), sigmas...) }
}

// WithMaxPoints caps the per-request point count.
func WithMaxPoints(n int) Option {
	return func(s *Server) { s.maxPoints = n }
}

// WithMaxSigmas caps the number of σ values one sweep request may ask for.
func WithMaxSigmas(n int) Option {
	return func(s *Server) { s.maxSigmas = n }
}

// WithCalculiOptions applies opts to every computation. Per-request
// parameters are appended after them and win.
func WithCalculiOptions(opts ...calculi.Option) Option {
	return func(s *Server) { s.opts = append(s.opts, opts...) }
}

// WithSamplerOptions applies opts to the point sampler of every request.
func WithSamplerOptions(opts ...builder.BuilderOption) Option {
	return func(s *Server) { s.sampler = append(s.sampler, opts...) }
}

// NewServer builds a server listening on addr.
func NewServer(addr string, opts ...Option) *Server {
	s := &Server{
		logger:    slog.Default(),
		defaults:  calculi.Input{Seed: 42, PointCount: 80, Sigma: 0.3},
		sigmas:    []float64{0.1, 0.2, 0.3, 0.5, 0.8, 1.0},
		maxPoints: DefaultMaxPoints,
		maxSigmas: DefaultMaxSigmas,
	}
	for _, opt := range opts {
		opt(s)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/gaps", s.handleGaps)
	mux.HandleFunc("GET /v1/sweep", s.handleSweep)
	mux.Handle("GET /metrics", promhttp.Handler())

	// Recovery -> RequestID -> Logging -> mux.
	var handler http.Handler = mux
	handler = s.LoggingMiddleware(handler)
	handler = s.RequestIDMiddleware(handler)
	handler = s.RecoveryMiddleware(handler)

	rootMux := http.NewServeMux()
	rootMux.HandleFunc("GET /healthz", s.handleHealthz)
	rootMux.Handle("/", handler)
	s.handler = rootMux
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           rootMux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s
}

// Handler returns the root handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.handler }

// Run serves until Shutdown.
func (s *Server) Run() error {
	s.logger.Info("HTTP server listening", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server startup failed: %w", err)
	}

	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Starting graceful shutdown of HTTP server")

	return s.httpServer.Shutdown(ctx)
}
