// SPDX-License-Identifier: MIT

// Package server exposes the estimators, the percolation sampler and batch
// simulations over HTTP.
//
// Routes:
//
//	POST /v1/estimate     naive and corrected estimates for a survey
//	POST /v1/percolate    one percolation run on a caller-supplied graph
//	POST /v1/simulate     a batch on a fresh backbone; the report is stored
//	GET  /v1/runs         stored run IDs
//	GET  /v1/runs/{id}    one stored report
//	GET  /healthz
//	GET  /metrics         Prometheus exposition
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/rdsim/internal/config"
	"github.com/katalvlaran/rdsim/internal/store"
	"github.com/katalvlaran/rdsim/simulation"
)

// Request limits.
const (
	maxBodyBytes = 32 << 20
	maxNodes     = 1_000_000
	maxTrials    = 1_000

	shutdownTimeout = 10 * time.Second
)

// Options configures New.
type Options struct {
	// Config supplies defaults for /v1/simulate and the listen address.
	Config config.Config

	// Store keeps simulation reports; nil means an in-memory store.
	Store store.Store

	// Logger receives request and batch logs; nil discards.
	Logger *log.Logger

	// Registry collects metrics served on /metrics; nil creates a fresh one.
	Registry *prometheus.Registry
}

// Server is the rdsim HTTP service.
type Server struct {
	cfg     config.Config
	store   store.Store
	logger  *log.Logger
	reg     *prometheus.Registry
	metrics *simulation.Metrics
	router  chi.Router
}

// New wires the routes. It never fails; invalid requests are rejected per call.
func New(opts Options) *Server {
	s := &Server{
		cfg:    opts.Config,
		store:  opts.Store,
		logger: opts.Logger,
		reg:    opts.Registry,
	}
	if s.store == nil {
		s.store = store.NewMemory()
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	if s.reg == nil {
		s.reg = prometheus.NewRegistry()
	}
	s.metrics = simulation.NewMetrics(s.reg)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.reg, promhttp.HandlerOpts{}))

	r.Route("/v1", func(r chi.Router) {
		r.Post("/estimate", s.handleEstimate)
		r.Post("/percolate", s.handlePercolate)
		r.Post("/simulate", s.handleSimulate)
		r.Get("/runs", s.handleListRuns)
		r.Get("/runs/{id}", s.handleGetRun)
	})

	s.router = r
	return s
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on the configured address until ctx is done, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("ListenAndServe: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("Shutdown: %w", err)
	}
	return nil
}
