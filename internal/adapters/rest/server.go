package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/klauspost/compress/gzhttp"

	"github.com/andrescamacho/nations-go/internal/adapters/metrics"
	"github.com/andrescamacho/nations-go/internal/application/mediator"
	"github.com/andrescamacho/nations-go/internal/infrastructure/config"
)

// Server exposes the country commands and queries as a JSON API
type Server struct {
	cfg      config.ServerConfig
	mediator mediator.Mediator
	logger   *slog.Logger
	limiters *userLimiters

	httpMetrics    *metrics.HTTPMetricsCollector
	metricsPath    string
	metricsHandler http.Handler

	handler http.Handler
}

// Option customises a Server
type Option func(*Server)

// WithLogger sets the logger attached to every request context
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// WithHTTPMetrics instruments every route with the given collector
func WithHTTPMetrics(collector *metrics.HTTPMetricsCollector) Option {
	return func(s *Server) { s.httpMetrics = collector }
}

// WithMetricsEndpoint serves handler (usually promhttp) at path without authentication
func WithMetricsEndpoint(path string, handler http.Handler) Option {
	return func(s *Server) {
		s.metricsPath = path
		s.metricsHandler = handler
	}
}

// NewServer builds the route table. Nothing listens until Serve is called.
func NewServer(cfg config.ServerConfig, med mediator.Mediator, opts ...Option) *Server {
	s := &Server{
		cfg:      cfg,
		mediator: med,
		logger:   slog.New(slog.DiscardHandler),
		limiters: newUserLimiters(cfg.RateLimit.Requests, cfg.RateLimit.Burst),
	}
	for _, opt := range opts {
		opt(s)
	}

	var handler http.Handler = s.routes()
	if cfg.Gzip {
		handler = gzhttp.GzipHandler(handler)
	}
	s.handler = handler

	return s
}

// Handler returns the fully wrapped root handler
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Serve accepts connections on listener until ctx is cancelled, then shuts down gracefully.
// Request contexts do not derive from ctx: in-flight requests finish within ShutdownTimeout.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	srv := &http.Server{
		Handler:      s.handler,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "address", listener.Addr().String())
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
		close(errChan)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return <-errChan
}

// ListenAndServe listens on the configured address and calls Serve
func (s *Server) ListenAndServe(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.cfg.Address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Address, err)
	}
	return s.Serve(ctx, listener)
}
