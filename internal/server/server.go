// Package server exposes the DocVox voice command engine over HTTP: a small
// JSON API for session control and document updates, a WebSocket stream that
// carries transcripts in and speech directives out, and the usual probe and
// metrics endpoints.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/NithinRegidi/docvox/internal/config"
	"github.com/NithinRegidi/docvox/internal/health"
	"github.com/NithinRegidi/docvox/internal/observe"
	"github.com/NithinRegidi/docvox/internal/voice"
)

const shutdownTimeout = 10 * time.Second

// Option is a functional option for configuring a [Server].
type Option func(*Server)

// WithMetrics attaches metric instruments to the HTTP middleware.
func WithMetrics(m *observe.Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

// WithHealthCheckers registers additional readiness checkers.
func WithHealthCheckers(checkers ...health.Checker) Option {
	return func(s *Server) { s.checkers = append(s.checkers, checkers...) }
}

// WithBridge uses an externally constructed stream bridge instead of
// creating a fresh one. The caller typically builds the bridge first so it
// can be handed to the session controller as its speech collaborators.
func WithBridge(b *Bridge) Option {
	return func(s *Server) {
		if b != nil {
			s.bridge = b
		}
	}
}

// Server is the DocVox HTTP server. It owns the voice stream bridge and
// routes everything else to the injected session controller.
type Server struct {
	cfg      config.ServerConfig
	session  *voice.Session
	bridge   *Bridge
	metrics  *observe.Metrics
	checkers []health.Checker
	handler  http.Handler
}

// New creates a Server around the given session controller. The returned
// server's [Server.Bridge] should be wired into the session's collaborators
// before Run is called.
func New(cfg config.ServerConfig, session *voice.Session, opts ...Option) *Server {
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	s := &Server{
		cfg:     cfg,
		session: session,
		bridge:  NewBridge(),
	}
	for _, o := range opts {
		o(s)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/command", s.handleCommand)
	mux.HandleFunc("PUT /v1/document", s.handleDocument)
	mux.HandleFunc("GET /v1/session", s.handleSessionState)
	mux.HandleFunc("PUT /v1/session/locale", s.handleSessionLocale)
	mux.HandleFunc("POST /v1/session/start", s.handleSessionStart)
	mux.HandleFunc("POST /v1/session/stop", s.handleSessionStop)
	mux.HandleFunc("GET /v1/stream", s.handleStream)
	mux.Handle("GET /metrics", promhttp.Handler())

	checkers := append([]health.Checker{
		{Name: "catalog", Check: func(_ context.Context) error { return voice.ValidateCatalog() }},
	}, s.checkers...)
	health.New(checkers...).Register(mux)

	s.handler = observe.Middleware(s.metrics)(mux)
	return s
}

// Bridge returns the voice stream bridge. It implements the speech capture,
// synthesis, and translate collaborator interfaces, delegating to whichever
// client is currently connected to /v1/stream.
func (s *Server) Bridge() *Bridge { return s.bridge }

// Handler returns the server's root HTTP handler. Exposed for tests.
func (s *Server) Handler() http.Handler { return s.handler }

// Run serves HTTP until ctx is cancelled, then drains in-flight requests
// with a bounded shutdown deadline.
func (s *Server) Run(ctx context.Context) error {
	httpSrv := &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		var err error
		if s.cfg.TLS != nil {
			err = httpSrv.ListenAndServeTLS(s.cfg.TLS.CertFile, s.cfg.TLS.KeyFile)
		} else {
			err = httpSrv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	slog.Info("http server listening", "addr", s.cfg.ListenAddr, "tls", s.cfg.TLS != nil)

	select {
	case <-ctx.Done():
	case err, ok := <-errCh:
		if ok && err != nil {
			return fmt.Errorf("server: serve: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}
