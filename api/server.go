// Package api provides the HTTP REST API for LearnPath.
//
// Endpoints:
//
//	POST /api/chat/stream      →  streaming chat turn (SSE)
//	POST /api/roadmap          →  roadmap generation (SSE)
//	GET  /api/session/history  →  stored conversation history
//	GET  /api/session/snapshot →  serializable session state
//	POST /api/session/restore  →  restore session state
//	POST /api/session/reset    →  clear history and session clock
//	GET  /health               →  liveness probe
//
// File structure:
//   - server.go: HTTP server setup and lifecycle
//   - middleware.go: HTTP middleware (logging, recovery)
//   - registry.go: per-session service registry
//   - chat.go: streaming chat endpoint (SSE)
//   - roadmap.go: roadmap generation endpoint
//   - session.go: session state endpoints
//   - health.go: liveness probe
//   - response.go: JSON response helpers
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/learnpath/learnpath/internal/app"
	applog "github.com/learnpath/learnpath/internal/log"
)

const (
	// DefaultAddr is the default address for the HTTP server.
	DefaultAddr = "127.0.0.1:8080"

	// ShutdownTimeout is the maximum time to wait for graceful shutdown.
	ShutdownTimeout = 10 * time.Second

	// ReadHeaderTimeout bounds header reads (Slowloris protection).
	ReadHeaderTimeout = 10 * time.Second

	// ReadTimeout is the maximum duration for reading the entire request.
	ReadTimeout = 30 * time.Second

	// IdleTimeout for keep-alive connections.
	IdleTimeout = 120 * time.Second
)

// Server is the HTTP server for the LearnPath REST API.
type Server struct {
	mux    *http.ServeMux
	logger applog.Logger

	chat    *ChatHandler
	roadmap *RoadmapHandler
	session *SessionHandler
	health  *HealthHandler
}

// NewServer creates a new HTTP server with all routes registered.
func NewServer(a *app.App) *Server {
	mux := http.NewServeMux()
	sessions := newRegistry(a.NewChatService)

	s := &Server{
		mux:     mux,
		logger:  a.Logger,
		chat:    NewChatHandler(sessions, a.Intent, a.Messages, a.Logger),
		roadmap: NewRoadmapHandler(a.Roadmaps, a.Messages, a.Logger),
		session: NewSessionHandler(sessions, a.Logger),
		health:  NewHealthHandler(),
	}

	s.chat.RegisterRoutes(mux)
	s.roadmap.RegisterRoutes(mux)
	s.session.RegisterRoutes(mux)
	s.health.RegisterRoutes(mux)

	return s
}

// Handler returns the HTTP handler with middleware applied.
// Middleware order: recovery → logging → handler.
func (s *Server) Handler() http.Handler {
	return chain(s.mux,
		recoveryMiddleware(s.logger),
		loggingMiddleware(s.logger))
}

// Run starts the HTTP server and blocks until the context is cancelled.
// Streaming responses disable the write timeout; SSE turns can outlive any
// fixed bound, so slow-client protection relies on per-call LLM timeouts.
func (s *Server) Run(ctx context.Context, addr string) error {
	if addr == "" {
		addr = DefaultAddr
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: ReadHeaderTimeout,
		ReadTimeout:       ReadTimeout,
		IdleTimeout:       IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
