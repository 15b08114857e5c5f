// Package httpapi exposes the engine over HTTP: search, stats, reindex,
// and a health probe.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/clerktree/arbor/internal/core/ports/driving"
)

// Server is the HTTP API server.
type Server struct {
	router  chi.Router
	engine  driving.Engine
	docsDir string
}

// NewServer creates and configures the HTTP server. docsDir is the
// directory reindexed by POST /api/index.
func NewServer(engine driving.Engine, docsDir string) *Server {
	s := &Server{
		engine:  engine,
		docsDir: docsDir,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger)

	r.Get("/health", s.handleHealth)

	r.Get("/api/search", s.handleSearch)
	r.Get("/api/stats", s.handleStats)
	r.Post("/api/index", s.handleIndex)

	s.router = r
}

// ListenAndServe runs the server until the context is cancelled, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
