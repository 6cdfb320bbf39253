// Package server exposes path enumeration over HTTP.
//
// The API is stateless: every request carries its own edge list, the
// graph is built per request, and nothing is shared between requests.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/graphtrail/graphtrail/pkg/graph"
)

// shutdownTimeout bounds graceful shutdown after the context is canceled.
const shutdownTimeout = 5 * time.Second

// Server routes path-enumeration queries to the graph library.
type Server struct {
	logger *charmlog.Logger
	router *chi.Mux
}

// New creates a Server with its routes and middleware installed.
func New(logger *charmlog.Logger) *Server {
	s := &Server{logger: logger, router: chi.NewRouter()}
	s.router.Use(s.logRequests)
	s.router.Get("/healthz", s.handleHealth)
	s.router.Post("/v1/paths", s.handlePaths)
	return s
}

// Handler returns the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until the listener fails or ctx is
// canceled, then shuts down gracefully. Returns ctx.Err() after a
// clean shutdown so callers can distinguish cancellation from failure.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("listening", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return ctx.Err()
	}
}

// pathsRequest is the wire shape of a POST /v1/paths body. MaxSteps
// absent (or negative) means the search is unbounded.
type pathsRequest struct {
	Directed bool       `json:"directed"`
	Edges    [][]string `json:"edges"`
	Start    string     `json:"start"`
	End      string     `json:"end"`
	MaxSteps *int       `json:"max_steps"`
}

// pathsResponse lists every matching path. Paths is always present,
// empty rather than null when nothing matches.
type pathsResponse struct {
	Paths [][]string `json:"paths"`
	Count int        `json:"count"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handlePaths(w http.ResponseWriter, r *http.Request) {
	var req pathsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("decode: %v", err)})
		return
	}
	if req.Start == "" || req.End == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "start and end are required"})
		return
	}

	g := graph.New[string]()
	if req.Directed {
		g = graph.NewDirected[string]()
	}
	for i, e := range req.Edges {
		if len(e) != 2 {
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Error: fmt.Sprintf("edge %d: want [from, to], got %d elements", i, len(e)),
			})
			return
		}
		g.AddEdge(e[0], e[1])
	}

	var paths [][]string
	if req.MaxSteps != nil && *req.MaxSteps >= 0 {
		paths = g.FindPathsWithMaxSteps(req.Start, req.End, *req.MaxSteps)
	} else {
		paths = g.FindAllPaths(req.Start, req.End)
	}
	if paths == nil {
		paths = [][]string{}
	}

	writeJSON(w, http.StatusOK, pathsResponse{Paths: paths, Count: len(paths)})
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusWriter records the response status for request logging.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// logRequests tags each request with a generated ID, echoes it in the
// X-Request-ID header, and logs method, path, status, and duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		start := time.Now()

		ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		ww.Header().Set("X-Request-ID", id)
		next.ServeHTTP(ww, r)

		s.logger.Info("request",
			"id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.status,
			"dur", time.Since(start).Round(time.Millisecond),
		)
	})
}
