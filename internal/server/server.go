// Package server exposes a parsed code graph over HTTP.
//
// The server is read-only: it holds a single graph built by the pipeline
// at startup and answers entity and diagram queries against it. Rendered
// diagrams are cached in-process since the graph never changes for the
// lifetime of the server.
//
// # Endpoints
//
//   - GET /healthz                                  liveness probe
//   - GET /api/entities?kind=                       list entities
//   - GET /api/entities/{name}                      entity detail
//   - GET /api/diagram?entity=&depth=&format=       rendered diagram
//
// # Example
//
//	srv, err := server.New(g, server.Config{Addr: ":8080"})
//	if err != nil {
//	    return err
//	}
//	go srv.Start()
//	defer srv.Shutdown(ctx)
package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/matzehuels/codemap/pkg/entity"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// DefaultAddr is the listen address used when Config.Addr is empty.
	DefaultAddr = ":8080"

	// diagramCacheSize bounds the number of rendered diagrams kept in memory.
	diagramCacheSize = 128

	// readHeaderTimeout guards against slow-header attacks.
	readHeaderTimeout = 10 * time.Second
)

// =============================================================================
// Server
// =============================================================================

// Config holds server settings. Zero values fall back to defaults.
type Config struct {
	// Addr is the listen address (e.g., ":8080").
	Addr string

	// Logger receives request logs. Defaults to log.Default().
	Logger *log.Logger
}

// Server serves entity and diagram queries for a single graph.
type Server struct {
	graph    *entity.Graph
	logger   *log.Logger
	http     *http.Server
	diagrams *lru.Cache[string, []byte]
}

// New creates a server for the given graph.
func New(g *entity.Graph, cfg Config) (*Server, error) {
	diagrams, err := lru.New[string, []byte](diagramCacheSize)
	if err != nil {
		return nil, err
	}

	addr := cfg.Addr
	if addr == "" {
		addr = DefaultAddr
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{
		graph:    g,
		logger:   logger,
		diagrams: diagrams,
	}
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return s, nil
}

// Handler builds the route tree. It is exported for tests and for embedding
// the API into a larger mux.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(s.requestID)
	r.Use(s.requestLogger)
	r.Use(s.recoverPanics)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/entities", s.handleEntities)
		r.Get("/entities/{name}", s.handleEntity)
		r.Get("/diagram", s.handleDiagram)
	})

	return r
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.http.Addr
}

// Start listens and serves until Shutdown is called or the listener fails.
func (s *Server) Start() error {
	s.logger.Info("server listening", "addr", s.http.Addr, "entities", s.graph.Len())
	if err := s.http.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
