// Package server implements the HTTP surface over the chat orchestration
// core: the chat endpoint, the persona catalog listing and a health probe.
// Routing and JSON mapping live here; all behavior belongs to the injected
// threadmesh.Chat.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/hupe1980/threadmesh"
	"github.com/hupe1980/threadmesh/logging"
	"github.com/hupe1980/threadmesh/persona"
)

// Backends reports which completion backends were configured at startup.
// The JSON keys are part of the health probe contract.
type Backends struct {
	Router    bool `json:"litellm"`
	Anthropic bool `json:"anthropic"`
}

// Any reports whether at least one backend is configured.
func (b Backends) Any() bool { return b.Router || b.Anthropic }

// Options configures a Server instance.
type Options struct {
	Logger logging.Logger
	// ReadTimeout and WriteTimeout bound request handling; the write
	// timeout must cover the slowest provider chain walk.
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Server is the HTTP API server.
type Server struct {
	address  string
	port     int
	chat     *threadmesh.Chat
	personas *persona.Catalog
	backends Backends
	logger   logging.Logger
	server   *http.Server

	readTimeout  time.Duration
	writeTimeout time.Duration
}

// New creates a new API server.
func New(address string, port int, chat *threadmesh.Chat, personas *persona.Catalog, backends Backends, optFns ...func(o *Options)) *Server {
	opts := Options{
		Logger:       logging.NoOpLogger{},
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Server{
		address:      address,
		port:         port,
		chat:         chat,
		personas:     personas,
		backends:     backends,
		logger:       opts.Logger,
		readTimeout:  opts.ReadTimeout,
		writeTimeout: opts.WriteTimeout,
	}
}

// Handler returns the route table. Exposed separately so tests can drive the
// server through httptest without binding a socket.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/chat", s.handleChat)
	mux.HandleFunc("GET /api/agents", s.handleAgents)
	mux.HandleFunc("GET /health", s.handleHealth)

	return s.withLogging(mux)
}

// Start begins serving HTTP requests and blocks until the listener fails or
// Shutdown is called.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.address, s.port),
		Handler:      s.Handler(),
		ReadTimeout:  s.readTimeout,
		WriteTimeout: s.writeTimeout,
	}

	s.logger.Info("starting API server", "address", s.address, "port", s.port)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start),
		)
	})
}

// writeJSON encodes v as JSON to w, logging any errors at debug level.
// Errors here typically mean the client disconnected mid-response.
func writeJSON(w http.ResponseWriter, status int, v any, logger logging.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Debug("failed to write JSON response", "error", err)
	}
}
