// Package toolapi serves an agent's tools over HTTP: one invocation route
// per tool, a discovery listing, a liveness endpoint, and Prometheus
// metrics. Domain-level failures ride inside 200 payloads; non-2xx answers
// are reserved for protocol-level faults.
package toolapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/okian/captain/internal/adapters/http/swagger"
	"github.com/okian/captain/internal/toolkit"
	"github.com/okian/captain/pkg/metrics"
)

// defaultMaxBodyBytes caps how much of a request body is read. It leaves
// room for the largest accepted upload after base64 and JSON overhead.
const defaultMaxBodyBytes = 32 << 20

// Server wires the HTTP routes for one agent's tool surface.
type Server struct {
	service      string
	registry     *toolkit.Registry
	router       *mux.Router
	maxBodyBytes int64
}

// Option applies a configuration option to the Server.
type Option func(*Server)

// WithMaxBodyBytes caps the request body size accepted by tool invocations.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxBodyBytes = n
		}
	}
}

// NewServer creates the HTTP surface for the named service, exposing the
// tools in reg.
func NewServer(service string, reg *toolkit.Registry, opts ...Option) *Server {
	s := &Server{
		service:      service,
		registry:     reg,
		router:       mux.NewRouter(),
		maxBodyBytes: defaultMaxBodyBytes,
	}

	for _, opt := range opts {
		opt(s)
	}

	// CORS is open: the agents only talk to each other on an internal
	// network, and browser-based consoles hit them directly.
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Content-Length", "Content-Type"},
	})
	s.router.Use(c.Handler, RequestIDMiddleware, MetricsMiddleware)
	s.registerRoutes()

	return s
}

// Handler returns the http.Handler for the server.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) registerRoutes() {
	s.router.HandleFunc("/tools/{name}", s.handleInvoke).Methods(http.MethodPost)
	s.router.HandleFunc("/tools", s.handleListTools).Methods(http.MethodGet)
	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	s.router.Handle("/metrics",
		promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{})).Methods(http.MethodGet)

	// API documentation for the tool-call protocol.
	swagger.Register(s.router)
}

// handleInvoke handles POST /tools/{name} requests.
func (s *Server) handleInvoke(w http.ResponseWriter, r *http.Request) {
	const op = "toolapi.invoke"
	name := mux.Vars(r)["name"]

	tool, ok := s.registry.Get(name)
	if !ok {
		metrics.RecordToolInvocation(name, "error")
		writeError(w, http.StatusNotFound, "unknown_tool", NewKind(op, ErrUnknownTool))
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, s.maxBodyBytes))
	if err != nil {
		metrics.RecordToolInvocation(name, "error")
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	start := time.Now()
	out, err := tool.Handler(r.Context(), body)
	metrics.RecordToolLatency(name, float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.RecordToolInvocation(name, "error")
		if errors.Is(err, toolkit.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}

	metrics.RecordToolInvocation(name, "ok")
	writeJSON(w, http.StatusOK, out)
}

// handleListTools handles GET /tools requests.
func (s *Server) handleListTools(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.registry.Definitions())
}

// healthResponse is the fixed liveness shape the fleet's health checks
// expect. Field order is part of the contract.
type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// handleHealth handles GET /health requests.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "healthy", Service: s.service})
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
