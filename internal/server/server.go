// Package server hosts the HTTP render service.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	apperrors "github.com/yuuyeah/review-and-assessment-powered-by-intelligent-documentation/internal/errors"
	"github.com/yuuyeah/review-and-assessment-powered-by-intelligent-documentation/internal/observability"
	"github.com/yuuyeah/review-and-assessment-powered-by-intelligent-documentation/internal/prompt"
	"github.com/yuuyeah/review-and-assessment-powered-by-intelligent-documentation/internal/server/handlers"
	servermw "github.com/yuuyeah/review-and-assessment-powered-by-intelligent-documentation/internal/server/middleware"
)

// Server represents the HTTP server
type Server struct {
	router    *chi.Mux
	server    *http.Server
	host      string
	port      int
	templates prompt.Registry
	health    *handlers.HealthManager
}

// New creates a new HTTP server serving renders from the given template
// registry.
func New(host string, port int, templates prompt.Registry, version string) *Server {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)

	// Custom middleware order: RequestID first for correlation, Recovery
	// outermost around handlers.
	r.Use(servermw.RequestID)
	r.Use(servermw.Recovery)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		apperrors.RespondWithError(w, req, apperrors.NewNotFoundError("The requested resource was not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		apperrors.RespondWithError(w, req, apperrors.NewMethodNotAllowedError("The requested method is not allowed for this resource"))
	})

	s := &Server{
		router:    r,
		host:      host,
		port:      port,
		templates: templates,
		health:    handlers.NewHealthManager(version),
	}

	s.health.RegisterChecker("templates", templateRegistryChecker{registry: templates})

	s.registerRoutes()

	return s
}

// templateRegistryChecker verifies the template registry is usable.
type templateRegistryChecker struct {
	registry prompt.Registry
}

func (c templateRegistryChecker) CheckHealth(ctx context.Context) error {
	if c.registry == nil {
		return apperrors.NewInternalError("template registry not configured")
	}
	if len(c.registry.List()) == 0 {
		return apperrors.NewInternalError("template registry is empty")
	}
	return nil
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.host, s.port)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	observability.ServerLogger.Info("Starting HTTP server",
		zap.String("host", s.host),
		zap.Int("port", s.port),
		zap.String("addr", addr))

	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	observability.ServerLogger.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// Handler exposes the underlying router for testing and instrumentation
func (s *Server) Handler() http.Handler {
	return s.router
}

// Port returns the server port for testing
func (s *Server) Port() int {
	return s.port
}
