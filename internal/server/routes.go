package server

import (
	"github.com/yuuyeah/review-and-assessment-powered-by-intelligent-documentation/internal/server/handlers"
)

// registerRoutes registers all HTTP routes
func (s *Server) registerRoutes() {
	// Health endpoints
	s.router.Get("/health", s.health.HealthHandler)
	s.router.Get("/health/live", s.health.LivenessHandler)
	s.router.Get("/health/ready", s.health.ReadinessHandler)

	// Version endpoint
	s.router.Get("/version", handlers.VersionHandler)

	// Prompt rendering
	s.router.Post("/render", handlers.NewRenderHandler(s.templates).ServeHTTP)
}
