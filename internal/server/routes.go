package server

import (
	"log"

	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"helpbot/internal/db"
	"helpbot/internal/handlers"
	"helpbot/internal/handlers/api"
	"helpbot/internal/inference"
	"helpbot/internal/kb"
	"helpbot/internal/middleware"
	"helpbot/internal/responder"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(database *db.DB, base *kb.Base, adapter inference.Adapter, r *responder.Responder) {
	chatHandler := handlers.NewChatHandler(r)
	probeHandler := handlers.NewProbeHandler(database, adapter)
	consoleHandler := handlers.NewConsoleHandler(s.Cfg)
	adminHandler := api.NewAdminHandler(database, base)

	// Chat console and API
	s.App.Get("/", consoleHandler.Show)
	s.App.Post("/api/chat", chatHandler.Chat)

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Admin routes - only registered when a token is configured
	if !s.Cfg.AdminEnabled() {
		log.Println("Admin API is disabled. Set ADMIN_TOKEN to enable.")
		return
	}

	adminAuth := middleware.NewAdminAuth(s.Cfg.AdminToken)
	admin := s.App.Group("/api/admin", adminAuth.Require)
	admin.Get("/interactions", adminHandler.ListInteractions)
	admin.Get("/interactions/:id", adminHandler.GetInteraction)
	admin.Get("/kb", adminHandler.ListKB)
	admin.Post("/kb/reload", adminHandler.ReloadKB)
}
