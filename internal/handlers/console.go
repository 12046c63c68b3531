package handlers

import (
	"github.com/gofiber/fiber/v3"

	"helpbot/internal/config"
)

// ConsoleHandler serves the HTML chat console.
type ConsoleHandler struct {
	cfg *config.Config
}

// NewConsoleHandler creates a new console handler.
func NewConsoleHandler(cfg *config.Config) *ConsoleHandler {
	return &ConsoleHandler{cfg: cfg}
}

// Show renders the chat console page.
func (h *ConsoleHandler) Show(c fiber.Ctx) error {
	return c.Render("chat", fiber.Map{
		"Title": h.cfg.SiteTitle,
	})
}
