// Package api implements the JSON admin API.
package api

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"helpbot/internal/db"
	"helpbot/internal/kb"
	"helpbot/internal/models"
	"helpbot/internal/validation"
)

// AdminHandler serves the operator endpoints: interaction history and
// knowledge base inspection/reload.
type AdminHandler struct {
	db   *db.DB
	base *kb.Base
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(database *db.DB, base *kb.Base) *AdminHandler {
	return &AdminHandler{db: database, base: base}
}

// ListInteractions handles GET /api/admin/interactions. Optional query
// params: session_id, limit.
func (h *AdminHandler) ListInteractions(c fiber.Ctx) error {
	sessionID := c.Query("session_id")
	if !validation.ValidateSessionID(sessionID) {
		return jsonError(c, fiber.StatusBadRequest, "invalid session id")
	}

	limit, _ := strconv.Atoi(c.Query("limit", "50"))

	interactions, err := h.db.ListInteractions(c.Context(), sessionID, limit)
	if err != nil {
		slog.Error("failed to list interactions", "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "failed to list interactions")
	}
	if interactions == nil {
		interactions = []models.Interaction{}
	}

	return jsonSuccess(c, interactions)
}

// GetInteraction handles GET /api/admin/interactions/:id.
func (h *AdminHandler) GetInteraction(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid interaction id")
	}

	interaction, err := h.db.GetInteraction(c.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrInteractionNotFound) {
			return jsonError(c, fiber.StatusNotFound, "interaction not found")
		}
		slog.Error("failed to get interaction", "id", id, "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "failed to get interaction")
	}

	return jsonSuccess(c, interaction)
}

// ListKB handles GET /api/admin/kb and returns the current entries in
// order.
func (h *AdminHandler) ListKB(c fiber.Ctx) error {
	entries := h.base.Entries()
	out := make([]models.KnowledgeEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.KnowledgeEntry)
	}
	return jsonSuccess(c, out)
}

// ReloadKB handles POST /api/admin/kb/reload. On failure the previous
// entry set stays in effect.
func (h *AdminHandler) ReloadKB(c fiber.Ctx) error {
	if err := h.base.Reload(); err != nil {
		slog.Error("knowledge base reload failed", "error", err)
		return jsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	slog.Info("knowledge base reloaded", "entries", h.base.Len())
	return jsonSuccess(c, fiber.Map{"entries": h.base.Len()})
}
