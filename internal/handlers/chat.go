package handlers

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"helpbot/internal/models"
	"helpbot/internal/responder"
	"helpbot/internal/validation"
)

// ChatHandler serves the chat endpoint.
type ChatHandler struct {
	responder *responder.Responder
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(r *responder.Responder) *ChatHandler {
	return &ChatHandler{responder: r}
}

// Chat handles POST /api/chat. Input errors are rejected here, before the
// core pipeline runs; past this point a response is always produced.
func (h *ChatHandler) Chat(c fiber.Ctx) error {
	var req models.ChatRequest
	if err := c.Bind().Body(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if valid, msg := validation.ValidateMessage(req.Message); !valid {
		return fiber.NewError(fiber.StatusBadRequest, msg)
	}
	if !validation.ValidateSessionID(req.SessionID) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid session id")
	}

	sessionID := req.SessionID
	if sessionID == "" {
		// No session supplied: mint one so the client can opt in to
		// context carry-over on the next turn.
		sessionID = uuid.NewString()
	}

	response, _ := h.responder.Respond(c.Context(), sessionID, req.Message)

	return c.JSON(models.ChatResponse{
		Response:  response,
		SessionID: sessionID,
	})
}
