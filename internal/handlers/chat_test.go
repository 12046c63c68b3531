package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v3"

	"helpbot/internal/inference"
	"helpbot/internal/kb"
	"helpbot/internal/models"
	"helpbot/internal/nlp"
	"helpbot/internal/responder"
	"helpbot/internal/session"
)

// discardLog drops interactions; handler tests only exercise the HTTP
// contract.
type discardLog struct{}

func (discardLog) AppendInteraction(context.Context, models.Interaction) error { return nil }

func newChatApp(t *testing.T) *fiber.App {
	t.Helper()

	normalizer, err := nlp.NewNormalizer()
	if err != nil {
		t.Fatalf("nlp.NewNormalizer() failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "kb.yaml")
	content := `
entries:
  - question: "What are your opening hours?"
    answer: "We're open from 9 AM to 5 PM, Monday to Friday."
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write kb file: %v", err)
	}
	base, err := kb.Load(path, normalizer)
	if err != nil {
		t.Fatalf("kb.Load() failed: %v", err)
	}

	r := responder.New(normalizer, base, session.NewMemoryStore(), inference.Unavailable{}, discardLog{})

	app := fiber.New()
	app.Post("/api/chat", NewChatHandler(r).Chat)
	return app
}

func postChat(t *testing.T, app *fiber.App, body any) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}
	req, _ := http.NewRequest("POST", "/api/chat", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func TestChatKnowledgeBaseAnswer(t *testing.T) {
	app := newChatApp(t)

	resp := postChat(t, app, models.ChatRequest{Message: "When are you open?", SessionID: "s1"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var out models.ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if out.Response != "We're open from 9 AM to 5 PM, Monday to Friday." {
		t.Errorf("response = %q", out.Response)
	}
	if out.SessionID != "s1" {
		t.Errorf("session_id = %q, want %q", out.SessionID, "s1")
	}
}

func TestChatGeneratesSessionID(t *testing.T) {
	app := newChatApp(t)

	resp := postChat(t, app, models.ChatRequest{Message: "hello there"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var out models.ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if out.SessionID == "" {
		t.Error("expected a generated session id")
	}
	if out.Response == "" {
		t.Error("expected a non-empty response")
	}
}

func TestChatDeflectionOnGibberish(t *testing.T) {
	app := newChatApp(t)

	resp := postChat(t, app, models.ChatRequest{Message: "asdkj qweq", SessionID: "s1"})

	var out models.ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if out.Response != responder.DefaultReply {
		t.Errorf("response = %q, want the deflection reply", out.Response)
	}
}

func TestChatInputErrors(t *testing.T) {
	app := newChatApp(t)

	tests := []struct {
		name string
		body any
	}{
		{"missing message", models.ChatRequest{SessionID: "s1"}},
		{"empty message", models.ChatRequest{Message: "   ", SessionID: "s1"}},
		{"bad session id", models.ChatRequest{Message: "hi", SessionID: "has spaces"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postChat(t, app, tt.body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
		})
	}
}
