package server

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"helpbot/internal/config"
	"helpbot/internal/inference"
	"helpbot/internal/kb"
	"helpbot/internal/models"
	"helpbot/internal/nlp"
	"helpbot/internal/responder"
	"helpbot/internal/session"
)

func newTestServer(t *testing.T, adminToken string) *Server {
	t.Helper()

	cfg := &config.Config{
		Env:        "development",
		ServerAddr: ":0",
		BaseURL:    "http://localhost:3000",
		AdminToken: adminToken,
	}

	normalizer, err := nlp.NewNormalizer()
	if err != nil {
		t.Fatalf("nlp.NewNormalizer() failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "kb.yaml")
	content := "entries:\n  - question: \"What are your opening hours?\"\n    answer: \"9 to 5\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write kb file: %v", err)
	}
	base, err := kb.Load(path, normalizer)
	if err != nil {
		t.Fatalf("kb.Load() failed: %v", err)
	}

	adapter := inference.Unavailable{}
	r := responder.New(normalizer, base, session.NewMemoryStore(), adapter, nopLog{})

	srv := New(cfg)
	// Admin interaction listing and probes need a live database; these
	// tests only exercise routing, so none is wired.
	srv.RegisterRoutes(nil, base, adapter, r)
	return srv
}

type nopLog struct{}

func (nopLog) AppendInteraction(context.Context, models.Interaction) error { return nil }

func get(t *testing.T, srv *Server, path, bearer string) *http.Response {
	t.Helper()
	req, _ := http.NewRequest("GET", path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	resp, err := srv.App.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func TestLivenessRoute(t *testing.T) {
	srv := newTestServer(t, "")

	resp := get(t, srv, "/healthz", "")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("/healthz status = %d, want 200", resp.StatusCode)
	}
}

func TestAdminRoutesDisabledWithoutToken(t *testing.T) {
	srv := newTestServer(t, "")

	resp := get(t, srv, "/api/admin/kb", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("/api/admin/kb status = %d, want 404 when admin is disabled", resp.StatusCode)
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	srv := newTestServer(t, "secret")

	resp := get(t, srv, "/api/admin/kb", "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("unauthenticated status = %d, want 401", resp.StatusCode)
	}

	resp = get(t, srv, "/api/admin/kb", "secret")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("authenticated status = %d, want 200", resp.StatusCode)
	}
}

func TestAdminGetInteractionInvalidID(t *testing.T) {
	srv := newTestServer(t, "secret")

	// A malformed id is rejected before the database is consulted, so no
	// database is needed here.
	resp := get(t, srv, "/api/admin/interactions/not-a-uuid", "secret")
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("invalid id status = %d, want 400", resp.StatusCode)
	}
}
