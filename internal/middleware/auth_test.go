package middleware

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v3"
)

func newAuthApp(token string) *fiber.App {
	app := fiber.New()
	auth := NewAdminAuth(token)
	app.Get("/admin", auth.Require, func(c fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestAdminAuthRequire(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid token", "Bearer secret", http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"empty bearer", "Bearer ", http.StatusUnauthorized},
		{"wrong token", "Bearer nope", http.StatusForbidden},
		{"wrong scheme", "Basic secret", http.StatusUnauthorized},
		{"token without scheme", "secret", http.StatusUnauthorized},
	}

	app := newAuthApp("secret")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest("GET", "/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}
