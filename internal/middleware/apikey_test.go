package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

func setupKeyApp(t *testing.T, keyHash string) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Use(APIKeyAuth(keyHash))
	app.Get("/protected", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestAPIKeyAuth(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-key"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash key: %v", err)
	}
	app := setupKeyApp(t, string(hash))

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without key, got %d", resp.StatusCode)
	}

	req = httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set(apiKeyHeader, "wrong-key")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 with wrong key, got %d", resp.StatusCode)
	}

	req = httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set(apiKeyHeader, "secret-key")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 with valid key, got %d", resp.StatusCode)
	}
}

func TestAPIKeyAuthDisabledWithoutHash(t *testing.T) {
	app := setupKeyApp(t, "")

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected pass-through with empty hash, got %d", resp.StatusCode)
	}
}
