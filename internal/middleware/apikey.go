package middleware

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

const apiKeyHeader = "X-API-Key"

// APIKeyAuth checks the X-API-Key header against a bcrypt hash of the
// configured key. An empty hash disables the check, which is only acceptable
// in development.
func APIKeyAuth(keyHash string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if keyHash == "" {
			return c.Next()
		}

		key := c.Get(apiKeyHeader)
		if key == "" {
			return fiber.NewError(http.StatusUnauthorized, "missing API key")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(keyHash), []byte(key)); err != nil {
			return fiber.NewError(http.StatusUnauthorized, "invalid API key")
		}

		return c.Next()
	}
}
