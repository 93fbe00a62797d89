package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zum-pay/zum_pay/internal/transactions"
)

// RegisterTransactionRoutes wires the gateway operations. Origination is rate
// limited; refund and void reference an existing transaction id.
func RegisterTransactionRoutes(r fiber.Router, h *transactions.Handler, rateLimiter fiber.Handler) {
	if rateLimiter != nil {
		r.Post("/transactions", rateLimiter, h.Purchase)
	} else {
		r.Post("/transactions", h.Purchase)
	}
	r.Post("/transactions/:transactionId/refund", h.Refund)
	r.Delete("/transactions/:transactionId", h.Void)
	r.Get("/transactions/:transactionId", h.Get)
}
