package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/zum-pay/zum_pay/internal/config"
	"github.com/zum-pay/zum_pay/internal/middleware"
	"github.com/zum-pay/zum_pay/internal/notification"
	"github.com/zum-pay/zum_pay/internal/transactions"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg     config.Config
	Gateway transactions.Gateway
	DB      *pgxpool.Pool
	Cache   *redis.Client
	Logger  *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger))
	if d.Cache != nil {
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}

	RegisterHealthRoutes(app, d)

	var repo transactions.Repository
	if d.DB != nil {
		repo = transactions.NewPostgresRepository(d.DB)
	} else {
		repo = transactions.NewMemoryRepository()
	}
	notifier := notification.NewLoggerNotifier(d.Logger)
	txSvc := transactions.NewService(d.Gateway, repo, notifier)
	txHandler := transactions.NewHandler(txSvc)

	api := app.Group("/api/v1")
	api.Get("/ping", func(c *fiber.Ctx) error {
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": middleware.RequestIDFromCtx(c),
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	protected := api.Group("", middleware.APIKeyAuth(d.Cfg.APIKeyHash))
	rateLimiter := middleware.TransactionRateLimit(d.Cache, 30)
	RegisterTransactionRoutes(protected, txHandler, rateLimiter)

	return nil
}
