package middleware

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// TransactionRateLimit caps transaction originations per caller per minute
// using Redis. Callers are keyed by API key when present, falling back to the
// client IP. The limiter fails open on cache errors: the gateway's own 429
// responses remain the backstop.
func TransactionRateLimit(cache *redis.Client, maxPerMin int) fiber.Handler {
	if maxPerMin <= 0 {
		maxPerMin = 30
	}
	return func(c *fiber.Ctx) error {
		if cache == nil {
			return c.Next()
		}

		caller := c.Get(apiKeyHeader)
		if caller == "" {
			caller = c.IP()
		}
		key := "rl:transaction:" + caller

		cnt, err := cache.Incr(c.UserContext(), key).Result()
		if err != nil {
			return c.Next()
		}
		if cnt == 1 {
			cache.Expire(c.UserContext(), key, time.Minute)
		}
		if cnt > int64(maxPerMin) {
			return fiber.NewError(http.StatusTooManyRequests, "too many transaction requests, try again later")
		}
		return c.Next()
	}
}
