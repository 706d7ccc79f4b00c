package middleware

import (
	"math/rand"
	"time"

	"soshopay-mockapi/internal/config"

	"github.com/gofiber/fiber/v2"
)

// Latency simulates mobile network latency by sleeping a random duration
// inside the configured window before handling each request.
func Latency(cfg config.LatencyConfig) fiber.Handler {
	spread := cfg.MaxMs - cfg.MinMs

	return func(c *fiber.Ctx) error {
		delay := cfg.MinMs
		if spread > 0 {
			delay += rand.Intn(spread)
		}
		time.Sleep(time.Duration(delay) * time.Millisecond)
		return c.Next()
	}
}
