package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mykweza/kweza-backend/internal/metrics"
)

// Metrics records request counts and latency per route pattern.
func Metrics(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		route := c.Route().Path
		method := c.Method()
		status := strconv.Itoa(c.Response().StatusCode())

		m.HTTPRequests.WithLabelValues(method, route, status).Inc()
		m.HTTPLatency.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		return err
	}
}
