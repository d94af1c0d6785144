package middleware

import (
	"strconv"
	"time"

	"har-media-exporter/pkg/metrics"

	"github.com/gofiber/fiber/v2"
)

// Metrics records request counts and latencies per route.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		duration := time.Since(start)

		status := strconv.Itoa(c.Response().StatusCode())
		path := c.Route().Path

		metrics.HTTPRequestDuration.WithLabelValues(c.Method(), path, status).Observe(duration.Seconds())
		metrics.HTTPRequestsTotal.WithLabelValues(c.Method(), path, status).Inc()
		return err
	}
}
