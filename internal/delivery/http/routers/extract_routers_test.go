package routers

import (
	"testing"
	"time"

	"har-media-exporter/internal/pkg/config"

	"github.com/gofiber/fiber/v2"
)

func testConfig(t *testing.T, probeWorkers int) *config.Config {
	t.Helper()
	return &config.Config{
		Session: config.SessionConfig{
			TTL:          time.Minute,
			Backend:      "memory",
			ProbeWorkers: probeWorkers,
		},
		Export: config.ExportConfig{
			Backend: "local",
			Dir:     t.TempDir(),
		},
	}
}

func TestSetupExtractRoutes_ProbingDisabled(t *testing.T) {
	pool := SetupExtractRoutes(fiber.New(), testConfig(t, 0), nil)
	if pool != nil {
		t.Fatal("expected no worker pool when probe workers are disabled")
	}
	pool.Shutdown()
}

func TestSetupExtractRoutes_ProbingEnabled(t *testing.T) {
	pool := SetupExtractRoutes(fiber.New(), testConfig(t, 2), nil)
	if pool == nil {
		t.Fatal("expected a worker pool")
	}
	pool.Shutdown()
}
