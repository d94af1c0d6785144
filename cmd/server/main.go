package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "har-media-exporter/docs"

	"har-media-exporter/internal/delivery/http/middleware"
	"har-media-exporter/internal/delivery/http/routers"
	"har-media-exporter/internal/pkg/config"
	consts "har-media-exporter/pkg/constants"
	"har-media-exporter/pkg/errors/i18n"
	"har-media-exporter/pkg/metrics"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// @title        HAR Media Exporter API
// @version      1.0
// @description  Extracts embedded image resources from HAR captures and packages them as media.zip
// @BasePath     /api/v1
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	cfg := config.LoadConfig()

	if err := i18n.Load(cfg.Locale); err != nil {
		log.Printf("i18n catalogue for %q could not be loaded: %v", cfg.Locale, err)
	}
	metrics.Init()

	if err := cfg.EnsureDirs(); err != nil {
		log.Fatalf("Export directory could not be created: %v", err)
	}

	var rdb *redis.Client
	if cfg.Session.Backend == "redis" {
		rdb = redis.NewClient(&redis.Options{
			Addr: cfg.Session.RedisAddr,
		})
	}

	app := fiber.New(fiber.Config{
		BodyLimit: int(cfg.Server.BodyLimit),
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())
	app.Use(middleware.Metrics())

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Prometheus
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Routes
	pool := routers.SetupExtractRoutes(app, cfg, rdb)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": consts.StatusOK})
	})

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on %s", addr)

	// Graceful shutdown
	go func() {
		if err := app.Listen(addr); err != nil {
			log.Fatalf("Server could not start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Print("Shutdown signal received, stopping server...")

	ctxShut, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctxShut); err != nil {
		log.Fatalf("Server could not shut down cleanly: %v", err)
	}
	pool.Shutdown()
	log.Println("Server stopped")
}
