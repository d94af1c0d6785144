package routers

import (
	"log"

	"har-media-exporter/internal/delivery/http/handlers"
	"har-media-exporter/internal/domain/repositories"
	"har-media-exporter/internal/infrastructure/archive"
	"har-media-exporter/internal/infrastructure/queue"
	infra_repo "har-media-exporter/internal/infrastructure/repositories"
	"har-media-exporter/internal/infrastructure/storage"
	"har-media-exporter/internal/pkg/config"
	"har-media-exporter/internal/usecases"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/robfig/cron/v3"
)

// SetupExtractRoutes wires the extraction stack: session repository,
// archive storage, probe worker pool and the periodic session cleanup.
func SetupExtractRoutes(app *fiber.App, cfg *config.Config, rdb *redis.Client) *queue.WorkerPool {
	var sessionRepo repositories.SessionRepository
	if cfg.Session.Backend == "redis" && rdb != nil {
		sessionRepo = infra_repo.NewRedisSessionRepository(rdb)
	} else {
		sessionRepo = infra_repo.NewInMemorySessionRepository()
	}

	var archiveStorage repositories.StorageStrategy
	switch cfg.Export.Backend {
	case "s3":
		s3Storage, err := storage.NewS3Storage(cfg.Export.S3Bucket, cfg.Export.S3Region)
		if err != nil {
			log.Fatalf("S3 storage could not be initialized: %v", err)
		}
		archiveStorage = s3Storage
	default:
		archiveStorage = storage.NewLocalStorage(cfg.Export.Dir)
	}

	// A zero worker count disables probing; enqueueing into a pool with no
	// consumers would block the handler once the job buffer fills.
	var pool *queue.WorkerPool
	if cfg.Session.ProbeWorkers > 0 {
		pool = queue.NewWorkerPool(cfg.Session.ProbeWorkers, sessionRepo)
	}

	exportService := usecases.NewExportService(archive.NewZipBuilder, archiveStorage)
	extractService := usecases.NewExtractService(sessionRepo, exportService, pool, cfg.Session.TTL)

	cleanupUC := usecases.NewCleanupService(sessionRepo)
	c := cron.New(cron.WithSeconds())
	c.AddFunc("0 */5 * * * *", func() {
		if err := cleanupUC.CleanupExpiredSessions(); err != nil {
			log.Printf("Error cleaning up expired sessions: %v", err)
		}
	})
	c.Start()

	extractHandler := handlers.NewExtractHandler(extractService)

	// Routes:
	api := app.Group("/api/v1")
	api.Post("/extract", extractHandler.Extract)
	api.Get("/extract/:id", extractHandler.GetSession)
	api.Get("/extract/:id/archive", extractHandler.DownloadArchive)
	api.Get("/extract/:id/media/:index", extractHandler.GetMediaItem)

	return pool
}
