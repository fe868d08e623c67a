package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/goldtek/quotetrack/internal/analysis"
	"github.com/goldtek/quotetrack/internal/config"
	"github.com/goldtek/quotetrack/internal/database"
	"github.com/goldtek/quotetrack/internal/handlers"
	"github.com/goldtek/quotetrack/internal/middleware"
	"github.com/goldtek/quotetrack/internal/types"
)

// @title QuoteTrack API
// @version 1.0.0
// @description Quotation and project tracking service for switchgear sales
// @host localhost:4000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-api-key

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	analyzer := analysis.New(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("quotetrack")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// API routes under /api
	api := app.Group("/api")
	api.Use(middleware.VersionMiddleware())
	api.Use(middleware.ActorID())

	healthHandler := &handlers.HealthHandler{Cfg: cfg, DB: db}
	projectHandler := &handlers.ProjectHandler{DB: db}
	revisionHandler := &handlers.RevisionHandler{DB: db}
	progressHandler := &handlers.ProgressHandler{DB: db}
	memoHandler := &handlers.MemoHandler{DB: db}
	backupHandler := &handlers.BackupHandler{DB: db}
	exportHandler := &handlers.ExportHandler{DB: db}
	analysisHandler := &handlers.AnalysisHandler{DB: db, Analyzer: analyzer}

	// Health stays reachable without a key so probes work before secrets do
	api.Get("/health", healthHandler.HealthCheck)

	api.Use(middleware.APIKey(cfg.APIKey))

	api.Get("/verify-key", healthHandler.VerifyKey)

	api.Get("/projects", projectHandler.ListProjects)
	api.Get("/projects/stats", projectHandler.GetStats)
	api.Get("/projects/export", exportHandler.ExportList)
	api.Post("/projects", projectHandler.CreateProject)
	api.Get("/projects/:id", projectHandler.GetProject)
	api.Put("/projects/:id", projectHandler.UpdateProject)
	api.Delete("/projects/:id", projectHandler.DeleteProject)
	api.Put("/projects/:id/cost", projectHandler.UpdateCost)
	api.Get("/projects/:id/export", exportHandler.ExportCard)

	api.Post("/projects/:id/revisions", revisionHandler.AddRevision)
	api.Put("/projects/:id/revisions/:revId", revisionHandler.EditRevision)
	api.Delete("/projects/:id/revisions/:revId", revisionHandler.DeleteRevision)

	api.Put("/projects/:id/status", progressHandler.SetStatus)
	api.Put("/projects/:id/progress", progressHandler.ToggleProgress)

	api.Post("/projects/:id/memos", memoHandler.CreateMemo)
	api.Put("/projects/:id/memos/:memoId", memoHandler.UpdateMemo)
	api.Delete("/projects/:id/memos/:memoId", memoHandler.DeleteMemo)

	api.Get("/backup/projects", backupHandler.Backup)
	api.Post("/backup/projects", backupHandler.Restore)
	api.Post("/backup/projects/xlsx", backupHandler.RestoreSpreadsheet)

	api.Post("/analysis/refine-note", analysisHandler.RefineNote)
	api.Get("/projects/:id/analysis", analysisHandler.AnalyzeProject)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	log.Printf("Starting server on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}
	if e, ok := err.(*types.CustomError); ok {
		code = e.Code
		message = e.Message
		errorType = e.Type
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}
