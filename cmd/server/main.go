package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"finance-digest/internal/app"
	"finance-digest/internal/config"
	"finance-digest/internal/database"
	"finance-digest/internal/handlers"
	"finance-digest/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load("")
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	dbConfig := database.LoadConfig()

	db, err := database.Connect(dbConfig)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Initialize and start the scheduled digest worker
	pipeline := app.BuildPipeline(db, cfg)
	workerService := worker.NewWorkerService(pipeline, digestInterval())
	if err := workerService.Start(); err != nil {
		log.Fatal("Failed to start digest worker:", err)
	}

	setupGracefulShutdown(workerService, db)

	setupServer(db, workerService)
}

// digestInterval reads the run cadence from the environment, defaulting to
// one run per day.
func digestInterval() time.Duration {
	raw := os.Getenv("DIGEST_INTERVAL")
	if raw == "" {
		return 24 * time.Hour
	}

	interval, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Invalid DIGEST_INTERVAL %q, using 24h", raw)
		return 24 * time.Hour
	}
	return interval
}

func setupGracefulShutdown(workerService *worker.WorkerService, db *gorm.DB) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Received shutdown signal, gracefully shutting down...")

		workerService.Stop()
		database.Close(db)

		log.Println("Shutdown complete")
		os.Exit(0)
	}()
}

func setupServer(db *gorm.DB, workerService *worker.WorkerService) {
	// Set Gin mode based on environment
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	// Initialize handlers
	digestHandler := handlers.NewDigestHandler(db)
	docsHandler := handlers.NewDocsHandler()

	// Health check
	r.GET("/health", digestHandler.HealthCheck)

	// Digest API
	api := r.Group("/api")
	{
		api.GET("/articles/top", digestHandler.GetTopArticles)
		api.GET("/articles/recent", digestHandler.GetRecentArticles)
		api.GET("/statistics", digestHandler.GetStatistics)
		api.POST("/feedback", digestHandler.PostFeedback)

		api.GET("/worker/status", func(c *gin.Context) {
			c.JSON(http.StatusOK, workerService.GetStatus())
		})
		api.POST("/worker/run", func(c *gin.Context) {
			run, err := workerService.RunNow()
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, run)
		})
	}

	// Serve documentation
	r.GET("/docs/:doc", docsHandler.ServeMarkdownAsHTML)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🚀 Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
