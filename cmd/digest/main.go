package main

import (
	"context"
	"flag"
	"log"

	"finance-digest/internal/app"
	"finance-digest/internal/config"
	"finance-digest/internal/database"

	"github.com/joho/godotenv"
)

// digest runs one collection and delivery cycle and exits. Suitable for cron.
func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	flag.Parse()

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load(*configPath)
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

	p := app.BuildPipeline(db, cfg)

	run, err := p.Run(context.Background())
	if err != nil {
		log.Fatal("Digest run failed:", err)
	}

	log.Printf("✅ Digest run %s complete: %d collected, %d new, %d ranked",
		run.ID, run.Collected, run.Processed, run.Ranked)
}
