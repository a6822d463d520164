package main

import (
	"log"

	"finance-digest/internal/database"

	"github.com/joho/godotenv"
)

// migrate creates or updates the database schema and exits.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
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

	log.Println("✅ Migrations completed successfully")
}
