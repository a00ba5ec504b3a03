package main

import (
	"log"
	"os"

	"profai-be/internal/model"
	"profai-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}

	color.Cyan("🚀 Starting GORM Migration")

	// 3. Pre-Migration: extensions AutoMigrate doesn't handle
	color.Yellow("Step 1: Setting up extensions...")
	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	}
	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			color.Yellow("Warn: setup SQL failed: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate all models. The profiles table is owned by the
	// identity backend; migrating it here is idempotent and keeps local
	// development self-contained.
	color.Yellow("Step 2: Running AutoMigrate...")
	models := []interface{}{
		&model.Profile{},
		&model.GenerationRecord{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		color.Red("Error: AutoMigrate failed: %v", err)
		os.Exit(1)
	}

	color.Green("✅ Migration completed: %d tables", len(models))
}
