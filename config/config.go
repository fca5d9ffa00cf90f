package config

import (
	"fmt"
	"os"

	"github.com/armetcal/Meal-Tracker/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the database and migrates the three tables. The handle is
// returned rather than stored in a package global; the entry point owns it
// and passes it down.
func InitDB() (*gorm.DB, error) {
	// .env is a convenience for local runs; real deployments set env vars.
	_ = godotenv.Load()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		getenv("DB_HOST", "localhost"),
		getenv("DB_USER", "mealtracker"),
		os.Getenv("DB_PASSWORD"),
		getenv("DB_NAME", "mealtracker"),
		getenv("DB_PORT", "5432"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.Recipe{},
		&models.DailyGoal{},
		&models.MealLog{},
	); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}
	return db, nil
}

// ListenAddr is where the HTTP server binds, ":8080" by default.
func ListenAddr() string {
	return getenv("LISTEN_ADDR", ":8080")
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
