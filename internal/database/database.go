package database

import (
	"fmt"
	"log"
	"log/slog"

	"github.com/gdg-garage/travel-planner-api/internal/config"
	"github.com/gdg-garage/travel-planner-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Connect(cfg *config.Config) *gorm.DB {
	dialector, err := Dialector(cfg)
	if err != nil {
		log.Fatalf("Failed to configure database: %v", err)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(gormLogLevel(cfg.SlogLevel())),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	return db
}

// Dialector picks the gorm driver for DATABASE_DRIVER.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DatabaseDriver {
	case "", config.DriverSQLite:
		return sqlite.Open(cfg.DatabasePath), nil
	case config.DriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for the postgres driver")
		}
		return postgres.Open(cfg.DatabaseURL), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DatabaseDriver)
	}
}

// Migrate registers the trip membership join model and migrates every table.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Trip{}, "Users", &models.TripUser{}); err != nil {
		return fmt.Errorf("setup trip_users join table: %w", err)
	}

	return db.AutoMigrate(
		&models.User{},
		&models.Trip{},
		&models.TripUser{},
		&models.Destination{},
		&models.Accommodation{},
		&models.Transportation{},
		&models.LocalService{},
		&models.Expense{},
	)
}

func gormLogLevel(level slog.Level) logger.LogLevel {
	switch {
	case level <= slog.LevelDebug:
		return logger.Info
	case level <= slog.LevelWarn:
		return logger.Warn
	default:
		return logger.Error
	}
}
