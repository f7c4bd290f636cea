package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"forecast-market/internal/models"
)

var DB *gorm.DB

// Connect opens the snapshot store. driver is "sqlite" or "postgres"; dsn is
// a file path (or :memory:) for SQLite and a connection string for Postgres.
func Connect(driver, dsn string) error {
	var err error

	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	}

	switch driver {
	case "sqlite":
		DB, err = gorm.Open(sqlite.Open(dsn), cfg)
	case "postgres":
		DB, err = gorm.Open(postgres.Open(dsn), cfg)
	default:
		return fmt.Errorf("unknown snapshot driver: %s", driver)
	}

	if err != nil {
		return fmt.Errorf("failed to connect to snapshot store: %w", err)
	}

	log.Println("Snapshot store connection established")
	return nil
}

// AutoMigrate creates the snapshot tables.
func AutoMigrate() error {
	snapshotModels := []interface{}{
		&models.MarketRecord{},
		&models.TradeRecord{},
		&models.ProfileRecord{},
		&models.CommentRecord{},
		&models.InsightRecord{},
		&models.EngineStateRecord{},
	}

	for _, model := range snapshotModels {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("migration failed for %T: %w", model, err)
		}
	}

	log.Println("Snapshot store migrations completed")
	return nil
}

// GetDB returns the database instance.
func GetDB() *gorm.DB {
	return DB
}
