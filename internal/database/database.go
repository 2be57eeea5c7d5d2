// Package database opens the backing stores: the recipe table (gorm over
// postgres or sqlite) and the Redis cache.
package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/pageza/smart-leftovers/backend/config"
	"github.com/pageza/smart-leftovers/backend/internal/model"
)

// New opens a gorm connection for the configured driver and migrates the
// recipe table.
func New(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.Database.DSN())
	case "sqlite":
		dialector = sqlite.Open(cfg.Database.DSN())
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := db.AutoMigrate(&model.Recipe{}); err != nil {
		return nil, fmt.Errorf("error migrating recipe table: %w", err)
	}

	logger.Info("connected to database", zap.String("driver", cfg.Database.Driver))
	return db, nil
}
