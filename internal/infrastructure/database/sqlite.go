package database

import (
	"fmt"

	"lab-supply-ledger/config"
	"lab-supply-ledger/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewSQLiteConnection(cfg config.DBConfig) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", cfg.Path, err)
	}

	// Single local writer; one connection avoids SQLITE_BUSY entirely.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	logrus.Infof("Successfully opened SQLite database at %s", cfg.Path)

	return db, nil
}

// Migrate creates or updates the schema for all owned entities.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&entity.Doctor{},
		&entity.Material{},
		&entity.MaterialRequest{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
