package database

import (
	"fmt"

	"gorm.io/gorm"

	"healthreach_backend/internal/logger"
	"healthreach_backend/internal/models"
)

// Migrate applies the schema for every model. Postgres needs the
// uuid-ossp extension for uuid_generate_v4 defaults.
func Migrate(db *gorm.DB) error {
	logger.Info("Running database migrations...")

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("failed to create uuid-ossp extension: %w", err)
	}

	err := db.AutoMigrate(
		&models.Specialty{},
		&models.School{},
		&models.Provider{},
		&models.Curator{},
		&models.Partner{},
	)
	if err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}

	logger.Info("Database migrations completed")
	return nil
}
