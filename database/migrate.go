package database

import (
	"fmt"

	"talentswipe_backend/internal/config"
	"talentswipe_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the GORM connection and verifies it with a ping.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return gormDB, nil
}

// Migrate applies the schema. uuid-ossp must exist before AutoMigrate
// because the id columns default to uuid_generate_v4().
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("create uuid extension: %w", err)
	}

	return db.AutoMigrate(
		&models.User{},
		&models.Candidate{},
		&models.CandidateInteraction{},
		&models.GeneratedCandidate{},
		&models.PipelineCandidate{},
	)
}
