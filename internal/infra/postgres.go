package infra

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"globetrotter/internal/config"
	dbm "globetrotter/internal/models/db_models"
	"globetrotter/pkg/logger"
)

func InitPostgresql(cfg config.Config, log *logger.Logger) (*gorm.DB, error) {
	logLevel := gormlogger.Warn
	if cfg.IsProduction() {
		logLevel = gormlogger.Error
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("postgres handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if cfg.EmbeddingsEnabled {
		if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS vector`).Error; err != nil {
			return nil, fmt.Errorf("enable pgvector: %w", err)
		}
	}
	if err := Migrate(db, cfg.EmbeddingsEnabled); err != nil {
		return nil, err
	}

	log.Info("Connected to PostgreSQL", "embeddings", cfg.EmbeddingsEnabled)
	return db, nil
}

// Migrate creates or updates every table. The embeddings table needs pgvector and is opt-in.
func Migrate(db *gorm.DB, withEmbeddings bool) error {
	models := []interface{}{
		&dbm.Account{},
		&dbm.City{},
		&dbm.Activity{},
		&dbm.Trip{},
		&dbm.TripCity{},
		&dbm.Section{},
		&dbm.SectionActivity{},
		&dbm.CommunityPost{},
		&dbm.PostLike{},
		&dbm.PostComment{},
	}
	if withEmbeddings {
		models = append(models, &dbm.ActivityEmbedding{})
	}
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func ClosePostgresql(db *gorm.DB, log *logger.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Error("Error getting database instance", "error", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Error("Error closing database connection", "error", err)
	} else {
		log.Info("PostgreSQL database connection closed")
	}
}
