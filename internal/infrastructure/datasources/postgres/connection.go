package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"betx.backend/internal/config"
	"betx.backend/internal/infrastructure/models"
	"betx.backend/pkg/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

var (
	openGorm = func(dsn string, gormCfg *gorm.Config) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), gormCfg)
	}
	dbPing = func(db *sql.DB) error { return db.Ping() }
)

// NewGormLogger routes gorm output through zap at warn level. Lookups that
// miss are expected control flow and are not logged.
func NewGormLogger(l *zap.Logger) gormlogger.Interface {
	return gormlogger.New(
		zap.NewStdLog(l),
		gormlogger.Config{
			SlowThreshold:             slowQueryThreshold,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)
}

// NewConnection opens a pgx-backed GORM connection, tunes the pool and verifies it
func NewConnection(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := openGorm(cfg.URL(), &gorm.Config{
		TranslateError: true,
		PrepareStmt:    false,
		Logger:         NewGormLogger(logger.GetLogger()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := dbPing(sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the schema for every persisted model
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Activity{},
		&models.Stats{},
		&models.Transaction{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
