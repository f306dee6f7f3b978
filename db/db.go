package db

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/orgmatch/orgmatch/config"
	"github.com/orgmatch/orgmatch/utils"
)

// Connect opens the primary database connection and applies pool settings.
// Connection attempts are retried with backoff so the service survives a
// database that comes up slightly after it.
func Connect(ctx context.Context, cfg *config.Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}
	if cfg.IsDevelopment() {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	}

	var db *gorm.DB
	err := utils.Retry(ctx, utils.CreateDefaultRetryConfig(), func() error {
		var openErr error
		db, openErr = gorm.Open(postgres.Open(cfg.GetDatabaseURL()), gormConfig)
		return openErr
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	if cfg.Database.MaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.Database.MaxLifetime)
	}
	if cfg.Database.MaxIdleTime > 0 {
		sqlDB.SetConnMaxIdleTime(cfg.Database.MaxIdleTime)
	}

	return db, nil
}
