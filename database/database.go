package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"foodgram/internal/config"
	"foodgram/internal/logging"
	"foodgram/internal/metrics"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// GormConfig is shared by the server and the seed command so that every
// connection translates driver errors the same way.
func GormConfig(slowThreshold time.Duration) *gorm.Config {
	newLogger := logger.New(
		log.New(logging.Writer{Level: zerolog.WarnLevel}, "", 0),
		logger.Config{
			SlowThreshold:             slowThreshold,
			LogLevel:                  logger.Warn,
			Colorful:                  false,
			IgnoreRecordNotFoundError: true,
		},
	)

	return &gorm.Config{
		Logger:         newLogger,
		PrepareStmt:    true,
		TranslateError: true,
	}
}

func ConnectDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), GormConfig(cfg.SlowThreshold))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(15 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logging.Info().
		Str("host", cfg.Host).
		Str("database", cfg.Name).
		Int("max_open_conns", cfg.MaxOpenConns).
		Int("max_idle_conns", cfg.MaxIdleConns).
		Msg("Connected to database")

	DB = db
	return db, nil
}

// MonitorDBConnections publishes pool size and warns when the pool runs
// close to its limit. It stops when ctx is done.
func MonitorDBConnections(ctx context.Context, db *gorm.DB, maxOpen int) {
	ticker := time.NewTicker(10 * time.Second)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			sqlDB, err := db.DB()
			if err != nil {
				continue
			}
			stats := sqlDB.Stats()
			metrics.DBOpenConnections.Set(float64(stats.OpenConnections))
			if maxOpen > 0 && stats.InUse > maxOpen*3/4 {
				logging.Warn().
					Int("in_use", stats.InUse).
					Int("idle", stats.Idle).
					Int("open", stats.OpenConnections).
					Msg("DB connection pool under pressure")
			}
		}
	}()
}
