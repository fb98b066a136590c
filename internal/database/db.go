package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"breaktrack/internal/logger"
	"breaktrack/internal/models"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	maxAttempts  = 10
	retryBackoff = 2 * time.Second
	sqliteScheme = "sqlite://"
)

// Open connects to the database named by dsn: a postgres URL or key=value DSN, or
// sqlite://<path> for a local file. Postgres connections are retried while the server
// comes up.
func Open(dsn string, log *zap.Logger) (*gorm.DB, error) {
	dialector, err := dialectorFor(dsn)
	if err != nil {
		return nil, err
	}

	cfg := &gorm.Config{
		Logger:         logger.NewGormLogger(log, gormlogger.Warn),
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	}

	if strings.HasPrefix(dsn, sqliteScheme) {
		return gorm.Open(dialector, cfg)
	}

	var db *gorm.DB
	for i := 1; i <= maxAttempts; i++ {
		log.Info("connecting to database", zap.Int("attempt", i), zap.Int("max_attempts", maxAttempts))

		db, err = gorm.Open(dialector, cfg)
		if err == nil {
			log.Info("connected to database")
			return db, nil
		}

		log.Warn("failed to connect to database", zap.Error(err))
		if i < maxAttempts {
			time.Sleep(retryBackoff)
		}
	}
	return nil, fmt.Errorf("connect to database after %d attempts: %w", maxAttempts, err)
}

func dialectorFor(dsn string) (gorm.Dialector, error) {
	switch {
	case strings.HasPrefix(dsn, sqliteScheme):
		path := strings.TrimPrefix(dsn, sqliteScheme)
		if path == "" {
			return nil, fmt.Errorf("empty sqlite path in %q", dsn)
		}
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		return sqlite.Open(path + sep + "_pragma=busy_timeout(5000)"), nil
	case strings.HasPrefix(dsn, "postgres://"),
		strings.HasPrefix(dsn, "postgresql://"),
		strings.Contains(dsn, "host="):
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DATABASE_URL %q: want postgres:// or sqlite://", dsn)
	}
}

// Migrate creates or updates the schema.
func Migrate(ctx context.Context, db *gorm.DB) error {
	err := db.WithContext(ctx).AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Break{},
		&models.Achievement{},
		&models.UserAchievement{},
		&models.Report{},
		&models.AuditLog{},
	)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Bootstrap migrates the schema and inserts the seed rows that are missing.
func Bootstrap(ctx context.Context, db *gorm.DB, adminPassword string, log *zap.Logger) error {
	if err := Migrate(ctx, db); err != nil {
		return err
	}
	return Seed(ctx, db, adminPassword, log)
}
