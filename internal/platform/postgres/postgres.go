package postgres

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Pool limits applied to every connection.
const (
	maxOpenConns    = 20
	maxIdleConns    = 5
	connMaxLifetime = 30 * time.Minute
	pingTimeout     = 5 * time.Second
	slowQuery       = 500 * time.Millisecond
)

// Connect opens a PostgreSQL connection via GORM and verifies connectivity.
// Driver errors are translated so repositories can match gorm.ErrDuplicatedKey.
func Connect(ctx context.Context, dsn string, opts ...Option) (*gorm.DB, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, errors.New("postgres DSN is empty")
	}
	settings := options{logger: gormlogger.Default.LogMode(gormlogger.Warn)}
	for _, opt := range opts {
		opt(&settings)
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         settings.logger,
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// Option tunes Connect.
type Option func(*options)

type options struct {
	logger gormlogger.Interface
}

// WithSlog routes GORM warnings and slow queries to logger.
func WithSlog(logger *slog.Logger) Option {
	return func(o *options) {
		if logger == nil {
			return
		}
		writer := slog.NewLogLogger(logger.Handler(), slog.LevelWarn)
		o.logger = gormlogger.New(writer, gormlogger.Config{
			SlowThreshold:             slowQuery,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		})
	}
}

// Open dials PostgreSQL and returns the DB plus a cleanup function.
// An empty DSN or a failed connection is logged and yields a nil DB, so callers
// can fall back to in-memory adapters.
func Open(ctx context.Context, dsn string, logger *slog.Logger) (*gorm.DB, func()) {
	noop := func() {}
	if strings.TrimSpace(dsn) == "" {
		logger.Warn("POSTGRES_DSN not set, falling back to in-memory repositories")
		return nil, noop
	}
	db, err := Connect(ctx, dsn, WithSlog(logger))
	if err != nil {
		logger.Warn("failed to connect to postgres, falling back to in-memory repositories", slog.String("error", err.Error()))
		return nil, noop
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Warn("failed to unwrap postgres connection, falling back to in-memory repositories", slog.String("error", err.Error()))
		return nil, noop
	}
	logger.Info("postgres connection established", slog.Int("maxOpenConns", maxOpenConns))
	return db, func() { _ = sqlDB.Close() }
}
