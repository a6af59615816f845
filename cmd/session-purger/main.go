package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Apurer/petadopt-api/internal/app/api"
	accountpostgres "github.com/Apurer/petadopt-api/internal/domains/accounts/adapters/persistence/postgres"
	platformobservability "github.com/Apurer/petadopt-api/internal/platform/observability"
	platformpostgres "github.com/Apurer/petadopt-api/internal/platform/postgres"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := api.LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	logger := platformobservability.NewLogger(os.Stdout, cfg.LogLevel).With(slog.String("service", "petadopt-session-purger"))

	db, cleanup := platformpostgres.Open(ctx, cfg.PostgresDSN, logger)
	defer cleanup()
	if db == nil {
		log.Fatal("POSTGRES_DSN not set or connection failed; cannot purge sessions")
	}
	store := accountpostgres.NewSessionStore(db)

	if cfg.SessionPurgeIntervalMinute <= 0 {
		if err := purge(ctx, store, logger); err != nil {
			log.Fatalf("failed to purge sessions: %v", err)
		}
		return
	}

	ticker := time.NewTicker(time.Duration(cfg.SessionPurgeIntervalMinute) * time.Minute)
	defer ticker.Stop()
	for {
		if err := purge(ctx, store, logger); err != nil {
			logger.Error("session purge failed", slog.String("error", err.Error()))
		}
		select {
		case <-ctx.Done():
			logger.Info("session purger stopped")
			return
		case <-ticker.C:
		}
	}
}

func purge(ctx context.Context, store *accountpostgres.SessionStore, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	removed, err := store.PurgeExpired(ctx)
	if err != nil {
		return err
	}
	logger.Info("session purge completed", slog.Int64("removed", removed))
	return nil
}
