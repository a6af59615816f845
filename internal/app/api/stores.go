package api

import (
	"context"
	"log/slog"

	"gorm.io/gorm"

	accountmemory "github.com/Apurer/petadopt-api/internal/domains/accounts/adapters/memory"
	accountpostgres "github.com/Apurer/petadopt-api/internal/domains/accounts/adapters/persistence/postgres"
	accountports "github.com/Apurer/petadopt-api/internal/domains/accounts/ports"
	adoptionmemory "github.com/Apurer/petadopt-api/internal/domains/adoptions/adapters/memory"
	adoptionpostgres "github.com/Apurer/petadopt-api/internal/domains/adoptions/adapters/persistence/postgres"
	adoptionports "github.com/Apurer/petadopt-api/internal/domains/adoptions/ports"
	chatmemory "github.com/Apurer/petadopt-api/internal/domains/chat/adapters/memory"
	chatpostgres "github.com/Apurer/petadopt-api/internal/domains/chat/adapters/persistence/postgres"
	chatports "github.com/Apurer/petadopt-api/internal/domains/chat/ports"
	listingaccounts "github.com/Apurer/petadopt-api/internal/domains/listings/adapters/accounts"
	listingmemory "github.com/Apurer/petadopt-api/internal/domains/listings/adapters/memory"
	listingpostgres "github.com/Apurer/petadopt-api/internal/domains/listings/adapters/persistence/postgres"
	listingports "github.com/Apurer/petadopt-api/internal/domains/listings/ports"
	"github.com/Apurer/petadopt-api/internal/platform/migrations"
	platformpostgres "github.com/Apurer/petadopt-api/internal/platform/postgres"
)

// Stores holds the driven adapters of every bounded context.
type Stores struct {
	DB           *gorm.DB
	Accounts     accountports.Repository
	Sessions     accountports.SessionStore
	Owners       listingports.OwnerDirectory
	Listings     listingports.Repository
	Idempotency  listingports.IdempotencyStore
	Applications adoptionports.Repository
	Interactions chatports.InteractionRepository
}

// BuildStores connects to PostgreSQL when a DSN is configured and migrates the
// schema. Without a usable database every store falls back to memory.
func BuildStores(ctx context.Context, cfg Config, logger *slog.Logger) (*Stores, func()) {
	db, cleanup := platformpostgres.Open(ctx, cfg.PostgresDSN, logger)
	if db != nil {
		if err := migrations.Run(db); err != nil {
			logger.Warn("failed to migrate postgres schema, falling back to in-memory repositories", slog.String("error", err.Error()))
			cleanup()
			db, cleanup = nil, func() {}
		}
	}
	if db == nil {
		return memoryStores(), cleanup
	}
	accounts := accountpostgres.NewRepository(db)
	logger.Info("repositories configured with postgres")
	return &Stores{
		DB:           db,
		Accounts:     accounts,
		Sessions:     accountpostgres.NewSessionStore(db),
		Owners:       listingaccounts.NewOwnerDirectory(accounts),
		Listings:     listingpostgres.NewRepository(db),
		Idempotency:  listingpostgres.NewIdempotencyStore(db),
		Applications: adoptionpostgres.NewRepository(db),
		Interactions: chatpostgres.NewInteractionRepository(db),
	}, cleanup
}

func memoryStores() *Stores {
	accounts := accountmemory.NewRepository()
	owners := listingaccounts.NewOwnerDirectory(accounts)
	return &Stores{
		Accounts:     accounts,
		Sessions:     accountmemory.NewSessionStore(),
		Owners:       owners,
		Listings:     listingmemory.NewRepository(listingmemory.WithOwnerDirectory(owners)),
		Idempotency:  listingmemory.NewIdempotencyStore(),
		Applications: adoptionmemory.NewRepository(),
		Interactions: chatmemory.NewInteractionRepository(),
	}
}
