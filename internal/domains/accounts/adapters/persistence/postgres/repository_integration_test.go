//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	"github.com/Apurer/petadopt-api/internal/domains/accounts/domain"
	"github.com/Apurer/petadopt-api/internal/domains/accounts/ports"
	"github.com/Apurer/petadopt-api/internal/platform/migrations"
	platformpostgres "github.com/Apurer/petadopt-api/internal/platform/postgres"
)

func setupAccountsPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("petadopt_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := platformpostgres.Connect(ctx, dsn)
	require.NoError(t, err)

	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func TestRepository_CreateAndLookup(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupAccountsPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	account, err := domain.NewAccount("ana@example.com", domain.Profile{Name: "Ana", City: "Campinas", Region: "SP"})
	require.NoError(t, err)
	account.PasswordHash = "hash"

	created, err := repo.Create(ctx, account)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	byEmail, err := repo.GetByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)
	assert.Equal(t, "SP", byEmail.Region)

	_, err = repo.Create(ctx, account)
	assert.ErrorIs(t, err, ports.ErrEmailTaken)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRepository_Update(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupAccountsPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	account, err := domain.NewAccount("ong@example.com", domain.Profile{Name: "Patas", Type: domain.TypeNGO})
	require.NoError(t, err)
	created, err := repo.Create(ctx, account)
	require.NoError(t, err)

	created.SetVerified(true)
	updated, err := repo.Update(ctx, created)
	require.NoError(t, err)
	assert.True(t, updated.IsVerifiedNGO())

	_, err = repo.Update(ctx, &domain.Account{ID: 999, Name: "ghost"})
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestSessionStore_Lifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupAccountsPostgresContainer(t)
	defer cleanup()

	store := NewSessionStore(db)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.Session{Token: "live", AccountID: 1, ExpiresAt: time.Now().Add(time.Hour)}))
	require.NoError(t, store.Save(ctx, domain.Session{Token: "stale", AccountID: 1, ExpiresAt: time.Now().Add(-time.Hour)}))

	session, err := store.Get(ctx, "live")
	require.NoError(t, err)
	assert.Equal(t, int64(1), session.AccountID)

	_, err = store.Get(ctx, "stale")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)

	purged, err := store.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	require.NoError(t, store.Delete(ctx, "live"))
	_, err = store.Get(ctx, "live")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
}
