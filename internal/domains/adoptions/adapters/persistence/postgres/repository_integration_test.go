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

	"github.com/Apurer/petadopt-api/internal/domains/adoptions/domain"
	"github.com/Apurer/petadopt-api/internal/domains/adoptions/ports"
	"github.com/Apurer/petadopt-api/internal/platform/migrations"
	platformpostgres "github.com/Apurer/petadopt-api/internal/platform/postgres"
)

func setupAdoptionsPostgresContainer(t *testing.T) (*gorm.DB, func()) {
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
	require.NoError(t, migrations.Run(db))

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}
	return db, cleanup
}

func newApplication(t *testing.T, petID, applicantID int64, sentAt time.Time) *domain.Application {
	t.Helper()
	app, err := domain.NewApplication(domain.Pet{ID: petID, OwnerID: 1, Listed: true}, applicantID, domain.Answers{
		Experience:    "Pouca",
		Housing:       "Apartamento",
		OtherPets:     "Sim",
		AvailableTime: "Moderado",
		Motivation:    "Companhia",
		Referral:      "Indicação",
		ContactPhone:  "(19) 98888-7777",
	}, sentAt)
	require.NoError(t, err)
	return app
}

func TestPostgresRepository_CreateAndUniqueness(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	db, cleanup := setupAdoptionsPostgresContainer(t)
	defer cleanup()

	ctx := context.Background()
	repo := NewRepository(db)
	sentAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	created, err := repo.Create(ctx, newApplication(t, 10, 2, sentAt))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Apartamento", created.Answers.Housing)

	_, err = repo.Create(ctx, newApplication(t, 10, 2, sentAt.Add(time.Minute)))
	assert.ErrorIs(t, err, ports.ErrAlreadyApplied)

	loaded, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSent, loaded.Status)
	assert.Equal(t, "Companhia", loaded.Answers.Motivation)
	assert.Nil(t, loaded.ViewedAt)
}

func TestPostgresRepository_UpdateAndLists(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	db, cleanup := setupAdoptionsPostgresContainer(t)
	defer cleanup()

	ctx := context.Background()
	repo := NewRepository(db)
	sentAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	older, err := repo.Create(ctx, newApplication(t, 10, 2, sentAt))
	require.NoError(t, err)
	newer, err := repo.Create(ctx, newApplication(t, 11, 2, sentAt.Add(time.Hour)))
	require.NoError(t, err)

	newer.Respond("Podemos marcar uma visita", true, sentAt.Add(2*time.Hour))
	updated, err := repo.Update(ctx, newer)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAnswered, updated.Status)
	require.NotNil(t, updated.Approved)
	assert.True(t, *updated.Approved)
	require.NotNil(t, updated.ViewedAt)

	received, err := repo.ListByOwner(ctx, 1)
	require.NoError(t, err)
	require.Len(t, received, 2)
	assert.Equal(t, newer.ID, received[0].ID)
	assert.Equal(t, older.ID, received[1].ID)

	sent, err := repo.ListByApplicant(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, sent, 2)

	_, err = repo.Update(ctx, &domain.Application{ID: 999, Status: domain.StatusViewed})
	assert.ErrorIs(t, err, ports.ErrNotFound)
}
