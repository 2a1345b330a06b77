//go:build integration

package repository

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/CodeZF375/crimsonbot/internal/database"
	"github.com/CodeZF375/crimsonbot/internal/domain"
)

var pgDB *database.DB

func TestMain(m *testing.M) {
	ctx := context.Background()
	db, container := mustSetupPostgres(ctx)
	pgDB = db

	exitCode := m.Run()

	if err := db.Close(); err != nil {
		log.Printf("failed to close db: %s", err)
	}
	if err := container.Terminate(ctx); err != nil {
		log.Printf("failed to terminate container: %s", err)
	}
	os.Exit(exitCode)
}

func mustSetupPostgres(ctx context.Context) (*database.DB, *postgres.PostgresContainer) {
	container, err := postgres.Run(ctx,
		"postgres:15.3-alpine",
		postgres.WithDatabase("crimsonbot"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			// 初回起動後に一度再起動するので 2 回目のログを待つ
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		log.Fatalf("failed to start container: %s", err)
	}
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		log.Fatalf("failed to obtain connection string: %s", err)
	}
	db, err := database.NewConnection(ctx, database.Postgres.String(), dsn)
	if err != nil {
		log.Fatalf("failed to connect to postgres container: %s", err)
	}
	if err := database.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("failed to create schema: %s", err)
	}
	return db, container
}

func resetPostgres(t *testing.T) {
	t.Helper()
	_, err := pgDB.ExecContext(context.Background(),
		`TRUNCATE muteffikler, dusmanlar, as_kadro, ks_bilgi, sunucular RESTART IDENTITY`)
	require.NoError(t, err)
}

func TestPostgres_CRUD(t *testing.T) {
	resetPostgres(t)
	ctx := context.Background()
	repo := NewRecordRepository(pgDB, Servers)

	created, err := repo.Create(ctx, domain.GameServer{
		Name:    "TurkMMO",
		Address: "play.turkmmo.com",
		Port:    domain.StringPtr("25565"),
		Note:    domain.StringPtr("Ana sunucumuz"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.False(t, created.CreatedAt.After(time.Now().Add(time.Second)))

	got, err := repo.GetByKey(ctx, "TurkMMO")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)

	updated, err := repo.Update(ctx, created.ID, domain.GameServer{Name: "TurkMMO", Address: "play2.turkmmo.com"})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))
	assert.Nil(t, updated.Port)

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, "play2.turkmmo.com", deleted.Address)

	missing, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPostgres_UniqueViolation(t *testing.T) {
	resetPostgres(t)
	ctx := context.Background()
	repo := NewRecordRepository(pgDB, Roster)

	_, err := repo.Create(ctx, domain.RosterMember{Name: "AlpAslan", Role: "Savaşçı", JoinDate: "23.08.2022"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, domain.RosterMember{Name: "AlpAslan", Role: "Savaşçı", JoinDate: "23.08.2022"})
	assert.ErrorIs(t, err, domain.ErrConflict)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
