//go:build integration

package tests

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/IvanChernomyrdin/mesto/internal/server/config"
	"github.com/IvanChernomyrdin/mesto/internal/server/models"
	"github.com/IvanChernomyrdin/mesto/internal/server/repository"
	serr "github.com/IvanChernomyrdin/mesto/internal/shared/errors"
)

// startPostgres поднимает PostgreSQL в контейнере и применяет миграции.
func startPostgres(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("mesto"),
		postgres.WithUsername("mesto"),
		postgres.WithPassword("mesto"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := config.OpenDB(ctx, config.DBConfig{DSN: dsn})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, config.Migrate(db, filepath.Join("..", "..", "..", "..", "migrations", "postgres")))
	return db
}

func TestIntegration_UsersAndCards(t *testing.T) {
	db := startPostgres(t)
	ctx := context.Background()

	users := repository.NewUsersRepository(db)
	cards := repository.NewCardsRepository(db)

	a, err := users.Create(ctx, models.User{Email: "a@b.com", PasswordHash: "hash"})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultName, a.Name)

	_, err = users.Create(ctx, models.User{Email: "a@b.com", PasswordHash: "hash"})
	require.ErrorIs(t, err, serr.ErrConflict)

	// ограничение длины имени проверяет сама БД
	_, err = users.Create(ctx, models.User{Name: "x", Email: "c@b.com", PasswordHash: "hash"})
	require.ErrorIs(t, err, serr.ErrBadRequest)

	b, err := users.Create(ctx, models.User{Email: "b@b.com", PasswordHash: "hash"})
	require.NoError(t, err)

	found, err := users.FindOneByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "hash", found.PasswordHash)

	card, err := cards.Create(ctx, models.Card{Name: "Байкал", Link: "https://a.ru/b.jpg", Owner: a.ID})
	require.NoError(t, err)
	assert.Empty(t, card.Likes)

	// повторный лайк не дублирует id
	_, err = cards.AddLike(ctx, card.ID, b.ID)
	require.NoError(t, err)
	liked, err := cards.AddLike(ctx, card.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{b.ID}, liked.Likes)

	unliked, err := cards.RemoveLike(ctx, card.ID, b.ID)
	require.NoError(t, err)
	assert.Empty(t, unliked.Likes)

	deleted, err := cards.Delete(ctx, card.ID)
	require.NoError(t, err)
	assert.Equal(t, card.ID, deleted.ID)

	_, err = cards.FindByID(ctx, card.ID)
	require.ErrorIs(t, err, serr.ErrNotFound)
}

// Параллельные лайки разных пользователей не теряются
func TestIntegration_ConcurrentLikes(t *testing.T) {
	db := startPostgres(t)
	ctx := context.Background()

	users := repository.NewUsersRepository(db)
	cards := repository.NewCardsRepository(db)

	owner, err := users.Create(ctx, models.User{Email: "owner@b.com", PasswordHash: "hash"})
	require.NoError(t, err)
	card, err := cards.Create(ctx, models.Card{Name: "Эльбрус", Link: "https://a.ru/e.jpg", Owner: owner.ID})
	require.NoError(t, err)

	const n = 10
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := models.NewID()
			// каждый пользователь жмёт лайк дважды
			_, _ = cards.AddLike(ctx, card.ID, id)
			_, _ = cards.AddLike(ctx, card.ID, id)
		}()
	}
	wg.Wait()

	got, err := cards.FindByID(ctx, card.ID)
	require.NoError(t, err)
	assert.Len(t, got.Likes, n)
}
