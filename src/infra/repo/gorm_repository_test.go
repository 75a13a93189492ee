package repo

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jokeshare/src/core/domain"
	"jokeshare/src/infra/db"
)

func newTestRepo(t *testing.T) *GormRepository {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	gdb, err := db.OpenSQLite(db.MemoryDSN, log)
	require.NoError(t, err)
	t.Cleanup(func() { db.CloseSQLite(gdb, log) })

	r := NewGormRepository(gdb, log)
	require.NoError(t, r.AutoMigrate())

	clock := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}
	return r
}

func TestGormRepository_Health(t *testing.T) {
	r := newTestRepo(t)
	assert.NoError(t, r.Health(context.Background()))
}

func TestGormRepository_Users(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)

	u, err := r.CreateUser(ctx, "kody", "hash")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "kody", u.Username)

	byName, err := r.FindUserByUsername(ctx, "kody")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byName.ID)
	assert.Equal(t, "hash", byName.PasswordHash)

	byID, err := r.FindUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "kody", byID.Username)

	_, err = r.CreateUser(ctx, "kody", "other")
	assert.True(t, domain.IsConflict(err), "got %v", err)

	_, err = r.FindUserByUsername(ctx, "nobody")
	assert.True(t, domain.IsNotFound(err))

	_, err = r.FindUserByID(ctx, "missing")
	assert.True(t, domain.IsNotFound(err))
}

func TestGormRepository_Jokes(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)

	u, err := r.CreateUser(ctx, "kody", "hash")
	require.NoError(t, err)

	var ids []string
	for _, name := range []string{"first", "second", "third"} {
		j, err := r.CreateJoke(ctx, name, name+" joke content", u.ID)
		require.NoError(t, err)
		assert.Equal(t, u.ID, j.JokesterID)
		ids = append(ids, j.ID)
	}

	n, err := r.CountJokes(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	newest, err := r.ListJokes(ctx, 2, true)
	require.NoError(t, err)
	require.Len(t, newest, 2)
	assert.Equal(t, "third", newest[0].Name)
	assert.Equal(t, "second", newest[1].Name)

	oldest, err := r.ListJokes(ctx, 5, false)
	require.NoError(t, err)
	require.Len(t, oldest, 3)
	assert.Equal(t, "first", oldest[0].Name)

	j, err := r.FindJokeByOffset(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, ids[1], j.ID)

	_, err = r.FindJokeByOffset(ctx, 3)
	assert.True(t, domain.IsNotFound(err))

	got, err := r.FindJokeByID(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, "first joke content", got.Content)

	require.NoError(t, r.DeleteJoke(ctx, ids[0]))
	_, err = r.FindJokeByID(ctx, ids[0])
	assert.True(t, domain.IsNotFound(err))

	err = r.DeleteJoke(ctx, ids[0])
	assert.True(t, domain.IsNotFound(err))

	n, err = r.CountJokes(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestGormRepository_EmptyList(t *testing.T) {
	r := newTestRepo(t)

	items, err := r.ListJokes(context.Background(), 5, true)
	require.NoError(t, err)
	assert.Empty(t, items)
}
