package record

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexidex/lexidex/internal/db/memory"
	"github.com/lexidex/lexidex/internal/domain"
	"github.com/lexidex/lexidex/internal/domain/analyze"
	domrec "github.com/lexidex/lexidex/internal/domain/record"
)

func newTestRepo() *Repo {
	return New(memory.NewStore())
}

func buildRecord(t *testing.T, value string) domrec.Record {
	t.Helper()
	rec, err := domrec.New(value, analyze.Analyze(value), time.Now().UTC().Truncate(time.Millisecond))
	require.NoError(t, err)
	return rec
}

func TestRepo_InsertGet(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	rec := buildRecord(t, "hello world")
	created, err := repo.Insert(ctx, &rec)
	require.NoError(t, err)
	assert.True(t, created)

	got, err := repo.Get(ctx, rec.ID())
	require.NoError(t, err)
	assert.Equal(t, rec.ID(), got.ID())
	assert.Equal(t, "hello world", got.Value())
	assert.Equal(t, rec.Properties(), got.Properties())
	assert.True(t, got.CreatedAt().Equal(rec.CreatedAt()))
}

func TestRepo_Insert_Duplicate(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	rec := buildRecord(t, "racecar")
	created, err := repo.Insert(ctx, &rec)
	require.NoError(t, err)
	require.True(t, created)

	created, err = repo.Insert(ctx, &rec)
	require.NoError(t, err)
	assert.False(t, created)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRepo_Get_NotFound(t *testing.T) {
	repo := newTestRepo()

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrStringNotFound)
}

func TestRepo_Delete(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	rec := buildRecord(t, "hello")
	_, err := repo.Insert(ctx, &rec)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, rec.ID()))

	_, err = repo.Get(ctx, rec.ID())
	assert.ErrorIs(t, err, domain.ErrStringNotFound)

	err = repo.Delete(ctx, rec.ID())
	assert.ErrorIs(t, err, domain.ErrStringNotFound)
}

func TestRepo_All(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	recs, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, recs)

	want := map[string]bool{}
	for _, v := range []string{"one", "two", "three"} {
		rec := buildRecord(t, v)
		_, err := repo.Insert(ctx, &rec)
		require.NoError(t, err)
		want[v] = true
	}

	recs, err = repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	for i := range recs {
		assert.True(t, want[recs[i].Value()], "unexpected value %q", recs[i].Value())
	}
}

func TestRepo_KeyPrefixIsolation(t *testing.T) {
	store := memory.NewStore()
	a := New(store).WithKeyPrefix("a:")
	b := New(store).WithKeyPrefix("b:")
	ctx := context.Background()

	rec := buildRecord(t, "hello")
	_, err := a.Insert(ctx, &rec)
	require.NoError(t, err)

	_, err = b.Get(ctx, rec.ID())
	assert.ErrorIs(t, err, domain.ErrStringNotFound)

	n, err := b.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
