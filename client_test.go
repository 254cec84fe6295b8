package lexidex

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	c, err := New()
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func TestClient_AddGet(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	rec, created, err := c.Add(ctx, "hello world")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, rec.Properties.ContentHash, rec.ID)
	assert.Equal(t, 2, rec.Properties.WordCount)

	got, err := c.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got.Value)
}

func TestClient_Add_Duplicate(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	first, created, err := c.Add(ctx, "racecar")
	require.NoError(t, err)
	require.True(t, created)

	second, created, err := c.Add(ctx, "racecar")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	recs, err := c.List(ctx)
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}

func TestClient_Get_NotFound(t *testing.T) {
	c := newTestClient(t)

	_, err := c.Get(context.Background(), "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestClient_Delete(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	rec, _, err := c.Add(ctx, "hello")
	require.NoError(t, err)

	require.NoError(t, c.Delete(ctx, rec.ID))
	assert.ErrorIs(t, c.Delete(ctx, rec.ID), ErrNotFound)
}

func TestClient_Filter(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	for _, v := range []string{"racecar", "hello", "eve", "go home"} {
		_, _, err := c.Add(ctx, v)
		require.NoError(t, err)
	}

	recs, err := c.Filter().Palindrome(true).MinLength(4).Do(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "racecar", recs[0].Value)
}

func TestClient_Filter_Conflict(t *testing.T) {
	c := newTestClient(t)

	_, err := c.Filter().MinLength(10).MaxLength(5).Do(context.Background())
	assert.ErrorIs(t, err, ErrConflictingFilters)
}

func TestClient_Filter_InvalidArgument(t *testing.T) {
	c := newTestClient(t)

	_, err := c.Filter().ContainsChar("ab").Do(context.Background())
	require.Error(t, err)

	_, err = c.Filter().MinLength(-1).Do(context.Background())
	require.Error(t, err)
}

func TestClient_Query(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	for _, v := range []string{"racecar", "nurses run", "hello", "madam"} {
		_, _, err := c.Add(ctx, v)
		require.NoError(t, err)
	}

	recs, interp, err := c.Query(ctx, "all single word palindromic strings")
	require.NoError(t, err)
	assert.Len(t, recs, 2)
	assert.Equal(t, "all single word palindromic strings", interp.Query)
	assert.Len(t, interp.MatchedPhrases, 2)
}

func TestClient_Query_NoPatternMatched(t *testing.T) {
	c := newTestClient(t)

	_, _, err := c.Query(context.Background(), "banana bread")
	assert.ErrorIs(t, err, ErrNoPatternMatched)
}

func TestClient_Ping(t *testing.T) {
	c := newTestClient(t)
	assert.NoError(t, c.Ping(context.Background()))
}

func TestNew_UnknownDriver(t *testing.T) {
	_, err := New(func(cfg *clientConfig) { cfg.driver = "cassandra" })
	require.Error(t, err)
}
