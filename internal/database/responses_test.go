package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uscsoc/socplan/internal/domain"
	"github.com/uscsoc/socplan/internal/logger"
)

func newTestRepo(t *testing.T) domain.RawCache {
	t.Helper()
	log := logger.New()
	db, err := NewDB(t.TempDir(), log)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewResponseRepo(log, db)
}

func TestResponseRepo_RoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	term := domain.TermID(20253)

	_, found, err := repo.Get(ctx, "CSCI", term)
	require.NoError(t, err)
	assert.False(t, found)

	body := []byte(`{"OfferedCourses":{"course":[]}}`)
	require.NoError(t, repo.Put(ctx, "CSCI", term, body))

	got, found, err := repo.Get(ctx, "CSCI", term)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, body, got)
}

func TestResponseRepo_ReplaceOverwrites(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	term := domain.TermID(20253)

	require.NoError(t, repo.Put(ctx, "MATH", term, []byte("first")))
	require.NoError(t, repo.Put(ctx, "MATH", term, []byte("second")))

	got, found, err := repo.Get(ctx, "MATH", term)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("second"), got)
}

func TestResponseRepo_KeyedByDeptAndTerm(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "CSCI", domain.TermID(20253), []byte("fall")))
	require.NoError(t, repo.Put(ctx, "CSCI", domain.TermID(20261), []byte("spring")))

	got, found, err := repo.Get(ctx, "CSCI", domain.TermID(20261))
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("spring"), got)

	_, found, err = repo.Get(ctx, "PHYS", domain.TermID(20253))
	require.NoError(t, err)
	assert.False(t, found)
}
