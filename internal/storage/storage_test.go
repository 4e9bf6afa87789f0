package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hatysa/internal/command"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "hatysa.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestUpsertGuildInsertsOnce(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.UpsertGuild(ctx, "123456789012345678", "Test Guild"))

	g, err := s.Guild(ctx, "123456789012345678")
	require.NoError(t, err)
	require.NotNil(t, g)
	assert.Equal(t, "Test Guild", g.Name)

	// A second join with a changed name updates the row in place.
	require.NoError(t, s.UpsertGuild(ctx, "123456789012345678", "Renamed Guild"))

	guilds, err := s.Guilds(ctx)
	require.NoError(t, err)
	require.Len(t, guilds, 1)
	assert.Equal(t, GuildRecord{ID: "123456789012345678", Name: "Renamed Guild"}, guilds[0])
}

func TestGuildMissing(t *testing.T) {
	s := newTestStorage(t)

	g, err := s.Guild(context.Background(), "999")
	require.NoError(t, err)
	assert.Nil(t, g)
}

func TestAdjustKarma(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	score, err := s.AdjustKarma(ctx, "g1", "gopher", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), score)

	score, err = s.AdjustKarma(ctx, "g1", "gopher", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), score)

	score, err = s.AdjustKarma(ctx, "g1", "gopher", -1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), score)

	// Scores are scoped per guild.
	score, err = s.Karma(ctx, "g2", "gopher")
	require.NoError(t, err)
	assert.Equal(t, int64(0), score)
}

func TestTopKarmaOrdering(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	_, err := s.AdjustKarma(ctx, "g1", "ferris", 2)
	require.NoError(t, err)
	_, err = s.AdjustKarma(ctx, "g1", "gopher", 5)
	require.NoError(t, err)
	_, err = s.AdjustKarma(ctx, "g1", "zig", 2)
	require.NoError(t, err)
	_, err = s.AdjustKarma(ctx, "g2", "other", 100)
	require.NoError(t, err)

	top, err := s.TopKarma(ctx, "g1", 10)
	require.NoError(t, err)
	require.Equal(t, []command.KarmaEntry{
		{Subject: "gopher", Score: 5},
		{Subject: "ferris", Score: 2},
		{Subject: "zig", Score: 2},
	}, top)

	top, err = s.TopKarma(ctx, "g1", 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
}
