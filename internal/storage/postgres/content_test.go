package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/labyrinth/internal/content"
	"github.com/cory-johannsen/labyrinth/internal/storage/postgres"
	"github.com/cory-johannsen/labyrinth/internal/testutil"
)

func testPack() ([]content.Location, []content.Riddle, []content.Note) {
	locations := []content.Location{
		{ID: 1, Name: "Ancient Castle", Theme: content.ThemeCastle, Description: "A crumbling fortress."},
		{ID: 2, Name: "Mystic Dungeon", Theme: content.ThemeDungeon, Description: "Cold passages below."},
	}
	riddles := []content.Riddle{
		{ID: 1, Question: "What has keys but opens no locks?", Answer: "piano", Difficulty: 1},
		{ID: 2, Question: "What gets wetter the more it dries?", Answer: "towel", Difficulty: 1},
	}
	notes := []content.Note{
		{ID: 1, Content: "Day 12. The doors change every time I look away.", LocationID: 1},
	}
	return locations, riddles, notes
}

func TestContentRepository_RoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	pc := testutil.NewPostgresContainer(t)
	repo := postgres.NewContentRepository(pc.RawPool)
	ctx := context.Background()

	locations, riddles, notes := testPack()
	require.NoError(t, repo.SeedContent(ctx, locations, riddles, notes))

	gotLocations, err := repo.LoadLocations(ctx)
	require.NoError(t, err)
	assert.Equal(t, locations, gotLocations)

	gotRiddles, err := repo.LoadRiddles(ctx)
	require.NoError(t, err)
	assert.Equal(t, riddles, gotRiddles)

	gotNotes, err := repo.LoadNotes(ctx)
	require.NoError(t, err)
	assert.Equal(t, notes, gotNotes)
}

func TestContentRepository_SeedReplacesExisting(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	pc := testutil.NewPostgresContainer(t)
	repo := postgres.NewContentRepository(pc.RawPool)
	ctx := context.Background()

	locations, riddles, notes := testPack()
	require.NoError(t, repo.SeedContent(ctx, locations, riddles, notes))

	replacement := []content.Location{
		{ID: 9, Name: "Crystal Palace", Theme: content.ThemePalace, Description: "Blinding crystal."},
	}
	require.NoError(t, repo.SeedContent(ctx, replacement, nil, nil))

	gotLocations, err := repo.LoadLocations(ctx)
	require.NoError(t, err)
	assert.Equal(t, replacement, gotLocations)

	gotRiddles, err := repo.LoadRiddles(ctx)
	require.NoError(t, err)
	assert.Empty(t, gotRiddles)
}

func TestContentRepository_EmptyLocations(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	pc := testutil.NewPostgresContainer(t)
	repo := postgres.NewContentRepository(pc.RawPool)

	_, err := repo.LoadLocations(context.Background())
	assert.ErrorIs(t, err, content.ErrNoLocations)
}

func TestPool_Health(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	pc := testutil.NewPostgresContainer(t)
	assert.NoError(t, pc.Pool.Health(context.Background(), 5*time.Second))
}
