package content_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/labyrinth/internal/content"
)

const validPack = `
locations:
  - id: 1
    name: Ancient Castle
    theme: castle
    description: A crumbling fortress.
  - id: 2
    name: Mystic Dungeon
    theme: dungeon
`

func writePack(t *testing.T, locations, riddles, notes string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "locations.yaml"), []byte(locations), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "riddles.yaml"), []byte(riddles), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.yaml"), []byte(notes), 0o644))
	return dir
}

func TestFileStore_LoadsPack(t *testing.T) {
	dir := writePack(t, validPack,
		"riddles:\n  - id: 1\n    question: What has keys?\n    answer: piano\n    difficulty: 1\n",
		"notes:\n  - id: 1\n    content: day twelve\n    location_id: 1\n",
	)
	store := content.NewFileStore(dir)
	ctx := context.Background()

	locations, err := store.LoadLocations(ctx)
	require.NoError(t, err)
	require.Len(t, locations, 2)
	assert.Equal(t, "Ancient Castle", locations[0].Name)
	assert.Equal(t, content.ThemeDungeon, locations[1].Theme)

	riddles, err := store.LoadRiddles(ctx)
	require.NoError(t, err)
	require.Len(t, riddles, 1)
	assert.Equal(t, "piano", riddles[0].Answer)

	notes, err := store.LoadNotes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, 1, notes[0].LocationID)
}

func TestFileStore_MissingFile(t *testing.T) {
	store := content.NewFileStore(t.TempDir())
	_, err := store.LoadLocations(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseLocations_Empty(t *testing.T) {
	_, err := content.ParseLocations([]byte("locations: []\n"))
	assert.ErrorIs(t, err, content.ErrNoLocations)
}

func TestParseLocations_UnknownTheme(t *testing.T) {
	_, err := content.ParseLocations([]byte(
		"locations:\n  - id: 1\n    name: Bog\n    theme: swamp\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown theme")
}

func TestParseLocations_Malformed(t *testing.T) {
	_, err := content.ParseLocations([]byte("locations: {not a list"))
	require.Error(t, err)
}

func TestParseRiddles_RejectsBlankAnswer(t *testing.T) {
	_, err := content.ParseRiddles([]byte(
		"riddles:\n  - id: 1\n    question: What has keys?\n    answer: \"  \"\n"))
	require.Error(t, err)
}

func TestParseRiddles_EmptyPoolIsFine(t *testing.T) {
	riddles, err := content.ParseRiddles([]byte("riddles: []\n"))
	require.NoError(t, err)
	assert.Empty(t, riddles)
}

func TestParseNotes_RejectsBlankContent(t *testing.T) {
	_, err := content.ParseNotes([]byte(
		"notes:\n  - id: 1\n    content: \"\"\n    location_id: 1\n"))
	require.Error(t, err)
}
