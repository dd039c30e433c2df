package engine_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/labyrinth/internal/content"
	"github.com/cory-johannsen/labyrinth/internal/game/engine"
	"github.com/cory-johannsen/labyrinth/internal/game/rng"
)

// Property: every theme, known or not, yields a non-empty three-part
// description ending in a full stop.
func TestDescribeRoom_Property(t *testing.T) {
	themes := append([]content.Theme(nil), content.KnownThemes...)
	themes = append(themes, content.Theme("swamp"))

	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.Int64().Draw(rt, "seed")
		theme := themes[rapid.IntRange(0, len(themes)-1).Draw(rt, "theme")]

		desc := engine.DescribeRoom(rng.NewSeededSource(seed), theme)
		if desc == "" {
			rt.Fatalf("empty description for theme %q", theme)
		}
		if !strings.HasSuffix(desc, ".") {
			rt.Fatalf("description for theme %q does not end a sentence: %q", theme, desc)
		}
	})
}

func TestDescribeRoom_VariesAcrossDraws(t *testing.T) {
	src := rng.NewSeededSource(3)
	seen := make(map[string]struct{})
	for i := 0; i < 20; i++ {
		seen[engine.DescribeRoom(src, content.ThemeDungeon)] = struct{}{}
	}
	assert.Greater(t, len(seen), 1, "twenty draws should not all produce the same room")
}

func TestDescribeRoom_UnknownThemeFallsBack(t *testing.T) {
	// Unknown themes draw from the castle bank rather than failing.
	a := engine.DescribeRoom(rng.NewSeededSource(5), content.Theme("void"))
	b := engine.DescribeRoom(rng.NewSeededSource(5), content.ThemeCastle)
	assert.Equal(t, b, a)
}
