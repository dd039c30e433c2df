package content_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/labyrinth/internal/content"
)

func TestTheme_IsKnown(t *testing.T) {
	for _, theme := range content.KnownThemes {
		assert.True(t, theme.IsKnown(), "theme %q", theme)
	}
	assert.False(t, content.Theme("swamp").IsKnown())
	assert.False(t, content.Theme("").IsKnown())
}

func TestLocation_Validate(t *testing.T) {
	valid := content.Location{ID: 1, Name: "Ancient Castle", Theme: content.ThemeCastle}
	assert.NoError(t, valid.Validate())

	noName := valid
	noName.Name = ""
	assert.Error(t, noName.Validate())

	badTheme := valid
	badTheme.Theme = "swamp"
	assert.Error(t, badTheme.Validate())
}

func TestRiddle_Validate(t *testing.T) {
	valid := content.Riddle{ID: 1, Question: "What has keys but opens no locks?", Answer: "piano"}
	assert.NoError(t, valid.Validate())

	blankQuestion := valid
	blankQuestion.Question = "   "
	assert.Error(t, blankQuestion.Validate())

	blankAnswer := valid
	blankAnswer.Answer = ""
	assert.Error(t, blankAnswer.Validate())
}

func TestRiddle_Matches(t *testing.T) {
	r := content.Riddle{Answer: "Piano"}
	assert.True(t, r.Matches("piano"))
	assert.True(t, r.Matches("  PIANO\t"))
	assert.False(t, r.Matches("organ"))
	assert.False(t, r.Matches(""))
}

// Property: NormalizeAnswer is idempotent and never leaves surrounding
// whitespace or uppercase letters behind.
func TestNormalizeAnswer_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s := rapid.String().Draw(rt, "s")
		once := content.NormalizeAnswer(s)
		twice := content.NormalizeAnswer(once)
		if once != twice {
			rt.Fatalf("not idempotent: %q -> %q -> %q", s, once, twice)
		}
		if once != strings.TrimSpace(once) {
			rt.Fatalf("whitespace survived normalization: %q", once)
		}
		if once != strings.ToLower(once) {
			rt.Fatalf("uppercase survived normalization: %q", once)
		}
	})
}

func TestNote_Validate(t *testing.T) {
	assert.NoError(t, content.Note{ID: 1, Content: "day twelve"}.Validate())
	assert.Error(t, content.Note{ID: 2, Content: " \n"}.Validate())
}

func TestNote_Preview(t *testing.T) {
	n := content.Note{Content: "the doors change every time I look away"}
	assert.Equal(t, "the doors ", n.Preview(10))
	assert.Equal(t, n.Content, n.Preview(1000), "short notes pass through untruncated")

	unicode := content.Note{Content: "двери меняются"}
	assert.Equal(t, "двери", unicode.Preview(5), "truncation counts runes, not bytes")
}
