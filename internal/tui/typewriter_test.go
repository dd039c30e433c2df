package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestTypewriter_RevealsOneRuneAtATime(t *testing.T) {
	tw := NewTypewriter("abc")
	assert.False(t, tw.Done())
	assert.Equal(t, "", tw.View())

	tw = tw.Advance()
	assert.Equal(t, "a", tw.View())

	tw = tw.Advance().Advance()
	assert.Equal(t, "abc", tw.View())
	assert.True(t, tw.Done())

	// Advancing past the end stays put.
	tw = tw.Advance()
	assert.Equal(t, "abc", tw.View())
}

func TestTypewriter_Skip(t *testing.T) {
	tw := NewTypewriter("a long room description").Skip()
	assert.True(t, tw.Done())
	assert.Equal(t, "a long room description", tw.View())
}

func TestTypewriter_EmptyTextIsDone(t *testing.T) {
	tw := NewTypewriter("")
	assert.True(t, tw.Done())
	assert.Equal(t, "", tw.View())
}

func TestTypewriter_HandlesMultibyteRunes(t *testing.T) {
	tw := NewTypewriter("двери").Advance().Advance()
	assert.Equal(t, "дв", tw.View(), "reveal must step by runes, not bytes")
}

// Property: the view is always a prefix of the text, and Done after exactly
// len(text) advances.
func TestTypewriter_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		text := rapid.String().Draw(rt, "text")
		tw := NewTypewriter(text)

		runes := []rune(text)
		for i := 0; i <= len(runes); i++ {
			view := tw.View()
			if string(runes[:i]) != view {
				rt.Fatalf("after %d advances got %q, want %q", i, view, string(runes[:i]))
			}
			tw = tw.Advance()
		}
		if !tw.Done() {
			rt.Fatalf("typewriter not done after %d advances", len(runes))
		}
	})
}
