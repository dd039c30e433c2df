package tui

// Typewriter reveals already-computed text one rune at a time. It is pure
// presentation state: the engine computes the full description synchronously
// and the TUI ticks this forward, so skipping or cancelling the reveal can
// never affect game state.
type Typewriter struct {
	text    []rune
	visible int
}

// NewTypewriter starts a reveal of text from zero visible runes.
func NewTypewriter(text string) Typewriter {
	return Typewriter{text: []rune(text)}
}

// Text returns the full target text.
func (t Typewriter) Text() string {
	return string(t.text)
}

// Done reports whether the full text is visible.
func (t Typewriter) Done() bool {
	return t.visible >= len(t.text)
}

// Advance reveals one more rune. Advancing a finished typewriter is a no-op.
func (t Typewriter) Advance() Typewriter {
	if t.visible < len(t.text) {
		t.visible++
	}
	return t
}

// Skip reveals the full text at once.
func (t Typewriter) Skip() Typewriter {
	t.visible = len(t.text)
	return t
}

// View returns the currently visible prefix.
func (t Typewriter) View() string {
	return string(t.text[:t.visible])
}
