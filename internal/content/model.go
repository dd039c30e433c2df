// Package content provides the static game content model: locations, riddles,
// and notes, plus the Store abstraction they are loaded through.
package content

import (
	"fmt"
	"strings"
)

// Theme identifies the flavor of a location. Room description generation
// is keyed off the theme.
type Theme string

// Known location themes.
const (
	ThemeCastle  Theme = "castle"
	ThemeDungeon Theme = "dungeon"
	ThemeCity    Theme = "city"
	ThemeForest  Theme = "forest"
	ThemePalace  Theme = "palace"
)

// KnownThemes contains all themes with dedicated description banks.
var KnownThemes = []Theme{ThemeCastle, ThemeDungeon, ThemeCity, ThemeForest, ThemePalace}

// IsKnown reports whether t has a dedicated description bank.
func (t Theme) IsKnown() bool {
	for _, kt := range KnownThemes {
		if t == kt {
			return true
		}
	}
	return false
}

// Location is one themed stage of the labyrinth, ten rooms deep.
// Loaded once at game start; the run order may be shuffled but individual
// locations are never mutated.
type Location struct {
	ID          int
	Name        string
	Theme       Theme
	Description string
}

// Validate checks the location invariants.
//
// Postcondition: Returns nil if the location is well-formed.
func (l Location) Validate() error {
	if l.Name == "" {
		return fmt.Errorf("location %d: name must not be empty", l.ID)
	}
	if !l.Theme.IsKnown() {
		return fmt.Errorf("location %d (%s): unknown theme %q", l.ID, l.Name, l.Theme)
	}
	return nil
}

// Riddle is a blocking challenge requiring a free-text answer.
// Riddles are drawn FIFO without replacement; at most one is active at a time.
type Riddle struct {
	ID         int
	Question   string
	Answer     string
	Difficulty int
}

// Validate checks the riddle invariants.
func (r Riddle) Validate() error {
	if strings.TrimSpace(r.Question) == "" {
		return fmt.Errorf("riddle %d: question must not be empty", r.ID)
	}
	if strings.TrimSpace(r.Answer) == "" {
		return fmt.Errorf("riddle %d: answer must not be empty", r.ID)
	}
	return nil
}

// NormalizeAnswer canonicalizes a riddle answer for comparison: lowercase
// and surrounding-whitespace trimmed. Idempotent.
//
// Postcondition: NormalizeAnswer(NormalizeAnswer(s)) == NormalizeAnswer(s).
func NormalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Matches reports whether the submitted answer matches the riddle's answer
// after normalization of both sides.
func (r Riddle) Matches(answer string) bool {
	return NormalizeAnswer(answer) == NormalizeAnswer(r.Answer)
}

// Note is a lore fragment found on the labyrinth floor. Drawn FIFO without
// replacement and kept permanently once found.
type Note struct {
	ID         int
	Content    string
	LocationID int
}

// Validate checks the note invariants.
func (n Note) Validate() error {
	if strings.TrimSpace(n.Content) == "" {
		return fmt.Errorf("note %d: content must not be empty", n.ID)
	}
	return nil
}

// Preview returns the first n runes of the note content, used for log lines.
//
// Precondition: n >= 0.
// Postcondition: result contains at most n runes.
func (n Note) Preview(limit int) string {
	runes := []rune(n.Content)
	if len(runes) <= limit {
		return n.Content
	}
	return string(runes[:limit])
}
