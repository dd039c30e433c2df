package content

import (
	"context"
	"errors"
)

// ErrNoLocations is returned when a store yields an empty location list.
// The game cannot start without at least one location.
var ErrNoLocations = errors.New("content: no locations loaded")

// Store supplies the static game content. Implementations load from a YAML
// content pack (FileStore) or from PostgreSQL (postgres.ContentRepository).
//
// All three methods return content in its canonical order; callers that need
// a per-run permutation shuffle their own copies.
type Store interface {
	// LoadLocations returns the ordered location sequence.
	LoadLocations(ctx context.Context) ([]Location, error)
	// LoadRiddles returns the ordered riddle pool.
	LoadRiddles(ctx context.Context) ([]Riddle, error)
	// LoadNotes returns the ordered note pool.
	LoadNotes(ctx context.Context) ([]Note, error)
}
