package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/labyrinth/internal/content"
)

// ContentRepository implements content.Store over the labyrinth content
// tables. Rows come back in their canonical order (by id); the engine applies
// its own per-run shuffle.
type ContentRepository struct {
	db *pgxpool.Pool
}

// NewContentRepository creates a ContentRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewContentRepository(db *pgxpool.Pool) *ContentRepository {
	return &ContentRepository{db: db}
}

// LoadLocations returns all locations ordered by id.
//
// Postcondition: Returns at least one validated Location, content.ErrNoLocations
// when the table is empty, or a query error.
func (r *ContentRepository) LoadLocations(ctx context.Context) ([]content.Location, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, theme, description
		FROM locations ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying locations: %w", err)
	}
	defer rows.Close()

	var locations []content.Location
	for rows.Next() {
		var loc content.Location
		var theme string
		if err := rows.Scan(&loc.ID, &loc.Name, &theme, &loc.Description); err != nil {
			return nil, fmt.Errorf("scanning location row: %w", err)
		}
		loc.Theme = content.Theme(theme)
		if err := loc.Validate(); err != nil {
			return nil, fmt.Errorf("validating location: %w", err)
		}
		locations = append(locations, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading location rows: %w", err)
	}
	if len(locations) == 0 {
		return nil, content.ErrNoLocations
	}
	return locations, nil
}

// LoadRiddles returns all riddles ordered by id.
//
// Postcondition: Returns a slice (may be empty) or a non-nil error.
func (r *ContentRepository) LoadRiddles(ctx context.Context) ([]content.Riddle, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, question, answer, difficulty
		FROM riddles ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying riddles: %w", err)
	}
	defer rows.Close()

	riddles := make([]content.Riddle, 0)
	for rows.Next() {
		var riddle content.Riddle
		if err := rows.Scan(&riddle.ID, &riddle.Question, &riddle.Answer, &riddle.Difficulty); err != nil {
			return nil, fmt.Errorf("scanning riddle row: %w", err)
		}
		if err := riddle.Validate(); err != nil {
			return nil, fmt.Errorf("validating riddle: %w", err)
		}
		riddles = append(riddles, riddle)
	}
	return riddles, rows.Err()
}

// LoadNotes returns all notes ordered by id.
//
// Postcondition: Returns a slice (may be empty) or a non-nil error.
func (r *ContentRepository) LoadNotes(ctx context.Context) ([]content.Note, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, content, location_id
		FROM notes ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying notes: %w", err)
	}
	defer rows.Close()

	notes := make([]content.Note, 0)
	for rows.Next() {
		var note content.Note
		if err := rows.Scan(&note.ID, &note.Content, &note.LocationID); err != nil {
			return nil, fmt.Errorf("scanning note row: %w", err)
		}
		if err := note.Validate(); err != nil {
			return nil, fmt.Errorf("validating note: %w", err)
		}
		notes = append(notes, note)
	}
	return notes, rows.Err()
}

// SeedContent replaces the content tables with the given pack inside one
// transaction. Used by the seed-content tool and integration tests.
//
// Precondition: the content tables must exist (run migrations first).
// Postcondition: on success the tables hold exactly the given content.
func (r *ContentRepository) SeedContent(ctx context.Context, locations []content.Location, riddles []content.Riddle, notes []content.Note) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, table := range []string{"notes", "riddles", "locations"} {
		if _, err := tx.Exec(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for _, loc := range locations {
		if _, err := tx.Exec(ctx, `
			INSERT INTO locations (id, name, theme, description)
			VALUES ($1, $2, $3, $4)`,
			loc.ID, loc.Name, string(loc.Theme), loc.Description,
		); err != nil {
			return fmt.Errorf("inserting location %d: %w", loc.ID, err)
		}
	}
	for _, riddle := range riddles {
		if _, err := tx.Exec(ctx, `
			INSERT INTO riddles (id, question, answer, difficulty)
			VALUES ($1, $2, $3, $4)`,
			riddle.ID, riddle.Question, riddle.Answer, riddle.Difficulty,
		); err != nil {
			return fmt.Errorf("inserting riddle %d: %w", riddle.ID, err)
		}
	}
	for _, note := range notes {
		if _, err := tx.Exec(ctx, `
			INSERT INTO notes (id, content, location_id)
			VALUES ($1, $2, $3)`,
			note.ID, note.Content, note.LocationID,
		); err != nil {
			return fmt.Errorf("inserting note %d: %w", note.ID, err)
		}
	}

	return tx.Commit(ctx)
}
