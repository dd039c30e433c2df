package content

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Content pack file names inside a pack directory.
const (
	locationsFile = "locations.yaml"
	riddlesFile   = "riddles.yaml"
	notesFile     = "notes.yaml"
)

// yamlLocationsFile is the top-level YAML structure for the locations file.
type yamlLocationsFile struct {
	Locations []yamlLocation `yaml:"locations"`
}

// yamlLocation is the YAML representation of a location.
type yamlLocation struct {
	ID          int    `yaml:"id"`
	Name        string `yaml:"name"`
	Theme       string `yaml:"theme"`
	Description string `yaml:"description"`
}

// yamlRiddlesFile is the top-level YAML structure for the riddles file.
type yamlRiddlesFile struct {
	Riddles []yamlRiddle `yaml:"riddles"`
}

// yamlRiddle is the YAML representation of a riddle.
type yamlRiddle struct {
	ID         int    `yaml:"id"`
	Question   string `yaml:"question"`
	Answer     string `yaml:"answer"`
	Difficulty int    `yaml:"difficulty"`
}

// yamlNotesFile is the top-level YAML structure for the notes file.
type yamlNotesFile struct {
	Notes []yamlNote `yaml:"notes"`
}

// yamlNote is the YAML representation of a note.
type yamlNote struct {
	ID         int    `yaml:"id"`
	Content    string `yaml:"content"`
	LocationID int    `yaml:"location_id"`
}

// FileStore implements Store over a YAML content pack directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a FileStore reading from the given pack directory.
//
// Precondition: dir must be a readable directory containing locations.yaml,
// riddles.yaml, and notes.yaml.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// LoadLocations reads and validates the location sequence from the pack.
//
// Postcondition: Returns at least one validated Location or a non-nil error.
func (s *FileStore) LoadLocations(_ context.Context) ([]Location, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, locationsFile))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", locationsFile, err)
	}
	return ParseLocations(data)
}

// LoadRiddles reads and validates the riddle pool from the pack.
//
// Postcondition: Returns validated riddles (possibly none) or a non-nil error.
func (s *FileStore) LoadRiddles(_ context.Context) ([]Riddle, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, riddlesFile))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", riddlesFile, err)
	}
	return ParseRiddles(data)
}

// LoadNotes reads and validates the note pool from the pack.
//
// Postcondition: Returns validated notes (possibly none) or a non-nil error.
func (s *FileStore) LoadNotes(_ context.Context) ([]Note, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, notesFile))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", notesFile, err)
	}
	return ParseNotes(data)
}

// ParseLocations parses and validates locations from YAML bytes.
//
// Precondition: data must be valid YAML conforming to the locations schema.
// Postcondition: Returns at least one validated Location or a non-nil error.
func ParseLocations(data []byte) ([]Location, error) {
	var file yamlLocationsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing locations YAML: %w", err)
	}

	if len(file.Locations) == 0 {
		return nil, ErrNoLocations
	}

	locations := make([]Location, 0, len(file.Locations))
	for _, yl := range file.Locations {
		loc := Location{
			ID:          yl.ID,
			Name:        yl.Name,
			Theme:       Theme(yl.Theme),
			Description: yl.Description,
		}
		if err := loc.Validate(); err != nil {
			return nil, fmt.Errorf("validating location: %w", err)
		}
		locations = append(locations, loc)
	}
	return locations, nil
}

// ParseRiddles parses and validates riddles from YAML bytes.
func ParseRiddles(data []byte) ([]Riddle, error) {
	var file yamlRiddlesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing riddles YAML: %w", err)
	}

	riddles := make([]Riddle, 0, len(file.Riddles))
	for _, yr := range file.Riddles {
		r := Riddle{
			ID:         yr.ID,
			Question:   yr.Question,
			Answer:     yr.Answer,
			Difficulty: yr.Difficulty,
		}
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("validating riddle: %w", err)
		}
		riddles = append(riddles, r)
	}
	return riddles, nil
}

// ParseNotes parses and validates notes from YAML bytes.
func ParseNotes(data []byte) ([]Note, error) {
	var file yamlNotesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing notes YAML: %w", err)
	}

	notes := make([]Note, 0, len(file.Notes))
	for _, yn := range file.Notes {
		n := Note{
			ID:         yn.ID,
			Content:    yn.Content,
			LocationID: yn.LocationID,
		}
		if err := n.Validate(); err != nil {
			return nil, fmt.Errorf("validating note: %w", err)
		}
		notes = append(notes, n)
	}
	return notes, nil
}
