package engine

import "github.com/cory-johannsen/labyrinth/internal/game/rng"

// DoorType classifies a door by the key it demands.
type DoorType string

// Door types. Normal doors always open; silver and gold doors consume the
// matching key.
const (
	DoorNormal DoorType = "normal"
	DoorSilver DoorType = "silver"
	DoorGold   DoorType = "gold"
)

// Display returns the human-readable door type name.
func (t DoorType) Display() string {
	switch t {
	case DoorSilver:
		return "Silver"
	case DoorGold:
		return "Gold"
	default:
		return "Ordinary"
	}
}

// Door is one choice presented in a room. Doors are ephemeral: regenerated
// for every room and never persisted beyond it.
type Door struct {
	Type        DoorType
	Description string
}

// Locked reports whether the door demands a key.
func (d Door) Locked() bool {
	return d.Type != DoorNormal
}

// Door generation bounds and type thresholds.
const (
	MinDoors = 2
	MaxDoors = 4

	silverDoorThreshold = 0.4
	goldDoorThreshold   = 0.7
)

func doorDescription(t DoorType) string {
	switch t {
	case DoorSilver:
		return "A door of tarnished silver"
	case DoorGold:
		return "A door inlaid with gold"
	default:
		return "An ordinary wooden door"
	}
}

// GenerateDoors produces the door set for a room: between MinDoors and
// MaxDoors doors, always including at least one normal door, shuffled so the
// normal door's position is not fixed.
//
// Precondition: src must be non-nil.
// Postcondition: MinDoors <= len(result) <= MaxDoors; at least one door has
// type DoorNormal.
func GenerateDoors(src rng.Source) []Door {
	count := rng.UniformInt(src, MinDoors, MaxDoors)

	doors := make([]Door, 0, count)
	doors = append(doors, Door{Type: DoorNormal, Description: doorDescription(DoorNormal)})

	for i := 1; i < count; i++ {
		r := src.Float64()
		var t DoorType
		switch {
		case r < silverDoorThreshold:
			t = DoorSilver
		case r < goldDoorThreshold:
			t = DoorGold
		default:
			t = DoorNormal
		}
		doors = append(doors, Door{Type: t, Description: doorDescription(t)})
	}

	rng.Shuffle(src, len(doors), func(i, j int) {
		doors[i], doors[j] = doors[j], doors[i]
	})
	return doors
}
