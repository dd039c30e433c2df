package engine

import "github.com/cory-johannsen/labyrinth/internal/content"

// ItemKind identifies a carryable item. Items have no identity beyond their
// kind: the inventory is an insertion-ordered list of kinds.
type ItemKind string

// The two key kinds.
const (
	KeySilver ItemKind = "silver_key"
	KeyGold   ItemKind = "gold_key"
)

// Display returns the human-readable item name.
func (k ItemKind) Display() string {
	switch k {
	case KeySilver:
		return "Silver Key"
	case KeyGold:
		return "Gold Key"
	default:
		return string(k)
	}
}

// Run limits.
const (
	// RoomsPerLocation is the number of rooms in every location. Reaching it
	// triggers a location transition.
	RoomsPerLocation = 10
	// InventoryCapacity is the inventory slot limit.
	InventoryCapacity = 3
)

// State is the full game snapshot. It is immutable by convention: the engine
// mutates a private working copy and replaces its current state wholesale, so
// readers always observe a fully formed snapshot.
//
// Invariant: 0 <= LocationIndex; 0 <= RoomIndex <= RoomsPerLocation;
// len(Inventory) <= InventoryCapacity; Logs and Notes are append-only.
type State struct {
	// LocationIndex indexes the shuffled location sequence. The game is won
	// once it reaches the sequence length.
	LocationIndex int
	// RoomIndex counts rooms entered in the current location; resets to 0 on
	// every location transition.
	RoomIndex int
	// GoldBars is the currency total, incremented by opening gold doors.
	GoldBars int
	// Inventory is the insertion-ordered key list, capacity InventoryCapacity.
	Inventory []ItemKind
	// Notes holds every note found this run, in discovery order.
	Notes []content.Note
	// NotesFound counts discovered notes.
	NotesFound int
	// ActiveRiddle blocks room-description regeneration and new-room
	// transitions until answered. Nil when no riddle is pending.
	ActiveRiddle *content.Riddle
	// Doors are the choices available in the current room.
	Doors []Door
	// Logs is the append-only narrative trace.
	Logs []string
	// RoomDescription is the generated flavor text for the current room.
	RoomDescription string
	// Loading marks a transition in progress; cleared before the snapshot is
	// handed to the presentation layer.
	Loading bool
	// GameOver marks a terminal state. Further moves are no-ops.
	GameOver bool
	// GameWon marks a won run. Implies GameOver.
	GameWon bool
}

// Clone returns a deep copy of the state. Slices and the active riddle are
// copied so mutations of the clone never alias the original.
func (s State) Clone() State {
	out := s
	out.Inventory = append([]ItemKind(nil), s.Inventory...)
	out.Notes = append([]content.Note(nil), s.Notes...)
	out.Doors = append([]Door(nil), s.Doors...)
	out.Logs = append([]string(nil), s.Logs...)
	if s.ActiveRiddle != nil {
		riddle := *s.ActiveRiddle
		out.ActiveRiddle = &riddle
	}
	return out
}

// HasItem reports whether the inventory holds at least one item of the kind.
func (s State) HasItem(kind ItemKind) bool {
	for _, it := range s.Inventory {
		if it == kind {
			return true
		}
	}
	return false
}

// HasInventorySpace reports whether a free inventory slot exists.
func (s State) HasInventorySpace() bool {
	return len(s.Inventory) < InventoryCapacity
}

// AddItem appends an item if a slot is free. Adding to a full inventory is a
// no-op and returns false.
//
// Postcondition: len(s.Inventory) <= InventoryCapacity.
func (s *State) AddItem(kind ItemKind) bool {
	if !s.HasInventorySpace() {
		return false
	}
	s.Inventory = append(s.Inventory, kind)
	return true
}

// RemoveItem removes the first item of the given kind. Returns false when no
// such item is held.
func (s *State) RemoveItem(kind ItemKind) bool {
	for i, it := range s.Inventory {
		if it == kind {
			s.Inventory = append(s.Inventory[:i], s.Inventory[i+1:]...)
			return true
		}
	}
	return false
}

// addLog appends narrative lines to the log trace.
func (s *State) addLog(lines ...string) {
	s.Logs = append(s.Logs, lines...)
}
