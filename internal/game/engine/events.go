package engine

import "fmt"

// Event probabilities. One roll in [0,1) is dispatched over cumulative
// half-open bands in priority order: note, item, riddle. The remainder of
// the interval yields no event.
const (
	baseNoteChance   = 0.40
	baseItemChance   = 0.25
	baseRiddleChance = 0.10

	// Bonuses applied when the gating door is silver.
	silverItemBonus   = 0.15
	silverRiddleBonus = 0.05

	// Gold-key odds inside the item band.
	baseGoldKeyChance   = 0.20
	silverGoldKeyChance = 0.40

	notePreviewLen = 30
)

// resolveEvents rolls the post-move random event for a freshly generated
// room. The gating door is the first door of the NEW set, not the door the
// player walked through.
//
// A roll landing in the note band with an empty note pool yields no event at
// all: the band is consumed, later bands are not considered. Same for the
// riddle band. The item band instead logs an inventory-full message when no
// slot is free.
func (e *Engine) resolveEvents(s *State, gate Door) {
	roll := e.src.Float64()

	noteChance := baseNoteChance
	itemChance := baseItemChance
	riddleChance := baseRiddleChance
	if gate.Type == DoorSilver {
		itemChance += silverItemBonus
		riddleChance += silverRiddleBonus
	}

	switch {
	case roll < noteChance:
		if len(e.notes) == 0 {
			return
		}
		note := e.notes[0]
		e.notes = e.notes[1:]
		s.Notes = append(s.Notes, note)
		s.NotesFound++
		s.addLog(fmt.Sprintf("A note lies on the floor: %q", note.Preview(notePreviewLen)))
		s.addLog(fmt.Sprintf("[*] Notes found: %d", s.NotesFound))
		e.notifier.NoteFound(note)

	case roll < noteChance+itemChance:
		if s.HasInventorySpace() {
			kind := e.randomItem(gate.Type == DoorSilver)
			s.AddItem(kind)
			s.addLog(fmt.Sprintf("You found: %s", kind.Display()))
		} else {
			s.addLog("You found a key, but your inventory is full!")
		}

	case roll < noteChance+itemChance+riddleChance:
		if len(e.riddles) == 0 {
			return
		}
		riddle := e.riddles[0]
		e.riddles = e.riddles[1:]
		s.ActiveRiddle = &riddle
		s.addLog(
			"",
			"A riddlekeeper bars your path!",
			"Riddle: "+riddle.Question,
			"",
		)
		e.notifier.RiddleEncountered(riddle)
	}
}

// randomItem draws the kind of a discovered key. Gold keys are more likely
// behind a silver gating door.
func (e *Engine) randomItem(silverGate bool) ItemKind {
	goldChance := baseGoldKeyChance
	if silverGate {
		goldChance = silverGoldKeyChance
	}
	if e.src.Float64() < goldChance {
		return KeyGold
	}
	return KeySilver
}
