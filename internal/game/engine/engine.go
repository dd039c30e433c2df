// Package engine implements the game progression engine for the labyrinth:
// a deterministic state machine that owns the run state, generates doors,
// resolves key requirements and random events, tracks the win condition, and
// answers riddles. All randomness routes through an rng.Source; all content
// comes from a content.Store; the presentation layer observes runs through
// returned State snapshots and a Notifier.
//
// The engine is single-writer and not safe for concurrent use; the session
// package provides the serialization boundary.
package engine

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/labyrinth/internal/content"
	"github.com/cory-johannsen/labyrinth/internal/game/rng"
)

// ErrNoActiveRiddle is reported when an answer is submitted with no riddle pending.
var ErrNoActiveRiddle = errors.New("engine: no active riddle")

// ErrInvalidDoor is reported when a door index falls outside the current set.
var ErrInvalidDoor = errors.New("engine: door index out of range")

// Engine drives one game run. Construct with NewEngine, then call
// InitializeGame once before any move.
type Engine struct {
	store    content.Store
	src      rng.Source
	logger   *zap.Logger
	notifier Notifier

	// Per-run content. Locations are fixed after the initial shuffle;
	// riddle and note pools shrink as events draw from them.
	locations []content.Location
	riddles   []content.Riddle
	notes     []content.Note

	state State
}

// NewEngine creates an Engine drawing content from store and randomness from src.
//
// Precondition: store and src must be non-nil. A nil logger or notifier is
// replaced with a no-op implementation.
func NewEngine(store content.Store, src rng.Source, logger *zap.Logger, notifier Notifier) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Engine{
		store:    store,
		src:      src,
		logger:   logger,
		notifier: notifier,
	}
}

// State returns a snapshot of the current game state.
func (e *Engine) State() State {
	return e.state.Clone()
}

// LocationCount returns the number of locations in this run.
func (e *Engine) LocationCount() int {
	return len(e.locations)
}

// CurrentLocation returns the location the player is in, or false once the
// index has moved past the final location.
func (e *Engine) CurrentLocation() (content.Location, bool) {
	if e.state.LocationIndex < 0 || e.state.LocationIndex >= len(e.locations) {
		return content.Location{}, false
	}
	return e.locations[e.state.LocationIndex], true
}

// InitializeGame loads content, shuffles the location order, and produces the
// initial state. Content failures are fatal: no partial state is produced and
// the call is not retried.
//
// Postcondition: on success the engine holds a playable state with generated
// doors and a room description, and GameInitialized has been notified.
func (e *Engine) InitializeGame(ctx context.Context) (State, error) {
	locations, err := e.store.LoadLocations(ctx)
	if err != nil {
		e.notifier.ErrorOccurred(err)
		return State{}, fmt.Errorf("loading locations: %w", err)
	}
	riddles, err := e.store.LoadRiddles(ctx)
	if err != nil {
		e.notifier.ErrorOccurred(err)
		return State{}, fmt.Errorf("loading riddles: %w", err)
	}
	notes, err := e.store.LoadNotes(ctx)
	if err != nil {
		e.notifier.ErrorOccurred(err)
		return State{}, fmt.Errorf("loading notes: %w", err)
	}
	if len(locations) == 0 {
		e.notifier.ErrorOccurred(content.ErrNoLocations)
		return State{}, content.ErrNoLocations
	}

	e.locations = append([]content.Location(nil), locations...)
	e.riddles = append([]content.Riddle(nil), riddles...)
	e.notes = append([]content.Note(nil), notes...)

	// Per-run permutation of the location order.
	rng.Shuffle(e.src, len(e.locations), func(i, j int) {
		e.locations[i], e.locations[j] = e.locations[j], e.locations[i]
	})

	var s State
	s.addLog(
		"Welcome to the Labyrinth!",
		"Choose a door to begin your descent.",
	)
	s.Doors = GenerateDoors(e.src)
	e.describeRoom(&s)

	e.state = s

	e.logger.Info("game initialized",
		zap.Int("locations", len(e.locations)),
		zap.Int("riddles", len(e.riddles)),
		zap.Int("notes", len(e.notes)),
	)
	e.notifier.GameInitialized(e.State())
	return e.State(), nil
}

// SelectDoor processes one move through the door at index and returns the
// resulting snapshot. On a terminal state the call is an idempotent no-op.
func (e *Engine) SelectDoor(index int) State {
	next := e.processMove(e.state, index)
	e.state = next
	e.notifier.StateChanged(e.State())
	return e.State()
}

// processMove is the central state-transition function: one atomic update per
// player action, composing key-requirement checks, room advancement, location
// transitions, the win check, door generation, and event resolution.
func (e *Engine) processMove(cur State, doorIndex int) State {
	if cur.GameOver {
		return cur
	}

	next := cur.Clone()
	next.Loading = true

	if doorIndex < 0 || doorIndex >= len(next.Doors) {
		next.addLog("ERROR: invalid door choice")
		next.Loading = false
		e.notifier.ErrorOccurred(ErrInvalidDoor)
		return next
	}

	door := next.Doors[doorIndex]
	if !e.processKeyRequirement(&next, door) {
		// Locked out: same room, same doors, only the log grew.
		next.Loading = false
		return next
	}

	next.RoomIndex++
	next.addLog(fmt.Sprintf("You enter room %d/%d", next.RoomIndex, RoomsPerLocation))
	e.logger.Debug("move accepted",
		zap.String("door", string(door.Type)),
		zap.Int("location", next.LocationIndex),
		zap.Int("room", next.RoomIndex),
	)

	if next.RoomIndex >= RoomsPerLocation {
		e.transitionLocation(&next)
		next.Doors = GenerateDoors(e.src)
		e.describeRoom(&next)
		e.resolveEvents(&next, next.Doors[0])
		next.Loading = false
		return next
	}

	// The win check runs only on non-transition moves: clearing the final
	// location is detected one move after crossing its boundary.
	if e.checkWinCondition(next) {
		next.GameWon = true
		next.GameOver = true
		e.logger.Info("game won",
			zap.Int("notes_found", next.NotesFound),
			zap.Int("gold_bars", next.GoldBars),
		)
		e.notifier.GameWon(next.NotesFound, next.GoldBars)
		return next
	}

	next.Doors = GenerateDoors(e.src)
	e.resolveEvents(&next, next.Doors[0])
	if next.ActiveRiddle != nil {
		// Description stays frozen while a riddle blocks the room.
		next.Loading = false
		return next
	}
	e.describeRoom(&next)

	next.Loading = false
	return next
}

// processKeyRequirement resolves the chosen door's key demand against the
// inventory. Locked doors are a normal outcome, not an error: the log records
// the attempt and the move is rejected.
func (e *Engine) processKeyRequirement(s *State, door Door) bool {
	switch door.Type {
	case DoorSilver:
		if !s.HasItem(KeySilver) {
			s.addLog("The door is locked! A silver key is required.")
			return false
		}
		s.RemoveItem(KeySilver)
		s.addLog("You unlock the silver door!")
		return true

	case DoorGold:
		if !s.HasItem(KeyGold) {
			s.addLog("The door is locked! A gold key is required.")
			return false
		}
		s.RemoveItem(KeyGold)
		s.GoldBars++
		s.addLog("You unlock the gold door!")
		s.addLog(fmt.Sprintf("Gold bars: %d", s.GoldBars))
		return true

	default:
		s.addLog("You pass through an ordinary door.")
		return true
	}
}

// transitionLocation advances to the next location and resets the room
// counter. The win condition is NOT checked here; see processMove.
func (e *Engine) transitionLocation(s *State) {
	s.LocationIndex++
	s.RoomIndex = 0
	s.addLog(
		"",
		"========================================",
		fmt.Sprintf("  LOCATION CLEARED! Level %d complete", s.LocationIndex),
		"========================================",
		"",
	)
	e.logger.Debug("location transition", zap.Int("location", s.LocationIndex))
}

// checkWinCondition reports whether the run is complete: the location index
// has moved past the final location.
func (e *Engine) checkWinCondition(s State) bool {
	return s.LocationIndex >= len(e.locations)
}

// SubmitRiddleAnswer validates an answer against the active riddle. Correct
// answers grant a gold key when a slot is free; the riddle is cleared whether
// or not the answer was right, and the suppressed room description is then
// regenerated.
func (e *Engine) SubmitRiddleAnswer(answer string) State {
	if e.state.ActiveRiddle == nil {
		next := e.state.Clone()
		next.addLog("ERROR: no active riddle")
		e.state = next
		e.notifier.ErrorOccurred(ErrNoActiveRiddle)
		e.notifier.StateChanged(e.State())
		return e.State()
	}

	next := e.state.Clone()
	riddle := *next.ActiveRiddle

	if riddle.Matches(answer) {
		next.addLog(
			"========================================",
			"  CORRECT! The riddle is solved!",
			"========================================",
		)
		if next.AddItem(KeyGold) {
			next.addLog("You received: Gold Key")
		} else {
			next.addLog("Inventory full! The gold key is lost.")
		}
	} else {
		next.addLog(
			"========================================",
			"  WRONG!",
			"========================================",
			fmt.Sprintf("The correct answer was: %s", riddle.Answer),
		)
	}

	next.ActiveRiddle = nil
	e.describeRoom(&next)

	e.state = next
	e.logger.Debug("riddle answered", zap.Int("riddle_id", riddle.ID))
	e.notifier.StateChanged(e.State())
	return e.State()
}

// describeRoom regenerates the room description for the current location.
// Past the final location there is nothing left to describe.
func (e *Engine) describeRoom(s *State) {
	if s.LocationIndex < len(e.locations) {
		s.RoomDescription = DescribeRoom(e.src, e.locations[s.LocationIndex].Theme)
	}
}
