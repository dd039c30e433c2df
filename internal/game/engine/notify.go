package engine

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/labyrinth/internal/content"
)

// Notifier receives engine notifications. The presentation layer implements
// it to observe runs without the engine depending on any UI types. Every
// notification carries plain values or snapshots; callbacks must not block.
type Notifier interface {
	// GameInitialized fires once after a successful InitializeGame.
	GameInitialized(state State)
	// StateChanged fires after every accepted or rejected player action.
	StateChanged(state State)
	// ErrorOccurred reports a recoverable input error (invalid door index,
	// riddle answer with no active riddle).
	ErrorOccurred(err error)
	// NoteFound fires when a note is discovered.
	NoteFound(note content.Note)
	// RiddleEncountered fires when a riddle becomes active.
	RiddleEncountered(riddle content.Riddle)
	// GameWon fires once when the run reaches the won state.
	GameWon(notesFound, goldBars int)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) GameInitialized(State)            {}
func (NopNotifier) StateChanged(State)               {}
func (NopNotifier) ErrorOccurred(error)              {}
func (NopNotifier) NoteFound(content.Note)           {}
func (NopNotifier) RiddleEncountered(content.Riddle) {}
func (NopNotifier) GameWon(int, int)                 {}

// LogNotifier writes every notification to a zap logger. Used by the console
// client so runs leave a structured trace alongside the in-state log.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a LogNotifier writing to logger.
//
// Precondition: logger must be non-nil.
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) GameInitialized(state State) {
	n.logger.Info("game initialized", zap.Int("doors", len(state.Doors)))
}

func (n *LogNotifier) StateChanged(state State) {
	n.logger.Debug("state changed",
		zap.Int("location", state.LocationIndex),
		zap.Int("room", state.RoomIndex),
		zap.Bool("game_over", state.GameOver),
	)
}

func (n *LogNotifier) ErrorOccurred(err error) {
	n.logger.Warn("player input rejected", zap.Error(err))
}

func (n *LogNotifier) NoteFound(note content.Note) {
	n.logger.Info("note found", zap.Int("note_id", note.ID))
}

func (n *LogNotifier) RiddleEncountered(riddle content.Riddle) {
	n.logger.Info("riddle encountered",
		zap.Int("riddle_id", riddle.ID),
		zap.Int("difficulty", riddle.Difficulty),
	)
}

func (n *LogNotifier) GameWon(notesFound, goldBars int) {
	n.logger.Info("game won",
		zap.Int("notes_found", notesFound),
		zap.Int("gold_bars", goldBars),
	)
}
