// Package session provides the serialization boundary around game engines.
// The engine itself is single-writer and unsynchronized; a Session wraps one
// engine behind a mutex so every player action is one serialized, atomic
// transition, and a Manager tracks the live sessions by ID.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/cory-johannsen/labyrinth/internal/game/engine"
)

// Session owns one game run. All methods serialize on the session mutex, so
// concurrent callers always observe fully formed snapshots.
type Session struct {
	id string

	mu  sync.Mutex
	eng *engine.Engine
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// InitializeGame starts the run. See engine.Engine.InitializeGame.
func (s *Session) InitializeGame(ctx context.Context) (engine.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eng.InitializeGame(ctx)
}

// SelectDoor processes one move through the indexed door.
func (s *Session) SelectDoor(index int) engine.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eng.SelectDoor(index)
}

// SubmitRiddleAnswer answers the active riddle.
func (s *Session) SubmitRiddleAnswer(answer string) engine.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eng.SubmitRiddleAnswer(answer)
}

// State returns the current snapshot.
func (s *Session) State() engine.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eng.State()
}

// CurrentLocationName returns the display name of the player's location, or
// an empty string past the final location.
func (s *Session) CurrentLocationName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	loc, ok := s.eng.CurrentLocation()
	if !ok {
		return ""
	}
	return loc.Name
}

// Manager tracks all live sessions. All methods are safe for concurrent use.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager creates an empty session Manager.
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
	}
}

// Create registers a new session around eng and returns it.
//
// Precondition: eng must be non-nil and must not be shared with another session.
// Postcondition: the returned session has a unique ID and is retrievable via Get.
func (m *Manager) Create(eng *engine.Engine) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess := &Session{
		id:  uuid.New().String(),
		eng: eng,
	}
	m.sessions[sess.id] = sess
	return sess
}

// Get returns the session with the given ID.
//
// Postcondition: Returns the session, or an error if the ID is unknown.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sess, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %q not found", id)
	}
	return sess, nil
}

// Remove unregisters a session. Removing an unknown ID is a no-op.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
