// Package tui provides the bubbletea console presentation for the labyrinth.
// It reads engine snapshots through a session and never mutates game state
// except through the two player actions, SelectDoor and SubmitRiddleAnswer.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cory-johannsen/labyrinth/internal/config"
	"github.com/cory-johannsen/labyrinth/internal/game/engine"
	"github.com/cory-johannsen/labyrinth/internal/game/session"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true)

	descriptionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#EEEEEE")).
				PaddingLeft(1).
				PaddingRight(1)

	doorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	lockedDoorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#C0C0C0"))

	goldDoorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))

	logStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(1).
			Foreground(lipgloss.Color("#999999"))

	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF7F")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Italic(true)
)

// typeTickMsg advances the typewriter by one rune.
type typeTickMsg struct{}

// Model is the bubbletea model for one game run.
type Model struct {
	sess  *session.Session
	cfg   config.ConsoleConfig
	state engine.State

	typewriter Typewriter
	answer     textinput.Model

	width  int
	height int
}

// NewModel creates a TUI model over an already-initialized session.
//
// Precondition: sess must have a successfully initialized game.
func NewModel(sess *session.Session, cfg config.ConsoleConfig) Model {
	ti := textinput.New()
	ti.Placeholder = "your answer..."
	ti.CharLimit = 80
	ti.Width = 40

	st := sess.State()
	return Model{
		sess:       sess,
		cfg:        cfg,
		state:      st,
		typewriter: NewTypewriter(st.RoomDescription),
		answer:     ti,
	}
}

// Init starts the typewriter ticker.
func (m Model) Init() tea.Cmd {
	return m.typeTick()
}

func (m Model) typeTick() tea.Cmd {
	return tea.Tick(m.cfg.TypewriterDelay, func(time.Time) tea.Msg {
		return typeTickMsg{}
	})
}

// applyState swaps in a new snapshot, restarting the typewriter when the
// room description changed.
func (m Model) applyState(st engine.State) (Model, tea.Cmd) {
	prev := m.state
	m.state = st

	if st.ActiveRiddle != nil && prev.ActiveRiddle == nil {
		m.answer.Reset()
		m.answer.Focus()
	}
	if st.ActiveRiddle == nil {
		m.answer.Blur()
	}

	if st.RoomDescription != m.typewriter.Text() {
		m.typewriter = NewTypewriter(st.RoomDescription)
		return m, m.typeTick()
	}
	return m, nil
}

// Update handles key and tick messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case typeTickMsg:
		if m.typewriter.Done() {
			return m, nil
		}
		m.typewriter = m.typewriter.Advance()
		return m, m.typeTick()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			if m.state.ActiveRiddle != nil {
				answer := m.answer.Value()
				m.answer.Reset()
				return m.dispatch(m.sess.SubmitRiddleAnswer(answer))
			}
			return m, nil
		}

		// While a riddle is active, all other keys feed the answer input.
		if m.state.ActiveRiddle != nil {
			var cmd tea.Cmd
			m.answer, cmd = m.answer.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "q":
			return m, tea.Quit
		case " ":
			m.typewriter = m.typewriter.Skip()
			return m, nil
		case "1", "2", "3", "4":
			if m.state.GameOver {
				return m, nil
			}
			index := int(msg.String()[0] - '1')
			return m.dispatch(m.sess.SelectDoor(index))
		}
	}

	return m, nil
}

func (m Model) dispatch(st engine.State) (tea.Model, tea.Cmd) {
	next, cmd := m.applyState(st)
	return next, cmd
}

// View renders the full game screen.
func (m Model) View() string {
	var b strings.Builder

	location := m.sess.CurrentLocationName()
	if location == "" {
		location = "The Labyrinth"
	}
	header := fmt.Sprintf("%s — level %d, room %d/%d",
		location, m.state.LocationIndex+1, m.state.RoomIndex, engine.RoomsPerLocation)
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	b.WriteString(descriptionStyle.Render(m.typewriter.View()))
	b.WriteString("\n\n")

	if m.state.GameWon {
		b.WriteString(bannerStyle.Render(fmt.Sprintf(
			"YOU ESCAPED! Notes found: %d · Gold bars: %d",
			m.state.NotesFound, m.state.GoldBars)))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("press q to leave"))
		return b.String()
	}

	if m.state.ActiveRiddle != nil {
		b.WriteString(doorStyle.Render("Riddle: " + m.state.ActiveRiddle.Question))
		b.WriteString("\n")
		b.WriteString(m.answer.View())
		b.WriteString("\n\n")
	} else {
		for i, door := range m.state.Doors {
			style := doorStyle
			switch door.Type {
			case engine.DoorSilver:
				style = lockedDoorStyle
			case engine.DoorGold:
				style = goldDoorStyle
			}
			b.WriteString(style.Render(fmt.Sprintf("  [%d] %s", i+1, door.Description)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(statusStyle.Render(m.statusLine()))
	b.WriteString("\n\n")

	b.WriteString(logStyle.Render(strings.Join(m.logTail(), "\n")))
	b.WriteString("\n\n")

	if m.state.ActiveRiddle != nil {
		b.WriteString(helpStyle.Render("enter: answer · esc: quit"))
	} else {
		b.WriteString(helpStyle.Render("1-4: choose a door · space: skip text · q: quit"))
	}
	return b.String()
}

func (m Model) statusLine() string {
	items := make([]string, 0, len(m.state.Inventory))
	for _, kind := range m.state.Inventory {
		items = append(items, kind.Display())
	}
	inventory := "empty"
	if len(items) > 0 {
		inventory = strings.Join(items, ", ")
	}
	return fmt.Sprintf("Inventory (%d/%d): %s · Gold bars: %d · Notes: %d",
		len(m.state.Inventory), engine.InventoryCapacity,
		inventory, m.state.GoldBars, m.state.NotesFound)
}

// logTail returns the last cfg.LogLines journal entries.
func (m Model) logTail() []string {
	n := m.cfg.LogLines
	if n <= 0 || n > len(m.state.Logs) {
		n = len(m.state.Logs)
	}
	return m.state.Logs[len(m.state.Logs)-n:]
}
