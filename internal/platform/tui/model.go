package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mlevkov/blockfall/internal/game"
	"github.com/mlevkov/blockfall/internal/replay"
	"github.com/mlevkov/blockfall/internal/storage"
)

// Model is the Bubble Tea model for a live game. It owns the state machine,
// records every accepted command for replay, and persists the result when
// the game ends.
type Model struct {
	rules     game.Rules
	machine   *game.Machine
	state     game.State
	recorder  *replay.Recorder
	store     *storage.Store
	keys      *KeyMapper
	seed      int64
	highScore int
	quitting  bool
	saved     bool
}

// NewModel creates a play model. A zero seed picks a time-based one.
func NewModel(rules game.Rules, store *storage.Store, seed int64) Model {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	m := Model{
		rules: rules,
		store: store,
		keys:  NewKeyMapper(),
		seed:  seed,
	}
	m.startGame(seed)

	if store != nil {
		if hs, err := store.HighScore(); err == nil {
			m.highScore = hs
		}
	}
	return m
}

// startGame resets the machine, state and recorder for a fresh game.
func (m *Model) startGame(seed int64) {
	m.machine = game.NewMachine(m.rules, game.NewBagSource(seed))
	m.recorder = replay.NewRecorder(m.rules.Width, m.rules.Height)
	m.seed = seed
	m.saved = false

	var events []game.Event
	m.state, events = m.machine.NewGame()
	m.recorder.RecordStart(events)
}

// Init starts the gravity loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.rules.DropInterval(m.state.Level))
}

// Update handles messages and advances the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, action := m.keys.MapKey(msg)
	switch action {
	case KeyQuit:
		m.quitting = true
		return m, tea.Quit
	case KeyRestart:
		if m.state.Over {
			m.startGame(time.Now().UnixNano())
			return m, tickCmd(m.rules.DropInterval(m.state.Level))
		}
		return m, nil
	case KeyCommand:
		var events []game.Event
		m.state, events = m.machine.Apply(m.state, cmd)
		m.recorder.Record(cmd, m.state.Frame, events)
		m.checkGameOver()
		return m, nil
	}
	return m, nil
}

// handleTick advances gravity by one frame and schedules the next tick at
// the current level's interval.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.state.Over {
		return m, nil
	}
	if m.state.Paused {
		// Keep the loop alive so gravity resumes after unpause.
		return m, tickCmd(m.rules.DropInterval(m.state.Level))
	}

	var events []game.Event
	m.state, events = m.machine.Apply(m.state, game.Tick)
	m.recorder.Record(game.Tick, m.state.Frame, events)
	m.checkGameOver()

	if m.state.Over {
		return m, nil
	}
	return m, tickCmd(m.rules.DropInterval(m.state.Level))
}

// checkGameOver persists the score and replay once when the game ends.
func (m *Model) checkGameOver() {
	if !m.state.Over || m.saved {
		return
	}
	m.saved = true
	m.recorder.Finish(m.state)

	if m.state.Score > m.highScore {
		m.highScore = m.state.Score
	}
	if m.store == nil {
		return
	}

	//nolint:errcheck // Best-effort save, the final screen shows the result anyway
	m.store.SaveScore(m.state.Score, m.state.Lines, m.state.Level)

	if text, err := replay.Encode(m.recorder.Data()); err == nil {
		name := fmt.Sprintf("game %s", time.Now().Format("2006-01-02 15:04"))
		//nolint:errcheck // Best-effort save
		m.store.SaveReplay(name, m.state.Score, m.state.Lines, m.state.Frame, []byte(text))
	}
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderGame(m.state, m.highScore)
}

// Run starts an interactive game in the current terminal.
func Run(rules game.Rules, store *storage.Store, seed int64) error {
	p := tea.NewProgram(
		NewModel(rules, store, seed),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
