package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mlevkov/blockfall/internal/game"
	"github.com/mlevkov/blockfall/internal/replay"
)

// playbackSpeeds are the selectable time multipliers.
var playbackSpeeds = []int{1, 2, 4, 8}

// PlaybackModel replays a recorded game frame by frame.
type PlaybackModel struct {
	rules    game.Rules
	runner   *replay.Runner
	name     string
	speedIdx int
	paused   bool
	quitting bool
}

// NewPlaybackModel creates a playback model over the given recording.
func NewPlaybackModel(rules game.Rules, data replay.Data, name string) (PlaybackModel, error) {
	runner, err := replay.NewRunner(rules, data)
	if err != nil {
		return PlaybackModel{}, err
	}
	return PlaybackModel{rules: rules, runner: runner, name: name}, nil
}

// Init starts the playback loop.
func (m PlaybackModel) Init() tea.Cmd {
	return tickCmd(m.interval())
}

func (m PlaybackModel) interval() time.Duration {
	return m.rules.DropInterval(m.runner.State().Level) / time.Duration(playbackSpeeds[m.speedIdx])
}

// Update handles messages.
func (m PlaybackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		case "p", " ":
			m.paused = !m.paused
			if !m.paused {
				return m, tickCmd(m.interval())
			}
			return m, nil
		case "+", "=", "f":
			if m.speedIdx < len(playbackSpeeds)-1 {
				m.speedIdx++
			}
			return m, nil
		case "-", "_":
			if m.speedIdx > 0 {
				m.speedIdx--
			}
			return m, nil
		}
		return m, nil

	case TickMsg:
		if m.paused || m.runner.Done() {
			return m, nil
		}
		m.runner.StepFrame()
		if m.runner.Done() {
			return m, nil
		}
		return m, tickCmd(m.interval())
	}
	return m, nil
}

// View renders the replayed state with a playback status line.
func (m PlaybackModel) View() string {
	if m.quitting {
		return ""
	}

	s := m.runner.State()
	view := RenderGame(s, 0)

	status := labelStyle.Render("Replay ") + valueStyle.Render(m.name)
	if playbackSpeeds[m.speedIdx] != 1 {
		status += labelStyle.Render(fmt.Sprintf("  %dx", playbackSpeeds[m.speedIdx]))
	}
	switch {
	case m.runner.Done():
		status += bannerStyle.Render("  finished") + helpStyle.Render("  q quit")
	case m.paused:
		status += bannerStyle.Render("  paused") + helpStyle.Render("  p resume")
	default:
		status += helpStyle.Render("  p pause · +/- speed · q quit")
	}
	return lipgloss.JoinVertical(lipgloss.Left, view, status)
}

// RunPlayback plays a recording in the current terminal.
func RunPlayback(rules game.Rules, data replay.Data, name string) error {
	model, err := NewPlaybackModel(rules, data, name)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
