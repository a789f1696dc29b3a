// Package tui provides the Bubble Tea integration for blockfall.
// It handles the terminal UI loop, input mapping, rendering and the
// SSH-served variant of the game.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a gravity tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that fires one tick after the given
// interval. The interval shrinks as the level rises, so the command is
// re-issued after every tick rather than using a fixed ticker.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
