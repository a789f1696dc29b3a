package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mlevkov/blockfall/internal/game"
)

// KeyAction classifies what a key press means to the play loop.
type KeyAction int

const (
	// KeyNone means the key is not bound to anything.
	KeyNone KeyAction = iota
	// KeyCommand means the key maps to a simulation command.
	KeyCommand
	// KeyQuit means the player wants to leave the program.
	KeyQuit
	// KeyRestart means the player wants a fresh game.
	KeyRestart
)

// KeyMapper translates Bubble Tea key messages to simulation commands.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message. The returned command is only meaningful
// when the action is KeyCommand.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (game.Command, KeyAction) {
	switch msg.String() {
	case "ctrl+c", "q":
		return 0, KeyQuit
	case "r":
		return 0, KeyRestart
	case "left", "h", "a":
		return game.MoveLeft, KeyCommand
	case "right", "l", "d":
		return game.MoveRight, KeyCommand
	case "down", "s":
		return game.SoftDrop, KeyCommand
	case " ":
		return game.HardDrop, KeyCommand
	case "up", "w", "x":
		return game.RotateCW, KeyCommand
	case "z":
		return game.RotateCCW, KeyCommand
	case "p", "esc":
		return game.TogglePause, KeyCommand
	}
	return 0, KeyNone
}
