package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mlevkov/blockfall/internal/game"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyCommands(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want game.Command
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, game.MoveLeft},
		{runeKey('h'), game.MoveLeft},
		{runeKey('a'), game.MoveLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, game.MoveRight},
		{runeKey('l'), game.MoveRight},
		{tea.KeyMsg{Type: tea.KeyDown}, game.SoftDrop},
		{runeKey('s'), game.SoftDrop},
		{tea.KeyMsg{Type: tea.KeySpace}, game.HardDrop},
		{tea.KeyMsg{Type: tea.KeyUp}, game.RotateCW},
		{runeKey('x'), game.RotateCW},
		{runeKey('z'), game.RotateCCW},
		{runeKey('p'), game.TogglePause},
		{tea.KeyMsg{Type: tea.KeyEsc}, game.TogglePause},
	}

	for _, tt := range tests {
		cmd, action := km.MapKey(tt.msg)
		if action != KeyCommand {
			t.Errorf("MapKey(%q) action = %v, want KeyCommand", tt.msg.String(), action)
			continue
		}
		if cmd != tt.want {
			t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), cmd, tt.want)
		}
	}
}

func TestMapKeySpecials(t *testing.T) {
	km := NewKeyMapper()

	if _, action := km.MapKey(runeKey('q')); action != KeyQuit {
		t.Errorf("q action = %v, want KeyQuit", action)
	}
	if _, action := km.MapKey(tea.KeyMsg{Type: tea.KeyCtrlC}); action != KeyQuit {
		t.Errorf("ctrl+c action = %v, want KeyQuit", action)
	}
	if _, action := km.MapKey(runeKey('r')); action != KeyRestart {
		t.Errorf("r action = %v, want KeyRestart", action)
	}
	if _, action := km.MapKey(runeKey('?')); action != KeyNone {
		t.Errorf("unbound key action = %v, want KeyNone", action)
	}
}
