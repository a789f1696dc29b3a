package game

import "fmt"

// Command is a single input to the state machine. Commands arrive through an
// ordered stream; exactly one is processed per Apply call.
type Command int

const (
	MoveLeft Command = iota
	MoveRight
	SoftDrop
	HardDrop
	RotateCW
	RotateCCW
	TogglePause
	Tick
)

// String returns the stable wire name of the command, used by the replay
// codec and the CLI.
func (c Command) String() string {
	switch c {
	case MoveLeft:
		return "move_left"
	case MoveRight:
		return "move_right"
	case SoftDrop:
		return "soft_drop"
	case HardDrop:
		return "hard_drop"
	case RotateCW:
		return "rotate_cw"
	case RotateCCW:
		return "rotate_ccw"
	case TogglePause:
		return "toggle_pause"
	case Tick:
		return "tick"
	default:
		return "unknown"
	}
}

// ParseCommand converts a wire name back to a Command.
func ParseCommand(s string) (Command, error) {
	switch s {
	case "move_left":
		return MoveLeft, nil
	case "move_right":
		return MoveRight, nil
	case "soft_drop":
		return SoftDrop, nil
	case "hard_drop":
		return HardDrop, nil
	case "rotate_cw":
		return RotateCW, nil
	case "rotate_ccw":
		return RotateCCW, nil
	case "toggle_pause":
		return TogglePause, nil
	case "tick":
		return Tick, nil
	default:
		return 0, fmt.Errorf("game: unknown command %q", s)
	}
}
