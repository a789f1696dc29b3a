// Package replay records and re-simulates games. A replay is the pair of
// things live play cannot reproduce on its own: the frame-stamped player
// inputs and the sequence of shapes the machine drew. Feeding both back
// through the same state machine reproduces the original game bit-exactly.
package replay

import (
	"fmt"

	"github.com/mlevkov/blockfall/internal/game"
)

// Version is the current replay payload version.
const Version = 1

// Event kinds. The payload of an input event is a command wire name; the
// payload of a spawn event is a shape name.
const (
	KindInput = "input"
	KindSpawn = "spawn"
)

// Event is one entry in the replay log, a tagged {kind, frame, payload}
// envelope. Exactly one interpretation of the payload exists per kind, so no
// entry can be ambiguous or half-populated.
type Event struct {
	Kind    string `json:"kind"`
	Frame   uint64 `json:"frame"`
	Payload string `json:"payload"`
}

// InputEvent builds an input log entry.
func InputEvent(cmd game.Command, frame uint64) Event {
	return Event{Kind: KindInput, Frame: frame, Payload: cmd.String()}
}

// SpawnEvent builds a spawn log entry.
func SpawnEvent(shape game.Shape, frame uint64) Event {
	return Event{Kind: KindSpawn, Frame: frame, Payload: shape.String()}
}

// Command decodes the payload of an input event.
func (e Event) Command() (game.Command, error) {
	if e.Kind != KindInput {
		return 0, fmt.Errorf("replay: event kind %q has no command", e.Kind)
	}
	return game.ParseCommand(e.Payload)
}

// Shape decodes the payload of a spawn event.
func (e Event) Shape() (game.Shape, error) {
	if e.Kind != KindSpawn {
		return 0, fmt.Errorf("replay: event kind %q has no shape", e.Kind)
	}
	return game.ParseShape(e.Payload)
}

// Data is a complete recorded game: metadata plus the ordered event log.
// Frame numbers are non-decreasing across the sequence. EndFrame marks where
// the recording stopped; playback ticks up to it even after the last logged
// event, which is how the final gravity-driven lock and game over are
// reached (they draw no shape and so leave no spawn entry of their own).
type Data struct {
	Version     int     `json:"version"`
	RecordedAt  int64   `json:"recorded_at"` // unix seconds
	BoardWidth  int     `json:"board_width"`
	BoardHeight int     `json:"board_height"`
	EndFrame    uint64  `json:"end_frame"`
	FinalScore  int     `json:"final_score"`
	FinalLines  int     `json:"final_lines"`
	Events      []Event `json:"events"`
}

// Validate checks the structural invariants every replay must satisfy.
func (d Data) Validate() error {
	if d.Version != Version {
		return fmt.Errorf("%w: unsupported version %d", ErrMalformed, d.Version)
	}
	if d.BoardWidth <= 0 || d.BoardHeight <= 0 {
		return fmt.Errorf("%w: board dimensions %dx%d", ErrMalformed, d.BoardWidth, d.BoardHeight)
	}
	var prev uint64
	for i, e := range d.Events {
		switch e.Kind {
		case KindInput:
			if _, err := e.Command(); err != nil {
				return fmt.Errorf("%w: event %d: %v", ErrMalformed, i, err)
			}
		case KindSpawn:
			if _, err := e.Shape(); err != nil {
				return fmt.Errorf("%w: event %d: %v", ErrMalformed, i, err)
			}
		default:
			return fmt.Errorf("%w: event %d has unknown kind %q", ErrMalformed, i, e.Kind)
		}
		if e.Frame < prev {
			return fmt.Errorf("%w: event %d frame %d precedes frame %d", ErrMalformed, i, e.Frame, prev)
		}
		prev = e.Frame
	}
	if d.EndFrame < prev {
		return fmt.Errorf("%w: end frame %d precedes last event frame %d", ErrMalformed, d.EndFrame, prev)
	}
	return nil
}

// Spawns returns the recorded shape draws in order.
func (d Data) Spawns() []game.Shape {
	var out []game.Shape
	for _, e := range d.Events {
		if e.Kind != KindSpawn {
			continue
		}
		s, err := e.Shape()
		if err != nil {
			continue
		}
		out = append(out, s)
	}
	return out
}
