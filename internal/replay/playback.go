package replay

import (
	"fmt"

	"github.com/mlevkov/blockfall/internal/game"
)

// SpawnSource replays recorded shape draws in order, standing in for the
// live bag so the machine re-draws exactly what it drew the first time.
// A well-formed log holds every draw the re-simulation needs; if the log is
// exhausted anyway the final shape repeats, keeping Next total.
type SpawnSource struct {
	shapes []game.Shape
	i      int
}

// NewSpawnSource builds a source over the spawn entries of a replay.
func NewSpawnSource(d Data) *SpawnSource {
	return &SpawnSource{shapes: d.Spawns()}
}

// Next returns the next recorded shape.
func (s *SpawnSource) Next() game.Shape {
	if len(s.shapes) == 0 {
		return game.ShapeI
	}
	if s.i >= len(s.shapes) {
		return s.shapes[len(s.shapes)-1]
	}
	sh := s.shapes[s.i]
	s.i++
	return sh
}

// Exhausted reports whether every recorded draw has been consumed.
func (s *SpawnSource) Exhausted() bool {
	return s.i >= len(s.shapes)
}

// Runner re-drives the state machine from a replay log. Gravity is
// reconstructed from frame numbers: before an event recorded at frame f, the
// runner issues Tick commands until the simulation reaches frame f, then
// applies the event. Spawn entries need no action of their own; the machine
// consumes them through the substituted shape source.
type Runner struct {
	machine  *game.Machine
	state    game.State
	events   []Event
	endFrame uint64
	idx      int
}

// NewRunner validates the replay and prepares a run under the given rules.
// The rules' board dimensions must match the recording.
func NewRunner(rules game.Rules, d Data) (*Runner, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if rules.Width != d.BoardWidth || rules.Height != d.BoardHeight {
		return nil, fmt.Errorf("replay: rules board %dx%d does not match recording %dx%d",
			rules.Width, rules.Height, d.BoardWidth, d.BoardHeight)
	}
	m := game.NewMachine(rules, NewSpawnSource(d))
	state, _ := m.NewGame()
	r := &Runner{machine: m, state: state, events: d.Events, endFrame: d.EndFrame}
	r.skipConsumed()
	return r, nil
}

// State returns the current simulation state.
func (r *Runner) State() game.State {
	return r.state
}

// Done reports whether the run has finished: the game ended, or the log is
// drained and the simulation has caught up to the recording's end frame.
func (r *Runner) Done() bool {
	if r.state.Over {
		return true
	}
	return r.idx >= len(r.events) && r.state.Frame >= r.endFrame
}

// StepFrame advances the simulation by one frame: it applies every pending
// input recorded at the current frame, then issues one gravity tick. The
// returned events are the concatenated transition outputs, for observers
// that want to watch the replay unfold.
func (r *Runner) StepFrame() []game.Event {
	var out []game.Event

	for r.idx < len(r.events) && !r.state.Over {
		ev := r.events[r.idx]
		if ev.Frame > r.state.Frame {
			break
		}
		r.idx++
		if ev.Kind != KindInput {
			continue
		}
		cmd, err := ev.Command()
		if err != nil {
			continue // Validate rejected these before the run started
		}
		var evs []game.Event
		r.state, evs = r.machine.Apply(r.state, cmd)
		out = append(out, evs...)
	}

	if r.Done() {
		return out
	}

	var evs []game.Event
	r.state, evs = r.machine.Apply(r.state, game.Tick)
	out = append(out, evs...)
	r.skipConsumed()
	return out
}

// skipConsumed drops spawn entries already consumed by the machine: any
// spawn recorded at or before the current frame was drawn by the transition
// that just ran.
func (r *Runner) skipConsumed() {
	for r.idx < len(r.events) &&
		r.events[r.idx].Kind == KindSpawn &&
		r.events[r.idx].Frame <= r.state.Frame {
		r.idx++
	}
}

// Run drives the replay to completion and returns the final state.
func (r *Runner) Run() (game.State, error) {
	for !r.Done() {
		frame := r.state.Frame
		idx := r.idx
		r.StepFrame()
		if r.state.Frame == frame && r.idx == idx && !r.state.Over {
			return r.state, fmt.Errorf("replay: stalled at frame %d", frame)
		}
	}
	return r.state, nil
}
