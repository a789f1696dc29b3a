package replay

import (
	"time"

	"github.com/mlevkov/blockfall/internal/game"
)

// Recorder builds replay data incrementally during a live game. The caller
// feeds it every transition it performs; the recorder keeps only what is
// needed to reproduce the run: accepted player inputs and spawn draws.
// Rejected no-op commands are not recorded.
type Recorder struct {
	data      Data
	sawSpawns bool
}

// NewRecorder starts a recording for a board of the given dimensions.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		data: Data{
			Version:     Version,
			RecordedAt:  time.Now().Unix(),
			BoardWidth:  width,
			BoardHeight: height,
		},
	}
}

// Record observes one transition: the command applied, the frame it was
// applied at, and the events it produced. Gravity ticks are reproduced from
// frame numbers alone, so only non-Tick commands become input entries, and
// only when the transition accepted them (emitted at least one event).
// Spawn draws are recovered from PieceSpawned events: the first spawn of a
// game drew two shapes (active plus preview), every later spawn drew one.
func (r *Recorder) Record(cmd game.Command, frame uint64, events []game.Event) {
	if cmd != game.Tick && len(events) > 0 {
		r.data.Events = append(r.data.Events, InputEvent(cmd, frame))
	}
	for _, e := range events {
		spawned, ok := e.(game.PieceSpawned)
		if !ok {
			continue
		}
		if !r.sawSpawns {
			r.sawSpawns = true
			r.data.Events = append(r.data.Events, SpawnEvent(spawned.Piece.Shape, frame))
		}
		r.data.Events = append(r.data.Events, SpawnEvent(spawned.Next, frame))
	}
}

// RecordStart observes the initial spawn produced by Machine.NewGame.
func (r *Recorder) RecordStart(events []game.Event) {
	r.Record(game.Tick, 0, events)
}

// Finish stamps the recording with where the game stopped and its final
// totals, taken from the last simulation state.
func (r *Recorder) Finish(s game.State) {
	r.data.EndFrame = s.Frame
	r.data.FinalScore = s.Score
	r.data.FinalLines = s.Lines
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int {
	return len(r.data.Events)
}

// Data freezes the recording. The returned value is a copy; further
// recording does not affect it.
func (r *Recorder) Data() Data {
	d := r.data
	d.Events = make([]Event, len(r.data.Events))
	copy(d.Events, r.data.Events)
	return d
}
