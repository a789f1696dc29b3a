package game

import "testing"

// queueSource feeds a fixed sequence of shapes, repeating the last one when
// the queue runs dry.
type queueSource struct {
	shapes []Shape
	i      int
}

func (q *queueSource) Next() Shape {
	if q.i >= len(q.shapes) {
		return q.shapes[len(q.shapes)-1]
	}
	s := q.shapes[q.i]
	q.i++
	return s
}

func newTestMachine(shapes ...Shape) *Machine {
	if len(shapes) == 0 {
		shapes = []Shape{ShapeI}
	}
	return NewMachine(testRules(), &queueSource{shapes: shapes})
}

func hasEvent(events []Event, match func(Event) bool) bool {
	for _, e := range events {
		if match(e) {
			return true
		}
	}
	return false
}

func TestNewGameSpawnsFirstPiece(t *testing.T) {
	m := newTestMachine(ShapeI, ShapeO)
	s, events := m.NewGame()

	if s.Active == nil {
		t.Fatal("new game should have an active piece")
	}
	if s.Active.Shape != ShapeI {
		t.Errorf("active shape = %v, want I", s.Active.Shape)
	}
	if s.Next != ShapeO {
		t.Errorf("next shape = %v, want O", s.Next)
	}
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	spawned, ok := events[0].(PieceSpawned)
	if !ok {
		t.Fatalf("event = %T, want PieceSpawned", events[0])
	}
	if spawned.Next != ShapeO {
		t.Errorf("spawn preview = %v, want O", spawned.Next)
	}
}

func TestMoveLeftUntilWallThenHardDrop(t *testing.T) {
	// 10-wide, 20-tall empty board, I piece at the default spawn column.
	// Five MoveLefts: the fifth is rejected at the wall. HardDrop locks the
	// piece at the leftmost reachable columns on the bottom row.
	m := newTestMachine(ShapeI, ShapeO, ShapeT)
	s, _ := m.NewGame()

	accepted := 0
	for i := 0; i < 5; i++ {
		var events []Event
		s, events = m.Apply(s, MoveLeft)
		if len(events) > 0 {
			accepted++
		}
	}
	if accepted != 4 {
		t.Errorf("accepted moves = %d, want 4 (fifth hits the wall)", accepted)
	}

	s, events := m.Apply(s, HardDrop)
	if !hasEvent(events, func(e Event) bool { _, ok := e.(PieceLocked); return ok }) {
		t.Fatal("hard drop should lock the piece")
	}

	for x := 0; x < 4; x++ {
		if !s.Board.Filled(x, 19) {
			t.Errorf("cell (%d,19) should hold the locked I piece", x)
		}
	}
	for x := 4; x < 10; x++ {
		if s.Board.Filled(x, 19) {
			t.Errorf("cell (%d,19) should be empty", x)
		}
	}
}

func TestRejectedMoveIsSilentNoOp(t *testing.T) {
	m := newTestMachine(ShapeI)
	s, _ := m.NewGame()

	// Drive the piece to the left wall.
	for i := 0; i < 10; i++ {
		s, _ = m.Apply(s, MoveLeft)
	}
	before := *s.Active

	s, events := m.Apply(s, MoveLeft)
	if len(events) != 0 {
		t.Errorf("rejected move emitted %d events, want 0", len(events))
	}
	if *s.Active != before {
		t.Error("rejected move changed the active piece")
	}
}

func TestRotationRejectedAtWall(t *testing.T) {
	m := newTestMachine(ShapeI)
	s, _ := m.NewGame()

	// Vertical I against the left wall cannot rotate back to horizontal
	// without kick resolution.
	s, events := m.Apply(s, RotateCW)
	if len(events) != 1 {
		t.Fatalf("initial rotation should be accepted, got %d events", len(events))
	}
	for i := 0; i < 10; i++ {
		s, _ = m.Apply(s, MoveLeft)
	}
	if s.Active.Pos.X != 0 {
		t.Fatalf("piece x = %d, want 0 at the wall", s.Active.Pos.X)
	}

	before := *s.Active
	s, events = m.Apply(s, RotateCW)
	if len(events) != 0 {
		t.Error("rotation against the wall should be silently rejected")
	}
	if *s.Active != before {
		t.Error("rejected rotation changed the active piece")
	}
}

func TestTickDescendsThenLocks(t *testing.T) {
	m := newTestMachine(ShapeO, ShapeO, ShapeO)
	s, _ := m.NewGame()

	startY := s.Active.Pos.Y
	s, events := m.Apply(s, Tick)
	if s.Active.Pos.Y != startY+1 {
		t.Errorf("tick should move the piece down one row")
	}
	if !hasEvent(events, func(e Event) bool { _, ok := e.(PieceMoved); return ok }) {
		t.Error("descending tick should emit PieceMoved")
	}

	// Tick to the floor; the tick after resting locks and respawns.
	locked := false
	for i := 0; i < 25 && !locked; i++ {
		s, events = m.Apply(s, Tick)
		locked = hasEvent(events, func(e Event) bool { _, ok := e.(PieceLocked); return ok })
	}
	if !locked {
		t.Fatal("piece never locked under gravity")
	}
	if !hasEvent(events, func(e Event) bool { _, ok := e.(PieceSpawned); return ok }) {
		t.Error("lock on an open board should spawn the next piece")
	}
	if s.Active == nil {
		t.Error("active piece should be replaced after lock")
	}
}

func TestFrameAdvancesOnlyOnTick(t *testing.T) {
	m := newTestMachine(ShapeO)
	s, _ := m.NewGame()

	s, _ = m.Apply(s, MoveLeft)
	s, _ = m.Apply(s, RotateCW)
	if s.Frame != 0 {
		t.Errorf("frame = %d after input commands, want 0", s.Frame)
	}

	s, _ = m.Apply(s, Tick)
	s, _ = m.Apply(s, Tick)
	if s.Frame != 2 {
		t.Errorf("frame = %d after two ticks, want 2", s.Frame)
	}

	s, _ = m.Apply(s, TogglePause)
	s, _ = m.Apply(s, Tick)
	if s.Frame != 2 {
		t.Errorf("frame advanced while paused: %d", s.Frame)
	}
}

func TestPauseBlocksEverythingButToggle(t *testing.T) {
	m := newTestMachine(ShapeO)
	s, _ := m.NewGame()

	s, events := m.Apply(s, TogglePause)
	if !hasEvent(events, func(e Event) bool { _, ok := e.(GamePaused); return ok }) {
		t.Fatal("TogglePause should emit GamePaused")
	}

	before := s
	s, events = m.Apply(s, Tick)
	if len(events) != 0 {
		t.Error("tick while paused should emit nothing")
	}
	if s.Active.Pos != before.Active.Pos || s.Score != before.Score {
		t.Error("tick while paused should not change the state")
	}
	s, events = m.Apply(s, MoveLeft)
	if len(events) != 0 {
		t.Error("movement while paused should emit nothing")
	}

	s, events = m.Apply(s, TogglePause)
	if !hasEvent(events, func(e Event) bool { _, ok := e.(GameResumed); return ok }) {
		t.Fatal("second TogglePause should emit GameResumed")
	}

	y := s.Active.Pos.Y
	s, _ = m.Apply(s, Tick)
	if s.Active.Pos.Y != y+1 {
		t.Error("gravity should resume after unpause")
	}
}

// dropPiece hard-drops the active piece after shifting it dx columns.
func dropPiece(t *testing.T, m *Machine, s State, dx int) State {
	t.Helper()
	cmd := MoveRight
	steps := dx
	if dx < 0 {
		cmd = MoveLeft
		steps = -dx
	}
	for i := 0; i < steps; i++ {
		s, _ = m.Apply(s, cmd)
	}
	s, _ = m.Apply(s, HardDrop)
	return s
}

func TestLineClearScoringAndLevel(t *testing.T) {
	// Five O pieces fill rows 18 and 19 on a 10-wide board.
	m := newTestMachine(ShapeO, ShapeO, ShapeO, ShapeO, ShapeO, ShapeO, ShapeO)
	s, _ := m.NewGame()

	// O at spawn covers columns 5,6. Place pairs at 0,2,4,6,8.
	offsets := []int{-5, -3, -1, 1, 3}
	var lastEvents []Event
	for i, dx := range offsets {
		cmd := MoveRight
		steps := dx
		if dx < 0 {
			cmd = MoveLeft
			steps = -dx
		}
		for j := 0; j < steps; j++ {
			s, _ = m.Apply(s, cmd)
		}
		s, lastEvents = m.Apply(s, HardDrop)
		if i < len(offsets)-1 && hasEvent(lastEvents, func(e Event) bool { _, ok := e.(LinesCleared); return ok }) {
			t.Fatalf("premature line clear at piece %d", i)
		}
	}

	var clearedEvent LinesCleared
	found := false
	for _, e := range lastEvents {
		if lc, ok := e.(LinesCleared); ok {
			clearedEvent = lc
			found = true
		}
	}
	if !found {
		t.Fatal("fifth O piece should complete two rows")
	}
	if clearedEvent.Count != 2 {
		t.Errorf("cleared count = %d, want 2", clearedEvent.Count)
	}
	if clearedEvent.ScoreGained != 300 {
		t.Errorf("score gained = %d, want the double reward 300", clearedEvent.ScoreGained)
	}
	if s.Score != 300 || s.Lines != 2 {
		t.Errorf("score/lines = %d/%d, want 300/2", s.Score, s.Lines)
	}
	if s.Level != 0 {
		t.Errorf("level = %d, want 0 below the threshold", s.Level)
	}
}

func TestGameOverOnBlockedSpawn(t *testing.T) {
	// Stack I pieces vertically in the spawn columns until one cannot spawn.
	m := newTestMachine(ShapeO)
	s, _ := m.NewGame()

	over := false
	var events []Event
	for i := 0; i < 60 && !over; i++ {
		s, events = m.Apply(s, HardDrop)
		over = s.Over
	}
	if !over {
		t.Fatal("stacking in place should eventually end the game")
	}
	if s.Active != nil {
		t.Error("no active piece after game over")
	}
	if !hasEvent(events, func(e Event) bool { _, ok := e.(GameOver); return ok }) {
		t.Error("final transition should emit GameOver")
	}

	// Terminal state: every further command is a no-op.
	before := s
	for _, cmd := range []Command{Tick, MoveLeft, HardDrop, TogglePause} {
		var evs []Event
		s, evs = m.Apply(s, cmd)
		if len(evs) != 0 {
			t.Errorf("command %v after game over emitted events", cmd)
		}
	}
	if s.Score != before.Score || s.Frame != before.Frame {
		t.Error("state changed after game over")
	}
}

func TestScoreAndLinesMonotonic(t *testing.T) {
	m := NewMachine(testRules(), NewBagSource(7))
	s, _ := m.NewGame()

	prevScore, prevLines := 0, 0
	for i := 0; i < 2000 && !s.Over; i++ {
		cmd := Tick
		switch i % 7 {
		case 1:
			cmd = MoveLeft
		case 3:
			cmd = MoveRight
		case 5:
			cmd = RotateCW
		}
		s, _ = m.Apply(s, cmd)
		if s.Score < prevScore {
			t.Fatalf("score decreased at step %d", i)
		}
		if s.Lines < prevLines {
			t.Fatalf("lines decreased at step %d", i)
		}
		if s.Level != m.Rules().LevelFor(s.Lines) {
			t.Fatalf("level %d does not match lines %d at step %d", s.Level, s.Lines, i)
		}
		prevScore, prevLines = s.Score, s.Lines
	}
}
