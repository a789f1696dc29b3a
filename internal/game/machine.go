package game

// State is the complete simulation state of one game. It is created by
// Machine.NewGame, mutated exclusively through Machine.Apply, and owns its
// board and active piece (no sharing).
//
// Score and Lines are monotonically non-decreasing; Level is always
// Lines / LinesPerLevel; Frame never decreases.
type State struct {
	Board  Board
	Active *Piece // nil before the first spawn and after game over
	Next   Shape  // shape that will spawn after the active piece locks
	Score  int
	Lines  int
	Level  int
	Paused bool
	Over   bool
	Frame  uint64
}

// Machine orchestrates board, piece and policy. Apply is a pure function of
// (state, command) plus, only at lock time, the next value drawn from the
// shape source: identical states, command streams and draws reproduce
// identical state sequences.
type Machine struct {
	rules  Rules
	shapes ShapeSource
}

// NewMachine creates a state machine with the given rules and shape source.
func NewMachine(rules Rules, shapes ShapeSource) *Machine {
	return &Machine{rules: rules, shapes: shapes}
}

// Rules returns the machine's tunables.
func (m *Machine) Rules() Rules {
	return m.rules
}

// NewGame creates the initial state: an empty board with the first piece
// spawned. Two shapes are drawn from the source, one for the active piece
// and one for the preview.
func (m *Machine) NewGame() (State, []Event) {
	s := State{Board: NewBoard(m.rules.Width, m.rules.Height)}
	first := m.shapes.Next()
	s.Next = m.shapes.Next()
	piece := Piece{Shape: first, Pos: m.rules.SpawnPosition()}
	if !s.Board.IsValidPosition(piece.Blocks()) {
		// Board too small to hold a spawn. Degenerate dimensions are
		// rejected by config validation, but a terminal state is still
		// well-defined here.
		s.Over = true
		return s, []Event{GameOver{FinalScore: 0}}
	}
	s.Active = &piece
	return s, []Event{PieceSpawned{Piece: piece, Next: s.Next}}
}

// Apply processes exactly one command and returns the next state with the
// ordered events the transition produced. It is total: illegal moves and
// paused-state commands are silent no-ops, never errors. A command either
// fully applies, including any cascading lock/clear/spawn/game-over
// sequence, or leaves the state untouched.
func (m *Machine) Apply(s State, cmd Command) (State, []Event) {
	if s.Over {
		return s, nil
	}
	if s.Paused && cmd != TogglePause {
		return s, nil
	}

	switch cmd {
	case TogglePause:
		s.Paused = !s.Paused
		if s.Paused {
			return s, []Event{GamePaused{}}
		}
		return s, []Event{GameResumed{}}

	case MoveLeft, MoveRight:
		if s.Active == nil {
			return s, nil
		}
		cand := s.Active.MoveLeft()
		if cmd == MoveRight {
			cand = s.Active.MoveRight()
		}
		if !s.Board.IsValidPosition(cand.Blocks()) {
			return s, nil
		}
		s.Active = &cand
		return s, []Event{PieceMoved{Piece: cand}}

	case RotateCW, RotateCCW:
		if s.Active == nil {
			return s, nil
		}
		cand := s.Active.RotateCW()
		if cmd == RotateCCW {
			cand = s.Active.RotateCCW()
		}
		if !s.Board.IsValidPosition(cand.Blocks()) {
			return s, nil
		}
		s.Active = &cand
		return s, []Event{PieceRotated{Piece: cand}}

	case SoftDrop:
		return m.descend(s)

	case Tick:
		s.Frame++
		return m.descend(s)

	case HardDrop:
		if s.Active == nil {
			return s, nil
		}
		piece := *s.Active
		for {
			down := piece.MoveDown()
			if !s.Board.IsValidPosition(down.Blocks()) {
				break
			}
			piece = down
		}
		return m.lock(s, piece)
	}

	return s, nil
}

// descend moves the active piece one cell down, locking it when it rests.
func (m *Machine) descend(s State) (State, []Event) {
	if s.Active == nil {
		return s, nil
	}
	down := s.Active.MoveDown()
	if s.Board.IsValidPosition(down.Blocks()) {
		s.Active = &down
		return s, []Event{PieceMoved{Piece: down}}
	}
	return m.lock(s, *s.Active)
}

// lock writes the piece into the board and runs the full lock sequence:
// clear lines, apply scoring, recompute level, spawn the next piece or end
// the game.
func (m *Machine) lock(s State, piece Piece) (State, []Event) {
	events := make([]Event, 0, 4)

	s.Board = s.Board.LockPiece(piece)
	s.Active = nil
	events = append(events, PieceLocked{Piece: piece})

	board, cleared := s.Board.ClearLines()
	if cleared > 0 {
		s.Board = board
		gained := m.rules.ScoreFor(cleared)
		s.Score += gained
		s.Lines += cleared
		events = append(events, LinesCleared{Count: cleared, ScoreGained: gained})

		if lvl := m.rules.LevelFor(s.Lines); lvl > s.Level {
			s.Level = lvl
			events = append(events, LevelUp{Level: lvl})
		}
	}

	spawn := Piece{Shape: s.Next, Pos: m.rules.SpawnPosition()}
	if !s.Board.IsValidPosition(spawn.Blocks()) {
		s.Over = true
		events = append(events, GameOver{FinalScore: s.Score})
		return s, events
	}

	s.Active = &spawn
	s.Next = m.shapes.Next()
	events = append(events, PieceSpawned{Piece: spawn, Next: s.Next})
	return s, events
}
