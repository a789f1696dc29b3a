package game

// Event is a domain event produced by a transition. Events are outputs for
// observers (rendering, recording, scoring displays); they are never fed back
// into the machine.
type Event interface {
	isEvent()
}

// PieceMoved reports that the active piece translated to a new position.
type PieceMoved struct {
	Piece Piece
}

// PieceRotated reports that the active piece changed rotation.
type PieceRotated struct {
	Piece Piece
}

// PieceLocked reports that the active piece was written into the board.
type PieceLocked struct {
	Piece Piece
}

// LinesCleared reports rows removed by a lock and the score gained for them.
type LinesCleared struct {
	Count       int
	ScoreGained int
}

// LevelUp reports that the level increased after a line clear.
type LevelUp struct {
	Level int
}

// PieceSpawned reports a new active piece and the shape that will follow it.
type PieceSpawned struct {
	Piece Piece
	Next  Shape
}

// GameOver reports that a spawned piece did not fit; the game has ended.
type GameOver struct {
	FinalScore int
}

// GamePaused reports that the game entered the paused state.
type GamePaused struct{}

// GameResumed reports that the game left the paused state.
type GameResumed struct{}

func (PieceMoved) isEvent()   {}
func (PieceRotated) isEvent() {}
func (PieceLocked) isEvent()  {}
func (LinesCleared) isEvent() {}
func (LevelUp) isEvent()      {}
func (PieceSpawned) isEvent() {}
func (GameOver) isEvent()     {}
func (GamePaused) isEvent()   {}
func (GameResumed) isEvent()  {}
