package game

import "fmt"

// Shape identifies one of the seven tetromino kinds.
type Shape int8

const (
	ShapeI Shape = iota
	ShapeO
	ShapeT
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL
)

// ShapeCount is the number of distinct shapes.
const ShapeCount = 7

// baseBlocks holds the four block offsets of each shape at R0, relative to
// the piece's local origin. Blocks at every other rotation are derived by
// rotating these offsets; they are never stored.
var baseBlocks = [ShapeCount][4]Position{
	ShapeI: {{-1, 0}, {0, 0}, {1, 0}, {2, 0}},
	ShapeO: {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	ShapeT: {{-1, 0}, {0, 0}, {1, 0}, {0, -1}},
	ShapeS: {{0, 0}, {1, 0}, {-1, 1}, {0, 1}},
	ShapeZ: {{-1, 0}, {0, 0}, {0, 1}, {1, 1}},
	ShapeJ: {{-1, -1}, {-1, 0}, {0, 0}, {1, 0}},
	ShapeL: {{1, -1}, {-1, 0}, {0, 0}, {1, 0}},
}

// String returns the one-letter name of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeI:
		return "I"
	case ShapeO:
		return "O"
	case ShapeT:
		return "T"
	case ShapeS:
		return "S"
	case ShapeZ:
		return "Z"
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	default:
		return "?"
	}
}

// ParseShape converts a one-letter shape name back to a Shape.
func ParseShape(s string) (Shape, error) {
	switch s {
	case "I":
		return ShapeI, nil
	case "O":
		return ShapeO, nil
	case "T":
		return ShapeT, nil
	case "S":
		return ShapeS, nil
	case "Z":
		return ShapeZ, nil
	case "J":
		return ShapeJ, nil
	case "L":
		return ShapeL, nil
	default:
		return 0, fmt.Errorf("game: unknown shape %q", s)
	}
}

// Rotation is one of the four orthogonal piece orientations.
type Rotation int8

const (
	R0 Rotation = iota
	R90
	R180
	R270
)

// CW returns the next rotation clockwise. Four applications return the start.
func (r Rotation) CW() Rotation {
	return (r + 1) % 4
}

// CCW returns the next rotation counter-clockwise.
func (r Rotation) CCW() Rotation {
	return (r + 3) % 4
}

// rotate applies r quarter-turns clockwise to a block offset.
// In screen coordinates (Y down) one clockwise quarter-turn maps
// (x, y) to (-y, x).
func rotate(p Position, r Rotation) Position {
	for i := Rotation(0); i < r; i++ {
		p = Position{X: -p.Y, Y: p.X}
	}
	return p
}

// Piece is a tetromino in play: a shape at a board position with a rotation.
// All operations are pure; they return a new piece and never mutate.
type Piece struct {
	Shape    Shape
	Pos      Position
	Rotation Rotation
}

// Blocks returns the four absolute board cells the piece occupies.
// Always recomputed from shape, position and rotation so it can never go stale.
func (p Piece) Blocks() [4]Position {
	var out [4]Position
	for i, b := range baseBlocks[p.Shape] {
		out[i] = rotate(b, p.Rotation).Add(p.Pos)
	}
	return out
}

// MoveLeft returns the piece translated one cell left.
func (p Piece) MoveLeft() Piece {
	p.Pos = p.Pos.Add(Position{X: -1})
	return p
}

// MoveRight returns the piece translated one cell right.
func (p Piece) MoveRight() Piece {
	p.Pos = p.Pos.Add(Position{X: 1})
	return p
}

// MoveDown returns the piece translated one cell down.
func (p Piece) MoveDown() Piece {
	p.Pos = p.Pos.Add(Position{Y: 1})
	return p
}

// RotateCW returns the piece rotated a quarter-turn clockwise.
// There is no kick resolution: callers validate the result against the board
// and reject it outright if it does not fit.
func (p Piece) RotateCW() Piece {
	p.Rotation = p.Rotation.CW()
	return p
}

// RotateCCW returns the piece rotated a quarter-turn counter-clockwise.
func (p Piece) RotateCCW() Piece {
	p.Rotation = p.Rotation.CCW()
	return p
}
