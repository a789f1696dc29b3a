package game

const emptyCell = Shape(-1)

// Board is the grid of locked cells. Each filled cell remembers the shape
// that locked there so renderers can color it; the simulation only cares
// whether a cell is filled. The active piece is never written into the grid
// until it locks.
//
// Board has value semantics: LockPiece and ClearLines return new boards and
// never mutate the receiver.
type Board struct {
	width  int
	height int
	cells  []Shape // row-major, len width*height, emptyCell when vacant
}

// NewBoard creates an empty board of the given dimensions.
func NewBoard(width, height int) Board {
	cells := make([]Shape, width*height)
	for i := range cells {
		cells[i] = emptyCell
	}
	return Board{width: width, height: height, cells: cells}
}

// Width returns the board width in cells.
func (b Board) Width() int { return b.width }

// Height returns the board height in cells.
func (b Board) Height() int { return b.height }

// CellShape reports whether the cell at (x, y) is filled and by which shape.
// Coordinates outside the grid are vacant.
func (b Board) CellShape(x, y int) (Shape, bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0, false
	}
	s := b.cells[y*b.width+x]
	if s == emptyCell {
		return 0, false
	}
	return s, true
}

// Filled reports whether the cell at (x, y) holds a locked block.
func (b Board) Filled(x, y int) bool {
	_, ok := b.CellShape(x, y)
	return ok
}

// IsValidPosition reports whether every block is inside the horizontal and
// bottom bounds and free of locked cells. Blocks above the top edge (y < 0)
// are permitted: pieces spawn above the visible area.
func (b Board) IsValidPosition(blocks [4]Position) bool {
	for _, p := range blocks {
		if p.X < 0 || p.X >= b.width || p.Y >= b.height {
			return false
		}
		if p.Y >= 0 && b.cells[p.Y*b.width+p.X] != emptyCell {
			return false
		}
	}
	return true
}

// LockPiece returns a new board with the piece's blocks marked filled.
// It does not validate; the caller must have confirmed the position.
// Blocks still above the top edge are dropped silently.
func (b Board) LockPiece(p Piece) Board {
	nb := b.clone()
	for _, pos := range p.Blocks() {
		if pos.Y < 0 || pos.Y >= nb.height || pos.X < 0 || pos.X >= nb.width {
			continue
		}
		nb.cells[pos.Y*nb.width+pos.X] = p.Shape
	}
	return nb
}

// ClearLines removes every fully filled row, shifts the rows above down,
// and returns the new board together with the number of rows removed.
// Non-cleared rows keep their relative order.
func (b Board) ClearLines() (Board, int) {
	nb := b.clone()
	cleared := 0
	// Walk from the bottom, compacting surviving rows downward.
	dst := nb.height - 1
	for src := nb.height - 1; src >= 0; src-- {
		if b.rowFull(src) {
			cleared++
			continue
		}
		copy(nb.cells[dst*nb.width:(dst+1)*nb.width], b.cells[src*nb.width:(src+1)*nb.width])
		dst--
	}
	// Vacated top rows become empty.
	for y := dst; y >= 0; y-- {
		for x := 0; x < nb.width; x++ {
			nb.cells[y*nb.width+x] = emptyCell
		}
	}
	return nb, cleared
}

// rowFull reports whether every cell in row y is filled.
func (b Board) rowFull(y int) bool {
	for x := 0; x < b.width; x++ {
		if b.cells[y*b.width+x] == emptyCell {
			return false
		}
	}
	return true
}

// clone returns a deep copy of the board.
func (b Board) clone() Board {
	cells := make([]Shape, len(b.cells))
	copy(cells, b.cells)
	return Board{width: b.width, height: b.height, cells: cells}
}
