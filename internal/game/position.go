// Package game implements the falling-block simulation core: the board and
// collision model, piece geometry and rotation, the command-driven state
// machine, and the scoring/level policy. It contains no external dependencies
// (especially no Bubble Tea) so the simulation stays pure and testable.
package game

// Position is an integer grid coordinate. X grows right, Y grows down.
type Position struct {
	X, Y int
}

// Add returns the vector sum of two positions.
func (p Position) Add(o Position) Position {
	return Position{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns the vector difference of two positions.
func (p Position) Sub(o Position) Position {
	return Position{X: p.X - o.X, Y: p.Y - o.Y}
}
