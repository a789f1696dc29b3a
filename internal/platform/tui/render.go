package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mlevkov/blockfall/internal/game"
)

// shapeStyles maps each shape to its display style.
var shapeStyles = [game.ShapeCount]lipgloss.Style{
	game.ShapeI: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	game.ShapeO: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	game.ShapeT: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	game.ShapeS: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	game.ShapeZ: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	game.ShapeJ: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	game.ShapeL: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
}

var (
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	valueStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

const filledCell = "██"
const emptyCell = " ·"

// RenderGame renders the playfield with a side panel showing score, level,
// the next-piece preview and key bindings.
func RenderGame(s game.State, highScore int) string {
	board := borderStyle.Render(renderBoard(s))
	panel := renderPanel(s, highScore)
	view := lipgloss.JoinHorizontal(lipgloss.Top, board, "  ", panel)

	switch {
	case s.Over:
		view += "\n" + bannerStyle.Render(" GAME OVER") +
			helpStyle.Render("  r restart · q quit")
	case s.Paused:
		view += "\n" + bannerStyle.Render(" PAUSED") +
			helpStyle.Render("  p resume")
	}
	return view
}

// renderBoard draws the cells, overlaying the active piece on the locked
// board contents.
func renderBoard(s game.State) string {
	var active [4]game.Position
	hasActive := s.Active != nil
	if hasActive {
		active = s.Active.Blocks()
	}

	var sb strings.Builder
	for y := 0; y < s.Board.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.Board.Width(); x++ {
			shape, filled := s.Board.CellShape(x, y)
			if hasActive {
				for _, b := range active {
					if b.X == x && b.Y == y {
						shape, filled = s.Active.Shape, true
						break
					}
				}
			}
			if filled {
				sb.WriteString(shapeStyles[shape].Render(filledCell))
			} else {
				sb.WriteString(emptyStyle.Render(emptyCell))
			}
		}
	}
	return sb.String()
}

// renderPanel draws the HUD column beside the board.
func renderPanel(s game.State, highScore int) string {
	var sb strings.Builder
	stat := func(label string, value any) {
		sb.WriteString(labelStyle.Render(label))
		sb.WriteString(" ")
		sb.WriteString(valueStyle.Render(fmt.Sprintf("%v", value)))
		sb.WriteString("\n")
	}

	stat("Score", s.Score)
	stat("Lines", s.Lines)
	stat("Level", s.Level)
	if highScore > 0 {
		stat("Best ", highScore)
	}

	sb.WriteString("\n")
	sb.WriteString(labelStyle.Render("Next"))
	sb.WriteString("\n")
	sb.WriteString(renderPreview(s.Next))

	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render(strings.Join([]string{
		"←/→ move",
		"↑ rotate",
		"z ccw",
		"↓ soft drop",
		"space drop",
		"p pause",
		"q quit",
	}, "\n")))

	return sb.String()
}

// renderPreview draws the next shape in a small normalized grid.
func renderPreview(shape game.Shape) string {
	blocks := game.Piece{Shape: shape}.Blocks()

	minX, minY := blocks[0].X, blocks[0].Y
	for _, b := range blocks[1:] {
		if b.X < minX {
			minX = b.X
		}
		if b.Y < minY {
			minY = b.Y
		}
	}

	var grid [2][4]bool
	for _, b := range blocks {
		x, y := b.X-minX, b.Y-minY
		if y < 2 && x < 4 {
			grid[y][x] = true
		}
	}

	var sb strings.Builder
	for y := range grid {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := range grid[y] {
			if grid[y][x] {
				sb.WriteString(shapeStyles[shape].Render(filledCell))
			} else {
				sb.WriteString("  ")
			}
		}
	}
	return sb.String()
}
