package render

import (
	"image/color"

	"github.com/plus3/blockfall/tetris"
)

// Renderer lays out a board of square cells.
type Renderer struct {
	cellSize int
}

func NewRenderer(cellSize int) *Renderer {
	return &Renderer{cellSize: cellSize}
}

func (r *Renderer) CellSize() int { return r.cellSize }

// Cell returns the rectangle covering a board cell.
func (r *Renderer) Cell(row, col int) Rect {
	return Rect{X: col * r.cellSize, Y: row * r.cellSize, W: r.cellSize, H: r.cellSize}
}

// Frame draws one complete frame: the background, an outline for every grid
// cell, the settled blocks, then the falling piece.
func (r *Renderer) Frame(s Surface, board *tetris.Board, piece tetris.Piece) {
	s.Clear(Background)

	for row := range board.Rows() {
		for col := range board.Columns() {
			s.DrawRect(r.Cell(row, col), nil, GridLine)
		}
	}

	for pos, c := range board.Cells() {
		s.DrawRect(r.Cell(pos.Row, pos.Col), fill(c), GridLine)
	}

	for row, col := range piece.Cells() {
		s.DrawRect(r.Cell(row, col), fill(piece.Color), GridLine)
	}

	s.Present()
}

func fill(c tetris.Color) color.Color {
	return c.RGBA()
}
