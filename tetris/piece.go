package tetris

// Piece is the active tetromino: a shape, its color and the board offset of
// the shape's top-left corner. Pieces are values; every change returns a copy.
type Piece struct {
	Kind  ShapeKind
	Shape Shape
	Color Color
	X, Y  int
}

// Spawn samples a shape and, independently, a color from the catalog and
// centers the piece horizontally on the top row of a board with the given
// number of columns.
func Spawn(src Source, catalog Catalog, columns int) Piece {
	kind, shape, col := catalog.sample(src)
	return Piece{
		Kind:  kind,
		Shape: shape,
		Color: col,
		X:     columns/2 - shape.Width()/2,
		Y:     0,
	}
}

// Moved returns the piece shifted by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// WithShape returns the piece carrying a different shape at the same offset.
func (p Piece) WithShape(s Shape) Piece {
	p.Shape = s
	return p
}

// Rotate returns the candidate shape turned clockwise. Legality is decided by
// the caller against a Board.
func (p Piece) Rotate() Shape {
	return p.Shape.Rotate()
}

// Cells iterates over the board coordinates covered by the piece.
func (p Piece) Cells() func(yield func(row, col int) bool) {
	return func(yield func(row, col int) bool) {
		for row, col := range p.Shape.Cells() {
			if !yield(p.Y+row, p.X+col) {
				return
			}
		}
	}
}
