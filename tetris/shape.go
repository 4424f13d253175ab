package tetris

import (
	"fmt"
	"strings"
)

// Shape is an immutable occupancy matrix. Row 0 is the top of the piece.
type Shape struct {
	cells [][]bool
}

// NewShape copies rows into a Shape. Rows must be non-empty and of equal length.
func NewShape(rows [][]bool) (Shape, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Shape{}, configErr("shape", "shape has no rows")
	}
	width := len(rows[0])
	cells := make([][]bool, len(rows))
	for i, row := range rows {
		if len(row) != width {
			return Shape{}, configErr("shape", fmt.Sprintf("row %d has %d cells, want %d", i, len(row), width))
		}
		cells[i] = append([]bool(nil), row...)
	}
	return Shape{cells: cells}, nil
}

// MustShape builds a Shape from rows of '0'/'1' characters and panics on a
// malformed pattern.
func MustShape(rows ...string) Shape {
	matrix := make([][]bool, len(rows))
	for i, row := range rows {
		matrix[i] = make([]bool, len(row))
		for j, ch := range row {
			switch ch {
			case '1':
				matrix[i][j] = true
			case '0':
			default:
				panic(fmt.Sprintf("invalid shape character %q in row %q", ch, row))
			}
		}
	}
	s, err := NewShape(matrix)
	if err != nil {
		panic(err)
	}
	return s
}

func (s Shape) Width() int {
	if len(s.cells) == 0 {
		return 0
	}
	return len(s.cells[0])
}

func (s Shape) Height() int {
	return len(s.cells)
}

// At reports whether the sub-cell at (row, col) is occupied.
func (s Shape) At(row, col int) bool {
	return s.cells[row][col]
}

// Empty reports whether no sub-cell is occupied.
func (s Shape) Empty() bool {
	for _, row := range s.cells {
		for _, v := range row {
			if v {
				return false
			}
		}
	}
	return true
}

// Rotate returns the shape turned 90° clockwise. A h×w shape becomes w×h.
func (s Shape) Rotate() Shape {
	h, w := s.Height(), s.Width()
	rotated := make([][]bool, w)
	for col := range w {
		rotated[col] = make([]bool, h)
		for row := range h {
			rotated[col][h-1-row] = s.cells[row][col]
		}
	}
	return Shape{cells: rotated}
}

// Cells iterates over the occupied sub-cells as (row, col) pairs.
func (s Shape) Cells() func(yield func(row, col int) bool) {
	return func(yield func(row, col int) bool) {
		for row, cells := range s.cells {
			for col, v := range cells {
				if v && !yield(row, col) {
					return
				}
			}
		}
	}
}

// Matrix returns a copy of the occupancy matrix.
func (s Shape) Matrix() [][]bool {
	out := make([][]bool, len(s.cells))
	for i, row := range s.cells {
		out[i] = append([]bool(nil), row...)
	}
	return out
}

// Equal reports whether both shapes have identical dimensions and cells.
func (s Shape) Equal(other Shape) bool {
	if s.Height() != other.Height() || s.Width() != other.Width() {
		return false
	}
	for row := range s.cells {
		for col := range s.cells[row] {
			if s.cells[row][col] != other.cells[row][col] {
				return false
			}
		}
	}
	return true
}

func (s Shape) String() string {
	var b strings.Builder
	for i, row := range s.cells {
		if i > 0 {
			b.WriteByte('/')
		}
		for _, v := range row {
			if v {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
	}
	return b.String()
}
