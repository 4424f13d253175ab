package tetris

import "fmt"

// Board is the grid of settled cells. Its dimensions are fixed at construction.
type Board struct {
	rows    int
	columns int
	cells   [][]Color
}

// NewBoard returns an empty rows×columns board.
func NewBoard(rows, columns int) (*Board, error) {
	if rows <= 0 {
		return nil, configErr("rows", fmt.Sprintf("must be positive, got %d", rows))
	}
	if columns <= 0 {
		return nil, configErr("columns", fmt.Sprintf("must be positive, got %d", columns))
	}
	b := &Board{rows: rows, columns: columns, cells: make([][]Color, rows)}
	for i := range b.cells {
		b.cells[i] = make([]Color, columns)
	}
	return b, nil
}

func (b *Board) Rows() int    { return b.rows }
func (b *Board) Columns() int { return b.columns }

// At returns the color settled at (row, col), or Empty.
func (b *Board) At(row, col int) Color {
	return b.cells[row][col]
}

// Set overwrites a single cell.
func (b *Board) Set(row, col int, c Color) {
	b.cells[row][col] = c
}

// Fits reports whether the piece shifted by (dx, dy) stays inside the side
// walls and above the floor without overlapping settled cells. Cells above
// row 0 are never checked for occupancy.
func (b *Board) Fits(p Piece, dx, dy int) bool {
	for row, col := range p.Cells() {
		row += dy
		col += dx
		if col < 0 || col >= b.columns || row >= b.rows {
			return false
		}
		if row >= 0 && b.cells[row][col] != Empty {
			return false
		}
	}
	return true
}

// Merge settles the piece into the board. The caller must have checked
// Fits(p, 0, 0) and that no cell lies above row 0; Merge panics otherwise.
func (b *Board) Merge(p Piece) {
	for row, col := range p.Cells() {
		if row < 0 || row >= b.rows || col < 0 || col >= b.columns {
			panic(fmt.Sprintf("merge of piece %s outside board at row %d col %d", p.Kind, row, col))
		}
		b.cells[row][col] = p.Color
	}
}

// ClearLines removes every full row, inserts as many empty rows at the top
// and returns how many were removed. Retained rows keep their order.
func (b *Board) ClearLines() int {
	kept := make([][]Color, 0, b.rows)
	for _, row := range b.cells {
		if !full(row) {
			kept = append(kept, row)
		}
	}
	cleared := b.rows - len(kept)
	if cleared == 0 {
		return 0
	}

	cells := make([][]Color, 0, b.rows)
	for range cleared {
		cells = append(cells, make([]Color, b.columns))
	}
	b.cells = append(cells, kept...)
	return cleared
}

func full(row []Color) bool {
	for _, c := range row {
		if c == Empty {
			return false
		}
	}
	return true
}

// Pos addresses a board cell.
type Pos struct {
	Row, Col int
}

// Filled returns the number of occupied cells.
func (b *Board) Filled() int {
	n := 0
	for range b.Cells() {
		n++
	}
	return n
}

// Cells iterates over occupied cells in row-major order.
func (b *Board) Cells() func(yield func(pos Pos, c Color) bool) {
	return func(yield func(pos Pos, c Color) bool) {
		for row, cells := range b.cells {
			for col, c := range cells {
				if c != Empty && !yield(Pos{Row: row, Col: col}, c) {
					return
				}
			}
		}
	}
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	out := &Board{rows: b.rows, columns: b.columns, cells: make([][]Color, b.rows)}
	for i, row := range b.cells {
		out.cells[i] = append([]Color(nil), row...)
	}
	return out
}
