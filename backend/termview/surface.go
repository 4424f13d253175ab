// Package termview runs the game inside a terminal through tcell. One board
// cell maps to two terminal columns so squares keep their aspect.
package termview

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/render"
)

const columnsPerCell = 2

var gridStyle = tcell.StyleDefault.
	Foreground(tcell.FromImageColor(render.GridLine)).
	Background(tcell.FromImageColor(render.Background))

// Surface draws pixel rectangles as blocks of terminal cells.
type Surface struct {
	screen   tcell.Screen
	cellSize int
}

func NewSurface(screen tcell.Screen, cellSize int) *Surface {
	return &Surface{screen: screen, cellSize: cellSize}
}

func (s *Surface) Clear(c color.Color) {
	s.screen.Fill(' ', tcell.StyleDefault.Background(tcell.FromImageColor(c)))
}

// DrawRect fills the covered cells with the fill color as background. An
// outline-only rectangle leaves a faint dot in its top-left cell.
func (s *Surface) DrawRect(r render.Rect, fill, outline color.Color) {
	x0, y0 := s.cell(r.X, r.Y)
	x1, y1 := s.cell(r.X+r.W, r.Y+r.H)

	if fill == nil {
		style := gridStyle.Foreground(tcell.FromImageColor(outline))
		s.screen.SetContent(x0, y0, '·', nil, style)
		for x := x0 + 1; x < x1; x++ {
			s.screen.SetContent(x, y0, ' ', nil, style)
		}
		return
	}

	style := tcell.StyleDefault.Background(tcell.FromImageColor(fill))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (s *Surface) Present() {
	s.screen.Show()
}

// Text writes a single line starting at board pixel coordinates (x, y).
func (s *Surface) Text(x, y int, text string) {
	col, row := s.cell(x, y)
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.FromImageColor(render.Background))
	for _, r := range text {
		s.screen.SetContent(col, row, r, nil, style)
		col++
	}
}

func (s *Surface) cell(x, y int) (col, row int) {
	return x / s.cellSize * columnsPerCell, y / s.cellSize
}
