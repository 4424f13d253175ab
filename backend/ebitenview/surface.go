// Package ebitenview runs the game in an ebiten window.
package ebitenview

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/blockfall/render"
)

// Surface draws onto the screen image ebiten hands to Draw.
type Surface struct {
	screen *ebiten.Image
}

// Target sets the image the next frame is drawn on.
func (s *Surface) Target(screen *ebiten.Image) {
	s.screen = screen
}

func (s *Surface) Clear(c color.Color) {
	s.screen.Fill(c)
}

func (s *Surface) DrawRect(r render.Rect, fill, outline color.Color) {
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	if fill != nil {
		vector.DrawFilledRect(s.screen, x, y, w, h, fill, false)
	}
	vector.StrokeRect(s.screen, x, y, w, h, 1, outline, false)
}

// Present is a no-op; ebiten shows the screen image after Draw returns.
func (s *Surface) Present() {}
