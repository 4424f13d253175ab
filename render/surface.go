// Package render draws a game frame as plain rectangles onto a Surface.
// Backends implement Surface; nothing in this package knows about windows or
// terminals.
package render

import "image/color"

// Rect is an axis-aligned rectangle in surface pixels.
type Rect struct {
	X, Y, W, H int
}

// Surface is a 2D rectangle-drawing target.
type Surface interface {
	// Clear fills the whole surface with c.
	Clear(c color.Color)
	// DrawRect draws r with a 1-pixel outline. A nil fill draws the outline only.
	DrawRect(r Rect, fill, outline color.Color)
	// Present makes the frame visible.
	Present()
}

var (
	Background = color.RGBA{0, 0, 0, 255}
	GridLine   = color.RGBA{50, 50, 50, 255}
)
