// Package tetris holds the rules of the falling-block game: the shape catalog,
// pieces, the settled-cell board and the game state machine. Nothing in this
// package draws or reads input; those are supplied by the systems and backends.
package tetris

import (
	"fmt"
	"image/color"
)

// ShapeKind identifies a template in a Catalog.
type ShapeKind int

const (
	KindI ShapeKind = iota
	KindO
	KindT
	KindJ
	KindL
	KindS
	KindZ
)

func (k ShapeKind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("ShapeKind(%d)", int(k))
}

var kindNames = []string{"I", "O", "T", "J", "L", "S", "Z"}

// Color is a palette index. Empty marks a free board cell.
type Color uint8

const Empty Color = 0

// palette is indexed by Color-1.
var palette = []color.RGBA{
	{R: 255, G: 0, B: 0, A: 255},
	{R: 0, G: 255, B: 0, A: 255},
	{R: 0, G: 0, B: 255, A: 255},
	{R: 255, G: 255, B: 0, A: 255},
	{R: 0, G: 255, B: 255, A: 255},
	{R: 255, G: 0, B: 255, A: 255},
	{R: 128, G: 0, B: 128, A: 255},
}

// RGBA returns the display color. Empty and unknown indices map to black.
func (c Color) RGBA() color.RGBA {
	if c == Empty || int(c) > len(palette) {
		return color.RGBA{A: 255}
	}
	return palette[c-1]
}

// Palette returns every non-empty color in catalog order.
func Palette() []Color {
	colors := make([]Color, len(palette))
	for i := range palette {
		colors[i] = Color(i + 1)
	}
	return colors
}

// Catalog is the fixed set of shapes and colors pieces are sampled from.
type Catalog struct {
	Shapes []Shape
	Colors []Color
}

// DefaultCatalog returns the seven tetrominoes in I, O, T, J, L, S, Z order
// and the seven-color palette.
func DefaultCatalog() Catalog {
	return Catalog{
		Shapes: []Shape{
			MustShape("1111"),
			MustShape("11", "11"),
			MustShape("010", "111"),
			MustShape("100", "111"),
			MustShape("001", "111"),
			MustShape("110", "011"),
			MustShape("011", "110"),
		},
		Colors: Palette(),
	}
}

// Validate reports a *ConfigError when the catalog cannot produce pieces for
// a board of the given width.
func (c Catalog) Validate(columns int) error {
	if len(c.Shapes) == 0 {
		return configErr("catalog.shapes", "catalog has no shapes")
	}
	if len(c.Colors) == 0 {
		return configErr("catalog.colors", "catalog has no colors")
	}
	for i, s := range c.Shapes {
		if s.Empty() {
			return configErr(fmt.Sprintf("catalog.shapes[%d]", i), "shape has no occupied cells")
		}
		if s.Width() > columns {
			return configErr(fmt.Sprintf("catalog.shapes[%d]", i),
				fmt.Sprintf("shape width %d exceeds %d columns", s.Width(), columns))
		}
	}
	for i, col := range c.Colors {
		if col == Empty || int(col) > len(palette) {
			return configErr(fmt.Sprintf("catalog.colors[%d]", i), fmt.Sprintf("color %d is not in the palette", col))
		}
	}
	return nil
}

// Source is the random stream pieces are drawn from. *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

func (c Catalog) sample(src Source) (ShapeKind, Shape, Color) {
	kind := ShapeKind(src.IntN(len(c.Shapes)))
	col := c.Colors[src.IntN(len(c.Colors))]
	return kind, c.Shapes[kind], col
}
