package render

import "image/color"

// Op is one DrawRect call captured by a Recorder.
type Op struct {
	Rect    Rect
	Fill    color.Color
	Outline color.Color
}

// Outlined reports whether the op drew only an outline.
func (o Op) Outlined() bool { return o.Fill == nil }

// Recorder is a Surface that remembers what was drawn since the last Clear.
type Recorder struct {
	Ops      []Op
	Cleared  color.Color
	Clears   int
	Presents int
}

func (r *Recorder) Clear(c color.Color) {
	r.Ops = r.Ops[:0]
	r.Cleared = c
	r.Clears++
}

func (r *Recorder) DrawRect(rect Rect, fill, outline color.Color) {
	r.Ops = append(r.Ops, Op{Rect: rect, Fill: fill, Outline: outline})
}

func (r *Recorder) Present() {
	r.Presents++
}

// Filled returns the ops that drew a filled rectangle.
func (r *Recorder) Filled() []Op {
	var filled []Op
	for _, op := range r.Ops {
		if !op.Outlined() {
			filled = append(filled, op)
		}
	}
	return filled
}
