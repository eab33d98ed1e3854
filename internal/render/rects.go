package render

import (
	"image/color"

	"lattice-life/pkg/lattice"
)

// DefaultInset is the border, in pixels, left around every cell.
const DefaultInset = 2

var (
	// CellColor is the fill used for live cells.
	CellColor = color.RGBA{R: 255, A: 255}
	// BackgroundColor clears the surface before each frame.
	BackgroundColor = color.RGBA{A: 255}
)

// Rect is a pixel-space rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether r intersects a w by h surface anchored at the origin.
func (r Rect) Overlaps(w, h float64) bool {
	return r.W > 0 && r.H > 0 && r.X < w && r.Y < h && r.X+r.W > 0 && r.Y+r.H > 0
}

// CellRects maps every live cell of g onto a w by h pixel surface. Cells
// outside the declared dimension are still mapped; callers decide whether to
// draw them.
func CellRects(g lattice.Grid, w, h int, inset float64) []Rect {
	if g.Dim.Width <= 0 || g.Dim.Height <= 0 {
		return nil
	}
	cw := float64(w) / float64(g.Dim.Width)
	ch := float64(h) / float64(g.Dim.Height)
	out := make([]Rect, 0, g.Len())
	for _, c := range g.Cells() {
		out = append(out, Rect{
			X: float64(c.X)*cw + inset,
			Y: float64(c.Y)*ch + inset,
			W: cw - inset,
			H: ch - inset,
		})
	}
	return out
}
