//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"lattice-life/pkg/lattice"
)

// Painter draws live cells as filled rectangles onto an ebiten image.
type Painter struct {
	inset float64
	on    color.Color
	off   color.Color
}

// NewPainter returns a Painter using the default palette and inset.
func NewPainter() *Painter {
	return &Painter{inset: DefaultInset, on: CellColor, off: BackgroundColor}
}

// Draw clears dst and paints every live cell of g that lands on it.
func (p *Painter) Draw(dst *ebiten.Image, g lattice.Grid) {
	dst.Fill(p.off)
	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()
	for _, r := range CellRects(g, w, h, p.inset) {
		if !r.Overlaps(float64(w), float64(h)) {
			continue
		}
		vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), p.on, false)
	}
}
