package render

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/gogpu/gg"
	"github.com/pkg/errors"

	"lattice-life/pkg/lattice"
)

// Snapshot rasterizes lattices off-screen with the gg software renderer.
type Snapshot struct {
	Width, Height int
	Inset         float64
	Cell          color.Color
	Background    color.Color
}

// NewSnapshot returns a Snapshot using the default palette and inset.
func NewSnapshot(w, h int) *Snapshot {
	return &Snapshot{Width: w, Height: h, Inset: DefaultInset, Cell: CellColor, Background: BackgroundColor}
}

// Image draws g and returns the resulting frame.
func (s *Snapshot) Image(g lattice.Grid) (image.Image, error) {
	if s.Width <= 0 || s.Height <= 0 {
		return nil, errors.Errorf("render: invalid surface %dx%d", s.Width, s.Height)
	}
	dc := gg.NewContext(s.Width, s.Height)
	defer dc.Close()

	dc.ClearWithColor(gg.FromColor(s.Background))
	dc.SetColor(s.Cell)
	fw, fh := float64(s.Width), float64(s.Height)
	for _, r := range CellRects(g, s.Width, s.Height, s.Inset) {
		if !r.Overlaps(fw, fh) {
			continue
		}
		dc.DrawRectangle(r.X, r.Y, r.W, r.H)
		if err := dc.Fill(); err != nil {
			return nil, errors.Wrap(err, "render: fill")
		}
	}
	if err := dc.FlushGPU(); err != nil {
		return nil, errors.Wrap(err, "render: flush")
	}
	return dc.Image(), nil
}

// EncodePNG draws g and writes it to w as a PNG.
func (s *Snapshot) EncodePNG(w io.Writer, g lattice.Grid) error {
	img, err := s.Image(g)
	if err != nil {
		return err
	}
	return errors.Wrap(png.Encode(w, img), "render: encode png")
}
