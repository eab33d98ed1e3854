package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"lattice-life/pkg/lattice"
)

func rgb(c color.Color) [3]uint32 {
	r, g, b, _ := c.RGBA()
	return [3]uint32{r >> 8, g >> 8, b >> 8}
}

func TestSnapshotEncodePNG(t *testing.T) {
	g := lattice.MustNew(lattice.Dimension{Width: 10, Height: 10},
		lattice.Cell{X: 0, Y: 0}, lattice.Cell{X: 50, Y: 50})
	var buf bytes.Buffer
	if err := NewSnapshot(100, 100).EncodePNG(&buf, g); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 100 {
		t.Fatalf("bounds = %v, want 100x100", b)
	}
	if got := rgb(img.At(5, 5)); got != [3]uint32{255, 0, 0} {
		t.Fatalf("cell pixel = %v, want red", got)
	}
	if got := rgb(img.At(50, 50)); got != [3]uint32{0, 0, 0} {
		t.Fatalf("empty pixel = %v, want black", got)
	}
}

func TestSnapshotInvalidSurface(t *testing.T) {
	g := lattice.MustNew(lattice.Dimension{Width: 1, Height: 1})
	if _, err := NewSnapshot(0, 10).Image(g); err == nil {
		t.Fatal("expected an error for an empty surface")
	}
}
