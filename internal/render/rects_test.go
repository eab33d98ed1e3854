package render

import (
	"testing"

	"lattice-life/pkg/lattice"
)

func TestCellRects(t *testing.T) {
	g := lattice.MustNew(lattice.Dimension{Width: 50, Height: 50},
		lattice.Cell{X: 0, Y: 0}, lattice.Cell{X: 3, Y: 1})
	rects := CellRects(g, 600, 400, 2)
	want := []Rect{
		{X: 2, Y: 2, W: 10, H: 6},
		{X: 38, Y: 10, W: 10, H: 6},
	}
	if len(rects) != len(want) {
		t.Fatalf("got %d rects, want %d", len(rects), len(want))
	}
	for i := range want {
		if rects[i] != want[i] {
			t.Fatalf("rect %d = %+v, want %+v", i, rects[i], want[i])
		}
	}
}

func TestCellRectsOutsideDimension(t *testing.T) {
	g := lattice.MustNew(lattice.Dimension{Width: 10, Height: 10},
		lattice.Cell{X: -1, Y: 0}, lattice.Cell{X: 12, Y: 3})
	rects := CellRects(g, 100, 100, 2)
	if len(rects) != 2 {
		t.Fatalf("got %d rects, want 2", len(rects))
	}
	if rects[0] != (Rect{X: -8, Y: 2, W: 8, H: 8}) {
		t.Fatalf("negative cell rect = %+v", rects[0])
	}
	if rects[1] != (Rect{X: 122, Y: 32, W: 8, H: 8}) {
		t.Fatalf("far cell rect = %+v", rects[1])
	}
	for _, r := range rects {
		if r.Overlaps(100, 100) {
			t.Fatalf("%+v should be off-surface", r)
		}
	}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		r    Rect
		want bool
	}{
		{Rect{X: 0, Y: 0, W: 1, H: 1}, true},
		{Rect{X: -5, Y: -5, W: 6, H: 6}, true},
		{Rect{X: 99, Y: 99, W: 5, H: 5}, true},
		{Rect{X: 100, Y: 0, W: 5, H: 5}, false},
		{Rect{X: -5, Y: 0, W: 5, H: 5}, false},
		{Rect{X: 10, Y: 10, W: 0, H: 5}, false},
	}
	for _, tc := range cases {
		if got := tc.r.Overlaps(100, 100); got != tc.want {
			t.Fatalf("%+v.Overlaps = %v, want %v", tc.r, got, tc.want)
		}
	}
}

func TestCellRectsEmpty(t *testing.T) {
	if rects := CellRects(lattice.MustNew(lattice.Dimension{Width: 3, Height: 3}), 30, 30, 2); len(rects) != 0 {
		t.Fatalf("empty grid produced %v", rects)
	}
}
