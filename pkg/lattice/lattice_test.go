package lattice

import (
	"testing"

	"github.com/pkg/errors"
)

func TestNewRejectsInvalidInput(t *testing.T) {
	if _, err := New(Dimension{Width: 0, Height: 4}); !errors.Is(err, ErrInvalidDimension) {
		t.Fatalf("zero width: got %v, want ErrInvalidDimension", err)
	}
	if _, err := New(Dimension{Width: 4, Height: -1}); !errors.Is(err, ErrInvalidDimension) {
		t.Fatalf("negative height: got %v, want ErrInvalidDimension", err)
	}
	_, err := New(Dimension{Width: 4, Height: 4}, Cell{1, 1}, Cell{2, 2}, Cell{1, 1})
	if errors.Cause(err) != ErrDuplicateCell {
		t.Fatalf("duplicate: got %v, want ErrDuplicateCell", err)
	}
}

func TestNewAcceptsCellsOutsideDimension(t *testing.T) {
	g, err := New(Dimension{Width: 2, Height: 2}, Cell{-5, 3}, Cell{100, -100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Len() != 2 || !g.Alive(Cell{-5, 3}) || !g.Alive(Cell{100, -100}) {
		t.Fatalf("cells outside the dimension must be kept, got %v", g.Cells())
	}
}

func TestMustNewPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustNew should panic on duplicate cells")
		}
	}()
	MustNew(Dimension{Width: 1, Height: 1}, Cell{0, 0}, Cell{0, 0})
}

func TestCellsSortedRowMajor(t *testing.T) {
	g := MustNew(Dimension{Width: 3, Height: 3}, Cell{2, 1}, Cell{0, 2}, Cell{1, 0}, Cell{0, 1})
	want := []Cell{{1, 0}, {0, 1}, {2, 1}, {0, 2}}
	got := g.Cells()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestEqual(t *testing.T) {
	dim := Dimension{Width: 5, Height: 5}
	a := MustNew(dim, Cell{1, 1}, Cell{2, 2})
	b := MustNew(dim, Cell{2, 2}, Cell{1, 1})
	if !a.Equal(b) {
		t.Fatal("order of construction must not matter")
	}
	if a.Equal(MustNew(Dimension{Width: 6, Height: 5}, Cell{1, 1}, Cell{2, 2})) {
		t.Fatal("grids with different dimensions must differ")
	}
	if a.Equal(MustNew(dim, Cell{1, 1}, Cell{2, 3})) {
		t.Fatal("grids with different cells must differ")
	}
}

func TestBounds(t *testing.T) {
	if _, _, ok := MustNew(Dimension{Width: 1, Height: 1}).Bounds(); ok {
		t.Fatal("empty grid has no bounds")
	}
	g := MustNew(Dimension{Width: 1, Height: 1}, Cell{3, -2}, Cell{-1, 4}, Cell{0, 0})
	lo, hi, ok := g.Bounds()
	if !ok || lo != (Cell{-1, -2}) || hi != (Cell{3, 4}) {
		t.Fatalf("bounds = %v..%v (%v), want (-1,-2)..(3,4)", lo, hi, ok)
	}
}
