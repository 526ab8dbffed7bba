package game

import "testing"

func TestGridInBounds(t *testing.T) {
	g := NewGrid(10, 10)

	// The four corners are inside.
	for _, p := range []Pos{{0, 0}, {9, 0}, {0, 9}, {9, 9}} {
		if !g.InBounds(p) {
			t.Errorf("corner %v should be in bounds", p)
		}
	}

	// One step past any edge is outside.
	for _, p := range []Pos{{-1, 5}, {10, 5}, {5, -1}, {5, 10}} {
		if g.InBounds(p) {
			t.Errorf("%v should be out of bounds", p)
		}
	}
}

func TestGridWrap(t *testing.T) {
	g := NewGrid(10, 10)

	// In-bounds cells are untouched.
	if got := g.Wrap(Pos{3, 7}); got != (Pos{3, 7}) {
		t.Errorf("expected (3,7), got %v", got)
	}

	// One step off either edge lands on the opposite side.
	if got := g.Wrap(Pos{-1, 5}); got != (Pos{9, 5}) {
		t.Errorf("expected (9,5), got %v", got)
	}
	if got := g.Wrap(Pos{10, 5}); got != (Pos{0, 5}) {
		t.Errorf("expected (0,5), got %v", got)
	}

	// Far negative and far positive coordinates still wrap correctly.
	if got := g.Wrap(Pos{-13, -27}); got != (Pos{7, 3}) {
		t.Errorf("expected (7,3), got %v", got)
	}
	if got := g.Wrap(Pos{23, 45}); got != (Pos{3, 5}) {
		t.Errorf("expected (3,5), got %v", got)
	}
}

func TestGridCenter(t *testing.T) {
	if got := NewGrid(10, 10).Center(); got != (Pos{5, 5}) {
		t.Errorf("expected (5,5), got %v", got)
	}
	if got := NewGrid(9, 7).Center(); got != (Pos{4, 3}) {
		t.Errorf("expected (4,3), got %v", got)
	}
}

func TestGridCells(t *testing.T) {
	if got := NewGrid(24, 18).Cells(); got != 432 {
		t.Errorf("expected 432 cells, got %d", got)
	}
}
