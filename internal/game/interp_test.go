package game

import (
	"math"
	"testing"
)

func TestInterpSnap(t *testing.T) {
	var ip Interp
	ip.Snap(Pos{5, 5})

	if ip.Progress != 1 {
		t.Errorf("snap should finish the glide, got progress %v", ip.Progress)
	}
	x, y := ip.Head()
	if x != 5 || y != 5 {
		t.Errorf("expected head at (5,5), got (%v,%v)", x, y)
	}
}

func TestInterpGlide(t *testing.T) {
	var ip Interp
	ip.Retarget(Pos{3, 5}, Pos{4, 5})

	if ip.Progress != 0 {
		t.Errorf("retarget should restart the glide, got progress %v", ip.Progress)
	}
	if x, _ := ip.Head(); x != 3 {
		t.Errorf("expected head at source before any advance, got %v", x)
	}

	// Eased positions for five fixed steps: slow out of the source
	// cell, fast through the middle, slow into the destination.
	want := []float64{3.08, 3.32, 3.68, 3.92, 4.0}
	for i, w := range want {
		ip.Advance()
		x, y := ip.Head()
		if math.Abs(x-w) > 1e-9 {
			t.Errorf("step %d: expected x %v, got %v", i+1, w, x)
		}
		if y != 5 {
			t.Errorf("step %d: expected y 5, got %v", i+1, y)
		}
	}

	// Fully arrived; further advances hold at the destination.
	if ip.Progress != 1 {
		t.Errorf("expected progress clamped to 1, got %v", ip.Progress)
	}
	ip.Advance()
	if x, _ := ip.Head(); x != 4 {
		t.Errorf("expected head pinned at destination, got %v", x)
	}
}

func TestEaseInOutQuad(t *testing.T) {
	// Endpoint and midpoint values of the curve.
	cases := []struct{ in, out float64 }{
		{0, 0},
		{0.25, 0.125},
		{0.5, 0.5},
		{0.75, 0.875},
		{1, 1},
	}
	for _, c := range cases {
		if got := easeInOutQuad(c.in); math.Abs(got-c.out) > 1e-9 {
			t.Errorf("ease(%v): expected %v, got %v", c.in, c.out, got)
		}
	}
}
