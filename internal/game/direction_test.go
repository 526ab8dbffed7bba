package game

import "testing"

func TestDirDelta(t *testing.T) {
	// Screen coordinates: Y grows down.
	if dx, dy := DirUp.Delta(); dx != 0 || dy != -1 {
		t.Errorf("up delta: expected (0,-1), got (%d,%d)", dx, dy)
	}
	if dx, dy := DirDown.Delta(); dx != 0 || dy != 1 {
		t.Errorf("down delta: expected (0,1), got (%d,%d)", dx, dy)
	}
	if dx, dy := DirLeft.Delta(); dx != -1 || dy != 0 {
		t.Errorf("left delta: expected (-1,0), got (%d,%d)", dx, dy)
	}
	if dx, dy := DirRight.Delta(); dx != 1 || dy != 0 {
		t.Errorf("right delta: expected (1,0), got (%d,%d)", dx, dy)
	}
}

func TestDirOpposite(t *testing.T) {
	if DirUp.Opposite() != DirDown {
		t.Error("up should oppose down")
	}
	if DirDown.Opposite() != DirUp {
		t.Error("down should oppose up")
	}
	if DirLeft.Opposite() != DirRight {
		t.Error("left should oppose right")
	}
	if DirRight.Opposite() != DirLeft {
		t.Error("right should oppose left")
	}

	// Opposite is its own inverse.
	for _, d := range []Dir{DirUp, DirDown, DirLeft, DirRight} {
		if d.Opposite().Opposite() != d {
			t.Errorf("double opposite of %v should be itself", d)
		}
	}
}

func TestDirString(t *testing.T) {
	if DirUp.String() != "up" || DirRight.String() != "right" {
		t.Error("direction names should be lowercase words")
	}
	if Dir(42).String() != "unknown" {
		t.Errorf("out-of-range direction: expected unknown, got %q", Dir(42).String())
	}
}
