package game

// Grid is the logical play field, measured in cells. It holds no
// mutable state, only the bounds and wrap arithmetic every other system
// leans on.
type Grid struct {
	W, H int
}

func NewGrid(w, h int) Grid {
	return Grid{W: w, H: h}
}

// InBounds reports whether p lies inside [0,W) x [0,H).
func (g Grid) InBounds(p Pos) bool {
	return p.X >= 0 && p.X < g.W && p.Y >= 0 && p.Y < g.H
}

// Wrap maps p onto the torus. Negative and over-range coordinates wrap
// on both axes, so a head can leave from any edge and reappear on the
// opposite one.
func (g Grid) Wrap(p Pos) Pos {
	return Pos{X: floorMod(p.X, g.W), Y: floorMod(p.Y, g.H)}
}

// Center returns the middle cell, used as the spawn point.
func (g Grid) Center() Pos {
	return Pos{X: g.W / 2, Y: g.H / 2}
}

// Cells returns the total cell count.
func (g Grid) Cells() int {
	return g.W * g.H
}
