package game

// Collides reports whether the snake is in a dead position: the head
// outside the grid, or the head overlapping any body segment. With
// ghost active the field is toroidal and the body intangible, so the
// answer is always false.
//
// Pure function over its inputs; segments[0] is the head. Movement
// never calls this itself, the game loop decides when a check happens
// and what a hit means.
func Collides(segments []Pos, g Grid, ghost bool) bool {
	if ghost {
		return false
	}
	head := segments[0]
	if !g.InBounds(head) {
		return true
	}
	for _, seg := range segments[1:] {
		if seg == head {
			return true
		}
	}
	return false
}
