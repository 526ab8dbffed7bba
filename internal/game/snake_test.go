package game

import "testing"

func newTestSnake() *Snake {
	return NewSnake(NewGrid(10, 10), GetDifficulty("normal"), DefaultEffectTable())
}

func TestSnakeSpawn(t *testing.T) {
	s := newTestSnake()

	// Normal difficulty: four segments, head on center, body trailing
	// left because the snake faces right.
	if s.Len() != 4 {
		t.Errorf("expected 4 segments, got %d", s.Len())
	}
	want := []Pos{{5, 5}, {4, 5}, {3, 5}, {2, 5}}
	for i, w := range want {
		if s.Segments()[i] != w {
			t.Errorf("segment %d: expected %v, got %v", i, w, s.Segments()[i])
		}
	}
	if s.Direction() != DirRight {
		t.Errorf("expected initial direction right, got %v", s.Direction())
	}
}

func TestSnakeFirstUpdateArmsTimer(t *testing.T) {
	s := newTestSnake()

	// The first call never moves, it only starts the clock.
	if s.Update(0) {
		t.Error("first update should arm the timer, not move")
	}
	if s.Head() != (Pos{5, 5}) {
		t.Errorf("head should not move on the first update, got %v", s.Head())
	}
}

func TestSnakeMoveDelay(t *testing.T) {
	s := newTestSnake()
	s.Update(0)

	// Base speed 8 means one move per 125ms.
	if s.Update(124) {
		t.Error("should not move before the delay elapses")
	}
	if !s.Update(125) {
		t.Error("should move once the delay elapses")
	}
	if s.Head() != (Pos{6, 5}) {
		t.Errorf("expected head at (6,5), got %v", s.Head())
	}
	if s.Len() != 4 {
		t.Errorf("length should not change on a plain move, got %d", s.Len())
	}

	// The gate re-arms from the move, not from the failed check.
	if s.Update(249) {
		t.Error("should not move again before another full delay")
	}
	if !s.Update(250) {
		t.Error("should move after another full delay")
	}
}

func TestSnakeSpeedEffects(t *testing.T) {
	table := DefaultEffectTable()
	table[EffectSpeed] = EffectSpec{Duration: 5000, Boost: 1.5}
	s := NewSnake(NewGrid(10, 10), GetDifficulty("normal"), table)

	s.AddEffect(EffectSpeed, 0)

	// 8 cells/sec boosted by 1.5 while the effect runs.
	if got := s.CurrentSpeed(4999); got != 12 {
		t.Errorf("expected boosted speed 12, got %v", got)
	}

	// Expiry is exact: at start+duration the boost is gone.
	if got := s.CurrentSpeed(5000); got != 8 {
		t.Errorf("expected base speed 8 at expiry, got %v", got)
	}
	if got := s.CurrentSpeed(5001); got != 8 {
		t.Errorf("expected base speed 8 after expiry, got %v", got)
	}
}

func TestSnakeSpeedFloor(t *testing.T) {
	diff := GetDifficulty("normal")
	diff.BaseSpeed = 1
	s := NewSnake(NewGrid(10, 10), diff, DefaultEffectTable())

	// 1 * 0.5 would stall the snake; the floor keeps it crawling.
	s.AddEffect(EffectSlow, 0)
	if got := s.CurrentSpeed(100); got != 1 {
		t.Errorf("expected floored speed 1, got %v", got)
	}
}

func TestSnakeReversalRejected(t *testing.T) {
	s := newTestSnake()
	s.Update(0)

	// Moving right, a left turn would fold the head onto the neck.
	s.SetDirection(DirLeft)
	s.Update(125)
	if s.Head() != (Pos{6, 5}) {
		t.Errorf("reversal should be dropped, expected head (6,5), got %v", s.Head())
	}

	// The guard checks the travel direction, not the queued one: an
	// up turn followed by a left turn still cannot reverse.
	s.SetDirection(DirUp)
	s.SetDirection(DirLeft)
	s.Update(250)
	if s.Head() != (Pos{6, 4}) {
		t.Errorf("expected the up turn to win, head (6,4), got %v", s.Head())
	}

	// Now traveling up, down became the forbidden reversal.
	s.SetDirection(DirDown)
	s.Update(375)
	if s.Head() != (Pos{6, 3}) {
		t.Errorf("expected to keep moving up, got %v", s.Head())
	}
}

func TestSnakeGrowth(t *testing.T) {
	s := newTestSnake()
	s.Update(0)

	// Growth is deferred to the next move.
	s.Grow()
	if s.Len() != 4 {
		t.Errorf("grow should not add a segment immediately, got %d", s.Len())
	}
	if s.FoodEaten != 1 {
		t.Errorf("expected FoodEaten 1, got %d", s.FoodEaten)
	}

	// Normal progression adds 0.5 cells/sec per food.
	if got := s.BaseSpeed(); got != 8.5 {
		t.Errorf("expected base speed 8.5 after one food, got %v", got)
	}

	s.Update(125)
	if s.Len() != 5 {
		t.Errorf("expected 5 segments after the growth move, got %d", s.Len())
	}

	// One food grows one segment, not more.
	s.Update(500)
	if s.Len() != 5 {
		t.Errorf("growth should apply once, got %d segments", s.Len())
	}
}

func TestSnakeProgressionCap(t *testing.T) {
	diff := GetDifficulty("normal")
	diff.Progression = SpeedProgression{Enabled: true, PerFood: 10, Max: 12}
	s := NewSnake(NewGrid(10, 10), diff, DefaultEffectTable())

	s.Grow()
	if got := s.BaseSpeed(); got != 12 {
		t.Errorf("expected base speed capped at 12, got %v", got)
	}
}

func TestSnakeGhostWrap(t *testing.T) {
	s := newTestSnake()
	s.Update(0)
	s.AddEffect(EffectGhost, 0)

	// Walk right off the edge; with ghost the head wraps to x=0.
	for _, now := range []float64{200, 400, 600, 800, 1000} {
		if !s.Update(now) {
			t.Fatalf("expected a move at %v", now)
		}
	}
	if s.Head() != (Pos{0, 5}) {
		t.Errorf("expected wrapped head (0,5), got %v", s.Head())
	}
	if s.CheckCollision(1000) {
		t.Error("ghost snake should not collide after wrapping")
	}
}

func TestSnakeWallDeath(t *testing.T) {
	s := newTestSnake()
	s.Update(0)

	// Same walk without ghost leaves the head out of bounds.
	for _, now := range []float64{200, 400, 600, 800, 1000} {
		s.Update(now)
	}
	if s.Head() != (Pos{10, 5}) {
		t.Errorf("expected head at (10,5), got %v", s.Head())
	}
	if !s.CheckCollision(1000) {
		t.Error("head past the wall should collide")
	}
}

func TestSnakeReset(t *testing.T) {
	s := newTestSnake()
	s.Update(0)
	s.Grow()
	s.AddEffect(EffectSpeed, 0)
	for _, now := range []float64{200, 400, 600, 800, 1000} {
		s.Update(now)
	}

	s.Reset()

	if s.Head() != (Pos{5, 5}) || s.Len() != 4 {
		t.Errorf("expected fresh spawn, got head %v len %d", s.Head(), s.Len())
	}
	if s.FoodEaten != 0 {
		t.Errorf("expected FoodEaten reset, got %d", s.FoodEaten)
	}
	if got := s.BaseSpeed(); got != 8 {
		t.Errorf("expected base speed back to 8, got %v", got)
	}
	if s.HasEffect(EffectSpeed, 1000) {
		t.Error("effects should be cleared on reset")
	}

	// The move timer is unarmed again.
	if s.Update(5000) {
		t.Error("first update after reset should only arm the timer")
	}
}
