package game

// SpeedProgression raises base speed as food is eaten, capped at Max.
type SpeedProgression struct {
	Enabled bool
	PerFood float64 // cells/sec added per food eaten
	Max     float64 // cells/sec cap
}

// Snake is the movement state machine: the authoritative segment list,
// the current/pending direction pair, and the per-tick timing gate. It
// owns its effect stack and consults it for the live speed. Collision
// is exposed through CheckCollision but never run by Update itself;
// the game loop decides when to check and what a hit means.
//
// All methods take the game clock in ms. The snake never reads a
// wall clock and never emits events, it is driven entirely by its
// caller, which is what makes recorded runs replayable.
type Snake struct {
	grid     Grid
	segments []Pos
	dir      Dir
	nextDir  Dir

	lastMove float64
	started  bool
	growing  bool

	// FoodEaten counts growth events for scoring and progression.
	FoodEaten int

	baseSpeed float64 // cells/sec before effects
	diffBase  float64
	prog      SpeedProgression

	startLen int
	startDir Dir

	effects *EffectStack
	glide   Interp
}

// NewSnake spawns a snake at the grid center facing the difficulty's
// start direction, body trailing behind the head.
func NewSnake(g Grid, diff Difficulty, table EffectTable) *Snake {
	s := &Snake{
		grid:     g,
		diffBase: diff.BaseSpeed,
		prog:     diff.Progression,
		startLen: diff.StartLength,
		startDir: diff.StartDir,
		effects:  NewEffectStack(table),
	}
	s.Reset()
	return s
}

// Reset reinitializes the whole run state wholesale: fresh segments,
// the start direction pending, the move timer unarmed so the snake can
// never move the instant it spawns, and an empty effect stack.
func (s *Snake) Reset() {
	head := s.grid.Center()
	dx, dy := s.startDir.Delta()
	s.segments = s.segments[:0]
	for i := 0; i < s.startLen; i++ {
		s.segments = append(s.segments, Pos{X: head.X - dx*i, Y: head.Y - dy*i})
	}
	s.dir = s.startDir
	s.nextDir = s.startDir
	s.lastMove = 0
	s.started = false
	s.growing = false
	s.FoodEaten = 0
	s.baseSpeed = s.diffBase
	s.effects.Clear()
	s.glide.Snap(head)
}

// Update advances the timing gate and returns true when a discrete
// move fired this call. The first call only arms the timer.
func (s *Snake) Update(now float64) bool {
	if !s.started {
		s.started = true
		s.lastMove = now
		return false
	}

	// Expired effects are pruned before the delay is computed, so an
	// effect ending exactly at now takes no part in this tick.
	delay := 1000 / s.CurrentSpeed(now)
	if now-s.lastMove < delay {
		s.glide.Advance()
		return false
	}

	s.dir = s.nextDir
	dx, dy := s.dir.Delta()
	head := s.segments[0]
	next := Pos{X: head.X + dx, Y: head.Y + dy}
	if s.effects.Has(EffectGhost, now) {
		next = s.grid.Wrap(next)
	}

	// Push the new head on the front; drop the tail unless a pending
	// growth keeps it for exactly this one tick.
	s.segments = append(s.segments, Pos{})
	copy(s.segments[1:], s.segments)
	s.segments[0] = next
	if s.growing {
		s.growing = false
	} else {
		s.segments = s.segments[:len(s.segments)-1]
	}

	s.glide.Retarget(head, next)
	s.lastMove = now
	return true
}

// SetDirection queues d to take effect on the next tick. A turn that
// would exactly reverse the current travel direction is dropped, so
// even several queued turns between ticks can never fold the head
// back onto the neck.
func (s *Snake) SetDirection(d Dir) {
	if d == s.dir.Opposite() {
		return
	}
	s.nextDir = d
}

// Grow marks the next tick to keep its tail and applies speed
// progression to the base speed.
func (s *Snake) Grow() {
	s.growing = true
	s.FoodEaten++
	if s.prog.Enabled {
		b := s.diffBase + float64(s.FoodEaten)*s.prog.PerFood
		if b > s.prog.Max {
			b = s.prog.Max
		}
		s.baseSpeed = b
	}
}

// CurrentSpeed returns cells/sec after effect composition, floored at
// 1 so the move delay division is always safe.
func (s *Snake) CurrentSpeed(now float64) float64 {
	sp := s.baseSpeed * s.effects.SpeedMultiplier(now)
	if sp < 1 {
		sp = 1
	}
	return sp
}

// CheckCollision reports whether the head sits in a dead cell.
func (s *Snake) CheckCollision(now float64) bool {
	return Collides(s.segments, s.grid, s.effects.Has(EffectGhost, now))
}

// AddEffect collects a power-up of the given kind at now.
func (s *Snake) AddEffect(kind EffectKind, now float64) {
	s.effects.Add(kind, now)
}

func (s *Snake) HasEffect(kind EffectKind, now float64) bool {
	return s.effects.Has(kind, now)
}

// EffectTimeRemaining returns the longest remaining ms for kind.
func (s *Snake) EffectTimeRemaining(kind EffectKind, now float64) float64 {
	return s.effects.TimeRemaining(kind, now)
}

func (s *Snake) EffectCount(kind EffectKind, now float64) int {
	return s.effects.Count(kind, now)
}

// PointsMultiplier returns the composed food score multiplier.
func (s *Snake) PointsMultiplier(now float64) float64 {
	return s.effects.PointsMultiplier(now)
}

func (s *Snake) Head() Pos       { return s.segments[0] }
func (s *Snake) Segments() []Pos { return s.segments }
func (s *Snake) Len() int        { return len(s.segments) }
func (s *Snake) Direction() Dir  { return s.dir }

func (s *Snake) BaseSpeed() float64 { return s.baseSpeed }

// RenderHead returns the eased head position in cell units.
func (s *Snake) RenderHead() (x, y float64) {
	return s.glide.Head()
}
