package game

import (
	"math"

	"github.com/google/uuid"
)

type GameState int

const (
	StateMenu GameState = iota
	StatePlaying
	StatePaused
	StateGameOver
)

// TickResult is what one frame of gameplay produced, for the loop to
// react to with sound, particles, and persistence.
type TickResult struct {
	Moved     bool
	Died      bool
	AteFood   bool
	FoodCell  Pos // where the food sat when it was eaten
	Points    int // points the food was worth after multipliers
	Collected []EffectKind
	Expired   []Pickup
}

// GameSession tracks the run-level state around the snake: the state
// machine, score, run identity, and the game clock. The clock only
// advances while playing, so pausing freezes every effect timer.
type GameSession struct {
	State      GameState
	RunID      string
	Difficulty Difficulty
	Score      int
	Best       int
	FoodEaten  int
	ClockMS    float64
	TopRows    []ScoreRow // filled at game over
}

func NewGameSession(best int) *GameSession {
	return &GameSession{State: StateMenu, Best: best}
}

// StartRun resets every per-run system and enters StatePlaying. The
// seed drives pickup spawning for the whole run; particles may be nil
// for headless playback.
func (gs *GameSession) StartRun(diff Difficulty, seed uint64, snake *Snake, pickups *PickupSystem, particles *ParticleSystem) {
	gs.RunID = uuid.New().String()
	gs.Difficulty = diff
	gs.Score = 0
	gs.FoodEaten = 0
	gs.ClockMS = 0
	gs.TopRows = nil
	snake.Reset()
	pickups.Reset(seed, snake.Segments())
	if particles != nil {
		particles.Clear()
	}
	gs.State = StatePlaying
}

// AdvanceMS moves the game clock by one frame worth of ms. Live play
// and replay playback both feed the exact recorded values through
// here, which keeps the two clocks bit-identical.
func (gs *GameSession) AdvanceMS(frameMS float64) {
	if gs.State != StatePlaying {
		return
	}
	gs.ClockMS += frameMS
}

// Elapsed returns the unpaused play time in seconds.
func (gs *GameSession) Elapsed() float64 {
	return gs.ClockMS / 1000
}

// PlayTick runs one frame of game rules: pickup housekeeping, the
// movement gate, and, when a discrete move fired, the collision and
// consumption checks. The live loop and replay playback both drive
// runs through this one path.
func (gs *GameSession) PlayTick(frameMS float64, snake *Snake, pickups *PickupSystem) TickResult {
	now := gs.ClockMS
	var res TickResult

	res.Expired = pickups.Update(frameMS, now, snake.Segments())

	res.Moved = snake.Update(now)
	if !res.Moved {
		return res
	}

	if snake.CheckCollision(now) {
		res.Died = true
		gs.FoodEaten = snake.FoodEaten
		if gs.Score > gs.Best {
			gs.Best = gs.Score
		}
		gs.State = StateGameOver
		return res
	}

	head := snake.Head()
	foodCell := pickups.Food
	if pickups.EatFoodAt(head, snake.Segments()) {
		snake.Grow()
		pts := int(math.Round(float64(gs.Difficulty.FoodPoints) * snake.PointsMultiplier(now)))
		gs.Score += pts
		gs.FoodEaten = snake.FoodEaten
		res.AteFood = true
		res.FoodCell = foodCell
		res.Points = pts
	}
	if p, ok := pickups.CollectAt(head); ok {
		snake.AddEffect(p.Kind, now)
		res.Collected = append(res.Collected, p.Kind)
	}
	return res
}

// TogglePause flips between Playing and Paused; in any other state it
// does nothing.
func (gs *GameSession) TogglePause() {
	switch gs.State {
	case StatePlaying:
		gs.State = StatePaused
	case StatePaused:
		gs.State = StatePlaying
	}
}
