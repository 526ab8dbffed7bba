package game

import "testing"

func newTestSession(best int) (*GameSession, *Snake, *PickupSystem) {
	g := NewGrid(10, 10)
	diff := GetDifficulty("normal")
	snake := NewSnake(g, diff, DefaultEffectTable())
	pickups := NewPickupSystem(g, diff)
	sess := NewGameSession(best)
	sess.StartRun(diff, 123, snake, pickups, nil)
	return sess, snake, pickups
}

func TestSessionStartRun(t *testing.T) {
	sess, snake, pickups := newTestSession(40)

	if sess.State != StatePlaying {
		t.Errorf("expected playing state, got %v", sess.State)
	}
	if sess.RunID == "" {
		t.Error("start should assign a run id")
	}
	if sess.Score != 0 || sess.ClockMS != 0 {
		t.Errorf("expected a zeroed run, got score %d clock %v", sess.Score, sess.ClockMS)
	}
	if sess.Best != 40 {
		t.Errorf("best should carry across runs, got %d", sess.Best)
	}
	if snake.Head() != (Pos{5, 5}) {
		t.Errorf("snake should spawn at center, got %v", snake.Head())
	}
	if !NewGrid(10, 10).InBounds(pickups.Food) {
		t.Errorf("food should be placed, got %v", pickups.Food)
	}

	// A new run gets a new identity.
	prev := sess.RunID
	sess.StartRun(sess.Difficulty, 124, snake, pickups, nil)
	if sess.RunID == prev {
		t.Error("each run should get its own id")
	}
}

func TestSessionPauseFreezesClock(t *testing.T) {
	sess, _, _ := newTestSession(0)

	sess.AdvanceMS(100)
	if sess.ClockMS != 100 {
		t.Errorf("expected clock 100, got %v", sess.ClockMS)
	}

	// Paused frames do not reach the game clock, so effect timers and
	// the move gate all stand still.
	sess.TogglePause()
	if sess.State != StatePaused {
		t.Errorf("expected paused state, got %v", sess.State)
	}
	sess.AdvanceMS(100)
	if sess.ClockMS != 100 {
		t.Errorf("paused clock should not advance, got %v", sess.ClockMS)
	}

	sess.TogglePause()
	sess.AdvanceMS(50)
	if sess.ClockMS != 150 {
		t.Errorf("expected clock 150 after resume, got %v", sess.ClockMS)
	}
}

func TestSessionPauseOnlyWhileRunning(t *testing.T) {
	sess := NewGameSession(0)

	// Menu and game over ignore the pause key.
	sess.TogglePause()
	if sess.State != StateMenu {
		t.Errorf("pause should be a no-op in the menu, got %v", sess.State)
	}
	sess.State = StateGameOver
	sess.TogglePause()
	if sess.State != StateGameOver {
		t.Errorf("pause should be a no-op after game over, got %v", sess.State)
	}
}

func TestSessionScoring(t *testing.T) {
	sess, snake, pickups := newTestSession(0)

	// Arm the move timer, then put the food right in front of the
	// head with a points doubler running.
	sess.PlayTick(0, snake, pickups)
	pickups.Food = Pos{6, 5}
	snake.AddEffect(EffectPoints, 0)

	sess.AdvanceMS(125)
	res := sess.PlayTick(125, snake, pickups)

	if !res.Moved || !res.AteFood {
		t.Fatalf("expected a move onto the food, got %+v", res)
	}
	// Normal food is 15, doubled to 30.
	if res.Points != 30 {
		t.Errorf("expected 30 points, got %d", res.Points)
	}
	if res.FoodCell != (Pos{6, 5}) {
		t.Errorf("expected the eaten cell (6,5), got %v", res.FoodCell)
	}
	if sess.Score != 30 {
		t.Errorf("expected score 30, got %d", sess.Score)
	}
	if sess.FoodEaten != 1 {
		t.Errorf("expected food eaten 1, got %d", sess.FoodEaten)
	}
	if pickups.Food == (Pos{6, 5}) {
		t.Error("food should respawn elsewhere after being eaten")
	}
}

func TestSessionCollect(t *testing.T) {
	sess, snake, pickups := newTestSession(0)

	sess.PlayTick(0, snake, pickups)
	pickups.Food = Pos{0, 0}
	pickups.Pickups = append(pickups.Pickups[:0], Pickup{Kind: EffectGhost, Pos: Pos{6, 5}, Expires: 90000})

	sess.AdvanceMS(125)
	res := sess.PlayTick(125, snake, pickups)

	if len(res.Collected) != 1 || res.Collected[0] != EffectGhost {
		t.Fatalf("expected to collect ghost, got %+v", res.Collected)
	}
	if !snake.HasEffect(EffectGhost, sess.ClockMS) {
		t.Error("collected effect should be active on the snake")
	}
	if len(pickups.Pickups) != 0 {
		t.Error("collected pickup should leave the board")
	}
}

func TestSessionDeath(t *testing.T) {
	sess, snake, pickups := newTestSession(10)
	sess.Score = 50
	pickups.Food = Pos{0, 0}

	// Walk right into the wall: five moves from center on a 10-wide
	// grid put the head out of bounds.
	sess.PlayTick(0, snake, pickups)
	var died bool
	for i := 0; i < 5; i++ {
		sess.AdvanceMS(200)
		res := sess.PlayTick(200, snake, pickups)
		if res.Died {
			died = true
			break
		}
	}

	if !died {
		t.Fatal("expected the run to end at the wall")
	}
	if sess.State != StateGameOver {
		t.Errorf("expected game over, got %v", sess.State)
	}
	if sess.Best != 50 {
		t.Errorf("expected best raised to 50, got %d", sess.Best)
	}

	// The clock stops with the run.
	sess.AdvanceMS(500)
	if sess.ClockMS != 1000 {
		t.Errorf("expected clock frozen at 1000, got %v", sess.ClockMS)
	}
	if sess.Elapsed() != 1 {
		t.Errorf("expected 1s elapsed, got %v", sess.Elapsed())
	}
}
