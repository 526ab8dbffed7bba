package game

import (
	"fmt"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rs/zerolog/log"
)

// RunDesktop opens the window and runs the game until the player quits.
func RunDesktop(opts Options) error {
	runtime.LockOSThread()

	diff := GetDifficulty(opts.Difficulty)
	table := DefaultEffectTable()
	if err := opts.Validate(diff, table); err != nil {
		return err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	store, err := OpenScoreStore(opts.DBPath)
	if err != nil {
		return fmt.Errorf("score store: %w", err)
	}
	defer store.Close()
	best, err := store.Best()
	if err != nil {
		log.Warn().Err(err).Msg("could not load best score")
	}

	winW := opts.GridW*CellPx + 2*BoardPadPx
	winH := opts.GridH*CellPx + 2*BoardPadPx
	window, err := initWindow("serpent", winW, winH)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	if err := InitAudio(); err != nil {
		log.Warn().Err(err).Msg("audio init failed, continuing without sound")
	} else {
		SetMuted(opts.Mute)
		go func() {
			time.Sleep(100 * time.Millisecond) // let audio context initialize
			StartMenuMusic()
		}()
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.ClearColor(
		float32(Palette.Background.R)/255.0,
		float32(Palette.Background.G)/255.0,
		float32(Palette.Background.B)/255.0,
		1.0,
	)

	grid := NewGrid(opts.GridW, opts.GridH)
	rend, err := NewRenderer(grid)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()
	if err := rend.InitFont(); err != nil {
		return fmt.Errorf("font: %w", err)
	}

	// Systems.
	snake := NewSnake(grid, diff, table)
	pickups := NewPickupSystem(grid, diff)
	particles := NewParticleSystem(MaxParticles, splitmix64(seed^0xBEAD))
	session := NewGameSession(best)
	session.Difficulty = diff
	input := NewInput()

	bus := NewEventBus()
	bus.Subscribe(EventRunStarted, func(Event) {
		log.Info().Str("run", session.RunID).Str("difficulty", session.Difficulty.Name).Msg("run started")
	})
	bus.Subscribe(EventFoodEaten, func(e Event) {
		PlaySound(SoundEat)
		x, y := CellPixel(e.Cell)
		particles.SpawnFoodBurst(x, y, Palette.Food)
	})
	bus.Subscribe(EventPowerUpCollected, func(e Event) {
		switch e.Kind {
		case EffectGhost:
			PlaySound(SoundGhost)
		case EffectSlow:
			PlaySound(SoundSlow)
		default:
			PlaySound(SoundPowerUp)
		}
		x, y := CellPixel(e.Cell)
		particles.SpawnPickupBurst(x, y, e.Kind)
	})
	bus.Subscribe(EventPowerUpExpired, func(e Event) {
		x, y := CellPixel(e.Cell)
		particles.SpawnPickupFizzle(x, y, e.Kind)
	})
	bus.Subscribe(EventSnakeDied, func(Event) {
		PlaySound(SoundDeath)
	})

	log.Info().
		Str("difficulty", diff.Name).
		Int("grid_w", opts.GridW).
		Int("grid_h", opts.GridH).
		Uint64("seed", seed).
		Msg("starting serpent")

	var rec *Recorder
	runIdx := 0

	// Reusable render buffers.
	var spriteBuf, haloBuf, glowBuf, normBuf []float32

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		if input.JustPressed(window, glfw.KeyM) {
			SetMuted(!Muted())
		}
		if input.JustPressed(window, glfw.KeyP) {
			session.TogglePause()
		}

		switch session.State {
		case StateMenu, StateGameOver:
			if input.JustPressed(window, glfw.KeySpace) {
				PlaySound(SoundMenuSelect)
				StartGameMusic()
				runIdx++
				runSeed := splitmix64(seed + uint64(runIdx))
				session.StartRun(diff, runSeed, snake, pickups, particles)
				rec = NewRecorder(session.RunID, diff, grid, runSeed)
				bus.Emit(Event{Type: EventRunStarted})
			}

		case StatePlaying:
			for _, d := range input.PressedDirections(window) {
				snake.SetDirection(d)
				rec.Input(d)
				PlaySoundWithGain(SoundTurn, 0.5)
			}

			frameMS := dt * 1000
			session.AdvanceMS(frameMS)
			rec.Frame(frameMS)
			res := session.PlayTick(frameMS, snake, pickups)

			if res.AteFood {
				bus.Emit(Event{Type: EventFoodEaten, Cell: res.FoodCell, Amount: res.Points})
			}
			for _, kind := range res.Collected {
				bus.Emit(Event{Type: EventPowerUpCollected, Cell: snake.Head(), Kind: kind})
			}
			for _, p := range res.Expired {
				bus.Emit(Event{Type: EventPowerUpExpired, Cell: p.Pos, Kind: p.Kind})
			}
			if res.Moved && snake.HasEffect(EffectGhost, session.ClockMS) {
				x, y := CellPixel(snake.Head())
				particles.SpawnGhostTrail(x, y)
			}
			if res.Died {
				for _, seg := range snake.Segments() {
					x, y := CellPixel(seg)
					particles.SpawnDeathBurst(x, y)
				}
				bus.Emit(Event{Type: EventSnakeDied, Amount: session.Score})
				finishRun(opts, session, snake, store, rec)
				rec = nil
				StopMusic()
				go func() {
					time.Sleep(650 * time.Millisecond)
					PlaySound(SoundGameOver)
					time.Sleep(1400 * time.Millisecond)
					StartMenuMusic()
				}()
			}

		case StatePaused:
			// Simulation is frozen; only rendering below.
		}

		particles.Update(dt)

		// Render.
		rend.BeginFrame(fbW, fbH)
		rend.DrawBoard(winW, winH)

		if session.State != StateMenu {
			spriteBuf = pickups.RenderData(session.ClockMS)
			spriteBuf = SnakeRenderData(spriteBuf, snake, session.ClockMS)
			if len(spriteBuf) > 0 {
				rend.DrawSprites(spriteBuf, winW, winH)
			}

			haloBuf = pickups.GlowData(session.ClockMS)
			haloBuf = SnakeGlowData(haloBuf, snake, session.ClockMS)
			if len(haloBuf) > 0 {
				rend.DrawGlowSprites(haloBuf, winW, winH)
			}
		}

		glowBuf, normBuf = particles.RenderData(glowBuf, normBuf)
		if len(normBuf) > 0 {
			rend.DrawSprites(normBuf, winW, winH)
		}
		if len(glowBuf) > 0 {
			rend.DrawGlowSprites(glowBuf, winW, winH)
		}

		RenderHUD(rend, session, snake, winW, winH)
		window.SwapBuffers()
	}
	return nil
}

// finishRun persists the score and replay for a run that just ended.
func finishRun(opts Options, session *GameSession, snake *Snake, store *ScoreStore, rec *Recorder) {
	row := ScoreRow{
		ID:         session.RunID,
		Player:     opts.Player,
		Score:      session.Score,
		FoodEaten:  snake.FoodEaten,
		DurationMS: int64(session.ClockMS),
		Difficulty: session.Difficulty.Name,
		GridW:      opts.GridW,
		GridH:      opts.GridH,
	}
	if err := store.Insert(row); err != nil {
		log.Error().Err(err).Msg("score insert failed")
	}
	if rows, err := store.Top(5); err == nil {
		session.TopRows = rows
	}

	rep := rec.Finish(session.Score, snake.Len(), snake.FoodEaten)
	if path, err := SaveReplay(rep, opts.ReplayDir); err != nil {
		log.Error().Err(err).Msg("replay save failed")
	} else {
		log.Info().Str("path", path).Msg("replay saved")
	}

	log.Info().
		Int("score", session.Score).
		Int("food", snake.FoodEaten).
		Float64("seconds", session.Elapsed()).
		Msg("run over")
}
