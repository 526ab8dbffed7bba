package game

import "testing"

func TestOptionsValidate(t *testing.T) {
	diff := GetDifficulty("normal")
	table := DefaultEffectTable()

	good := Options{GridW: 24, GridH: 18}
	if err := good.Validate(diff, table); err != nil {
		t.Errorf("default-sized grid should validate, got %v", err)
	}

	// Both sides are bounded.
	small := Options{GridW: 4, GridH: 18}
	if err := small.Validate(diff, table); err == nil {
		t.Error("undersized grid should fail validation")
	}
	large := Options{GridW: 24, GridH: 100}
	if err := large.Validate(diff, table); err == nil {
		t.Error("oversized grid should fail validation")
	}

	// The spawn row must leave room ahead of the snake: a length-4
	// snake does not fit an 8-wide grid.
	tight := Options{GridW: 8, GridH: 18}
	if err := tight.Validate(diff, table); err == nil {
		t.Error("start length should not fit half the grid width")
	}

	// A broken effect table is caught here too.
	bad := DefaultEffectTable()
	bad[EffectGhost] = EffectSpec{}
	if err := good.Validate(diff, bad); err == nil {
		t.Error("invalid effect table should fail validation")
	}
}

func TestLoadOptionsDefaults(t *testing.T) {
	for _, k := range []string{
		"SERPENT_GRID_W", "SERPENT_GRID_H", "SERPENT_DIFFICULTY",
		"SERPENT_DB", "SERPENT_REPLAY_DIR", "SERPENT_PLAYER",
		"SERPENT_MUTE", "SERPENT_SEED",
	} {
		t.Setenv(k, "")
	}

	opts := LoadOptions()
	if opts.GridW != DefaultGridW || opts.GridH != DefaultGridH {
		t.Errorf("expected default grid %dx%d, got %dx%d", DefaultGridW, DefaultGridH, opts.GridW, opts.GridH)
	}
	if opts.Difficulty != "normal" {
		t.Errorf("expected default difficulty normal, got %q", opts.Difficulty)
	}
	if opts.Player != "anon" || opts.DBPath != "serpent.db" {
		t.Errorf("unexpected defaults: %+v", opts)
	}
	if opts.Mute || opts.Seed != 0 {
		t.Errorf("expected mute off and zero seed, got %+v", opts)
	}
}

func TestLoadOptionsFromEnv(t *testing.T) {
	t.Setenv("SERPENT_GRID_W", "32")
	t.Setenv("SERPENT_GRID_H", "20")
	t.Setenv("SERPENT_DIFFICULTY", "hard")
	t.Setenv("SERPENT_PLAYER", "kim")
	t.Setenv("SERPENT_MUTE", "1")
	t.Setenv("SERPENT_SEED", "77")

	opts := LoadOptions()
	if opts.GridW != 32 || opts.GridH != 20 {
		t.Errorf("expected grid 32x20, got %dx%d", opts.GridW, opts.GridH)
	}
	if opts.Difficulty != "hard" || opts.Player != "kim" {
		t.Errorf("unexpected options: %+v", opts)
	}
	if !opts.Mute {
		t.Error("expected mute on")
	}
	if opts.Seed != 77 {
		t.Errorf("expected seed 77, got %d", opts.Seed)
	}

	// Garbage numbers fall back instead of exploding.
	t.Setenv("SERPENT_GRID_W", "banana")
	if got := LoadOptions().GridW; got != DefaultGridW {
		t.Errorf("expected default width on a bad value, got %d", got)
	}
}
