package game

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Grid defaults and limits (in cells).
const (
	DefaultGridW = 24
	DefaultGridH = 18
	MinGridSide  = 8
	MaxGridSide  = 64
)

// Board geometry (in pixels). The window is sized from the grid, so
// one cell is always CellPx on screen.
const (
	CellPx     = 32
	BoardPadPx = 16
)

// InterpStep is the head glide progress added per render frame.
const InterpStep = 0.2

// Particles.
const MaxParticles = 4096

// Font atlas layout (generated 5x7 glyphs, ASCII 32-126).
const (
	FontCellW  = 6
	FontCellH  = 9
	FontCols   = 32
	FontRows   = 3
	FontAtlasW = FontCellW * FontCols // 192
	FontAtlasH = FontCellH * FontRows // 27
)

// Options are the runtime settings, read from the environment with
// sensible defaults. A bad combination refuses to start.
type Options struct {
	GridW, GridH int
	Difficulty   string
	Seed         uint64
	DBPath       string
	ReplayDir    string
	Player       string
	Mute         bool
}

// LoadOptions reads the SERPENT_* environment variables.
func LoadOptions() Options {
	opts := Options{
		GridW:      envInt("SERPENT_GRID_W", DefaultGridW),
		GridH:      envInt("SERPENT_GRID_H", DefaultGridH),
		Difficulty: getEnv("SERPENT_DIFFICULTY", "normal"),
		DBPath:     getEnv("SERPENT_DB", "serpent.db"),
		ReplayDir:  getEnv("SERPENT_REPLAY_DIR", "replays"),
		Player:     getEnv("SERPENT_PLAYER", "anon"),
		Mute:       envBool("SERPENT_MUTE", false),
	}
	if v := os.Getenv("SERPENT_SEED"); v != "" {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			opts.Seed = seed
		}
	}
	return opts
}

// Validate checks the options against the chosen difficulty and effect
// table. Called once at startup; errors are fatal there.
func (o Options) Validate(diff Difficulty, table EffectTable) error {
	if o.GridW < MinGridSide || o.GridH < MinGridSide {
		return fmt.Errorf("grid %dx%d too small, both sides must be at least %d", o.GridW, o.GridH, MinGridSide)
	}
	if o.GridW > MaxGridSide || o.GridH > MaxGridSide {
		return fmt.Errorf("grid %dx%d too large, both sides must be at most %d", o.GridW, o.GridH, MaxGridSide)
	}
	if diff.StartLength >= o.GridW/2 {
		return fmt.Errorf("start length %d does not fit a %d-wide grid", diff.StartLength, o.GridW)
	}
	if err := table.Validate(); err != nil {
		return fmt.Errorf("effect table: %w", err)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envBool(key string, def bool) bool {
	v := strings.ToLower(os.Getenv(key))
	if v == "" {
		return def
	}
	return v == "1" || v == "true" || v == "yes"
}
