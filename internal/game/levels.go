package game

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// Difficulty bundles the per-preset tuning: base movement speed and
// its food-driven progression, spawn layout, food value, and power-up
// pacing.
type Difficulty struct {
	Name        string
	BaseSpeed   float64 // cells/sec
	Progression SpeedProgression
	StartLength int
	StartDir    Dir
	FoodPoints  int

	PowerUpChance   float64 // chance a spawn attempt produces a pickup
	PowerUpMinDelay float64 // seconds between spawn attempts
	PowerUpMaxDelay float64
	PowerUpTTL      float64 // seconds an unclaimed pickup stays up
	MaxPickups      int
}

// GetDifficulty returns the preset for a name, case-insensitive.
// Unknown names log a warning and fall back to normal.
func GetDifficulty(name string) Difficulty {
	switch strings.ToLower(name) {
	case "easy":
		return Difficulty{
			Name:            "easy",
			BaseSpeed:       6,
			Progression:     SpeedProgression{Enabled: true, PerFood: 0.25, Max: 14},
			StartLength:     3,
			StartDir:        DirRight,
			FoodPoints:      10,
			PowerUpChance:   0.75,
			PowerUpMinDelay: 4,
			PowerUpMaxDelay: 9,
			PowerUpTTL:      12,
			MaxPickups:      2,
		}
	case "", "normal":
		return Difficulty{
			Name:            "normal",
			BaseSpeed:       8,
			Progression:     SpeedProgression{Enabled: true, PerFood: 0.5, Max: 18},
			StartLength:     4,
			StartDir:        DirRight,
			FoodPoints:      15,
			PowerUpChance:   0.65,
			PowerUpMinDelay: 5,
			PowerUpMaxDelay: 10,
			PowerUpTTL:      10,
			MaxPickups:      2,
		}
	case "hard":
		return Difficulty{
			Name:            "hard",
			BaseSpeed:       11,
			Progression:     SpeedProgression{Enabled: true, PerFood: 0.6, Max: 22},
			StartLength:     4,
			StartDir:        DirRight,
			FoodPoints:      20,
			PowerUpChance:   0.55,
			PowerUpMinDelay: 6,
			PowerUpMaxDelay: 12,
			PowerUpTTL:      8,
			MaxPickups:      3,
		}
	case "insane":
		return Difficulty{
			Name:            "insane",
			BaseSpeed:       14,
			Progression:     SpeedProgression{Enabled: true, PerFood: 0.75, Max: 26},
			StartLength:     5,
			StartDir:        DirRight,
			FoodPoints:      30,
			PowerUpChance:   0.5,
			PowerUpMinDelay: 6,
			PowerUpMaxDelay: 14,
			PowerUpTTL:      7,
			MaxPickups:      3,
		}
	default:
		log.Warn().Str("difficulty", name).Msg("unknown difficulty, using normal")
		return GetDifficulty("normal")
	}
}
