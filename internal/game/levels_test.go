package game

import "testing"

func TestGetDifficultyPresets(t *testing.T) {
	easy := GetDifficulty("easy")
	if easy.BaseSpeed != 6 || easy.StartLength != 3 || easy.FoodPoints != 10 {
		t.Errorf("unexpected easy preset: %+v", easy)
	}

	normal := GetDifficulty("normal")
	if normal.BaseSpeed != 8 || normal.StartLength != 4 || normal.FoodPoints != 15 {
		t.Errorf("unexpected normal preset: %+v", normal)
	}
	if normal.Progression.PerFood != 0.5 || normal.Progression.Max != 18 {
		t.Errorf("unexpected normal progression: %+v", normal.Progression)
	}

	insane := GetDifficulty("insane")
	if insane.BaseSpeed != 14 || insane.MaxPickups != 3 {
		t.Errorf("unexpected insane preset: %+v", insane)
	}

	// Harder presets shorten the pickup lifetime.
	if !(GetDifficulty("hard").PowerUpTTL < easy.PowerUpTTL) {
		t.Error("hard pickups should expire faster than easy ones")
	}
}

func TestGetDifficultyLookup(t *testing.T) {
	// Names are case-insensitive.
	if got := GetDifficulty("INSANE").Name; got != "insane" {
		t.Errorf("expected insane, got %q", got)
	}

	// Empty and unknown names fall back to normal.
	if got := GetDifficulty("").Name; got != "normal" {
		t.Errorf("expected normal for empty name, got %q", got)
	}
	if got := GetDifficulty("nightmare").Name; got != "normal" {
		t.Errorf("expected normal fallback, got %q", got)
	}
}
