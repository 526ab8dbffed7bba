package game

import "testing"

func TestEffectExpiryBoundary(t *testing.T) {
	table := DefaultEffectTable()
	table[EffectGhost] = EffectSpec{Duration: 5000}
	s := NewEffectStack(table)

	s.Add(EffectGhost, 1000)

	// Active from the moment of collection.
	if !s.Has(EffectGhost, 1000) {
		t.Error("effect should be active at its start time")
	}
	if !s.Has(EffectGhost, 5999) {
		t.Error("effect should still be active one ms before expiry")
	}

	// The window is half-open: start+duration is already expired.
	if s.Has(EffectGhost, 6000) {
		t.Error("effect should be expired exactly at start+duration")
	}
	if s.Has(EffectGhost, 6001) {
		t.Error("effect should stay expired after its window")
	}
}

func TestEffectSpeedStacking(t *testing.T) {
	s := NewEffectStack(DefaultEffectTable())

	if got := s.SpeedMultiplier(0); got != 1.0 {
		t.Errorf("empty stack: expected multiplier 1, got %v", got)
	}

	// Two speed boosts compose multiplicatively.
	s.Add(EffectSpeed, 0)
	s.Add(EffectSpeed, 0)
	if got := s.SpeedMultiplier(100); got != 2.25 {
		t.Errorf("expected 1.5*1.5 = 2.25, got %v", got)
	}

	// A slow entry composes against them instead of replacing.
	s.Add(EffectSlow, 0)
	if got := s.SpeedMultiplier(100); got != 1.125 {
		t.Errorf("expected 2.25*0.5 = 1.125, got %v", got)
	}
}

func TestEffectSpeedSlowCancel(t *testing.T) {
	s := NewEffectStack(DefaultEffectTable())
	s.Add(EffectSpeed, 0)
	s.Add(EffectSlow, 0)

	// 1.5 boost against 0.5 slow lands below base speed.
	if got := s.SpeedMultiplier(100); got != 0.75 {
		t.Errorf("expected 0.75, got %v", got)
	}
}

func TestEffectStaggeredExpiry(t *testing.T) {
	s := NewEffectStack(DefaultEffectTable())

	// Speed runs 8000ms. Two entries collected apart expire apart.
	s.Add(EffectSpeed, 0)
	s.Add(EffectSpeed, 5000)

	if got := s.Count(EffectSpeed, 6000); got != 2 {
		t.Errorf("expected 2 active entries, got %d", got)
	}
	if got := s.SpeedMultiplier(6000); got != 2.25 {
		t.Errorf("expected 2.25 while both run, got %v", got)
	}

	// First entry lapses at 8000, the second keeps going alone.
	if got := s.Count(EffectSpeed, 9000); got != 1 {
		t.Errorf("expected 1 active entry, got %d", got)
	}
	if got := s.SpeedMultiplier(9000); got != 1.5 {
		t.Errorf("expected 1.5 after the first expires, got %v", got)
	}
}

func TestEffectPointsMultiplier(t *testing.T) {
	s := NewEffectStack(DefaultEffectTable())

	// No points effect means no scaling.
	if got := s.PointsMultiplier(0); got != 1.0 {
		t.Errorf("expected default multiplier 1, got %v", got)
	}

	s.Add(EffectPoints, 0)
	if got := s.PointsMultiplier(100); got != 2.0 {
		t.Errorf("expected 2, got %v", got)
	}

	// Stacked points entries multiply.
	s.Add(EffectPoints, 0)
	if got := s.PointsMultiplier(100); got != 4.0 {
		t.Errorf("expected 2*2 = 4, got %v", got)
	}
}

func TestEffectTimeRemaining(t *testing.T) {
	s := NewEffectStack(DefaultEffectTable())

	if got := s.TimeRemaining(EffectPoints, 0); got != 0 {
		t.Errorf("no entries: expected 0 remaining, got %v", got)
	}

	// Points runs 10000ms. The later entry owns the reported remainder.
	s.Add(EffectPoints, 0)
	s.Add(EffectPoints, 3000)
	if got := s.TimeRemaining(EffectPoints, 4000); got != 9000 {
		t.Errorf("expected 9000 remaining, got %v", got)
	}
}

func TestEffectClear(t *testing.T) {
	s := NewEffectStack(DefaultEffectTable())
	s.Add(EffectSpeed, 0)
	s.Add(EffectGhost, 0)

	s.Clear()

	if s.Has(EffectSpeed, 0) || s.Has(EffectGhost, 0) {
		t.Error("clear should drop every active effect")
	}
}

func TestEffectTableValidate(t *testing.T) {
	if err := DefaultEffectTable().Validate(); err != nil {
		t.Errorf("default table should validate, got %v", err)
	}

	// Zero duration is rejected.
	bad := DefaultEffectTable()
	bad[EffectGhost] = EffectSpec{}
	if err := bad.Validate(); err == nil {
		t.Error("zero duration should fail validation")
	}

	// A speed kind needs a boost factor.
	bad = DefaultEffectTable()
	bad[EffectSpeed] = EffectSpec{Duration: 8000}
	if err := bad.Validate(); err == nil {
		t.Error("speed effect without a boost should fail validation")
	}

	// A points kind needs a multiplier.
	bad = DefaultEffectTable()
	bad[EffectPoints] = EffectSpec{Duration: 10000}
	if err := bad.Validate(); err == nil {
		t.Error("points effect without a multiplier should fail validation")
	}
}
