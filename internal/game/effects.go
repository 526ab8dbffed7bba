package game

import "fmt"

// EffectKind enumerates the power-up effects. The set is closed: every
// kind must have an entry in the EffectTable, checked at startup.
type EffectKind int

const (
	EffectSpeed  EffectKind = iota // multiplies movement speed up
	EffectSlow                     // multiplies movement speed down
	EffectGhost                    // toroidal movement, no collisions
	EffectPoints                   // multiplies food score

	effectKindCount
)

func (k EffectKind) String() string {
	switch k {
	case EffectSpeed:
		return "speed"
	case EffectSlow:
		return "slow"
	case EffectGhost:
		return "ghost"
	case EffectPoints:
		return "points"
	}
	return "unknown"
}

// EffectKinds lists every kind in a stable order, for iteration.
func EffectKinds() []EffectKind {
	return []EffectKind{EffectSpeed, EffectSlow, EffectGhost, EffectPoints}
}

// EffectSpec is the per-kind tuning: how long a collected effect lasts
// and which factor it carries. Boost scales movement speed (speed and
// slow kinds), Multiplier scales food score (points kind).
type EffectSpec struct {
	Duration   float64 // ms
	Boost      float64
	Multiplier float64
}

// EffectTable maps every effect kind to its spec.
type EffectTable [effectKindCount]EffectSpec

// DefaultEffectTable returns the standard tuning.
func DefaultEffectTable() EffectTable {
	var t EffectTable
	t[EffectSpeed] = EffectSpec{Duration: 8000, Boost: 1.5}
	t[EffectSlow] = EffectSpec{Duration: 6000, Boost: 0.5}
	t[EffectGhost] = EffectSpec{Duration: 6000}
	t[EffectPoints] = EffectSpec{Duration: 10000, Multiplier: 2}
	return t
}

// Validate reports the first misconfigured kind. A kind without a
// positive duration, a speed-field kind without a boost, or a points
// kind without a multiplier refuses to start rather than misbehave
// mid-run.
func (t EffectTable) Validate() error {
	for _, k := range EffectKinds() {
		spec := t[k]
		if spec.Duration <= 0 {
			return fmt.Errorf("effect %q: duration must be positive, got %v", k, spec.Duration)
		}
		switch k {
		case EffectSpeed, EffectSlow:
			if spec.Boost <= 0 {
				return fmt.Errorf("effect %q: boost must be positive, got %v", k, spec.Boost)
			}
		case EffectPoints:
			if spec.Multiplier <= 0 {
				return fmt.Errorf("effect %q: multiplier must be positive, got %v", k, spec.Multiplier)
			}
		}
	}
	return nil
}

// Effect is one collected power-up instance. Immutable once created;
// active exactly while now - Start < Duration.
type Effect struct {
	Kind       EffectKind
	Start      float64 // ms
	Duration   float64 // ms
	Boost      float64
	Multiplier float64
}

// EffectStack holds every active effect, one list per kind. Entries of
// the same kind stack and expire independently: collecting a power-up
// twice runs both timers instead of replacing one.
//
// Every query prunes expired entries first, so callers never observe a
// stale effect and the lists cannot grow without bound.
type EffectStack struct {
	table EffectTable
	live  [effectKindCount][]Effect
}

func NewEffectStack(table EffectTable) *EffectStack {
	return &EffectStack{table: table}
}

// Add appends a fresh entry of the given kind starting at now.
func (s *EffectStack) Add(kind EffectKind, now float64) {
	spec := s.table[kind]
	s.live[kind] = append(s.live[kind], Effect{
		Kind:       kind,
		Start:      now,
		Duration:   spec.Duration,
		Boost:      spec.Boost,
		Multiplier: spec.Multiplier,
	})
}

// PruneExpired drops every entry whose duration has fully elapsed. An
// entry expiring exactly at now is dropped.
func (s *EffectStack) PruneExpired(now float64) {
	for k := range s.live {
		kept := s.live[k][:0]
		for _, e := range s.live[k] {
			if now-e.Start < e.Duration {
				kept = append(kept, e)
			}
		}
		s.live[k] = kept
	}
}

// Has reports whether at least one entry of kind is active at now.
func (s *EffectStack) Has(kind EffectKind, now float64) bool {
	s.PruneExpired(now)
	return len(s.live[kind]) > 0
}

// Count returns the number of active entries of kind.
func (s *EffectStack) Count(kind EffectKind, now float64) int {
	s.PruneExpired(now)
	return len(s.live[kind])
}

// TimeRemaining returns the longest remaining duration among active
// entries of kind, in ms. Zero when none are active.
func (s *EffectStack) TimeRemaining(kind EffectKind, now float64) float64 {
	s.PruneExpired(now)
	var best float64
	for _, e := range s.live[kind] {
		if rem := e.Start + e.Duration - now; rem > best {
			best = rem
		}
	}
	return best
}

// SpeedMultiplier returns the product of the boosts of every active
// speed-field entry. Speed and slow entries compose symmetrically, so
// a 1.5 boost and a 0.5 slow cancel to 0.75 of base.
func (s *EffectStack) SpeedMultiplier(now float64) float64 {
	s.PruneExpired(now)
	mult := 1.0
	for _, k := range []EffectKind{EffectSpeed, EffectSlow} {
		for _, e := range s.live[k] {
			mult *= e.Boost
		}
	}
	return mult
}

// PointsMultiplier returns the product of the multipliers of every
// active points entry, 1 when none are active. Stacked entries compose
// multiplicatively, the same rule speed effects follow.
func (s *EffectStack) PointsMultiplier(now float64) float64 {
	s.PruneExpired(now)
	mult := 1.0
	for _, e := range s.live[EffectPoints] {
		mult *= e.Multiplier
	}
	return mult
}

// Clear drops everything. Used by reset.
func (s *EffectStack) Clear() {
	for k := range s.live {
		s.live[k] = nil
	}
}
