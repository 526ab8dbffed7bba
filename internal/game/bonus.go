package game

import "math"

// Pickup is a timed power-up lying on the board.
type Pickup struct {
	Kind    EffectKind
	Pos     Pos
	Born    float64 // ms, drives the pulse animation
	Expires float64 // ms
}

// PickupSystem owns the food cell and the power-up pickups. Spawning
// runs on its own deterministic RNG, reseeded per run, so a recorded
// run replays the exact same board.
type PickupSystem struct {
	grid Grid
	diff Difficulty
	rng  *Rand

	Food    Pos
	Pickups []Pickup

	spawnTimer float64 // ms until the next spawn attempt
	lastKind   EffectKind
	haveLast   bool
}

func NewPickupSystem(g Grid, diff Difficulty) *PickupSystem {
	return &PickupSystem{
		grid: g,
		diff: diff,
		rng:  NewRand(1),
	}
}

// Reset reseeds the RNG, clears the board, re-arms the spawn timer,
// and places the first food clear of the snake.
func (ps *PickupSystem) Reset(seed uint64, occupied []Pos) {
	ps.rng = NewRand(seed)
	ps.Pickups = ps.Pickups[:0]
	ps.haveLast = false
	ps.rearmSpawnTimer()
	ps.Food = Pos{X: -1, Y: -1}
	ps.PlaceFood(occupied)
}

func (ps *PickupSystem) rearmSpawnTimer() {
	ps.spawnTimer = ps.rng.RangeF(ps.diff.PowerUpMinDelay, ps.diff.PowerUpMaxDelay) * 1000
}

// PlaceFood moves the food to a free cell. On a board with no free
// cell left the food stays put; the run is effectively won anyway.
func (ps *PickupSystem) PlaceFood(occupied []Pos) {
	if p, ok := ps.freeCell(occupied); ok {
		ps.Food = p
	}
}

// Update expires timed-out pickups and runs the spawn timer. It
// returns the pickups that fizzled this frame so the loop can react.
func (ps *PickupSystem) Update(frameMS, now float64, occupied []Pos) []Pickup {
	var expired []Pickup
	kept := ps.Pickups[:0]
	for _, p := range ps.Pickups {
		if now >= p.Expires {
			expired = append(expired, p)
			continue
		}
		kept = append(kept, p)
	}
	ps.Pickups = kept

	ps.spawnTimer -= frameMS
	if ps.spawnTimer <= 0 {
		ps.rearmSpawnTimer()
		if len(ps.Pickups) < ps.diff.MaxPickups && ps.rng.Float64() < ps.diff.PowerUpChance {
			ps.spawnPickup(now, occupied)
		}
	}
	return expired
}

func (ps *PickupSystem) spawnPickup(now float64, occupied []Pos) {
	occ := append(append([]Pos(nil), occupied...), ps.Food)
	pos, ok := ps.freeCell(occ)
	if !ok {
		return
	}
	ps.Pickups = append(ps.Pickups, Pickup{
		Kind:    ps.pickKind(),
		Pos:     pos,
		Born:    now,
		Expires: now + ps.diff.PowerUpTTL*1000,
	})
}

// pickKind draws a weighted effect kind, avoiding an obvious repeat of
// the previous draw.
func (ps *PickupSystem) pickKind() EffectKind {
	table := []struct {
		kind   EffectKind
		weight int
	}{
		{EffectSpeed, 30},
		{EffectPoints, 30},
		{EffectGhost, 20},
		{EffectSlow, 20},
	}
	total := 0
	for _, w := range table {
		total += w.weight
	}
	for tries := 0; ; tries++ {
		roll := ps.rng.Intn(total)
		kind := table[0].kind
		for _, w := range table {
			if roll < w.weight {
				kind = w.kind
				break
			}
			roll -= w.weight
		}
		if !ps.haveLast || kind != ps.lastKind || tries >= 4 {
			ps.lastKind = kind
			ps.haveLast = true
			return kind
		}
	}
}

// freeCell picks a random cell not occupied by the snake, a pickup, or
// the food. Rejection sampling with a bounded retry, then a linear
// scan as the last resort on a crowded board.
func (ps *PickupSystem) freeCell(occupied []Pos) (Pos, bool) {
	taken := func(p Pos) bool {
		if p == ps.Food {
			return true
		}
		for _, q := range occupied {
			if q == p {
				return true
			}
		}
		for i := range ps.Pickups {
			if ps.Pickups[i].Pos == p {
				return true
			}
		}
		return false
	}
	for i := 0; i < 64; i++ {
		p := Pos{X: ps.rng.Intn(ps.grid.W), Y: ps.rng.Intn(ps.grid.H)}
		if !taken(p) {
			return p, true
		}
	}
	for y := 0; y < ps.grid.H; y++ {
		for x := 0; x < ps.grid.W; x++ {
			p := Pos{X: x, Y: y}
			if !taken(p) {
				return p, true
			}
		}
	}
	return Pos{}, false
}

// EatFoodAt consumes the food when head sits on it and respawns it
// somewhere free.
func (ps *PickupSystem) EatFoodAt(head Pos, occupied []Pos) bool {
	if head != ps.Food {
		return false
	}
	ps.PlaceFood(occupied)
	return true
}

// CollectAt removes and returns the pickup under head, if any.
func (ps *PickupSystem) CollectAt(head Pos) (Pickup, bool) {
	for i := range ps.Pickups {
		if ps.Pickups[i].Pos == head {
			p := ps.Pickups[i]
			ps.Pickups = append(ps.Pickups[:i], ps.Pickups[i+1:]...)
			return p, true
		}
	}
	return Pickup{}, false
}

// RenderData returns sprite data for the food and every pickup.
func (ps *PickupSystem) RenderData(now float64) []float32 {
	buf := make([]float32, 0, (len(ps.Pickups)+1)*8)

	// Food breathes slowly.
	fx, fy := CellPixel(ps.Food)
	fsize := float32(CellPx) * (0.52 + 0.05*float32(math.Sin(now*0.006)))
	fc := Palette.Food
	buf = append(buf, float32(fx), float32(fy), fsize,
		float32(fc.R)/255, float32(fc.G)/255, float32(fc.B)/255, 1, spriteShapeCircle)

	for i := range ps.Pickups {
		p := &ps.Pickups[i]
		x, y := CellPixel(p.Pos)
		age := (now - p.Born) * 0.001
		size := float32(CellPx) * (0.42 + 0.06*float32(math.Sin(age*5)))
		c := PickupColor(p.Kind)

		// Blink during the last two seconds before the TTL runs out.
		alpha := float32(1)
		if left := p.Expires - now; left < 2000 {
			if math.Mod(left, 300) < 150 {
				alpha = 0.35
			}
		}
		buf = append(buf, float32(x), float32(y), size,
			float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, alpha, spriteShapeCircle)
	}
	return buf
}

// GlowData returns additive halo sprites for the food and pickups.
func (ps *PickupSystem) GlowData(now float64) []float32 {
	buf := make([]float32, 0, (len(ps.Pickups)+1)*8)

	fx, fy := CellPixel(ps.Food)
	fc := Palette.Food
	fi := float32(0.16 + 0.05*math.Sin(now*0.004))
	buf = append(buf, float32(fx), float32(fy), float32(CellPx)*1.8,
		float32(fc.R)/255*fi, float32(fc.G)/255*fi, float32(fc.B)/255*fi, 1, spriteShapeGlow)

	for i := range ps.Pickups {
		p := &ps.Pickups[i]
		x, y := CellPixel(p.Pos)
		c := PickupColor(p.Kind)
		age := (now - p.Born) * 0.001
		in := float32(0.14 + 0.06*math.Sin(age*3))
		buf = append(buf, float32(x), float32(y), float32(CellPx)*2.1,
			float32(c.R)/255*in, float32(c.G)/255*in, float32(c.B)/255*in, 1, spriteShapeGlow)
	}
	return buf
}
