package game

import "math"

// SpawnFoodBurst scatters sparks from an eaten food cell.
func (ps *ParticleSystem) SpawnFoodBurst(x, y float64, col RGB) {
	r := ps.rng
	for i := 0; i < 26; i++ {
		ang := r.RangeF(0, math.Pi*2)
		spd := r.RangeF(40, 220)
		jit := col.Add(r.Range(-18, 18), r.Range(-18, 18), r.Range(-18, 18))
		ps.Add(Particle{
			X: x + r.RangeF(-3, 3), Y: y + r.RangeF(-3, 3),
			VX: math.Cos(ang) * spd, VY: math.Sin(ang) * spd,
			Size: r.RangeF(2.5, 5), MaxLife: r.RangeF(0.25, 0.6),
			Col: jit, Kind: ParticleSpark,
		})
	}
	// Soft flash under the burst.
	ps.Add(Particle{
		X: x, Y: y,
		Size: float64(CellPx) * 1.6, MaxLife: 0.22,
		Col: col, Kind: ParticleGlow,
	})
}

// SpawnPickupBurst pops a collected power-up in its kind colour.
func (ps *ParticleSystem) SpawnPickupBurst(x, y float64, kind EffectKind) {
	r := ps.rng
	col := PickupColor(kind)
	for i := 0; i < 18; i++ {
		ang := r.RangeF(0, math.Pi*2)
		spd := r.RangeF(30, 160)
		ps.Add(Particle{
			X: x, Y: y,
			VX: math.Cos(ang) * spd, VY: math.Sin(ang) * spd,
			Size: r.RangeF(2, 4), MaxLife: r.RangeF(0.3, 0.7),
			Col: col, Kind: ParticleSpark,
		})
	}
	ps.Add(Particle{
		X: x, Y: y,
		Size: float64(CellPx) * 2.0, MaxLife: 0.3,
		Col: col, Kind: ParticleGlow,
	})
}

// SpawnPickupFizzle marks a pickup timing out unclaimed.
func (ps *ParticleSystem) SpawnPickupFizzle(x, y float64, kind EffectKind) {
	r := ps.rng
	col := PickupColor(kind)
	for i := 0; i < 8; i++ {
		ps.Add(Particle{
			X: x + r.RangeF(-4, 4), Y: y + r.RangeF(-4, 4),
			VX: r.RangeF(-20, 20), VY: r.RangeF(-40, -10),
			Size: r.RangeF(1.5, 3), MaxLife: r.RangeF(0.3, 0.6),
			Col: col, Kind: ParticleTrail,
		})
	}
}

// SpawnGhostTrail leaves a faint afterimage at the head while ghost
// mode is active. Called once per discrete move.
func (ps *ParticleSystem) SpawnGhostTrail(x, y float64) {
	r := ps.rng
	ps.Add(Particle{
		X: x + r.RangeF(-2, 2), Y: y + r.RangeF(-2, 2),
		VX: r.RangeF(-6, 6), VY: r.RangeF(-6, 6),
		Size: float64(CellPx) * 0.8, MaxLife: r.RangeF(0.25, 0.45),
		Col: Palette.GhostBody, Kind: ParticleTrail,
	})
}

// SpawnDeathBurst blows one snake cell apart. The loop calls it for
// every segment when a run ends.
func (ps *ParticleSystem) SpawnDeathBurst(x, y float64) {
	r := ps.rng
	for i := 0; i < 7; i++ {
		ang := r.RangeF(0, math.Pi*2)
		spd := r.RangeF(60, 260)
		col := Palette.Body.Add(r.Range(-30, 30), r.Range(-30, 30), r.Range(-30, 30))
		ps.Add(Particle{
			X: x, Y: y,
			VX: math.Cos(ang) * spd, VY: math.Sin(ang)*spd - 40,
			Size: r.RangeF(3, 6), MaxLife: r.RangeF(0.5, 1.1),
			Col: col, Kind: ParticleShard,
		})
	}
}
