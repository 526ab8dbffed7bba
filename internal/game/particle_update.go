package game

import "math"

const (
	particleDragSpark = 3.2
	particleDragTrail = 1.6
	particleGravity   = 420.0 // px/s^2, shards only
)

// particleDecays holds exponential drag factors precomputed once per
// frame. Avoids calling math.Exp() inside the per-particle loop.
type particleDecays struct {
	spark float64 // exp(-particleDragSpark * dt)
	trail float64 // exp(-particleDragTrail * dt)
}

func computeDecays(dt float64) particleDecays {
	return particleDecays{
		spark: math.Exp(-particleDragSpark * dt),
		trail: math.Exp(-particleDragTrail * dt),
	}
}

// Update integrates motion and retires dead particles with swap
// removal, so the pool never reallocates mid-run.
func (ps *ParticleSystem) Update(dt float64) {
	if dt <= 0 {
		return
	}

	d := computeDecays(dt)

	for i := 0; i < len(ps.P); {
		p := &ps.P[i]

		p.Life += dt
		if p.Life >= p.MaxLife {
			ps.P[i] = ps.P[len(ps.P)-1]
			ps.P = ps.P[:len(ps.P)-1]
			continue
		}

		switch p.Kind {
		case ParticleSpark, ParticleGlow:
			p.VX *= d.spark
			p.VY *= d.spark
		case ParticleTrail:
			p.VX *= d.trail
			p.VY *= d.trail
		case ParticleShard:
			p.VX *= d.trail
			p.VY = p.VY*d.trail + particleGravity*dt
		}

		p.X += p.VX * dt
		p.Y += p.VY * dt
		i++
	}
}
