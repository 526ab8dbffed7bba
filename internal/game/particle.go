package game

type ParticleKind uint8

const (
	ParticleSpark ParticleKind = iota // food and pickup burst shards
	ParticleGlow                      // additive soft light
	ParticleTrail                     // ghost afterimages, expiry fizzles
	ParticleShard                     // death debris, falls under gravity
)

type Particle struct {
	X, Y   float64 // screen pixels
	VX, VY float64

	Size float64 // pixels

	Life    float64
	MaxLife float64

	Col  RGB
	Kind ParticleKind
}

// ParticleSystem is a fixed-capacity pool. When full, new particles
// overwrite the oldest slots in a circle rather than being dropped.
// Purely visual; nothing in the game rules reads it.
type ParticleSystem struct {
	Max    int
	P      []Particle
	rng    *Rand
	ovrIdx int // circular overwrite index when full
}

func NewParticleSystem(maxParticles int, seed uint64) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = MaxParticles
	}
	return &ParticleSystem{
		Max: maxParticles,
		P:   make([]Particle, 0, maxParticles),
		rng: NewRand(seed),
	}
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
	ps.ovrIdx = 0
}

func (ps *ParticleSystem) Add(p Particle) {
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	// Circular overwrite.
	if ps.ovrIdx >= ps.Max {
		ps.ovrIdx = 0
	}
	ps.P[ps.ovrIdx] = p
	ps.ovrIdx++
}

// RenderData splits particles into glow (additive) and normal (alpha
// blend) buffers. Format: [x, y, size, r, g, b, a, shape] * N. The
// buffers are reused across frames by the caller.
func (ps *ParticleSystem) RenderData(glowBuf, normBuf []float32) ([]float32, []float32) {
	glowBuf = glowBuf[:0]
	normBuf = normBuf[:0]

	for i := range ps.P {
		p := &ps.P[i]
		t := clamp(p.Life/p.MaxLife, 0, 1)

		col := p.Col
		a := 1.0 - t
		size := p.Size

		switch p.Kind {
		case ParticleSpark:
			col = lerpRGB(p.Col, Palette.Background, t*0.7)
		case ParticleGlow:
			a = (1.0 - t) * 1.15
		case ParticleTrail:
			a = (1.0 - t) * 0.5
			size *= 1.0 + t*0.6
		case ParticleShard:
			a = 1.0 - t*t
		}
		a = clamp(a, 0, 1)
		if a <= 0 {
			continue
		}

		rc := float32(col.R) / 255.0
		gc := float32(col.G) / 255.0
		bc := float32(col.B) / 255.0
		ac := float32(a)

		if p.Kind == ParticleGlow || p.Kind == ParticleTrail {
			// Additive: pre-multiply colour by alpha.
			rc *= ac
			gc *= ac
			bc *= ac
			glowBuf = append(glowBuf, float32(p.X), float32(p.Y), float32(size), rc, gc, bc, ac, spriteShapeGlow)
		} else {
			normBuf = append(normBuf, float32(p.X), float32(p.Y), float32(size), rc, gc, bc, ac, spriteShapeSquare)
		}
	}
	return glowBuf, normBuf
}
