package stagecraft

// Particle is one live particle tracked by a ParticleEmitter: a position,
// velocity, age, and the glyph/colour ramps it cycles through as it ages
// (spec.md §4.5 "Particle systems", grounded on
// original_source/asciimatics/particles.py's `_Particle`).
type Particle struct {
	X, Y   float64
	DX, DY float64
	Age    int
	Glyphs string
	Colours []Style

	lastX, lastY int
	lastDrawn    bool
	parm         any
}

// Parm is a free-form slot for an emitter's update function to stash
// per-particle state (e.g. an explosion's acceleration curve).
func (p *Particle) Parm() any       { return p.parm }
func (p *Particle) SetParm(v any)   { p.parm = v }

// ParticleUpdate advances one particle by one tick, returning the glyph,
// position, and style to draw (or ok=false to draw nothing this tick).
type ParticleUpdate func(p *Particle) (ch rune, x, y int, style Style, ok bool)

// NewParticleFunc is how a ParticleEmitter asks its owner for a freshly
// spawned particle.
type NewParticleFunc func() *Particle

// ParticleEmitter spawns particles each tick for `spawn` ticks and
// advances/draws/reaps them every frame until each particle exceeds its
// lifetime (spec.md §4.5, grounded on
// original_source/asciimatics/particles.py's Particles engine).
type ParticleEmitter struct {
	BaseEffect
	CountPerTick int
	NewParticle  NewParticleFunc
	Advance      ParticleUpdate
	Spawn        int
	LifeTime     int

	particles []*Particle
	timeLeft  int
}

// NewParticleEmitter creates an emitter spawning countPerTick particles
// per tick for spawn ticks, each living lifeTime ticks and advanced via
// update.
func NewParticleEmitter(countPerTick int, newParticle NewParticleFunc, update ParticleUpdate, spawn, lifeTime int) *ParticleEmitter {
	return &ParticleEmitter{CountPerTick: countPerTick, NewParticle: newParticle, Advance: update, Spawn: spawn, LifeTime: lifeTime}
}

func (e *ParticleEmitter) Reset() {
	e.particles = nil
	e.timeLeft = e.Spawn
}

func (e *ParticleEmitter) Update(canvas *Canvas, frameNo int) {
	if e.timeLeft > 0 {
		e.timeLeft--
		for i := 0; i < e.CountPerTick; i++ {
			e.particles = append(e.particles, e.NewParticle())
		}
	}

	alive := e.particles[:0]
	for _, p := range e.particles {
		if p.lastDrawn {
			canvas.PrintAt(" ", p.lastX, p.lastY, DefaultStyle, false)
		}
		if p.Age < e.LifeTime {
			ch, x, y, style, ok := e.Advance(p)
			if ok {
				canvas.PrintAt(string(ch), x, y, style, false)
				p.lastX, p.lastY, p.lastDrawn = x, y, true
			} else {
				p.lastDrawn = false
			}
			p.Age++
			alive = append(alive, p)
		}
	}
	e.particles = alive
}
