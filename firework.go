package stagecraft

import "math"

// ringFireworkChars is the age-ordered glyph ramp for a ring firework's
// trail, from bright spark to faint dot (spec.md §4.5 "Particle
// systems", grounded on
// original_source/asciimatics/particles.py's RingFirework).
const ringFireworkChars = "*+:. "

// NewRingFirework builds a ParticleEmitter reproducing the classic
// firework exploding into a simple ring at (x, y), grounded on
// particles.py's RingFirework: 15 particles launched on each of the first
// 3 ticks, each
// flying outward at a random angle and slowing under simulated gravity.
func NewRingFirework(x, y float64, lifeTime int, colour Color) *ParticleEmitter {
	acceleration := 1.0 - 1.0/float64(lifeTime)
	rampColours := []Style{{FG: colour, Attr: AttrBold, BG: DefaultColor}, DefaultStyle}

	newParticle := func() *Particle {
		rng := RNG()
		direction := rng.Float64() * 2 * math.Pi
		return &Particle{
			X: x, Y: y,
			DX:      math.Sin(direction) * 3 * 8 / float64(lifeTime),
			DY:      math.Cos(direction) * 1.5 * 8 / float64(lifeTime),
			Glyphs:  ringFireworkChars,
			Colours: rampColours,
		}
	}

	update := func(p *Particle) (rune, int, int, Style, bool) {
		p.DY = p.DY*acceleration + 0.03
		p.DX = p.DX * acceleration
		p.X += p.DX
		p.Y += p.DY

		idx := (len(p.Colours) - 1) * p.Age / lifeTime
		if idx >= len(p.Colours) {
			idx = len(p.Colours) - 1
		}
		gi := (len(p.Glyphs) - 1) * p.Age / lifeTime
		if gi >= len(p.Glyphs) {
			gi = len(p.Glyphs) - 1
		}
		return rune(p.Glyphs[gi]), int(p.X), int(p.Y), p.Colours[idx], true
	}

	return NewParticleEmitter(15, newParticle, update, 3, lifeTime)
}
