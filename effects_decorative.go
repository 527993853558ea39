package stagecraft

import (
	"math"
)

// TextRenderer is the minimal shape Print/Cycle/BannerText/Mirage/Sprite
// need from a stagecraft/renderers.Renderer, declared locally to avoid an
// import cycle (stagecraft/renderers already imports this package for
// Canvas/Style). Any concrete renderer satisfies this structurally.
type TextRenderer interface {
	MaxWidth() int
	MaxHeight() int
	RenderedText() ([]string, [][]Style)
}

// Print draws a renderer's current image at (x, y) every four frames,
// optionally clearing it on the effect's last frame (spec.md §4.5,
// grounded on original_source/asciimatics/effects.py's Print). When
// Centred is set, x is ignored and the image is centred on the canvas.
type Print struct {
	BaseEffect
	Renderer    TextRenderer
	X, Y        int
	Centred     bool
	Style       Style
	Clear       bool
	Transparent bool
}

// NewPrint creates a Print effect; pass centred=true to ignore x and
// centre on the canvas each frame.
func NewPrint(r TextRenderer, x, y int, centred bool, style Style, clear, transparent bool) *Print {
	return &Print{Renderer: r, X: x, Y: y, Centred: centred, Style: style, Clear: clear, Transparent: transparent}
}

func (p *Print) Update(canvas *Canvas, frameNo int) {
	x := p.X
	if p.Centred {
		x = (canvas.Width() - p.Renderer.MaxWidth()) / 2
	}
	if frameNo == p.StopFrameNum-1 && p.Clear {
		blank := make([]rune, p.Renderer.MaxWidth())
		for i := range blank {
			blank[i] = ' '
		}
		for i := 0; i < p.Renderer.MaxHeight(); i++ {
			canvas.PrintAt(string(blank), x, p.Y+i, DefaultStyle, false)
		}
		return
	}
	if frameNo%4 != 0 {
		return
	}
	lines, _ := p.Renderer.RenderedText()
	for i, line := range lines {
		canvas.PrintAt(line, x, p.Y+i, p.Style, p.Transparent)
	}
}

// Cycle centres a renderer's text on a row and rotates the foreground
// colour index every other frame (spec.md §4.5, grounded on
// effects.py's Cycle).
type Cycle struct {
	BaseEffect
	Renderer TextRenderer
	Y        int
	colour   Color
}

// NewCycle creates a Cycle effect over the given renderer, centred on row y.
func NewCycle(r TextRenderer, y int) *Cycle { return &Cycle{Renderer: r, Y: y} }

func (c *Cycle) Update(canvas *Canvas, frameNo int) {
	if frameNo%2 == 0 {
		return
	}
	lines, _ := c.Renderer.RenderedText()
	y := c.Y
	for _, line := range lines {
		if y >= 0 && y < canvas.Height() {
			x := (canvas.Width() - lineWidth(line)) / 2
			canvas.PrintAt(line, x, y, Style{FG: c.colour, Attr: AttrNormal, BG: DefaultColor}, false)
		}
		y++
	}
	c.colour = (c.colour + 1) % 8
}

func lineWidth(s string) int { return len([]rune(s)) }

// Scroll scrolls the canvas up by one line every rate frames (spec.md
// §4.5, grounded on effects.py's Scroll).
type Scroll struct {
	BaseEffect
	Rate       int
	lastFrame  int
}

// NewScroll creates a Scroll effect scrolling once every rate frames.
func NewScroll(rate int) *Scroll { return &Scroll{Rate: rate} }

func (s *Scroll) Reset() { s.lastFrame = 0 }

func (s *Scroll) Update(canvas *Canvas, frameNo int) {
	if frameNo-s.lastFrame >= s.Rate {
		canvas.Scroll(1)
		s.lastFrame = frameNo
	}
}

// BannerText scrolls a renderer's text horizontally across the canvas
// once, like a marquee (spec.md §4.5, grounded on effects.py's
// BannerText). stop_frame is computed from the renderer's width and the
// canvas width, matching the original.
type BannerText struct {
	BaseEffect
	Renderer TextRenderer
	Y        int
	Style    Style

	textPos int
	scrPos  int
	width   int // canvas width captured at Reset
}

// NewBannerText creates a BannerText effect. width is the canvas width
// used to compute StopFrame; callers typically pass the Screen's width.
func NewBannerText(r TextRenderer, y int, style Style, width int) *BannerText {
	b := &BannerText{Renderer: r, Y: y, Style: style, width: width}
	b.StopFrameNum = r.MaxWidth() + width
	return b
}

func (b *BannerText) Reset() {
	b.textPos = 0
	b.scrPos = b.width
}

func (b *BannerText) Update(canvas *Canvas, frameNo int) {
	if b.scrPos == 0 && b.textPos < b.Renderer.MaxWidth() {
		b.textPos++
	}
	if b.scrPos > 0 {
		b.scrPos--
	}
	lines, _ := b.Renderer.RenderedText()
	for offset, line := range lines {
		line += " "
		runes := []rune(line)
		endPos := len(runes)
		if limit := b.textPos + canvas.Width() - b.scrPos - 1; limit < endPos {
			endPos = limit
		}
		start := b.textPos
		if start > len(runes) {
			start = len(runes)
		}
		if endPos < start {
			endPos = start
		}
		canvas.PrintAt(string(runes[start:endPos]), b.scrPos, b.Y+offset, b.Style, false)
	}
}

// Mirage randomly reveals ~15% of a renderer's non-space characters per
// tick, centred on the canvas (spec.md §4.5, grounded on effects.py's
// Mirage). Draws from the process-wide seeded RNG for deterministic
// replay.
type Mirage struct {
	BaseEffect
	Renderer TextRenderer
	Y        int
	Style    Style
}

// NewMirage creates a Mirage effect over the given renderer.
func NewMirage(r TextRenderer, y int, style Style) *Mirage {
	return &Mirage{Renderer: r, Y: y, Style: style}
}

func (m *Mirage) Update(canvas *Canvas, frameNo int) {
	if frameNo%2 == 0 {
		return
	}
	lines, _ := m.Renderer.RenderedText()
	y := m.Y
	rng := RNG()
	for _, line := range lines {
		if y >= 0 && y < canvas.Height() {
			runes := []rune(line)
			x := (canvas.Width() - len(runes)) / 2
			for _, c := range runes {
				if c != ' ' && rng.Float64() > 0.85 {
					canvas.PrintAt(string(c), x, y, m.Style, false)
				}
				x++
			}
		}
		y++
	}
}

// star is one twinkling point for the Stars effect.
const starChars = "..+..   ...x...  ...*...         "

type star struct {
	x, y, cycle int
	oldChar     rune
}

func (s *star) respawn(canvas *Canvas, rng interface{ IntN(int) int }) {
	s.cycle = rng.IntN(len(starChars))
	for {
		s.x = rng.IntN(max1(canvas.Width()))
		s.y = rng.IntN(max1(canvas.Height()))
		if canvas.GetFrom(s.x, s.y).Ch == ' ' {
			break
		}
	}
	s.oldChar = ' '
}

func (s *star) update(canvas *Canvas) {
	cur := canvas.GetFrom(s.x, s.y)
	if cur.Ch != s.oldChar && cur.Ch != ' ' {
		s.respawn(canvas, RNG())
	}
	s.cycle++
	if s.cycle >= len(starChars) {
		s.cycle = 0
	}
	nc := rune(starChars[s.cycle])
	if nc == s.oldChar {
		return
	}
	canvas.PrintAt(string(nc), s.x, s.y, DefaultStyle, false)
	s.oldChar = nc
}

func max1(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// Stars adds count twinkling points to the canvas and keeps them lit for
// the effect's lifetime (spec.md §4.5, grounded on effects.py's
// Stars/_Star). Deterministic under a seeded RNG.
type Stars struct {
	BaseEffect
	Count int
	stars []*star
}

// NewStars creates a Stars effect with count twinkling points.
func NewStars(count int) *Stars { return &Stars{Count: count} }

func (s *Stars) Reset() {
	s.stars = nil
}

func (s *Stars) Update(canvas *Canvas, frameNo int) {
	if s.stars == nil {
		rng := RNG()
		for i := 0; i < s.Count; i++ {
			st := &star{}
			st.respawn(canvas, rng)
			s.stars = append(s.stars, st)
		}
	}
	for _, st := range s.stars {
		st.update(canvas)
	}
}

// trail is one falling column for the Matrix effect.
type trail struct {
	x, y, life, rate int
	clear            bool
}

func newTrail(canvas *Canvas, x int) *trail {
	t := &trail{x: x, clear: true}
	t.maybeReseed(canvas, true)
	return t
}

func (t *trail) maybeReseed(canvas *Canvas, normal bool) {
	t.y += t.rate
	t.life--
	if t.life <= 0 {
		if normal {
			t.clear = !t.clear
		} else {
			t.clear = true
		}
		rng := RNG()
		t.rate = 1 + rng.IntN(2)
		if t.clear {
			t.y = 0
			t.life = canvas.Height() / max1(t.rate)
		} else {
			t.y = rng.IntN(max1(canvas.Height() / 2))
			t.life = max1(rng.IntN(max1(canvas.Height()-t.y))) / max1(t.rate)
		}
	}
}

func (t *trail) update(canvas *Canvas, reseed bool) {
	rng := RNG()
	if t.clear {
		for i := 0; i < 3; i++ {
			canvas.PrintAt(" ", t.x, canvas.StartLine()+t.y+i, DefaultStyle, false)
		}
		t.maybeReseed(canvas, reseed)
	} else {
		glyph := func() string { return string(rune(32 + rng.IntN(95))) }
		for i := 0; i < 3; i++ {
			canvas.PrintAt(glyph(), t.x, canvas.StartLine()+t.y+i, Style{FG: ColorGreen, Attr: AttrNormal, BG: DefaultColor}, false)
		}
		for i := 4; i < 6; i++ {
			canvas.PrintAt(glyph(), t.x, canvas.StartLine()+t.y+i, Style{FG: ColorGreen, Attr: AttrBold, BG: DefaultColor}, false)
		}
		t.maybeReseed(canvas, reseed)
	}
}

// Matrix draws falling green letter trails, one per column (spec.md §4.5,
// grounded on effects.py's Matrix/_Trail).
type Matrix struct {
	BaseEffect
	trails []*trail
}

// NewMatrix creates a Matrix effect, optionally bounded by stopFrame (0
// for unbounded).
func NewMatrix(stopFrame int) *Matrix {
	return &Matrix{BaseEffect: BaseEffect{StopFrameNum: stopFrame}}
}

func (m *Matrix) Reset() { m.trails = nil }

func (m *Matrix) Update(canvas *Canvas, frameNo int) {
	if m.trails == nil {
		for x := 0; x < canvas.Width(); x++ {
			m.trails = append(m.trails, newTrail(canvas, x))
		}
	}
	if frameNo%2 != 0 {
		return
	}
	reseed := m.StopFrameNum == 0 || m.StopFrameNum-frameNo > 100
	for _, t := range m.trails {
		t.update(canvas, reseed)
	}
}

// Snow drops low-density flakes down the canvas with per-column drift
// (spec.md §4.5; stagecraft-original, since effects.py has no Snow
// class — no original_source grounding exists for this effect beyond the
// Matrix/_Trail falling-column pattern it's modelled on).
type Snow struct {
	BaseEffect
	flakes []snowFlake
}

type snowFlake struct{ x, y, speed int }

// NewSnow creates a Snow effect with count flakes.
func NewSnow(count int) *Snow { return &Snow{flakes: make([]snowFlake, count)} }

func (s *Snow) Reset() {
	rng := RNG()
	for i := range s.flakes {
		s.flakes[i] = snowFlake{speed: 1 + rng.IntN(2)}
	}
}

func (s *Snow) Update(canvas *Canvas, frameNo int) {
	rng := RNG()
	for i := range s.flakes {
		f := &s.flakes[i]
		if f.y > 0 && f.y <= canvas.Height() {
			canvas.PrintAt(" ", f.x, f.y-1, DefaultStyle, false)
		}
		if f.y >= canvas.Height() || f.x == 0 && f.y == 0 && rng.IntN(3) != 0 {
			f.x = rng.IntN(max1(canvas.Width()))
			f.y = 0
		} else {
			f.y += f.speed
		}
		if f.y < canvas.Height() {
			canvas.PrintAt("*", f.x, f.y, DefaultStyle, false)
		}
	}
}

// Wipe reveals/conceals the background one row at a time from top to
// bottom (spec.md §4.5, grounded on effects.py's Wipe).
type Wipe struct {
	BaseEffect
	y int
}

// NewWipe creates a Wipe effect, optionally bounded by stopFrame.
func NewWipe(stopFrame int) *Wipe {
	return &Wipe{BaseEffect: BaseEffect{StopFrameNum: stopFrame}}
}

func (w *Wipe) Reset() { w.y = 0 }

func (w *Wipe) Update(canvas *Canvas, frameNo int) {
	if frameNo%2 != 0 {
		return
	}
	if w.y >= 0 && w.y < canvas.Height() {
		blank := make([]rune, canvas.Width())
		for i := range blank {
			blank[i] = ' '
		}
		canvas.PrintAt(string(blank), 0, w.y, DefaultStyle, false)
	}
	w.y++
}

// Julia renders a re-centred Julia-set fractal, colouring each cell by
// escape-iteration count (spec.md §4.5, SPEC_FULL.md §6.4; stagecraft-
// original algorithm — effects.py has no Julia class to ground it on, so
// this follows the standard escape-time fractal formula z(n+1) = z(n)^2
// + c with a fixed constant c, remapped to the canvas each call so the
// image drifts).
type Julia struct {
	BaseEffect
	c      complex128
	frame  int
}

// NewJulia creates a Julia effect with the given complex constant c.
func NewJulia(c complex128) *Julia { return &Julia{c: c} }

func (j *Julia) Update(canvas *Canvas, frameNo int) {
	j.frame++
	w, h := canvas.Width(), canvas.Height()
	const maxIter = 32
	const ramp = " .:-=+*#%@"
	scale := 2.0 + 0.5*math.Sin(float64(j.frame)/37)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			zr := (float64(x)/float64(w)-0.5)*scale*2
			zi := (float64(y)/float64(h)-0.5)*scale
			z := complex(zr, zi)
			it := 0
			for ; it < maxIter; it++ {
				z = z*z + j.c
				if real(z)*real(z)+imag(z)*imag(z) > 4 {
					break
				}
			}
			idx := it * (len(ramp) - 1) / maxIter
			canvas.PrintAt(string(ramp[idx]), x, y, DefaultStyle, false)
		}
	}
}

// cogGlyphs is the rotating gear glyph cycle for Cog.
var cogGlyphs = []rune{'|', '/', '-', '\\'}

// Cog draws a rotating ASCII gear glyph at the given position, advancing
// one frame of rotation per update (spec.md §4.5, SPEC_FULL.md §6.4;
// stagecraft-original, modelled on the same fixed-glyph-cycle idea as
// effects.py's _Star cycling but with no class of its own in the
// original to ground it on).
type Cog struct {
	BaseEffect
	X, Y  int
	frame int
}

// NewCog creates a Cog effect at (x, y).
func NewCog(x, y int) *Cog { return &Cog{X: x, Y: y} }

func (c *Cog) Update(canvas *Canvas, frameNo int) {
	canvas.PrintAt(string(cogGlyphs[c.frame%len(cogGlyphs)]), c.X, c.Y, DefaultStyle, false)
	c.frame++
}

// Clock draws an analogue clock face, redrawing only once every
// frameUpdateCount ticks so it advances roughly once a second at the
// scene's configured frame rate (spec.md §4.5, SPEC_FULL.md §6.4;
// stagecraft-original — no Clock class exists in effects.py).
type Clock struct {
	BaseEffect
	X, Y, Radius int
	second       int
}

// NewClock creates a Clock effect centred at (x, y) with the given
// radius, redrawing every ticksPerSecond frames (FrameUpdateCount).
func NewClock(x, y, radius, ticksPerSecond int) *Clock {
	if ticksPerSecond <= 0 {
		ticksPerSecond = 1
	}
	return &Clock{X: x, Y: y, Radius: radius, BaseEffect: BaseEffect{UpdateEvery: ticksPerSecond}}
}

func (c *Clock) Update(canvas *Canvas, frameNo int) {
	canvas.PrintAt("o", c.X, c.Y, DefaultStyle, false)
	angle := float64(c.second%60) * math.Pi / 30
	hx := c.X + int(math.Round(float64(c.Radius)*math.Sin(angle)))
	hy := c.Y - int(math.Round(float64(c.Radius)*math.Cos(angle)/2))
	canvas.PrintAt("*", hx, hy, DefaultStyle, false)
	c.second++
}

// Background washes a region with a fixed colour and fill character
// (spec.md §4.5, SPEC_FULL.md §6.4; stagecraft-original — a static wash
// has no dedicated class in effects.py, whose Screen.clear already
// covers the equivalent use case procedurally rather than as an Effect).
type Background struct {
	BaseEffect
	Style Style
	Char  rune
}

// NewBackground creates a Background effect filling the whole canvas with
// char in the given style every frame.
func NewBackground(style Style, char rune) *Background {
	if char == 0 {
		char = ' '
	}
	return &Background{Style: style, Char: char}
}

func (b *Background) Update(canvas *Canvas, frameNo int) {
	canvas.ClearBuffer(b.Style, 0, 0, canvas.Width(), canvas.Height())
	if b.Char != ' ' {
		row := make([]rune, canvas.Width())
		for i := range row {
			row[i] = b.Char
		}
		for y := 0; y < canvas.Height(); y++ {
			canvas.PrintAt(string(row), 0, y, b.Style, false)
		}
	}
}

// RandomNoise flickers a random glyph at each cell with the given
// density, each frame (spec.md §4.5, SPEC_FULL.md §6.4; stagecraft-
// original, the per-cell analogue of effects.py's Stars but covering
// every cell instead of a sparse set — no RandomNoise class exists in
// the original).
type RandomNoise struct {
	BaseEffect
	Density float64
}

// NewRandomNoise creates a RandomNoise effect with the given per-cell
// flicker probability per frame.
func NewRandomNoise(density float64) *RandomNoise { return &RandomNoise{Density: density} }

func (r *RandomNoise) Update(canvas *Canvas, frameNo int) {
	rng := RNG()
	for y := 0; y < canvas.Height(); y++ {
		for x := 0; x < canvas.Width(); x++ {
			if rng.Float64() < r.Density {
				canvas.PrintAt(string(rune(33+rng.IntN(93))), x, y, DefaultStyle, false)
			}
		}
	}
}

// Sprite follows a Path, selecting one of {default,left,right,up,down}
// renderers based on the direction sampled every third update (it draws
// on even frames only, so every sixth frame), clearing its
// previous pose before drawing the new one (spec.md §4.5, grounded on
// effects.py's Sprite).
type Sprite struct {
	BaseEffect
	Renderers map[string]TextRenderer
	Path      interface {
		NextPos() (Point, bool)
		IsFinished() bool
		Reset()
	}
	Style Style

	dirCount                int
	dirX, dirY               float64
	haveDir                  bool
	oldDirection             string
	oldX, oldY               int
	oldWidth, oldHeight      int
	haveOld                  bool
}

// NewSprite creates a Sprite effect following path, drawing from
// renderers keyed by direction name ("default" is required; the others
// are optional fallbacks to "default").
func NewSprite(renderers map[string]TextRenderer, path interface {
	NextPos() (Point, bool)
	IsFinished() bool
	Reset()
}, style Style) *Sprite {
	return &Sprite{Renderers: renderers, Path: path, Style: style}
}

func (s *Sprite) Reset() {
	s.dirCount = 0
	s.haveDir = false
	s.oldDirection = ""
	s.haveOld = false
	s.Path.Reset()
}

func (s *Sprite) Update(canvas *Canvas, frameNo int) {
	if frameNo%2 != 0 {
		return
	}
	if s.haveOld {
		blank := make([]rune, s.oldWidth)
		for i := range blank {
			blank[i] = ' '
		}
		for i := 0; i < s.oldHeight; i++ {
			canvas.PrintAt(string(blank), s.oldX, s.oldY+i, DefaultStyle, false)
		}
	}

	pos, ok := s.Path.NextPos()
	if !ok {
		return
	}
	x, y := pos.X, pos.Y

	direction := s.oldDirection
	if s.dirCount%3 == 0 {
		direction = ""
		if s.haveDir {
			dx := (x - s.dirX) / 2
			dy := y - s.dirY
			switch {
			case dx*dx > dy*dy:
				if dx < 0 {
					direction = "left"
				} else {
					direction = "right"
				}
			case dx == 0 && dy == 0:
				direction = "default"
			default:
				if dy < 0 {
					direction = "up"
				} else {
					direction = "down"
				}
			}
		}
		s.dirX, s.dirY = x, y
		s.haveDir = true
	}
	s.dirCount++

	r, ok := s.Renderers[direction]
	if !ok {
		r = s.Renderers["default"]
		direction = "default"
	}
	if r == nil {
		return
	}

	drawX := int(x) - r.MaxWidth()/2
	drawY := int(y) - r.MaxHeight()/2

	if s.Path.IsFinished() {
		s.Path.Reset()
	}

	lines, _ := r.RenderedText()
	for i, line := range lines {
		canvas.PrintAt(line, drawX, drawY+i, s.Style, false)
	}

	s.oldWidth, s.oldHeight = r.MaxWidth(), r.MaxHeight()
	s.oldDirection = direction
	s.oldX, s.oldY = drawX, drawY
	s.haveOld = true
}
