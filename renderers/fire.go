package renderers

import (
	"strings"

	"github.com/gostagecraft/stagecraft"
)

// fireColour is one entry of a heat-to-glyph colour ramp.
type fireColour struct {
	FG   stagecraft.Color
	Attr stagecraft.Attribute
}

var fireColours16 = []fireColour{
	{stagecraft.ColorRed, stagecraft.AttrNormal},
	{stagecraft.ColorRed, stagecraft.AttrNormal},
	{stagecraft.ColorRed, stagecraft.AttrNormal},
	{stagecraft.ColorRed, stagecraft.AttrNormal},
	{stagecraft.ColorRed, stagecraft.AttrNormal},
	{stagecraft.ColorRed, stagecraft.AttrNormal},
	{stagecraft.ColorRed, stagecraft.AttrNormal},
	{stagecraft.ColorRed, stagecraft.AttrBold},
	{stagecraft.ColorRed, stagecraft.AttrBold},
	{stagecraft.ColorRed, stagecraft.AttrBold},
	{stagecraft.ColorRed, stagecraft.AttrBold},
	{stagecraft.ColorYellow, stagecraft.AttrBold},
	{stagecraft.ColorYellow, stagecraft.AttrBold},
	{stagecraft.ColorYellow, stagecraft.AttrBold},
	{stagecraft.ColorYellow, stagecraft.AttrBold},
	{stagecraft.ColorWhite, stagecraft.AttrBold},
}

var fireColours256 = []fireColour{
	{0, 0}, {52, 0}, {88, 0}, {124, 0}, {160, 0}, {196, 0}, {202, 0}, {208, 0},
	{214, 0}, {220, 0}, {226, 0}, {227, 0}, {228, 0}, {229, 0}, {230, 0}, {231, 0},
}

const fireGlyphRamp = " ...::$$$&&&@@"

// Fire simulates convective flames rising from a heat-source emitter mask
// (spec.md §4.4, Testable Property n/a, grounded on
// original_source/asciimatics/renderers/fire.py). Heat diffuses upward
// each frame via convection and cools via neighbour averaging; the heat
// value at each cell selects a colour from a 16-step ramp and a glyph
// from the 14-step fireGlyphRamp.
type Fire struct {
	canvas *stagecraft.Canvas

	emitter   string
	intensity float64
	spotHeat  int
	colours   []fireColour
	bgOnly    bool

	buffer     [][]int
	emitX, emitY int
}

// NewFire creates a Fire renderer of the given size. emitter is a
// (possibly multi-line) mask whose non-space characters are heat-source
// cells, centred at the bottom of the box. intensity is the probability
// [0,1] each emitter cell ignites per frame; spot is the max heat an
// ignition adds; numColours selects the 16- or 256-colour ramp; bg draws
// only background colour washes instead of glyphs.
func NewFire(height, width int, emitter string, intensity float64, spot, numColours int, bg bool) *Fire {
	colours := fireColours16
	if numColours >= 256 {
		colours = fireColours256
	}
	f := &Fire{
		canvas:    stagecraft.NewCanvas(width, height, height, false),
		emitter:   emitter,
		intensity: intensity,
		spotHeat:  spot,
		colours:   colours,
		bgOnly:    bg,
	}
	bufHeight := width * 2
	if bufHeight < height {
		bufHeight = height
	}
	f.buffer = make([][]int, bufHeight)
	for i := range f.buffer {
		f.buffer[i] = make([]int, width)
	}

	lines := strings.Split(emitter, "\n")
	eWidth := 0
	for _, l := range lines {
		if n := len(l); n > eWidth {
			eWidth = n
		}
	}
	f.emitX = (width - eWidth) / 2
	f.emitY = height - len(lines)
	return f
}

func (f *Fire) MaxWidth() int  { return f.canvas.Width() }
func (f *Fire) MaxHeight() int { return f.canvas.Height() }

func (f *Fire) Images() []Image { return []Image{f.render()} }

func (f *Fire) RenderedText() ([]string, [][]stagecraft.Style) {
	im := f.render()
	return im.Lines, im.StyleMap
}

func (f *Fire) render() Image {
	width := f.canvas.Width()
	rows := len(f.buffer)

	// Convection: shift every row up by one.
	for y := 0; y < rows-1; y++ {
		f.buffer[y] = f.buffer[y+1]
	}
	f.buffer[rows-1] = make([]int, width)

	// Seed new hot spots at the emitter mask.
	x, y := f.emitX, f.emitY
	rng := stagecraft.RNG()
	for _, c := range f.emitter {
		if c != ' ' && c != '\n' && rng.Float64() < f.intensity {
			if y >= 0 && y < rows && x >= 0 && x < width {
				f.buffer[y][x] += 1 + rng.IntN(max1(f.spotHeat))
			}
		}
		if c == '\n' {
			x = f.emitX
			y++
		} else {
			x++
		}
	}

	// Seed a few cooler spots.
	for i := 0; i < width/2; i++ {
		ry := rng.IntN(max1(f.canvas.Height()))
		rx := rng.IntN(max1(width))
		f.buffer[ry][rx] -= 10
	}

	// Cool via neighbour averaging.
	for yy := 0; yy < rows; yy++ {
		for xx := 0; xx < width; xx++ {
			v := f.buffer[yy][xx]
			if yy < rows-1 {
				v += f.buffer[yy+1][xx]
				if xx > 0 {
					v += f.buffer[yy][xx-1]
				}
				if xx < width-1 {
					v += f.buffer[yy][xx+1]
				}
			}
			f.buffer[yy][xx] = v / 4
		}
	}

	f.canvas.ClearBuffer(stagecraft.DefaultStyle, 0, 0, f.canvas.Width(), f.canvas.Height())
	for xx := 0; xx < width; xx++ {
		for yy := 0; yy < rows; yy++ {
			heat := f.buffer[yy][xx]
			if heat <= 0 {
				continue
			}
			colour := f.colours[minInt(len(f.colours)-1, heat)]
			ch := fireGlyphRamp[minInt(len(fireGlyphRamp)-1, heat)]
			bg := stagecraft.Color(0)
			glyph := string(ch)
			if f.bgOnly {
				glyph = " "
				bg = colour.FG
			}
			style := stagecraft.Style{FG: colour.FG, Attr: colour.Attr, BG: bg}
			f.canvas.PrintAt(glyph, xx, yy, style, false)
		}
	}
	return imageFromCanvas(f.canvas)
}

func max1(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
