package renderers

import (
	"math"

	"github.com/gostagecraft/stagecraft"
)

const plasmaGreyscale = " .:;rsA23hHG#9&@"

var plasmaPalette8 = []fireColour{
	{stagecraft.ColorBlue, stagecraft.AttrNormal},
	{stagecraft.ColorBlue, stagecraft.AttrNormal},
	{stagecraft.ColorMagenta, stagecraft.AttrNormal},
	{stagecraft.ColorMagenta, stagecraft.AttrNormal},
	{stagecraft.ColorRed, stagecraft.AttrNormal},
	{stagecraft.ColorRed, stagecraft.AttrBold},
}

var plasmaPalette256 = []fireColour{
	{18, 0}, {19, 0}, {20, 0}, {21, 0}, {57, 0}, {93, 0}, {129, 0}, {201, 0},
	{200, 0}, {199, 0}, {198, 0}, {197, 0}, {196, 0}, {196, 0}, {196, 0},
}

// Plasma renders the classic sum-of-sinusoids "plasma" effect (spec.md
// §4.4, grounded on
// original_source/asciimatics/renderers/plasma.py): four sine waves
// radiating from distinct centres are summed, normalised to [0,1], and
// mapped through a greyscale glyph ramp and a colour gradient.
type Plasma struct {
	canvas  *stagecraft.Canvas
	palette []fireColour
	t       int
}

// NewPlasma creates a Plasma renderer of the given size; numColours
// selects the 8- or 256-colour gradient.
func NewPlasma(height, width, numColours int) *Plasma {
	palette := plasmaPalette8
	if numColours >= 256 {
		palette = plasmaPalette256
	}
	return &Plasma{canvas: stagecraft.NewCanvas(width, height, height, false), palette: palette}
}

func (p *Plasma) MaxWidth() int  { return p.canvas.Width() }
func (p *Plasma) MaxHeight() int { return p.canvas.Height() }
func (p *Plasma) Images() []Image { return []Image{p.render()} }

func (p *Plasma) RenderedText() ([]string, [][]stagecraft.Style) {
	im := p.render()
	return im.Lines, im.StyleMap
}

func (p *Plasma) render() Image {
	w, h := p.canvas.Width(), p.canvas.Height()
	p.t++
	t := float64(p.t)

	wave := func(x1, y1, xp, yp, n float64) float64 {
		dx := x1 - float64(w)*xp
		dy := y1 - float64(h)*yp
		return math.Sin(math.Sqrt(dx*dx+4*dy*dy) * math.Pi / n)
	}

	for y := 0; y < h-1; y++ {
		for x := 0; x < w-1; x++ {
			fx, fy := float64(x), float64(y)
			v := math.Abs(wave(fx+t/3, fy, 0.25, 1.0/3, 15)+
				wave(fx, fy, 0.125, 0.2, 11)+
				wave(fx, fy+t/3, 0.5, 0.2, 13)+
				wave(fx, fy, 0.75, 0.8, 13)) / 4.0
			idx := int(math.Round(v * float64(len(p.palette)-1)))
			colour := p.palette[minInt(len(p.palette)-1, maxInt(0, idx))]
			chIdx := int(float64(len(plasmaGreyscale)-1) * v)
			ch := plasmaGreyscale[minInt(len(plasmaGreyscale)-1, maxInt(0, chIdx))]
			style := stagecraft.Style{FG: colour.FG, Attr: colour.Attr, BG: 0}
			p.canvas.PrintAt(string(ch), x, y, style, false)
		}
	}
	return imageFromCanvas(p.canvas)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
