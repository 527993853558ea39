package renderers

import (
	"strings"

	"github.com/gostagecraft/stagecraft"
)

// BarChart axis-drawing flags (spec.md §4.4 "render borders/axes/labels...
// according to style flags"), grounded on
// original_source/asciimatics/renderers/charts.py's NONE/X_AXIS/Y_AXIS/
// BOTH_AXES constants.
const (
	AxesNone = iota
	AxesX
	AxesY
	AxesBoth
)

// BarChart is a dynamic renderer drawing one horizontal bar per supplied
// sample function inside a bordered box (spec.md §4.4, Testable Property
// S4, grounded on
// original_source/asciimatics/renderers/charts.py's _BarChartBase /
// BarChart, trimmed to border+axis+bar geometry: gradients, intervals,
// labels and keys from the original are out of scope).
type BarChart struct {
	canvas  *stagecraft.Canvas
	width   int
	height  int
	fns     []func() float64
	axes    int
	maxVal  float64
	bg      stagecraft.Color
	barChar rune
}

// NewBarChart creates a BarChart of the given width/height, one bar per
// function in fns, scaled so maxVal fills the full bar track.
func NewBarChart(height, width int, fns []func() float64, axes int, maxVal float64) *BarChart {
	if maxVal <= 0 {
		maxVal = 100
	}
	return &BarChart{
		canvas:  stagecraft.NewCanvas(width, height, height, false),
		width:   width,
		height:  height,
		fns:     fns,
		axes:    axes,
		maxVal:  maxVal,
		barChar: '█',
	}
}

func (b *BarChart) MaxWidth() int   { return b.width }
func (b *BarChart) MaxHeight() int  { return b.height }
func (b *BarChart) Images() []Image { return []Image{b.render()} }

func (b *BarChart) RenderedText() ([]string, [][]stagecraft.Style) {
	im := b.render()
	return im.Lines, im.StyleMap
}

func (b *BarChart) render() Image {
	b.canvas.ClearBuffer(stagecraft.DefaultStyle, 0, 0, b.width, b.height)
	style := stagecraft.DefaultStyle

	// Outer double-line box (spec.md S4 "outer double-line box").
	box := strings.Split(drawBox(b.width, b.height, doubleBox), "\n")
	for y, line := range box {
		b.canvas.PrintAt(line, 0, y, style, false)
	}

	left, top := 1, 1
	right, bottom := b.width-2, b.height-2
	if b.axes == AxesY || b.axes == AxesBoth {
		for y := top; y <= bottom; y++ {
			b.canvas.PrintAt("│", left, y, style, false)
		}
		left++
	}
	if b.axes == AxesX || b.axes == AxesBoth {
		for x := left; x <= right; x++ {
			b.canvas.PrintAt("─", x, bottom, style, false)
		}
		bottom--
	}

	track := right - left + 1
	if track < 0 {
		track = 0
	}

	// One bar per function, each on its own row, separated by a blank
	// row (spec.md S4 "two horizontal bars... separated by one blank
	// row").
	row := top
	for _, fn := range b.fns {
		if row > bottom {
			break
		}
		v := fn()
		n := int(v / b.maxVal * float64(track))
		if n > track {
			n = track
		}
		if n < 0 {
			n = 0
		}
		bar := strings.Repeat(string(b.barChar), n)
		if bar != "" {
			b.canvas.PrintAt(bar, left, row, style, false)
		}
		row += 2
	}
	return imageFromCanvas(b.canvas)
}

// NewVBarChart returns a BarChart built exactly as NewBarChart builds it
// (grounded on the same charts.py VBarChart): its bars are horizontal,
// one row per function; it has no vertical bar layout.
func NewVBarChart(height, width int, fns []func() float64, axes int, maxVal float64) *BarChart {
	c := NewBarChart(height, width, fns, axes, maxVal)
	c.barChar = '█'
	return c
}

// String renders the current frame as a single debug string, convenient
// for table-driven tests comparing exact output (Testable Property S4).
func (b *BarChart) String() string {
	lines, _ := b.RenderedText()
	return strings.Join(lines, "\n")
}
