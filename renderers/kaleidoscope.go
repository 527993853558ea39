package renderers

import (
	"math"

	"github.com/gostagecraft/stagecraft"
)

// Kaleidoscope wraps another renderer as its "cell", sampling it through
// a rotating/reflecting sector transform to produce an N-fold symmetric
// kaleidoscope image (spec.md §4.4, grounded on
// original_source/asciimatics/renderers/kaleidoscope.py). Since it
// rotates the backing cell, it operates on square pixels: each cell
// character is drawn twice side by side.
type Kaleidoscope struct {
	canvas   *stagecraft.Canvas
	cell     Renderer
	symmetry int
	rotation float64
}

// NewKaleidoscope creates a Kaleidoscope of the given size wrapping cell,
// with the given rotational symmetry (0 removes both mirrors, 1 removes
// one).
func NewKaleidoscope(height, width int, cell Renderer, symmetry int) *Kaleidoscope {
	return &Kaleidoscope{canvas: stagecraft.NewCanvas(width, height, height, false), cell: cell, symmetry: symmetry}
}

func (k *Kaleidoscope) MaxWidth() int   { return k.canvas.Width() }
func (k *Kaleidoscope) MaxHeight() int  { return k.canvas.Height() }
func (k *Kaleidoscope) Images() []Image { return []Image{k.render()} }

func (k *Kaleidoscope) RenderedText() ([]string, [][]stagecraft.Style) {
	im := k.render()
	return im.Lines, im.StyleMap
}

func rotatePoint(x, y, theta float64) (float64, float64) {
	return x*math.Cos(theta) - y*math.Sin(theta), x*math.Sin(theta) + y*math.Cos(theta)
}

func reflectPoint(x, y, theta float64) (float64, float64) {
	return x*math.Cos(2*theta) + y*math.Sin(2*theta), x*math.Sin(2*theta) - y*math.Cos(2*theta)
}

func (k *Kaleidoscope) render() Image {
	lines, styles := k.cell.RenderedText()
	w, h := k.canvas.Width(), k.canvas.Height()

	for dx := 0; dx < w/2; dx++ {
		for dy := 0; dy < h; dy++ {
			ox := float64(dx) - float64(w)/4
			oy := float64(dy) - float64(h)/2
			segment := math.Round(math.Atan2(oy, ox) * float64(k.symmetry) / math.Pi)

			var x1, y1 float64
			if int(segment)%2 == 0 {
				theta := 0.0
				if k.symmetry != 0 {
					theta = -segment * math.Pi / float64(k.symmetry)
				}
				x1, y1 = rotatePoint(ox, oy, theta)
			} else {
				x1, y1 = rotatePoint(ox, oy, (1-segment)*math.Pi/float64(k.symmetry))
				x1, y1 = reflectPoint(x1, y1, math.Pi/float64(k.symmetry)/2)
			}
			x1, y1 = rotatePoint(x1, y1, k.rotation)

			x2 := int(x1 + float64(k.cell.MaxWidth())/2)
			y2 := int(y1 + float64(k.cell.MaxHeight())/2)
			if y2 < 0 || y2 >= len(lines) {
				continue
			}
			row := []rune(lines[y2])
			if x2 < 0 || x2 >= len(row) {
				continue
			}
			style := stagecraft.DefaultStyle
			if y2 < len(styles) && x2 < len(styles[y2]) {
				style = styles[y2][x2]
			}
			ch := string(row[x2]) + string(row[x2])
			k.canvas.PrintAt(ch, dx*2, dy, style, false)
		}
	}
	k.rotation += math.Pi / 180
	return imageFromCanvas(k.canvas)
}
