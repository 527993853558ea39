package renderers

import (
	"github.com/gostagecraft/stagecraft"
)

// Typewriter wraps source and reveals one additional character per call to
// RenderedText, simulating a typewriter effect (spec.md §4.4 "chained/derived
// renderers", grounded on
// original_source/asciimatics/renderers/typewriter.py). Characters beyond
// the reveal point are rendered as spaces so layout never shifts.
type Typewriter struct {
	source  Renderer
	step    int
	stepInc int
}

// NewTypewriter creates a Typewriter over source, revealing stepInc
// characters per call (stepInc <= 0 defaults to 1).
func NewTypewriter(source Renderer, stepInc int) *Typewriter {
	if stepInc <= 0 {
		stepInc = 1
	}
	return &Typewriter{source: source, stepInc: stepInc}
}

func (t *Typewriter) MaxWidth() int  { return t.source.MaxWidth() }
func (t *Typewriter) MaxHeight() int { return t.source.MaxHeight() }

func (t *Typewriter) Images() []Image { return []Image{t.render()} }

func (t *Typewriter) RenderedText() ([]string, [][]stagecraft.Style) {
	im := t.render()
	return im.Lines, im.StyleMap
}

func (t *Typewriter) render() Image {
	lines, styles := t.source.RenderedText()
	out := make([]string, len(lines))
	revealed := t.step
	for y, line := range lines {
		runes := []rune(line)
		masked := make([]rune, len(runes))
		for x, r := range runes {
			if revealed > 0 {
				masked[x] = r
				revealed--
			} else {
				masked[x] = ' '
			}
		}
		out[y] = string(masked)
	}
	t.step += t.stepInc
	return Image{Lines: out, StyleMap: styles}
}

// Reset restarts the reveal from the beginning, so the same Typewriter can
// be replayed across a scene repeat.
func (t *Typewriter) Reset() { t.step = 0 }
