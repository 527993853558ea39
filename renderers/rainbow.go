package renderers

import (
	"fmt"
	"strings"
)

// rainbow16 is the colour cycle used when the terminal supports 16 or
// fewer colours (dim/bright pairs), matching
// original_source/asciimatics/renderers/rainbow.py's _16_palette.
var rainbow16 = []int{1, 1, 3, 3, 2, 2, 6, 6, 4, 4, 5, 5}

// rainbow256 is the colour cycle for 256-colour xterm mode, matching the
// original's _256_palette.
var rainbow256 = []int{
	196, 202, 208, 214, 220, 226,
	154, 118, 82, 46,
	47, 48, 49, 50, 51,
	45, 39, 33, 27, 21,
	57, 93, 129, 201,
	200, 199, 198, 197,
}

// NewRainbow wraps source, re-emitting its images with each character
// coloured from a rotating palette selected by (x+y) mod len(palette)
// (spec.md §4.4 "chained/derived renderers"). source must not itself use
// multi-colour `${...}` markup: NewRainbow converts every character to an
// explicit `${n,1}` escape, which would otherwise collide with markup
// already present (original_source/asciimatics/renderers/rainbow.py).
func NewRainbow(colours int, source Renderer) *Static {
	palette := rainbow16
	if colours > 16 {
		palette = rainbow256
	}
	var images []string
	for _, img := range source.Images() {
		var b strings.Builder
		for y, line := range img.Lines {
			for x, ch := range []rune(line) {
				idx := (x + y) % len(palette)
				fmt.Fprintf(&b, "${%d,1}%c", palette[idx], ch)
			}
			if y < len(img.Lines)-1 {
				b.WriteString("\n")
			}
		}
		images = append(images, b.String())
	}
	return NewStatic(images, nil)
}
