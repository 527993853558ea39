package renderers

import "strings"

// boxChars is the glyph set NewBox/NewDoubleBox draw with.
type boxChars struct {
	tl, tr, bl, br, h, v rune
}

var (
	asciiBox  = boxChars{'+', '+', '+', '+', '-', '|'}
	singleBox = boxChars{'┌', '┐', '└', '┘', '─', '│'}
	doubleBox = boxChars{'╔', '╗', '╚', '╝', '═', '║'}
)

func drawBox(width, height int, c boxChars) string {
	var b strings.Builder
	b.WriteRune(c.tl)
	b.WriteString(strings.Repeat(string(c.h), width-2))
	b.WriteRune(c.tr)
	for y := 1; y < height-1; y++ {
		b.WriteString("\n")
		b.WriteRune(c.v)
		b.WriteString(strings.Repeat(" ", width-2))
		b.WriteRune(c.v)
	}
	b.WriteString("\n")
	b.WriteRune(c.bl)
	b.WriteString(strings.Repeat(string(c.h), width-2))
	b.WriteRune(c.br)
	return b.String()
}

// NewBox renders a simple bordered box (spec.md §4.4's "Box" chained
// renderer, grounded on original_source/asciimatics/renderers/box.py).
// uni selects Unicode single-line box-drawing glyphs over ASCII.
func NewBox(width, height int, uni bool) *Static {
	c := asciiBox
	if uni {
		c = singleBox
	}
	return NewStatic([]string{drawBox(width, height, c)}, nil)
}

// NewDoubleBox is NewBox with double-line Unicode box-drawing glyphs, the
// same doubleBox glyph set BarChart passes to drawBox for its border
// (SPEC_FULL.md §6.3).
func NewDoubleBox(width, height int) *Static {
	return NewStatic([]string{drawBox(width, height, doubleBox)}, nil)
}
