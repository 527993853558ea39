// Package renderers provides the static and dynamic producers of styled
// text frames spec.md §4.4 (C6) describes: pre-rendered image lists,
// per-call synthesis against a scratch Canvas, and the chained/derived
// renderers built on top of both. Grounded on
// original_source/asciimatics/renderers/*.py, one Go file per Python file
// where a one-to-one mapping exists.
package renderers

import (
	"github.com/mattn/go-runewidth"

	"github.com/gostagecraft/stagecraft"
)

// Image is one rendered frame: displayable lines plus a parallel per-cell
// style map (spec.md §3 "An image is (lines, style-map)").
type Image struct {
	Lines    []string
	StyleMap [][]stagecraft.Style
}

// Renderer is the contract every producer of styled text frames satisfies
// (spec.md §4.4). RenderedText is called once per frame by consumers and
// may advance internal animation state; Images returns every frame the
// renderer can produce (for genuinely dynamic renderers this is often
// just the next frame, same as RenderedText).
type Renderer interface {
	MaxWidth() int
	MaxHeight() int
	RenderedText() ([]string, [][]stagecraft.Style)
	Images() []Image
}

// lineWidth is the display width of one line, delegating to go-runewidth
// the way Canvas's PrintAt does (spec.md §9 "Unicode width... keep it
// swappable").
func lineWidth(s string) int {
	return runewidth.StringWidth(s)
}

// imageFromCanvas projects a scratch Canvas's current grid into an Image,
// the plumbing every DynamicRenderer uses to turn its draw calls into a
// (lines, style-map) pair (spec.md §4.4 Dynamic renderer contract).
// Width-continuation sentinel cells (the trailing half of a double-width
// glyph) render as a blank so they never leak the internal sentinel rune.
func imageFromCanvas(c *stagecraft.Canvas) Image {
	h := c.Height()
	w := c.Width()
	lines := make([]string, h)
	styleMap := make([][]stagecraft.Style, h)
	for y := 0; y < h; y++ {
		runes := make([]rune, w)
		styles := make([]stagecraft.Style, w)
		for x := 0; x < w; x++ {
			cell := c.GetFrom(x, y)
			ch := cell.Ch
			if ch == 0 || cell.IsWidthContinuation() {
				ch = ' '
			}
			runes[x] = ch
			styles[x] = cell.Style
		}
		lines[y] = string(runes)
		styleMap[y] = styles
	}
	return Image{Lines: lines, StyleMap: styleMap}
}
