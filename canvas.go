package stagecraft

import (
	"math"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/mattn/go-runewidth"
)

// Canvas is the logical 2-D buffer with a scrolling viewport that every
// drawable writes to (spec.md §4.1, C2). It owns two grids: current,
// which every write goes to, and lastFlushed, mutated only by Refresh.
type Canvas struct {
	width, height int // visible size
	bufferHeight  int
	startLine     int
	originX, originY int
	unicodeAware  bool

	current      *grid
	lastFlushed  *grid
	forceUpdate  bool

	// line drawing cursor state for Move/Draw (spec.md §4.1).
	penX, penY int
}

// NewCanvas creates a Canvas of the given visible size, with a scrollback
// buffer of bufferHeight rows (bufferHeight >= height).
func NewCanvas(width, height, bufferHeight int, unicodeAware bool) *Canvas {
	if bufferHeight < height {
		bufferHeight = height
	}
	return &Canvas{
		width:        width,
		height:       height,
		bufferHeight: bufferHeight,
		unicodeAware: unicodeAware,
		current:      newGrid(width, bufferHeight),
		lastFlushed:  newGrid(width, bufferHeight),
	}
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }
func (c *Canvas) BufferHeight() int { return c.bufferHeight }
func (c *Canvas) StartLine() int    { return c.startLine }
func (c *Canvas) Origin() (int, int) { return c.originX, c.originY }
func (c *Canvas) UnicodeAware() bool { return c.unicodeAware }

// SetOrigin positions this Canvas within its parent Screen's coordinate
// space (used by nested Frame canvases).
func (c *Canvas) SetOrigin(x, y int) { c.originX, c.originY = x, y }

// Resize reallocates the buffers, preserving the top-left overlap. Used
// when recovering from a ResizeError (SPEC_FULL.md §6.1).
func (c *Canvas) Resize(width, height, bufferHeight int) {
	if bufferHeight < height {
		bufferHeight = height
	}
	c.width, c.height, c.bufferHeight = width, height, bufferHeight
	c.current.resize(width, bufferHeight)
	c.lastFlushed.resize(width, bufferHeight)
	if c.startLine > bufferHeight-height {
		c.startLine = max(0, bufferHeight-height)
	}
	c.forceUpdate = true
}

// clusters splits a string into the units print_at advances by: grapheme
// clusters when the Canvas is unicode-aware (so combining marks ride
// along with their base character), otherwise bare runes. Grounded on
// SPEC_FULL.md §6.1 / purfecterm's per-cell Combining field design.
func (c *Canvas) clusters(text string) []string {
	if !c.unicodeAware {
		out := make([]string, 0, len(text))
		for _, r := range text {
			out = append(out, string(r))
		}
		return out
	}
	var out []string
	seg := graphemes.FromString(text)
	for seg.Next() {
		out = append(out, seg.Value())
	}
	return out
}

func clusterWidth(cl string) int {
	w := runewidth.StringWidth(cl)
	if w <= 0 {
		w = 1
	}
	return w
}

// PrintAt writes text starting at (x,y) on the current grid (spec.md
// §4.1). Characters wholly outside the visible viewport are dropped;
// partial horizontal clip trims the string. When transparent is set,
// space clusters do not overwrite existing cells. Double-width clusters
// write their glyph in the first cell and a non-rendering sentinel in the
// second. The sentinel does not block later writes: they replace it like
// any other cell.
func (c *Canvas) PrintAt(text string, x, y int, style Style, transparent bool) {
	if y < c.startLine || y >= c.startLine+c.height {
		return
	}
	cx := x
	for _, cl := range c.clusters(text) {
		w := clusterWidth(cl)
		if cx >= c.width {
			break
		}
		if cx+w <= 0 {
			cx += w
			continue
		}
		isSpace := cl == " "
		if !(transparent && isSpace) && cx >= 0 {
			r := []rune(cl)[0]
			c.current.set(cx, y, Cell{Ch: r, Style: style})
			if w == 2 && cx+1 < c.width {
				c.current.set(cx+1, y, Cell{Ch: widthSentinel, Style: style})
			}
		}
		cx += w
	}
}

// ColourMapEntry overrides one or more axes of the base style for a single
// displayed character, per spec.md §4.1 Paint's colour_map.
type ColourMapEntry struct {
	FG   *Color
	Attr *Attribute
	BG   *Color
}

// Paint behaves like PrintAt but a parallel style map overrides fg/attr/bg
// per character; a nil field in an entry leaves that axis at the base
// value (spec.md §4.1, Testable Property 8).
func (c *Canvas) Paint(text string, x, y int, style Style, colourMap []ColourMapEntry) {
	if y < c.startLine || y >= c.startLine+c.height {
		return
	}
	cx := x
	clusters := c.clusters(text)
	for i, cl := range clusters {
		w := clusterWidth(cl)
		st := style
		if i < len(colourMap) {
			e := colourMap[i]
			st = st.Merge(e.FG, e.Attr, e.BG)
		}
		if cx >= 0 && cx < c.width {
			r := []rune(cl)[0]
			c.current.set(cx, y, Cell{Ch: r, Style: st})
			if w == 2 && cx+1 < c.width {
				c.current.set(cx+1, y, Cell{Ch: widthSentinel, Style: st})
			}
		}
		cx += w
	}
}

// GetFrom returns the Cell at a position, or BlankCell if off-grid
// (spec.md §4.1).
func (c *Canvas) GetFrom(x, y int) Cell {
	return c.current.get(x, y)
}

// ClearBuffer fills a rectangle with blank cells of the given style
// (spec.md §4.1).
func (c *Canvas) ClearBuffer(style Style, x, y, w, h int) {
	blank := Cell{Ch: ' ', Style: style}
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			c.current.set(xx, yy, blank)
		}
	}
}

// Scroll shifts the visible viewport within the buffer by delta rows;
// content above startLine is retained but not drawn (spec.md §4.1).
func (c *Canvas) Scroll(delta int) {
	c.ScrollTo(c.startLine + delta)
}

// ScrollTo sets the viewport's top line directly.
func (c *Canvas) ScrollTo(line int) {
	maxStart := max(0, c.bufferHeight-c.height)
	c.startLine = clampInt(line, 0, maxStart)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ForceUpdate zeroes the diff optimisation for the next Refresh, used
// when the driver was disturbed externally (spec.md §4.2).
func (c *Canvas) ForceUpdate() { c.forceUpdate = true }

// Refresh computes the difference between current and lastFlushed,
// writes the minimal runs to the driver, and copies current into
// lastFlushed. If the write fails mid-flush, lastFlushed is left
// unchanged so a subsequent Refresh retries the same diff rather than
// silently believing it already flushed (spec.md §4.1 invariant: after
// Refresh current == lastFlushed, and any failure must not leave them
// partially equal).
func (c *Canvas) Refresh(driver Driver) error {
	var changes []cellChange
	if c.forceUpdate {
		full := newGrid(0, 0)
		changes = diffGrids(full, c.current)
	} else {
		changes = diffGrids(c.lastFlushed, c.current)
	}
	if len(changes) == 0 {
		c.forceUpdate = false
		return nil
	}
	runs := groupRuns(changes)
	for i := range runs {
		runs[i].X += c.originX
		runs[i].Y += c.originY - c.startLine
	}
	if err := driver.WriteCells(runs); err != nil {
		return &DriverError{Err: err}
	}
	c.lastFlushed = c.current.clone()
	c.forceUpdate = false
	return nil
}

// FillPolygon scan-line fills a polygon using the even-odd rule. Vertex
// coordinates may be fractional; rows are counted at full height (spec.md
// §4.1).
func (c *Canvas) FillPolygon(vertices [][2]float64, fg, bg Color) {
	if len(vertices) < 3 {
		return
	}
	minY, maxY := vertices[0][1], vertices[0][1]
	for _, v := range vertices {
		minY = math.Min(minY, v[1])
		maxY = math.Max(maxY, v[1])
	}
	style := Style{FG: fg, Attr: AttrNormal, BG: bg}
	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		fy := float64(y) + 0.5
		var xs []float64
		n := len(vertices)
		for i := 0; i < n; i++ {
			a := vertices[i]
			b := vertices[(i+1)%n]
			if (a[1] <= fy && b[1] > fy) || (b[1] <= fy && a[1] > fy) {
				t := (fy - a[1]) / (b[1] - a[1])
				xs = append(xs, a[0]+t*(b[0]-a[0]))
			}
		}
		insertionSortFloats(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			x0 := int(math.Round(xs[i]))
			x1 := int(math.Round(xs[i+1]))
			for x := x0; x < x1; x++ {
				c.current.set(x, y, Cell{Ch: ' ', Style: style})
			}
		}
	}
}

func insertionSortFloats(xs []float64) {
	for i := 1; i < len(xs); i++ {
		j := i
		for j > 0 && xs[j-1] > xs[j] {
			xs[j-1], xs[j] = xs[j], xs[j-1]
			j--
		}
	}
}

// Move positions the line-drawing pen, used before a sequence of Draw
// calls (spec.md §4.1).
func (c *Canvas) Move(x, y int) {
	c.penX, c.penY = x, y
}

// halfBlockQuad maps which of a cell's two vertical half-pixels are set
// (bit 1 top, bit 2 bottom) to the glyph to draw, for Draw's thin=true
// half-block rendering mode.
var halfBlockQuad = [4]rune{' ', '▀', '▄', '█'}

// Draw draws a line from the pen position to (x,y) using Bresenham's
// algorithm, writing ch at each point, then moves the pen to (x,y)
// (spec.md §4.1). When thin is set and the Canvas is unicode-aware, two
// vertical half-pixels share one cell via Unicode half-block glyphs.
func (c *Canvas) Draw(x, y int, ch rune, fg, bg Color, thin bool) {
	style := Style{FG: fg, Attr: AttrNormal, BG: bg}
	if thin && c.unicodeAware {
		c.drawThin(c.penX, c.penY, x, y, style)
		c.penX, c.penY = x, y
		return
	}
	c.bresenham(c.penX, c.penY, x, y, func(px, py int) {
		c.current.set(px, py, Cell{Ch: ch, Style: style})
	})
	c.penX, c.penY = x, y
}

func (c *Canvas) bresenham(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	x, y := x0, y0
	for {
		plot(x, y)
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func (c *Canvas) drawThin(x0, y0, x1, y1 int, style Style) {
	// Two pixel-rows per cell: the cell row is y/2, and a pixel sets the
	// top half-block if y is even, bottom if odd; the two halves of a
	// cell blend into the composite glyph via halfBlockQuad.
	type halves struct{ top, bottom bool }
	cells := map[[2]int]*halves{}
	c.bresenham(x0, y0*2, x1, y1*2, func(px, py int) {
		cy := py / 2
		key := [2]int{px, cy}
		h, ok := cells[key]
		if !ok {
			h = &halves{}
			cells[key] = h
		}
		if py%2 == 0 {
			h.top = true
		} else {
			h.bottom = true
		}
	})
	for pos, h := range cells {
		idx := 0
		if h.top {
			idx |= 1
		}
		if h.bottom {
			idx |= 2
		}
		c.current.set(pos[0], pos[1], Cell{Ch: halfBlockQuad[idx], Style: style})
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// BlitFrom copies every cell of src's current grid onto the receiver's
// current grid at offset (dx,dy), used by stagecraft/widgets to composite a
// Frame's own nested Canvas onto the Canvas its owning Scene is drawing
// into (spec.md §4.8 "Frame... scrollable viewport"). Cells outside the
// receiver's visible region are dropped, matching PrintAt's clipping rule.
func (c *Canvas) BlitFrom(src *Canvas, dx, dy int) {
	for y := src.startLine; y < src.startLine+src.height; y++ {
		ty := dy + (y - src.startLine)
		if ty < c.startLine || ty >= c.startLine+c.height {
			continue
		}
		for x := 0; x < src.width; x++ {
			tx := dx + x
			if tx < 0 || tx >= c.width {
				continue
			}
			c.current.set(tx, ty, src.current.get(x, y))
		}
	}
}

// Highlight applies a colour wash over a region, preserving glyphs. blend
// is an integer percentage, clamped to 0-100: at 50 or above each cell's
// fg and bg are replaced by the given colours, below 50 the region is left
// unchanged. Colours are not mixed (spec.md §4.1).
func (c *Canvas) Highlight(x, y, w, h int, fg, bg Color, blend int) {
	blend = clampInt(blend, 0, 100)
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			cell := c.current.get(xx, yy)
			if blend >= 50 {
				cell.FG = fg
				cell.BG = bg
			}
			c.current.set(xx, yy, cell)
		}
	}
}
