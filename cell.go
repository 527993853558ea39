// Package stagecraft provides a double-buffered, character-cell terminal
// animation and UI engine: a styled cell grid, a frame-clocked scene and
// effect scheduler, and the parser framework that feeds styled text into it.
package stagecraft

// Color is a small non-negative integer referring to an indexed palette
// entry. DefaultColor means "terminal default"; values 8-255 address the
// extended palette.
type Color int

// Default and named low-palette colours (0-7), matching the classic
// terminal colour cube plus the distinguished "default" sentinel.
const (
	DefaultColor Color = -1
	ColorBlack   Color = 0
	ColorRed     Color = 1
	ColorGreen   Color = 2
	ColorYellow  Color = 3
	ColorBlue    Color = 4
	ColorMagenta Color = 5
	ColorCyan    Color = 6
	ColorWhite   Color = 7
)

// MaxColor is the highest addressable extended-palette colour index.
const MaxColor Color = 255

// Attribute is a bitset of text rendering attributes. Normal is the reset
// state: a style triple with no attribute bits set behaves as Normal.
type Attribute int

const (
	AttrNormal    Attribute = 0
	AttrBold      Attribute = 1 << 0
	AttrReverse   Attribute = 1 << 1
	AttrUnderline Attribute = 1 << 2
)

// Style is a (foreground, attribute, background) style triple, the unit
// every draw primitive and parser token carries around.
type Style struct {
	FG   Color
	Attr Attribute
	BG   Color
}

// DefaultStyle is the style new cells and fresh parsers start with.
var DefaultStyle = Style{FG: DefaultColor, Attr: AttrNormal, BG: DefaultColor}

// Merge overlays non-nil fields of an override onto the receiver, matching
// the CHANGE_COLOURS token semantics where a None field leaves that axis
// unchanged. Used by Canvas.Paint's colour_map and by the ANSI/markup
// parsers' running style state.
func (s Style) Merge(fg *Color, attr *Attribute, bg *Color) Style {
	out := s
	if fg != nil {
		out.FG = *fg
	}
	if attr != nil {
		out.Attr = *attr
	}
	if bg != nil {
		out.BG = *bg
	}
	return out
}

// widthSentinel is the private codepoint stored in the second cell of a
// double-width glyph. It renders as nothing; later writes to that cell
// replace it like any other cell.
const widthSentinel rune = -1

// Cell is the unit of display: one character-cell position with its style.
type Cell struct {
	Ch   rune
	Style
}

// BlankCell is the default cell: a space in the default style.
var BlankCell = Cell{Ch: ' ', Style: DefaultStyle}

// IsWidthContinuation reports whether this cell is the trailing, non-
// rendering half of a double-width glyph written by a previous cell.
func (c Cell) IsWidthContinuation() bool {
	return c.Ch == widthSentinel
}

// Equal reports whether two cells are indistinguishable in the terminal,
// the predicate the diff engine uses to decide what to flush.
func (c Cell) Equal(o Cell) bool {
	return c.Ch == o.Ch && c.Style == o.Style
}
