package widgets

import "github.com/gostagecraft/stagecraft"

// ScrollBar is the internal helper widgets and Frame use to draw a 1-column
// scroll track and translate clicks within it into position-setter calls
// (spec.md §4.9). It has no state of its own beyond geometry: the getter/
// setter pair it is constructed with owns the actual scroll position.
type ScrollBar struct {
	x, y, height int
	get          func() float64 // 0.0..1.0
	set          func(float64)
	absolute     bool // true: (x,y) are already Screen-absolute coordinates
}

// NewScrollBar creates a ScrollBar at (x,y) of the given height.
func NewScrollBar(x, y, height int, get func() float64, set func(float64)) *ScrollBar {
	return &ScrollBar{x: x, y: y, height: height, get: get, set: set}
}

// Update draws the track and cursor glyph.
func (s *ScrollBar) Update(canvas *stagecraft.Canvas, pal Palette) {
	if s.height <= 0 {
		return
	}
	style := pal.Get("scroll")
	canvas.PrintAt("│", s.x, s.y, style, false)
	for i := 1; i < s.height-1; i++ {
		canvas.PrintAt("│", s.x, s.y+i, style, false)
	}
	if s.height > 1 {
		canvas.PrintAt("│", s.x, s.y+s.height-1, style, false)
	}
	pos := clamp01(s.get())
	cursorRow := int(pos * float64(s.height-1))
	canvas.PrintAt("█", s.x, s.y+cursorRow, style, false)
}

// ProcessEvent translates a mouse click within the track into a setter
// call, consuming the event. Any other event, or a click outside the
// track, is returned unconsumed.
func (s *ScrollBar) ProcessEvent(ev stagecraft.Event) stagecraft.Event {
	m, ok := ev.(stagecraft.MouseEvent)
	if !ok || m.Buttons&stagecraft.MouseLeft == 0 {
		return ev
	}
	if m.X != s.x || m.Y < s.y || m.Y >= s.y+s.height || s.height <= 1 {
		return ev
	}
	s.set(float64(m.Y-s.y) / float64(s.height-1))
	return nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
