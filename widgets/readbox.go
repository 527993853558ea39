package widgets

import "github.com/gostagecraft/stagecraft"

// ReadBox is a read-only viewer supporting internal scrolling,
// auto-scroll-to-bottom, and a highlighting line cursor (spec.md §4.8).
// Lines wider than the widget are cut at its width; they are not wrapped.
type ReadBox struct {
	Base
	Lines         []string
	AutoScroll    bool
	HighlightLine bool

	topLine, cursorLine int
}

// NewReadBox creates a ReadBox. It is a tab stop, so PageUp/PageDown/arrow
// scrolling can be keyboard-driven when focused (matching original_source/asciimatics/widgets/readbox.py).
func NewReadBox(name string, autoScroll bool) *ReadBox {
	return &ReadBox{Base: NewBase(name), AutoScroll: autoScroll}
}

func (r *ReadBox) AnyValue() any    { return r.Lines }
func (r *ReadBox) SetAnyValue(v any) {
	if lines, ok := v.([]string); ok {
		r.Lines = lines
		if r.AutoScroll {
			r.scrollToBottom()
		}
	}
}
func (r *ReadBox) ZeroValue() any      { return []string(nil) }
func (r *ReadBox) ValidateValue() bool { return true }

func (r *ReadBox) RequiredHeight(int, int) int { return FillColumn }

func (r *ReadBox) Reset() { r.topLine, r.cursorLine = 0, 0 }

func (r *ReadBox) scrollToBottom() {
	_, _, _, h, _ := r.Geometry()
	if len(r.Lines) > h {
		r.topLine = len(r.Lines) - h
	}
	r.cursorLine = len(r.Lines) - 1
}

// AppendLine appends text, keeping every earlier line (no scrollback
// limit), and auto-scrolls if configured (used by renderers.StreamBuffer-fed
// widgets per SPEC_FULL.md §7).
func (r *ReadBox) AppendLine(text string) {
	r.Lines = append(r.Lines, text)
	if r.AutoScroll {
		r.scrollToBottom()
	}
}

func (r *ReadBox) Update(canvas *stagecraft.Canvas, frameNo int, pal Palette) {
	x, y, w, h, _ := r.Geometry()
	style := pal.Get("field")
	for row := 0; row < h; row++ {
		idx := r.topLine + row
		lineStyle := style
		if r.HighlightLine && idx == r.cursorLine {
			lineStyle = pal.Get("selected_field")
		}
		text := ""
		if idx >= 0 && idx < len(r.Lines) {
			text = r.Lines[idx]
		}
		if len(text) > w {
			text = text[:w]
		}
		canvas.ClearBuffer(lineStyle, x, y+row, w, 1)
		canvas.PrintAt(text, x, y+row, lineStyle, false)
	}
}

func (r *ReadBox) ProcessEvent(ev stagecraft.Event) stagecraft.Event {
	ke, ok := ev.(stagecraft.KeyboardEvent)
	if !ok {
		return ev
	}
	_, _, _, h, _ := r.Geometry()
	switch ke.Key {
	case stagecraft.KeyUp:
		if r.topLine > 0 {
			r.topLine--
		}
	case stagecraft.KeyDown:
		if r.topLine < len(r.Lines)-h {
			r.topLine++
		}
	case stagecraft.KeyPageUp:
		r.topLine = clampInt(r.topLine-h, 0, len(r.Lines))
	case stagecraft.KeyPageDown:
		r.topLine = clampInt(r.topLine+h, 0, len(r.Lines))
	default:
		return ev
	}
	return nil
}

// clampInt limits v to the range [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
