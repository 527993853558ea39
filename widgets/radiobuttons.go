package widgets

import (
	"github.com/gostagecraft/stagecraft"
	"github.com/gostagecraft/stagecraft/signals"
)

// Option is one (label, value) pair, the shape RadioButtons, ListBox, and
// MultiColumnListBox all select from (spec.md §4.8).
type Option struct {
	Label string
	Value any
}

// RadioButtons is a selection from an options list, changed by Up/Down
// (spec.md §4.8).
type RadioButtons struct {
	Base
	Options  []Option
	selected signals.Accessor[int]
	setSel   signals.Setter[int]
	OnChange func(int)
}

// NewRadioButtons creates a RadioButtons named name over options.
func NewRadioButtons(name string, options []Option) *RadioButtons {
	sel, setSel := signals.CreateSignal(0)
	return &RadioButtons{Base: NewBase(name), Options: options, selected: sel, setSel: setSel}
}

func (r *RadioButtons) Selected() int { return r.selected() }
func (r *RadioButtons) AnyValue() any {
	if i := r.selected(); i >= 0 && i < len(r.Options) {
		return r.Options[i].Value
	}
	return nil
}
func (r *RadioButtons) ZeroValue() any {
	if len(r.Options) > 0 {
		return r.Options[0].Value
	}
	return nil
}

func (r *RadioButtons) setIndex(i int) {
	if i == r.selected() {
		return
	}
	r.setSel(i)
	if r.OnChange != nil {
		r.OnChange(i)
	}
}

func (r *RadioButtons) SetAnyValue(v any) {
	for i, o := range r.Options {
		if o.Value == v {
			r.setIndex(i)
			return
		}
	}
}

func (r *RadioButtons) ValidateValue() bool { return true }

func (r *RadioButtons) RequiredHeight(int, int) int { return len(r.Options) }

func (r *RadioButtons) Reset() {}

func (r *RadioButtons) Update(canvas *stagecraft.Canvas, frameNo int, pal Palette) {
	x, y, _, _, labelOffset := r.Geometry()
	if r.Label() != "" {
		canvas.PrintAt(r.Label(), x-labelOffset, y, pal.Get("label"), false)
	}
	key := "control"
	if r.HasFocus() {
		key = "focus_control"
	}
	if r.IsDisabled() {
		key = "disabled"
	}
	style := pal.Get(key)
	for i, o := range r.Options {
		glyph := "( )"
		if i == r.selected() {
			glyph = "(X)"
		}
		canvas.PrintAt(glyph+" "+o.Label, x, y+i, style, false)
	}
}

func (r *RadioButtons) ProcessEvent(ev stagecraft.Event) stagecraft.Event {
	if r.IsDisabled() || len(r.Options) == 0 {
		return ev
	}
	switch e := ev.(type) {
	case stagecraft.KeyboardEvent:
		switch e.Key {
		case stagecraft.KeyUp:
			if r.selected() > 0 {
				r.setIndex(r.selected() - 1)
			}
			return nil
		case stagecraft.KeyDown:
			if r.selected() < len(r.Options)-1 {
				r.setIndex(r.selected() + 1)
			}
			return nil
		}
	case stagecraft.MouseEvent:
		if e.Buttons&stagecraft.MouseLeft != 0 && r.IsMouseOver(e, false, 0) {
			_, y, _, _, _ := r.Geometry()
			idx := e.Y - y
			if idx >= 0 && idx < len(r.Options) {
				r.setIndex(idx)
			}
			return nil
		}
	}
	return ev
}
