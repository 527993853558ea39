package widgets

import (
	"github.com/gostagecraft/stagecraft"
	"github.com/gostagecraft/stagecraft/signals"
)

// DropdownList picks one value from a temporary inline pop-up list
// (spec.md §4.8, SPEC_FULL.md §6.5, grounded on
// original_source/asciimatics/widgets/dropdownlist.py, trimmed: the
// original spawns a separate `_DropdownPopup` Effect added to the owning
// Scene when opened; stagecraft's Frame/Layout model has no handle back
// to the Scene from inside a widget's ProcessEvent, so DropdownList draws
// its open option list directly into the Frame's own canvas below the
// field instead of as a sibling Effect — same interaction, simpler
// wiring).
type DropdownList struct {
	Base
	Options []Option
	OnChange func(int)

	selected signals.Accessor[int]
	setSel   signals.Setter[int]
	open     bool
	openIdx  int
}

// NewDropdownList creates a DropdownList named name over options.
func NewDropdownList(name string, options []Option) *DropdownList {
	sel, setSel := signals.CreateSignal(-1)
	if len(options) > 0 {
		setSel(0)
	}
	return &DropdownList{Base: NewBase(name), Options: options, selected: sel, setSel: setSel}
}

func (d *DropdownList) Selected() int { return d.selected() }

func (d *DropdownList) AnyValue() any {
	if i := d.selected(); i >= 0 && i < len(d.Options) {
		return d.Options[i].Value
	}
	return nil
}
func (d *DropdownList) ZeroValue() any {
	if len(d.Options) > 0 {
		return d.Options[0].Value
	}
	return nil
}

func (d *DropdownList) setIndex(i int) {
	if i == d.selected() {
		return
	}
	d.setSel(i)
	if d.OnChange != nil {
		d.OnChange(i)
	}
}

func (d *DropdownList) SetAnyValue(v any) {
	for i, o := range d.Options {
		if o.Value == v {
			d.setIndex(i)
			return
		}
	}
}

func (d *DropdownList) ValidateValue() bool { return true }

func (d *DropdownList) RequiredHeight(int, int) int { return 1 }

func (d *DropdownList) Reset() { d.open = false }

func (d *DropdownList) Update(canvas *stagecraft.Canvas, frameNo int, pal Palette) {
	x, y, w, _, labelOffset := d.Geometry()
	if d.Label() != "" {
		canvas.PrintAt(d.Label(), x-labelOffset, y, pal.Get("label"), false)
	}
	key := "field"
	if d.HasFocus() {
		key = "focus_field"
	}
	if d.IsDisabled() {
		key = "disabled"
	}
	text := ""
	if d.selected() >= 0 && d.selected() < len(d.Options) {
		text = d.Options[d.selected()].Label
	}
	inner := w - 2
	if len(text) > inner {
		text = text[:inner]
	}
	canvas.PrintAt("["+padCell(text, inner, AlignLeft)+"]", x, y, pal.Get(key), false)

	if d.open {
		for i, o := range d.Options {
			style := pal.Get("field")
			if i == d.openIdx {
				style = pal.Get("selected_focus_field")
			}
			canvas.ClearBuffer(style, x, y+1+i, w, 1)
			canvas.PrintAt(o.Label, x, y+1+i, style, false)
		}
	}
}

func (d *DropdownList) ProcessEvent(ev stagecraft.Event) stagecraft.Event {
	if d.IsDisabled() {
		return ev
	}
	if d.open {
		switch e := ev.(type) {
		case stagecraft.KeyboardEvent:
			switch e.Key {
			case stagecraft.KeyUp:
				if d.openIdx > 0 {
					d.openIdx--
				}
				return nil
			case stagecraft.KeyDown:
				if d.openIdx < len(d.Options)-1 {
					d.openIdx++
				}
				return nil
			case stagecraft.KeyEnter, ' ':
				d.setIndex(d.openIdx)
				d.open = false
				return nil
			case stagecraft.KeyEscape:
				d.open = false
				return nil
			}
			return nil
		case stagecraft.MouseEvent:
			if e.Buttons != 0 {
				_, y, _, _, _ := d.Geometry()
				idx := e.Y - y - 1
				if idx >= 0 && idx < len(d.Options) {
					d.setIndex(idx)
				}
				d.open = false
				return nil
			}
		}
		return ev
	}

	switch e := ev.(type) {
	case stagecraft.KeyboardEvent:
		if e.Key == stagecraft.KeyEnter || e.Key == ' ' {
			d.open = true
			d.openIdx = d.selected()
			if d.openIdx < 0 {
				d.openIdx = 0
			}
			return nil
		}
	case stagecraft.MouseEvent:
		if e.Buttons != 0 && d.IsMouseOver(e, false, 0) {
			d.open = true
			d.openIdx = d.selected()
			if d.openIdx < 0 {
				d.openIdx = 0
			}
			return nil
		}
	}
	return ev
}
