package widgets

import (
	"time"

	"github.com/gostagecraft/stagecraft"
	"github.com/gostagecraft/stagecraft/signals"
)

// DatePicker edits a date a day/month/year field at a time (spec.md
// §4.8, SPEC_FULL.md §6.5, grounded on
// original_source/asciimatics/widgets/datepicker.py +
// datepickerpopup.py, trimmed the same way as DropdownList: the
// original opens a separate `_DatePickerPopup` Frame pushed onto the
// Scene with its own mini calendar Layout; stagecraft edits the three
// fields in place with Left/Right to move between them and Up/Down to
// adjust, which needs no Scene handle and no nested Frame).
type DatePicker struct {
	Base
	YearMin, YearMax int // 0,0 means unbounded
	OnChange         func(time.Time)

	value    signals.Accessor[time.Time]
	setValue signals.Setter[time.Time]
	editing  bool
	field    int // 0=day 1=month 2=year
}

// NewDatePicker creates a DatePicker named name, initially set to now.
func NewDatePicker(name string, now time.Time) *DatePicker {
	v, setV := signals.CreateSignal(now)
	return &DatePicker{Base: NewBase(name), value: v, setValue: setV}
}

func (d *DatePicker) Value() time.Time { return d.value() }
func (d *DatePicker) AnyValue() any    { return d.value() }
func (d *DatePicker) ZeroValue() any   { return time.Time{} }

func (d *DatePicker) setValueChanged(v time.Time) {
	if v.Equal(d.value()) {
		return
	}
	d.setValue(v)
	if d.OnChange != nil {
		d.OnChange(v)
	}
}

func (d *DatePicker) SetAnyValue(v any) {
	if t, ok := v.(time.Time); ok {
		d.setValueChanged(t)
	}
}

func (d *DatePicker) ValidateValue() bool {
	y := d.value().Year()
	if d.YearMin != 0 && y < d.YearMin {
		return false
	}
	if d.YearMax != 0 && y > d.YearMax {
		return false
	}
	return true
}

func (d *DatePicker) RequiredHeight(int, int) int { return 1 }

func (d *DatePicker) Reset() { d.editing = false }

func (d *DatePicker) Update(canvas *stagecraft.Canvas, frameNo int, pal Palette) {
	x, y, _, _, labelOffset := d.Geometry()
	if d.Label() != "" {
		canvas.PrintAt(d.Label(), x-labelOffset, y, pal.Get("label"), false)
	}
	key := "edit_text"
	if d.HasFocus() {
		key = "focus_edit_text"
	}
	style := pal.Get(key)
	text := d.value().Format("02/Jan/2006")
	canvas.PrintAt(text, x, y, style, false)

	if d.editing {
		fieldStyle := pal.Get("selected_focus_field")
		switch d.field {
		case 0:
			canvas.PrintAt(text[0:2], x, y, fieldStyle, false)
		case 1:
			canvas.PrintAt(text[3:6], x+3, y, fieldStyle, false)
		case 2:
			canvas.PrintAt(text[7:11], x+7, y, fieldStyle, false)
		}
	}
}

func (d *DatePicker) ProcessEvent(ev stagecraft.Event) stagecraft.Event {
	if d.IsDisabled() {
		return ev
	}
	if !d.editing {
		switch e := ev.(type) {
		case stagecraft.KeyboardEvent:
			if e.Key == stagecraft.KeyEnter || e.Key == ' ' {
				d.editing = true
				d.field = 0
				return nil
			}
		case stagecraft.MouseEvent:
			if e.Buttons != 0 && d.IsMouseOver(e, false, 0) {
				d.editing = true
				d.field = 0
				return nil
			}
		}
		return ev
	}

	ke, ok := ev.(stagecraft.KeyboardEvent)
	if !ok {
		return ev
	}
	v := d.value()
	switch ke.Key {
	case stagecraft.KeyLeft:
		if d.field > 0 {
			d.field--
		}
	case stagecraft.KeyRight:
		if d.field < 2 {
			d.field++
		}
	case stagecraft.KeyUp:
		d.setValueChanged(shiftDateField(v, d.field, 1))
	case stagecraft.KeyDown:
		d.setValueChanged(shiftDateField(v, d.field, -1))
	case stagecraft.KeyEnter, stagecraft.KeyEscape:
		d.editing = false
	}
	return nil
}

func shiftDateField(v time.Time, field, delta int) time.Time {
	switch field {
	case 0:
		return v.AddDate(0, 0, delta)
	case 1:
		return v.AddDate(0, delta, 0)
	default:
		return v.AddDate(delta, 0, 0)
	}
}
