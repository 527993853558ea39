package widgets

import (
	"time"

	"github.com/gostagecraft/stagecraft"
	"github.com/gostagecraft/stagecraft/signals"
)

// TimePicker edits a time of day an hour/minute/(second) field at a time
// (spec.md §4.8, SPEC_FULL.md §6.5, grounded on
// original_source/asciimatics/widgets/timepicker.py +
// timepickerpopup.py, trimmed the same way as DatePicker: in-place
// field editing with Left/Right/Up/Down instead of a nested Scene
// popup Frame).
type TimePicker struct {
	Base
	IncludeSeconds bool
	OnChange       func(time.Time)

	value    signals.Accessor[time.Time]
	setValue signals.Setter[time.Time]
	editing  bool
	field    int // 0=hour 1=minute 2=second
}

// NewTimePicker creates a TimePicker named name, initially set to now.
func NewTimePicker(name string, now time.Time, seconds bool) *TimePicker {
	v, setV := signals.CreateSignal(now)
	return &TimePicker{Base: NewBase(name), value: v, setValue: setV, IncludeSeconds: seconds}
}

func (t *TimePicker) Value() time.Time { return t.value() }
func (t *TimePicker) AnyValue() any    { return t.value() }
func (t *TimePicker) ZeroValue() any   { return time.Time{} }

func (t *TimePicker) setValueChanged(v time.Time) {
	if v.Equal(t.value()) {
		return
	}
	t.setValue(v)
	if t.OnChange != nil {
		t.OnChange(v)
	}
}

func (t *TimePicker) SetAnyValue(v any) {
	if tv, ok := v.(time.Time); ok {
		t.setValueChanged(tv)
	}
}

func (t *TimePicker) ValidateValue() bool { return true }

func (t *TimePicker) RequiredHeight(int, int) int { return 1 }

func (t *TimePicker) Reset() { t.editing = false }

func (t *TimePicker) layout() string {
	if t.IncludeSeconds {
		return "15:04:05"
	}
	return "15:04"
}

func (t *TimePicker) maxField() int {
	if t.IncludeSeconds {
		return 2
	}
	return 1
}

func (t *TimePicker) Update(canvas *stagecraft.Canvas, frameNo int, pal Palette) {
	x, y, _, _, labelOffset := t.Geometry()
	if t.Label() != "" {
		canvas.PrintAt(t.Label(), x-labelOffset, y, pal.Get("label"), false)
	}
	key := "edit_text"
	if t.HasFocus() {
		key = "focus_edit_text"
	}
	style := pal.Get(key)
	text := t.value().Format(t.layout())
	canvas.PrintAt(text, x, y, style, false)

	if t.editing {
		fieldStyle := pal.Get("selected_focus_field")
		offset := t.field * 3
		canvas.PrintAt(text[offset:offset+2], x+offset, y, fieldStyle, false)
	}
}

func (t *TimePicker) ProcessEvent(ev stagecraft.Event) stagecraft.Event {
	if t.IsDisabled() {
		return ev
	}
	if !t.editing {
		switch e := ev.(type) {
		case stagecraft.KeyboardEvent:
			if e.Key == stagecraft.KeyEnter || e.Key == ' ' {
				t.editing = true
				t.field = 0
				return nil
			}
		case stagecraft.MouseEvent:
			if e.Buttons != 0 && t.IsMouseOver(e, false, 0) {
				t.editing = true
				t.field = 0
				return nil
			}
		}
		return ev
	}

	ke, ok := ev.(stagecraft.KeyboardEvent)
	if !ok {
		return ev
	}
	v := t.value()
	switch ke.Key {
	case stagecraft.KeyLeft:
		if t.field > 0 {
			t.field--
		}
	case stagecraft.KeyRight:
		if t.field < t.maxField() {
			t.field++
		}
	case stagecraft.KeyUp:
		t.setValueChanged(shiftTimeField(v, t.field, 1))
	case stagecraft.KeyDown:
		t.setValueChanged(shiftTimeField(v, t.field, -1))
	case stagecraft.KeyEnter, stagecraft.KeyEscape:
		t.editing = false
	}
	return nil
}

func shiftTimeField(v time.Time, field, delta int) time.Time {
	switch field {
	case 0:
		return v.Add(time.Duration(delta) * time.Hour)
	case 1:
		return v.Add(time.Duration(delta) * time.Minute)
	default:
		return v.Add(time.Duration(delta) * time.Second)
	}
}
