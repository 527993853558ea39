package widgets

import (
	"github.com/gostagecraft/stagecraft"
	"github.com/gostagecraft/stagecraft/signals"
)

// CheckBox is a boolean value toggled by Space/Enter or a click (spec.md
// §4.8).
type CheckBox struct {
	Base
	value    signals.Accessor[bool]
	setValue signals.Setter[bool]
	Text     string
	OnChange func(bool)
}

// NewCheckBox creates a CheckBox named name, with Text shown after the box
// glyph.
func NewCheckBox(name, text string) *CheckBox {
	value, setValue := signals.CreateSignal(false)
	return &CheckBox{Base: NewBase(name), value: value, setValue: setValue, Text: text}
}

func (c *CheckBox) Value() bool  { return c.value() }
func (c *CheckBox) AnyValue() any { return c.value() }
func (c *CheckBox) ZeroValue() any { return false }

func (c *CheckBox) SetValue(v bool) {
	if v == c.value() {
		return
	}
	c.setValue(v)
	if c.OnChange != nil {
		c.OnChange(v)
	}
}

func (c *CheckBox) SetAnyValue(v any) {
	if b, ok := v.(bool); ok {
		c.SetValue(b)
	}
}

func (c *CheckBox) ValidateValue() bool { return true }

func (c *CheckBox) RequiredHeight(int, int) int { return 1 }

func (c *CheckBox) Reset() {}

func (c *CheckBox) Update(canvas *stagecraft.Canvas, frameNo int, pal Palette) {
	x, y, _, _, labelOffset := c.Geometry()
	if c.Label() != "" {
		canvas.PrintAt(c.Label(), x-labelOffset, y, pal.Get("label"), false)
	}
	key := "control"
	if c.HasFocus() {
		key = "focus_control"
	}
	if c.IsDisabled() {
		key = "disabled"
	}
	style := pal.Get(key)
	glyph := "[ ]"
	if c.value() {
		glyph = "[X]"
	}
	canvas.PrintAt(glyph+" "+c.Text, x, y, style, false)
}

func (c *CheckBox) ProcessEvent(ev stagecraft.Event) stagecraft.Event {
	if c.IsDisabled() {
		return ev
	}
	switch e := ev.(type) {
	case stagecraft.KeyboardEvent:
		if e.Key == ' ' || e.Key == stagecraft.KeyEnter {
			c.SetValue(!c.value())
			return nil
		}
	case stagecraft.MouseEvent:
		if e.Buttons&stagecraft.MouseLeft != 0 && c.IsMouseOver(e, false, 0) {
			c.SetValue(!c.value())
			return nil
		}
	}
	return ev
}
