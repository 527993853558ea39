package widgets

import "github.com/gostagecraft/stagecraft"

// Button renders its label inside brackets; Space/Enter or a click invokes
// a zero-arg callback (spec.md §4.8). Grounded on germtb-goli/button.go's
// click/keypress dispatch, adapted from the teacher's VNode click prop to
// a plain Go closure.
type Button struct {
	Base
	Text    string
	OnClick func()
}

// NewButton creates a Button labelled text.
func NewButton(text string, onClick func()) *Button {
	return &Button{Base: NewBase(""), Text: text, OnClick: onClick}
}

func (b *Button) RequiredHeight(int, int) int { return 1 }

func (b *Button) Reset() {}

func (b *Button) Update(canvas *stagecraft.Canvas, frameNo int, pal Palette) {
	x, y, _, _, _ := b.Geometry()
	key := "button"
	if b.HasFocus() {
		key = "focus_button"
	}
	if b.IsDisabled() {
		key = "disabled"
	}
	canvas.PrintAt("< "+b.Text+" >", x, y, pal.Get(key), false)
}

func (b *Button) ProcessEvent(ev stagecraft.Event) stagecraft.Event {
	if b.IsDisabled() {
		return ev
	}
	switch e := ev.(type) {
	case stagecraft.KeyboardEvent:
		if e.Key == ' ' || e.Key == stagecraft.KeyEnter {
			if b.OnClick != nil {
				b.OnClick()
			}
			return nil
		}
	case stagecraft.MouseEvent:
		if e.Buttons&stagecraft.MouseLeft != 0 && b.IsMouseOver(e, false, 0) {
			if b.OnClick != nil {
				b.OnClick()
			}
			return nil
		}
	}
	return ev
}
