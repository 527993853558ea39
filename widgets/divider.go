package widgets

import "github.com/gostagecraft/stagecraft"

// Divider is a horizontal rule, or a blank vertical spacer when Line is
// false (spec.md §4.8).
type Divider struct {
	Base
	Line   bool
	Height int // spacer height when Line is false; ignored otherwise
}

// NewDivider creates a non-tab-stop Divider.
func NewDivider(line bool, height int) *Divider {
	if height <= 0 {
		height = 1
	}
	d := &Divider{Base: NewBase(""), Line: line, Height: height}
	d.SetTabStop(false)
	return d
}

func (d *Divider) RequiredHeight(int, int) int {
	if d.Line {
		return 1
	}
	return d.Height
}

func (d *Divider) Reset() {}

func (d *Divider) Update(canvas *stagecraft.Canvas, frameNo int, pal Palette) {
	if !d.Line {
		return
	}
	x, y, w, _, _ := d.Geometry()
	style := pal.Get("borders")
	canvas.PrintAt(repeatRune('─', w), x, y, style, false)
}

func (d *Divider) ProcessEvent(ev stagecraft.Event) stagecraft.Event { return ev }

// VerticalDivider is a vertical rule, typically sized FillColumn so it
// spans whatever height its Layout column ends up with (spec.md §4.8).
type VerticalDivider struct {
	Base
}

// NewVerticalDivider creates a non-tab-stop VerticalDivider.
func NewVerticalDivider() *VerticalDivider {
	v := &VerticalDivider{Base: NewBase("")}
	v.SetTabStop(false)
	return v
}

func (v *VerticalDivider) RequiredHeight(int, int) int { return FillColumn }

func (v *VerticalDivider) Reset() {}

func (v *VerticalDivider) Update(canvas *stagecraft.Canvas, frameNo int, pal Palette) {
	x, y, _, h, _ := v.Geometry()
	style := pal.Get("borders")
	for i := 0; i < h; i++ {
		canvas.PrintAt("│", x, y+i, style, false)
	}
}

func (v *VerticalDivider) ProcessEvent(ev stagecraft.Event) stagecraft.Event { return ev }
