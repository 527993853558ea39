package widgets

import "github.com/gostagecraft/stagecraft"

// TextAlign is Label's horizontal alignment (spec.md §4.8). It shares
// ColumnAlign's AlignLeft/AlignCentre/AlignRight constants.
type TextAlign = ColumnAlign

// Label is fixed, non-interactive text (spec.md §4.8).
type Label struct {
	Base
	Text  string
	Align TextAlign
}

// NewLabel creates a non-tab-stop Label.
func NewLabel(text string, align TextAlign) *Label {
	l := &Label{Base: NewBase(""), Text: text, Align: align}
	l.SetTabStop(false)
	return l
}

func (l *Label) RequiredHeight(int, int) int { return 1 }

func (l *Label) Reset() {}

func (l *Label) Update(canvas *stagecraft.Canvas, frameNo int, pal Palette) {
	x, y, w, _, _ := l.Geometry()
	style := pal.Get("label")
	text := l.Text
	if len(text) > w {
		text = text[:w]
	}
	px := x
	switch l.Align {
	case AlignCentre:
		px = x + (w-len(text))/2
	case AlignRight:
		px = x + w - len(text)
	}
	canvas.PrintAt(text, px, y, style, false)
}

func (l *Label) ProcessEvent(ev stagecraft.Event) stagecraft.Event { return ev }
