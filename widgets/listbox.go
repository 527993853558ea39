package widgets

import (
	"strings"
	"time"

	"github.com/gostagecraft/stagecraft"
	"github.com/gostagecraft/stagecraft/signals"
)

// typeAheadTimeout matches original_source/asciimatics/widgets/baselistbox.py's
// 1-second type-ahead search reset.
const typeAheadTimeout = time.Second

// ListBox is a single-selection list with vertical scroll, optional
// centring, and incremental type-ahead search (spec.md §4.8).
type ListBox struct {
	Base
	Options  []Option
	Centre   bool
	Validator Validator

	selected signals.Accessor[int]
	setSel   signals.Setter[int]
	OnChange func(int)

	topRow      int
	searchText  string
	lastSearch  time.Time
}

// NewListBox creates a ListBox named name over options.
func NewListBox(name string, options []Option, centre bool) *ListBox {
	sel, setSel := signals.CreateSignal(-1)
	return &ListBox{Base: NewBase(name), Options: options, Centre: centre, selected: sel, setSel: setSel}
}

func (l *ListBox) Selected() int { return l.selected() }

func (l *ListBox) AnyValue() any {
	if i := l.selected(); i >= 0 && i < len(l.Options) {
		return l.Options[i].Value
	}
	return nil
}
func (l *ListBox) ZeroValue() any { return nil }

func (l *ListBox) setIndex(i int) {
	if i == l.selected() {
		return
	}
	l.setSel(i)
	if l.OnChange != nil {
		l.OnChange(i)
	}
}

func (l *ListBox) SetAnyValue(v any) {
	for i, o := range l.Options {
		if o.Value == v {
			l.setIndex(i)
			return
		}
	}
}

func (l *ListBox) ValidateValue() bool {
	if l.Validator == nil {
		return true
	}
	if i := l.selected(); i >= 0 && i < len(l.Options) {
		return l.Validator(l.Options[i].Label)
	}
	return l.Validator("")
}

func (l *ListBox) RequiredHeight(int, int) int { return FillColumn }

func (l *ListBox) Reset() { l.topRow = 0 }

func (l *ListBox) ensureVisible() {
	_, _, _, h, _ := l.Geometry()
	sel := l.selected()
	if sel < 0 {
		return
	}
	if l.Centre {
		l.topRow = sel - h/2
	} else if sel < l.topRow {
		l.topRow = sel
	} else if sel >= l.topRow+h {
		l.topRow = sel - h + 1
	}
	if l.topRow < 0 {
		l.topRow = 0
	}
	if maxTop := len(l.Options) - h; maxTop > 0 && l.topRow > maxTop {
		l.topRow = maxTop
	}
}

func (l *ListBox) Update(canvas *stagecraft.Canvas, frameNo int, pal Palette) {
	l.ensureVisible()
	x, y, w, h, _ := l.Geometry()
	needsScroll := len(l.Options) > h
	listW := w
	if needsScroll {
		listW--
	}
	for row := 0; row < h; row++ {
		idx := l.topRow + row
		key := "field"
		if idx == l.selected() {
			key = "selected_field"
			if l.HasFocus() {
				key = "selected_focus_field"
			}
		} else if l.HasFocus() {
			key = "focus_field"
		}
		style := pal.Get(key)
		text := ""
		if idx >= 0 && idx < len(l.Options) {
			text = l.Options[idx].Label
		}
		if len(text) > listW {
			text = text[:listW]
		}
		canvas.ClearBuffer(style, x, y+row, listW, 1)
		canvas.PrintAt(text, x, y+row, style, false)
	}
	if needsScroll {
		sb := NewScrollBar(x+w-1, y, h, func() float64 {
			maxTop := len(l.Options) - h
			if maxTop <= 0 {
				return 0
			}
			return float64(l.topRow) / float64(maxTop)
		}, func(p float64) {
			maxTop := len(l.Options) - h
			l.topRow = int(p * float64(maxTop))
		})
		sb.Update(canvas, pal)
	}
}

func (l *ListBox) searchFor(r rune) {
	now := time.Now()
	if now.Sub(l.lastSearch) > typeAheadTimeout {
		l.searchText = ""
	}
	l.lastSearch = now
	l.searchText += strings.ToLower(string(r))
	for i, o := range l.Options {
		if strings.HasPrefix(strings.ToLower(o.Label), l.searchText) {
			l.setIndex(i)
			return
		}
	}
}

func (l *ListBox) ProcessEvent(ev stagecraft.Event) stagecraft.Event {
	if l.IsDisabled() || len(l.Options) == 0 {
		return ev
	}
	_, _, _, h, _ := l.Geometry()
	switch e := ev.(type) {
	case stagecraft.KeyboardEvent:
		switch e.Key {
		case stagecraft.KeyUp:
			if l.selected() > 0 {
				l.setIndex(l.selected() - 1)
			} else if l.selected() < 0 && len(l.Options) > 0 {
				l.setIndex(0)
			}
			return nil
		case stagecraft.KeyDown:
			if l.selected() < len(l.Options)-1 {
				l.setIndex(l.selected() + 1)
			}
			return nil
		case stagecraft.KeyPageUp:
			next := l.selected() - h
			if next < 0 {
				next = 0
			}
			l.setIndex(next)
			return nil
		case stagecraft.KeyPageDown:
			next := l.selected() + h
			if next > len(l.Options)-1 {
				next = len(l.Options) - 1
			}
			l.setIndex(next)
			return nil
		default:
			if e.Key.IsPrintable() && e.Key < 256 {
				l.searchFor(rune(e.Key))
				return nil
			}
		}
	case stagecraft.MouseEvent:
		if e.Buttons&stagecraft.MouseLeft != 0 && l.IsMouseOver(e, false, -1) {
			x, y, _, _, _ := l.Geometry()
			_ = x
			idx := l.topRow + (e.Y - y)
			if idx >= 0 && idx < len(l.Options) {
				l.setIndex(idx)
			}
			return nil
		}
	}
	return ev
}
