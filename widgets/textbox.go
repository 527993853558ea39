package widgets

import (
	"github.com/gostagecraft/stagecraft"
	"github.com/gostagecraft/stagecraft/signals"
)

// TextBox is a multi-line editor over a list of lines (spec.md §4.8).
type TextBox struct {
	Base

	lines    signals.Accessor[[]string]
	setLines signals.Setter[[]string]
	line, column int
	startLine, startColumn int

	Readonly bool
	AsList   bool // when true, RequiredHeight is fixed at len(lines) rather than FillColumn
	OnChange func([]string)
}

// NewTextBox creates a TextBox named name with initial content lines (at
// least one empty line if lines is empty).
func NewTextBox(name string, lines []string) *TextBox {
	if len(lines) == 0 {
		lines = []string{""}
	}
	acc, set := signals.CreateSignal(append([]string{}, lines...))
	return &TextBox{Base: NewBase(name), lines: acc, setLines: set}
}

func (t *TextBox) Lines() []string { return t.lines() }
func (t *TextBox) AnyValue() any   { return t.lines() }
func (t *TextBox) ZeroValue() any  { return []string{""} }

func (t *TextBox) SetLines(lines []string) {
	if len(lines) == 0 {
		lines = []string{""}
	}
	t.setLines(append([]string{}, lines...))
	if t.OnChange != nil {
		t.OnChange(lines)
	}
}

func (t *TextBox) SetAnyValue(v any) {
	if lines, ok := v.([]string); ok {
		t.SetLines(lines)
	}
}

func (t *TextBox) ValidateValue() bool { return true }

func (t *TextBox) RequiredHeight(labelOffset, width int) int {
	if t.AsList {
		return len(t.lines())
	}
	return FillColumn
}

func (t *TextBox) Reset() {
	t.line, t.column = 0, 0
	t.startLine, t.startColumn = 0, 0
}

func (t *TextBox) Update(canvas *stagecraft.Canvas, frameNo int, pal Palette) {
	x, y, w, h, _ := t.Geometry()
	lines := t.lines()
	if t.line < t.startLine {
		t.startLine = t.line
	}
	if t.line >= t.startLine+h {
		t.startLine = t.line - h + 1
	}
	key := "edit_text"
	if t.HasFocus() {
		key = "focus_edit_text"
	}
	if t.IsDisabled() {
		key = "disabled"
	}
	style := pal.Get(key)
	for row := 0; row < h; row++ {
		idx := t.startLine + row
		text := ""
		if idx >= 0 && idx < len(lines) {
			text = lines[idx]
		}
		if len(text) > w {
			text = text[:w]
		}
		canvas.ClearBuffer(style, x, y+row, w, 1)
		canvas.PrintAt(text, x, y+row, style, false)
	}
}

func (t *TextBox) currentLine() string {
	lines := t.lines()
	if t.line < 0 || t.line >= len(lines) {
		return ""
	}
	return lines[t.line]
}

func (t *TextBox) ProcessEvent(ev stagecraft.Event) stagecraft.Event {
	ke, ok := ev.(stagecraft.KeyboardEvent)
	if !ok || t.Readonly || t.IsDisabled() {
		return ev
	}
	_, _, _, h, _ := t.Geometry()
	lines := append([]string{}, t.lines()...)
	runes := []rune(t.currentLine())

	switch ke.Key {
	case stagecraft.KeyUp:
		if t.line > 0 {
			t.line--
			t.column = clampInt(t.column, 0, len([]rune(lines[t.line])))
		}
	case stagecraft.KeyDown:
		if t.line < len(lines)-1 {
			t.line++
			t.column = clampInt(t.column, 0, len([]rune(lines[t.line])))
		}
	case stagecraft.KeyLeft:
		if t.column > 0 {
			t.column--
		} else if t.line > 0 {
			t.line--
			t.column = len([]rune(lines[t.line]))
		}
	case stagecraft.KeyRight:
		if t.column < len(runes) {
			t.column++
		} else if t.line < len(lines)-1 {
			t.line++
			t.column = 0
		}
	case stagecraft.KeyHome:
		t.column = 0
	case stagecraft.KeyEnd:
		t.column = len(runes)
	case stagecraft.KeyPageUp:
		t.line = clampInt(t.line-h, 0, len(lines)-1)
	case stagecraft.KeyPageDown:
		t.line = clampInt(t.line+h, 0, len(lines)-1)
	case stagecraft.KeyBack:
		if t.column > 0 {
			next := append(append([]rune{}, runes[:t.column-1]...), runes[t.column:]...)
			lines[t.line] = string(next)
			t.column--
			t.SetLines(lines)
		} else if t.line > 0 {
			prevLen := len([]rune(lines[t.line-1]))
			merged := lines[t.line-1] + lines[t.line]
			lines = append(lines[:t.line-1], append([]string{merged}, lines[t.line+1:]...)...)
			t.line--
			t.column = prevLen
			t.SetLines(lines)
		}
	case stagecraft.KeyDelete:
		if t.column < len(runes) {
			next := append(append([]rune{}, runes[:t.column]...), runes[t.column+1:]...)
			lines[t.line] = string(next)
			t.SetLines(lines)
		} else if t.line < len(lines)-1 {
			merged := lines[t.line] + lines[t.line+1]
			lines = append(lines[:t.line], append([]string{merged}, lines[t.line+2:]...)...)
			t.SetLines(lines)
		}
	default:
		if ke.Key == '\n' || ke.Key == stagecraft.KeyEnter {
			before := string(runes[:t.column])
			after := string(runes[t.column:])
			lines = append(lines[:t.line], append([]string{before, after}, lines[t.line+1:]...)...)
			t.line++
			t.column = 0
			t.SetLines(lines)
		} else if ke.Key.IsPrintable() {
			r := rune(ke.Key)
			next := append(append([]rune{}, runes[:t.column]...), append([]rune{r}, runes[t.column:]...)...)
			lines[t.line] = string(next)
			t.column++
			t.SetLines(lines)
		} else {
			return ev
		}
	}
	return nil
}
