package widgets

import (
	"regexp"
	"strings"

	"github.com/gostagecraft/stagecraft"
	"github.com/gostagecraft/stagecraft/signals"
)

// Validator checks a candidate value, returning true if it passes.
type Validator func(value string) bool

// RegexValidator builds a Validator from a regular expression that must
// fully match the candidate value.
func RegexValidator(pattern string) Validator {
	re := regexp.MustCompile(`^(?:` + pattern + `)$`)
	return func(v string) bool { return re.MatchString(v) }
}

// Text is a single-line editor (spec.md §4.8). Grounded on
// germtb-goli/input.go's cursor/value state machine, adapted from a
// global-focus-manager Input to an embedded Base widget whose value is
// stored in a signals.Accessor/Setter pair (SPEC_FULL.md §3). OnChange is
// called directly by SetValue when the value changes, not through a
// signals effect.
type Text struct {
	Base

	value        signals.Accessor[string]
	setValue     signals.Setter[string]
	cursorColumn int
	startColumn  int

	HideChar  rune // 0 means show plain text; otherwise a password mask
	MaxLength int  // 0 means unlimited
	Validator Validator
	Readonly  bool
	OnChange  func(string)
}

// NewText creates a Text widget named name with the given label.
func NewText(name, label string) *Text {
	value, setValue := signals.CreateSignal("")
	t := &Text{Base: NewBase(name), value: value, setValue: setValue}
	t.SetLabel(label)
	t.SetValid(true)
	return t
}

func (t *Text) Value() string   { return t.value() }
func (t *Text) AnyValue() any   { return t.value() }
func (t *Text) ZeroValue() any  { return "" }

func (t *Text) SetValue(v string) {
	if v == t.value() {
		return
	}
	t.setValue(v)
	if t.cursorColumn > len([]rune(v)) {
		t.cursorColumn = len([]rune(v))
	}
	t.SetValid(t.ValidateValue())
	if t.OnChange != nil {
		t.OnChange(v)
	}
}

func (t *Text) SetAnyValue(v any) {
	if s, ok := v.(string); ok {
		t.SetValue(s)
	}
}

func (t *Text) ValidateValue() bool {
	if t.Validator == nil {
		return true
	}
	return t.Validator(t.value())
}

func (t *Text) RequiredHeight(int, int) int { return 1 }

func (t *Text) Reset() {
	t.cursorColumn = len([]rune(t.value()))
	t.startColumn = 0
}

func (t *Text) displayText() string {
	v := t.value()
	if t.HideChar != 0 {
		return strings.Repeat(string(t.HideChar), len([]rune(v)))
	}
	return v
}

func (t *Text) Update(canvas *stagecraft.Canvas, frameNo int, pal Palette) {
	x, y, w, _, labelOffset := t.Geometry()
	if t.Label() != "" {
		canvas.PrintAt(t.Label(), x-labelOffset, y, pal.Get("label"), false)
	}
	key := "edit_text"
	if t.HasFocus() {
		key = "focus_edit_text"
	}
	if !t.IsValid() {
		key = "invalid"
	}
	if t.IsDisabled() {
		key = "disabled"
	}
	style := pal.Get(key)

	text := []rune(t.displayText())
	visible := w
	if t.startColumn > len(text) {
		t.startColumn = len(text)
	}
	end := t.startColumn + visible
	if end > len(text) {
		end = len(text)
	}
	shown := string(text[t.startColumn:end])
	canvas.ClearBuffer(style, x, y, w, 1)
	canvas.PrintAt(shown, x, y, style, false)
}

// scrollToCursor keeps the cursor within the visible window, matching
// original_source/asciimatics/widgets/text.py's horizontal-scroll logic.
func (t *Text) scrollToCursor(width int) {
	if t.cursorColumn < t.startColumn {
		t.startColumn = t.cursorColumn
	}
	if t.cursorColumn >= t.startColumn+width {
		t.startColumn = t.cursorColumn - width + 1
	}
}

func (t *Text) ProcessEvent(ev stagecraft.Event) stagecraft.Event {
	ke, ok := ev.(stagecraft.KeyboardEvent)
	if !ok {
		return ev
	}
	if t.Readonly || t.IsDisabled() {
		return ev
	}
	_, _, w, _, _ := t.Geometry()
	runes := []rune(t.value())

	switch ke.Key {
	case stagecraft.KeyHome:
		t.cursorColumn = 0
	case stagecraft.KeyEnd:
		t.cursorColumn = len(runes)
	case stagecraft.KeyLeft:
		if t.cursorColumn > 0 {
			t.cursorColumn--
		}
	case stagecraft.KeyRight:
		if t.cursorColumn < len(runes) {
			t.cursorColumn++
		}
	case stagecraft.KeyBack:
		if t.cursorColumn > 0 {
			next := append(append([]rune{}, runes[:t.cursorColumn-1]...), runes[t.cursorColumn:]...)
			t.cursorColumn--
			t.SetValue(string(next))
		}
	case stagecraft.KeyDelete:
		if t.cursorColumn < len(runes) {
			next := append(append([]rune{}, runes[:t.cursorColumn]...), runes[t.cursorColumn+1:]...)
			t.SetValue(string(next))
		}
	default:
		if !ke.Key.IsPrintable() {
			return ev
		}
		if t.MaxLength > 0 && len(runes) >= t.MaxLength {
			t.scrollToCursor(w)
			return nil
		}
		r := rune(ke.Key)
		next := append(append([]rune{}, runes[:t.cursorColumn]...), append([]rune{r}, runes[t.cursorColumn:]...)...)
		t.cursorColumn++
		t.SetValue(string(next))
	}
	t.scrollToCursor(w)
	return nil
}
