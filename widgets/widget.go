package widgets

import "github.com/gostagecraft/stagecraft"

// Special RequiredHeight sentinels, matching
// original_source/asciimatics/widgets/widget.py's FILL_FRAME/FILL_COLUMN.
const (
	FillFrame  = -135792468
	FillColumn = -135792467
)

// Widget is the common contract every concrete widget satisfies (spec.md
// §4.8 "Widget base"). Concrete widgets embed Base and implement the
// drawing/event/sizing trio; typed value access (Text.Value() string,
// CheckBox.Value() bool, ...) lives on the concrete type per SPEC_FULL.md
// §12's Open Question decision, not on this interface.
type Widget interface {
	Name() string
	Label() string
	SetLabel(string)

	// Geometry, set by Layout.Fix during the two-pass sizing algorithm.
	SetGeometry(x, y, w, h, labelOffset int)
	Geometry() (x, y, w, h, labelOffset int)

	// RequiredHeight computes this widget's fixed height given the label
	// offset and available width (spec.md §4.8 layout sizing algorithm).
	// Returning FillFrame/FillColumn opts into the second-pass fill
	// distribution instead of a fixed height.
	RequiredHeight(labelOffset, width int) int

	Reset()
	Update(canvas *stagecraft.Canvas, frameNo int, pal Palette)
	ProcessEvent(ev stagecraft.Event) stagecraft.Event

	IsTabStop() bool
	IsDisabled() bool
	SetDisabled(bool)
	IsValid() bool

	HasFocus() bool
	Focus()
	Blur()

	// IsMouseOver hit-tests a mouse event against this widget's geometry,
	// the standard predicate spec.md §4.8 names. includeLabel widens the
	// box to cover the label column; widthMod shrinks/grows the box by a
	// fixed number of cells (used by widgets that reserve trailing columns
	// for a scrollbar).
	IsMouseOver(ev stagecraft.Event, includeLabel bool, widthMod int) bool

	// PaletteKey returns the custom palette key override, or "" to use the
	// widget-kind default the caller already knows to look up.
	PaletteKey() string
	SetPaletteKey(string)
}

// Base provides the bookkeeping every concrete widget needs: name, label,
// geometry, tab-stop/disabled/focus flags, on_focus/on_blur callbacks. It
// does not implement Update/ProcessEvent/RequiredHeight; concrete widgets
// embed it and supply those three themselves (spec.md §4.8 "Widget base").
type Base struct {
	WidgetName string
	WidgetLabel string

	x, y, w, h, labelOffset int

	tabStop    bool
	disabled   bool
	valid      bool
	focused    bool
	customKey  string

	OnFocus func()
	OnBlur  func()
}

// NewBase creates a Base that is a tab stop, enabled, and valid by default.
func NewBase(name string) Base {
	return Base{WidgetName: name, tabStop: true, valid: true}
}

func (b *Base) Name() string  { return b.WidgetName }
func (b *Base) Label() string { return b.WidgetLabel }
func (b *Base) SetLabel(l string) { b.WidgetLabel = l }

func (b *Base) SetGeometry(x, y, w, h, labelOffset int) {
	b.x, b.y, b.w, b.h, b.labelOffset = x, y, w, h, labelOffset
}

func (b *Base) Geometry() (int, int, int, int, int) { return b.x, b.y, b.w, b.h, b.labelOffset }

func (b *Base) IsTabStop() bool     { return b.tabStop }
func (b *Base) SetTabStop(v bool)   { b.tabStop = v }
func (b *Base) IsDisabled() bool    { return b.disabled }
func (b *Base) SetDisabled(v bool)  { b.disabled = v }
func (b *Base) IsValid() bool       { return b.valid }
func (b *Base) SetValid(v bool)     { b.valid = v }
func (b *Base) PaletteKey() string     { return b.customKey }
func (b *Base) SetPaletteKey(k string) { b.customKey = k }

func (b *Base) HasFocus() bool { return b.focused }

func (b *Base) Focus() {
	if b.focused {
		return
	}
	b.focused = true
	if b.OnFocus != nil {
		b.OnFocus()
	}
}

func (b *Base) Blur() {
	if !b.focused {
		return
	}
	b.focused = false
	if b.OnBlur != nil {
		b.OnBlur()
	}
}

// IsMouseOver is the standard hit-test (spec.md §4.8): the widget's box,
// optionally widened to the left by the label offset and narrowed/widened
// on the right by widthMod (used for reserved scrollbar columns).
func (b *Base) IsMouseOver(ev stagecraft.Event, includeLabel bool, widthMod int) bool {
	m, ok := ev.(stagecraft.MouseEvent)
	if !ok {
		return false
	}
	x := b.x
	w := b.w + widthMod
	if includeLabel {
		x -= b.labelOffset
		w += b.labelOffset
	}
	return m.X >= x && m.X < x+w && m.Y >= b.y && m.Y < b.y+b.h
}

// anchorPoint is the (x,y) used by FindNearestHorizontal's Euclidean
// distance comparison (spec.md §4.8, original_source/asciimatics/widgets/utilities.py
// _euclidian_distance).
func anchorPoint(w Widget) (float64, float64) {
	x, y, _, _, _ := w.Geometry()
	return float64(x), float64(y)
}
