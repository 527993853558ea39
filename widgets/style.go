// Package widgets provides the Frame/Layout/Widget composition toolkit:
// interactive forms built from a fixed set of concrete widgets, keyboard
// and mouse focus traversal, per-widget state machines, modal pop-ups, and
// the persistent Frame data store (spec.md §4.7-4.9, C10).
package widgets

import "github.com/gostagecraft/stagecraft"

// BorderStyle selects the glyph set Frame and Box-like widgets draw their
// border with. Grounded on germtb-goli/layout.go's BorderStyle/
// BorderCharSets, trimmed to the single/double pair spec.md's Frame and
// BarChart borders actually need.
type BorderStyle int

const (
	BorderNone BorderStyle = iota
	BorderSingle
	BorderDouble
)

// BorderChars holds the glyphs used to draw one border style.
type BorderChars struct {
	TopLeft, TopRight, BottomLeft, BottomRight rune
	Horizontal, Vertical                       rune
}

// BorderCharSets maps a BorderStyle to its glyph set, kept from
// germtb-goli/layout.go's BorderCharSets table (single/double entries).
var BorderCharSets = map[BorderStyle]BorderChars{
	BorderSingle: {TopLeft: '┌', TopRight: '┐', BottomLeft: '└', BottomRight: '┘', Horizontal: '─', Vertical: '│'},
	BorderDouble: {TopLeft: '╔', TopRight: '╗', BottomLeft: '╚', BottomRight: '╝', Horizontal: '═', Vertical: '║'},
}

// Spacing is padding/margin on all four sides, kept from
// germtb-goli/layout.go's Spacing shape. Frame and the widgets do not use
// it; Frame computes its border inset directly.
type Spacing struct {
	Top, Right, Bottom, Left int
}

// PaletteKeys is the fixed set of semantic palette keys widgets look up by
// name (SPEC_FULL.md §6.5, original_source/asciimatics/widgets/utilities.py
// THEMES), carried forward verbatim since spec.md §4.8 only samples a few.
var PaletteKeys = []string{
	"background", "label", "edit_text", "focus_edit_text",
	"button", "focus_button", "field", "focus_field",
	"invalid", "disabled", "scroll", "title", "borders", "shadow",
	"selected_field", "selected_focus_field", "control", "focus_control",
}

// Palette maps a semantic key to the style triple a widget in that state
// should draw with.
type Palette map[string]stagecraft.Style

// DefaultPalette reproduces original_source/asciimatics/widgets/utilities.py's
// "default" THEMES entry, the palette a Frame uses when none is supplied.
func DefaultPalette() Palette {
	return Palette{
		"background":            {FG: stagecraft.ColorWhite, Attr: stagecraft.AttrNormal, BG: stagecraft.ColorBlue},
		"shadow":                {FG: stagecraft.ColorBlack, Attr: stagecraft.AttrNormal, BG: stagecraft.ColorBlack},
		"disabled":               {FG: stagecraft.ColorBlack, Attr: stagecraft.AttrBold, BG: stagecraft.ColorBlue},
		"invalid":                {FG: stagecraft.ColorYellow, Attr: stagecraft.AttrBold, BG: stagecraft.ColorRed},
		"label":                  {FG: stagecraft.ColorGreen, Attr: stagecraft.AttrBold, BG: stagecraft.ColorBlue},
		"borders":                {FG: stagecraft.ColorBlack, Attr: stagecraft.AttrBold, BG: stagecraft.ColorBlue},
		"scroll":                 {FG: stagecraft.ColorCyan, Attr: stagecraft.AttrNormal, BG: stagecraft.ColorBlue},
		"title":                  {FG: stagecraft.ColorWhite, Attr: stagecraft.AttrBold, BG: stagecraft.ColorBlue},
		"edit_text":              {FG: stagecraft.ColorWhite, Attr: stagecraft.AttrNormal, BG: stagecraft.ColorBlue},
		"focus_edit_text":        {FG: stagecraft.ColorWhite, Attr: stagecraft.AttrBold, BG: stagecraft.ColorCyan},
		"button":                 {FG: stagecraft.ColorWhite, Attr: stagecraft.AttrNormal, BG: stagecraft.ColorBlue},
		"focus_button":           {FG: stagecraft.ColorWhite, Attr: stagecraft.AttrBold, BG: stagecraft.ColorCyan},
		"field":                  {FG: stagecraft.ColorWhite, Attr: stagecraft.AttrNormal, BG: stagecraft.ColorBlue},
		"selected_field":         {FG: stagecraft.ColorYellow, Attr: stagecraft.AttrBold, BG: stagecraft.ColorBlue},
		"focus_field":            {FG: stagecraft.ColorWhite, Attr: stagecraft.AttrNormal, BG: stagecraft.ColorBlue},
		"selected_focus_field":   {FG: stagecraft.ColorWhite, Attr: stagecraft.AttrBold, BG: stagecraft.ColorCyan},
		"control":                {FG: stagecraft.ColorYellow, Attr: stagecraft.AttrNormal, BG: stagecraft.ColorBlue},
		"focus_control":          {FG: stagecraft.ColorYellow, Attr: stagecraft.AttrBold, BG: stagecraft.ColorCyan},
	}
}

// Get looks up a palette key, falling back to "background" if the key is
// unknown, so a widget never ends up with a zero Style.
func (p Palette) Get(key string) stagecraft.Style {
	if s, ok := p[key]; ok {
		return s
	}
	return p["background"]
}
