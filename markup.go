package stagecraft

import "regexp"

// markupAttrMapping maps the markup dialect's attribute index (1-4) to an
// Attribute bit, per spec.md §4.3/§6.
var markupAttrMapping = map[int]Attribute{
	1: AttrBold,
	2: AttrNormal,
	3: AttrReverse,
	4: AttrUnderline,
}

var markupRegex = regexp.MustCompile(`^\$\{(\d+)(?:,(\d+)(?:,(\d+))?)?\}`)

// MarkupParser recognises the `${n}`, `${n,a}`, `${n,a,b}` colour markup
// dialect (spec.md §4.3, §6). Unknown `${...}` sequences are rendered
// verbatim as literal text. Grounded on original_source/asciimatics/parsers.py's
// AsciimaticsParser, restructured to emit one CHANGE_COLOURS token per
// markup match and one DISPLAY_TEXT token per literal character, matching
// Testable Property S1's literal token stream.
type MarkupParser struct {
	raw        string
	lastStyle  Style
}

// NewMarkupParser creates a MarkupParser.
func NewMarkupParser() *MarkupParser { return &MarkupParser{lastStyle: DefaultStyle} }

func (p *MarkupParser) Reset(raw string, lastStyle *Style) {
	p.raw = raw
	if lastStyle != nil {
		p.lastStyle = *lastStyle
	}
}

func (p *MarkupParser) LastStyle() Style { return p.lastStyle }

func (p *MarkupParser) Parse() []Token {
	var tokens []Token
	text := p.raw
	offset := 0      // scan position in raw text
	lastOffset := 0  // offset pinned at the last literal character, shared
	// by the colour-change token that precedes the next literal and by
	// that literal's own DISPLAY_TEXT token (mirrors the Python original's
	// last_offset lag).

	for len(text) > 0 {
		if loc := markupRegex.FindStringSubmatchIndex(text); loc != nil {
			matchLen := loc[1]
			groups := submatches(text, loc)
			fg, attr, bg := parseMarkupGroups(groups)
			tokens = append(tokens, Token{
				Offset: lastOffset,
				Kind:   ChangeColours,
				Colour: ColourChange{FG: fg, Attr: attr, BG: bg},
			})
			p.lastStyle = p.lastStyle.Merge(fg, attr, bg)
			offset += matchLen
			text = text[matchLen:]
			continue
		}
		r := []rune(text)[0]
		ch := string(r)
		tokens = append(tokens, Token{Offset: lastOffset, Kind: DisplayText, Text: ch})
		n := len(ch)
		offset += n
		lastOffset = offset
		text = text[n:]
	}
	return tokens
}

func submatches(text string, loc []int) [3]string {
	var out [3]string
	for i := 0; i < 3; i++ {
		s, e := loc[2+2*i], loc[2+2*i+1]
		if s >= 0 && e >= 0 {
			out[i] = text[s:e]
		}
	}
	return out
}

func parseMarkupGroups(groups [3]string) (fg *Color, attr *Attribute, bg *Color) {
	n := mustAtoi(groups[0])
	c := Color(n)
	fg = &c
	if groups[1] != "" {
		a := markupAttrMapping[mustAtoi(groups[1])]
		attr = &a
	} else {
		a := AttrNormal
		attr = &a
	}
	if groups[2] != "" {
		b := Color(mustAtoi(groups[2]))
		bg = &b
	}
	return fg, attr, bg
}

func mustAtoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
