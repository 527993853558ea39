package stagecraft

// StyledText is parsed text plus a parallel per-character style map,
// slicing/concatenation preserving styles (spec.md §3, C5). Invariant:
// len(Plain) == len(Styles) == len(Offsets); Offsets is monotone
// non-decreasing.
type StyledText struct {
	Raw     string
	Plain   []rune
	Styles  []Style
	Offsets []int

	FirstStyle Style
	LastStyle  Style
}

// NewStyledText parses raw through the given Parser, starting from
// initialStyle (DefaultStyle if nil), and builds the parallel plain/style/
// offset slices (spec.md §3).
func NewStyledText(raw string, p Parser, initialStyle *Style) *StyledText {
	start := DefaultStyle
	if initialStyle != nil {
		start = *initialStyle
	}
	p.Reset(raw, &start)
	tokens := p.Parse()

	st := &StyledText{Raw: raw, FirstStyle: start, LastStyle: start}
	cur := start
	first := true
	for _, tok := range tokens {
		switch tok.Kind {
		case ChangeColours:
			cur = cur.Merge(tok.Colour.FG, tok.Colour.Attr, tok.Colour.BG)
		case DisplayText:
			for _, r := range tok.Text {
				st.Plain = append(st.Plain, r)
				st.Styles = append(st.Styles, cur)
				st.Offsets = append(st.Offsets, tok.Offset)
				if first {
					st.FirstStyle = cur
					first = false
				}
			}
		}
	}
	st.LastStyle = cur
	return st
}

// String returns the plain text content.
func (s *StyledText) String() string { return string(s.Plain) }

// Len is the number of display characters.
func (s *StyledText) Len() int { return len(s.Plain) }

// Slice returns the [i:j) sub-range, preserving per-character styles
// (Testable Property 4: str(ct[i:j]) == str(ct)[i:j] and
// len(slice.Styles) == j-i).
func (s *StyledText) Slice(i, j int) *StyledText {
	i = clampInt(i, 0, len(s.Plain))
	j = clampInt(j, i, len(s.Plain))
	out := &StyledText{
		Plain:   append([]rune{}, s.Plain[i:j]...),
		Styles:  append([]Style{}, s.Styles[i:j]...),
		Offsets: append([]int{}, s.Offsets[i:j]...),
	}
	if len(out.Styles) > 0 {
		out.FirstStyle = out.Styles[0]
		out.LastStyle = out.Styles[len(out.Styles)-1]
	} else {
		out.FirstStyle = s.LastStyle
		out.LastStyle = s.LastStyle
	}
	return out
}

// Concat appends other's characters, styles, and offsets (offsets are
// carried through unchanged; callers that need raw-input-relative offsets
// across a concatenation boundary should re-parse instead).
func (s *StyledText) Concat(other *StyledText) *StyledText {
	out := &StyledText{
		Plain:      append(append([]rune{}, s.Plain...), other.Plain...),
		Styles:     append(append([]Style{}, s.Styles...), other.Styles...),
		Offsets:    append(append([]int{}, s.Offsets...), other.Offsets...),
		FirstStyle: s.FirstStyle,
		LastStyle:  other.LastStyle,
	}
	if len(s.Plain) == 0 {
		out.FirstStyle = other.FirstStyle
	}
	if len(other.Plain) == 0 {
		out.LastStyle = s.LastStyle
	}
	return out
}

// StyleAt returns the style in effect at display-character index i.
func (s *StyledText) StyleAt(i int) Style {
	if i < 0 || i >= len(s.Styles) {
		return s.LastStyle
	}
	return s.Styles[i]
}
