package stagecraft

import "testing"

// TestAnsiParser_S2 is Testable Property S2: parsing
// "a\x1B[31;42mh\x1B[m" from DefaultStyle yields "a" in the default
// style, then a colour change to (red, normal, green) for "h", then a
// final colour change back to (white, normal, black) with no more text.
func TestAnsiParser_S2(t *testing.T) {
	p := NewAnsiParser()
	p.Reset("a\x1B[31;42mh\x1B[m", nil)
	got := p.Parse()

	want := []Token{
		{Offset: 0, Kind: DisplayText, Text: "a"},
		{Offset: 1, Kind: ChangeColours, Colour: ColourChange{FG: fgColour(int(ColorRed)), Attr: attrOf(AttrNormal), BG: bgColour(int(ColorGreen))}},
		{Offset: 1, Kind: DisplayText, Text: "h"},
		{Offset: 10, Kind: ChangeColours, Colour: ColourChange{FG: fgColour(int(ColorWhite)), Attr: attrOf(AttrNormal), BG: bgColour(int(ColorBlack))}},
	}

	assertTokensEqual(t, got, want)

	wantStyle := Style{FG: ColorWhite, Attr: AttrNormal, BG: ColorBlack}
	if got := p.LastStyle(); got != wantStyle {
		t.Errorf("LastStyle() = %+v, want %+v", got, wantStyle)
	}
}

// TestAnsiParser_RestartEqualsOnePass is Testable Property 3 for the ANSI
// dialect: splitting "\x1B[31mhi" into "\x1B[31mh" then "i" (continuing
// from the first chunk's LastStyle) yields the same tokens and final
// style as parsing the whole string at once.
func TestAnsiParser_RestartEqualsOnePass(t *testing.T) {
	whole := NewAnsiParser()
	whole.Reset("\x1B[31mhi", nil)
	wantTokens := whole.Parse()
	wantStyle := whole.LastStyle()

	split := NewAnsiParser()
	split.Reset("\x1B[31mh", nil)
	firstTokens := split.Parse()
	midStyle := split.LastStyle()

	split.Reset("i", &midStyle)
	secondTokens := split.Parse()
	gotStyle := split.LastStyle()

	got := append(append([]Token{}, firstTokens...), secondTokens...)

	// As in the markup parser, Offset restarts from 0 on the second chunk
	// by design, so this equivalence compares Kind/Text/Colour and the
	// final style rather than absolute Offset.
	assertTokenKindsEqual(t, got, wantTokens)
	if gotStyle != wantStyle {
		t.Errorf("restart LastStyle = %+v, want %+v", gotStyle, wantStyle)
	}
}
