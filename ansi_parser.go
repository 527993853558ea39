package stagecraft

import (
	"regexp"
	"strconv"
	"strings"
)

// ansiCSIRegex matches a full CSI sequence: ESC [ params finalByte, where
// params is everything up to the first byte in the @-~ final-byte range
// (this also matches DEC private-mode sequences like "?25h", whose
// leading '?' ends up as part of params). Grounded on
// original_source/asciimatics/parsers.py's AnsiTerminalParser regex,
// generalised from "CSI ... m" only to the full cursor/erase/visibility
// subset spec.md §4.3 requires.
var ansiCSIRegex = regexp.MustCompile(`^\x1B\[([^@-~]*)([@-~])`)

var ansiOSCRegex = regexp.MustCompile(`^\x1B\]([^\x07]*)\x07`)

// AnsiParser implements the ANSI terminal escape subset of spec.md §4.3/§6:
// SGR colour/attribute codes, cursor motion, line/char delete, cursor
// visibility, save/restore, and the swallowed control codes. Malformed or
// unknown sequences are silently dropped; isolated low control bytes
// become literal spaces.
type AnsiParser struct {
	raw       string
	lastStyle Style
}

func NewAnsiParser() *AnsiParser { return &AnsiParser{lastStyle: DefaultStyle} }

func (p *AnsiParser) Reset(raw string, lastStyle *Style) {
	p.raw = raw
	if lastStyle != nil {
		p.lastStyle = *lastStyle
	}
}

func (p *AnsiParser) LastStyle() Style { return p.lastStyle }

func (p *AnsiParser) Parse() []Token {
	var tokens []Token
	text := p.raw
	offset := 0
	lastOffset := 0

	emitLiteral := func(s string) {
		for _, r := range s {
			tokens = append(tokens, Token{Offset: lastOffset, Kind: DisplayText, Text: string(r)})
			offset++
			lastOffset = offset
		}
	}

	for len(text) > 0 {
		switch {
		case strings.HasPrefix(text, "\x1B7"):
			tokens = append(tokens, Token{Offset: lastOffset, Kind: SaveCursor})
			offset += 2
			text = text[2:]
		case strings.HasPrefix(text, "\x1B8"):
			tokens = append(tokens, Token{Offset: lastOffset, Kind: RestoreCursor})
			offset += 2
			text = text[2:]
		case ansiOSCRegex.MatchString(text):
			loc := ansiOSCRegex.FindStringIndex(text)
			offset += loc[1]
			text = text[loc[1]:]
			// swallowed entirely; no token.
		case ansiCSIRegex.MatchString(text):
			m := ansiCSIRegex.FindStringSubmatch(text)
			whole := m[0]
			params, final := m[1], m[2]
			tok, ok := p.decodeCSI(params, final, lastOffset)
			if ok {
				tokens = append(tokens, tok)
				if tok.Kind == ChangeColours {
					p.lastStyle = p.lastStyle.Merge(tok.Colour.FG, tok.Colour.Attr, tok.Colour.BG)
				}
			}
			offset += len(whole)
			text = text[len(whole):]
		case text[0] == '\t':
			tokens = append(tokens, Token{Offset: lastOffset, Kind: NextTab})
			offset++
			lastOffset = offset
			text = text[1:]
		case text[0] == '\r':
			zero := 0
			tokens = append(tokens, Token{Offset: lastOffset, Kind: MoveAbsolute, MoveAbs: MoveTo{X: &zero}})
			offset++
			lastOffset = offset
			text = text[1:]
		case text[0] == '\n':
			tokens = append(tokens, Token{Offset: lastOffset, Kind: MoveRelative, Move: MoveBy{DX: 0, DY: 1}})
			offset++
			lastOffset = offset
			text = text[1:]
		case text[0] == '\b':
			tokens = append(tokens, Token{Offset: lastOffset, Kind: MoveRelative, Move: MoveBy{DX: -1, DY: 0}})
			offset++
			lastOffset = offset
			text = text[1:]
		case text[0] == '\x07':
			// BEL swallowed.
			offset++
			text = text[1:]
		case text[0] < 0x20:
			// Isolated low control byte becomes a literal space.
			emitLiteral(" ")
			text = text[1:]
		default:
			r := []rune(text)[0]
			emitLiteral(string(r))
			text = text[len(string(r)):]
		}
	}
	return tokens
}

func (p *AnsiParser) decodeCSI(params, final string, at int) (Token, bool) {
	switch final {
	case "m":
		cc, ok := p.decodeSGR(params)
		if !ok {
			return Token{}, false
		}
		return Token{Offset: at, Kind: ChangeColours, Colour: cc}, true
	case "A":
		n := csiCount(params, 1)
		return Token{Offset: at, Kind: MoveRelative, Move: MoveBy{DY: -n}}, true
	case "B":
		n := csiCount(params, 1)
		return Token{Offset: at, Kind: MoveRelative, Move: MoveBy{DY: n}}, true
	case "C":
		n := csiCount(params, 1)
		return Token{Offset: at, Kind: MoveRelative, Move: MoveBy{DX: n}}, true
	case "D":
		n := csiCount(params, 1)
		return Token{Offset: at, Kind: MoveRelative, Move: MoveBy{DX: -n}}, true
	case "H", "f":
		row, col := csiPair(params, 1, 1)
		y, x := row-1, col-1
		return Token{Offset: at, Kind: MoveAbsolute, MoveAbs: MoveTo{X: &x, Y: &y}}, true
	case "J":
		return Token{Offset: at, Kind: ClearScreen}, true
	case "K":
		n := csiCount(params, 0)
		mode := DeleteLineMode(n)
		if mode < DeleteToEnd || mode > DeleteWholeLine {
			mode = DeleteToEnd
		}
		return Token{Offset: at, Kind: DeleteLine, Line: mode}, true
	case "P":
		n := csiCount(params, 1)
		return Token{Offset: at, Kind: DeleteChars, Count: n}, true
	case "h":
		if strings.TrimPrefix(params, "?") == "25" {
			return Token{Offset: at, Kind: ShowCursor, Bool: true}, true
		}
		return Token{}, false
	case "l":
		if strings.TrimPrefix(params, "?") == "25" {
			return Token{Offset: at, Kind: ShowCursor, Bool: false}, true
		}
		return Token{}, false
	default:
		return Token{}, false
	}
}

func csiCount(params string, dflt int) int {
	params = strings.TrimPrefix(params, "?")
	if params == "" {
		return dflt
	}
	n, err := strconv.Atoi(strings.Split(params, ";")[0])
	if err != nil {
		return dflt
	}
	return n
}

func csiPair(params string, dflt1, dflt2 int) (int, int) {
	parts := strings.Split(params, ";")
	a, b := dflt1, dflt2
	if len(parts) > 0 && parts[0] != "" {
		if n, err := strconv.Atoi(parts[0]); err == nil {
			a = n
		}
	}
	if len(parts) > 1 && parts[1] != "" {
		if n, err := strconv.Atoi(parts[1]); err == nil {
			b = n
		}
	}
	return a, b
}

// decodeSGR runs the "CSI ... m" mini state machine of
// original_source/asciimatics/parsers.py's AnsiTerminalParser, extended
// with the 90-97/100-107 bright ranges and 39/49 default codes SPEC_FULL.md
// adds. An empty parameter list is read as 0 (reset). Returns ok=false
// when no parameter changes the style (unparsable or unknown codes), so
// the sequence is dropped silently (spec.md §4.3).
func (p *AnsiParser) decodeSGR(params string) (ColourChange, bool) {
	fg := p.lastStyle.FG
	attr := p.lastStyle.Attr
	bg := p.lastStyle.BG
	changed := false

	if params == "" {
		params = "0"
	}
	parts := strings.Split(params, ";")
	i := 0
	for i < len(parts) {
		if parts[i] == "" {
			i++
			continue
		}
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			i++
			continue
		}
		switch {
		case n == 0:
			fg, attr, bg = ColorWhite, AttrNormal, ColorBlack
			changed = true
		case n == 1:
			attr = AttrBold
			changed = true
		case n == 2 || n == 22:
			attr = AttrNormal
			changed = true
		case n == 7:
			attr = AttrReverse
			changed = true
		case n == 27:
			attr = AttrNormal
			changed = true
		case n == 4:
			attr |= AttrUnderline
			changed = true
		case n >= 30 && n <= 37:
			fg = Color(n - 30)
			changed = true
		case n >= 40 && n <= 47:
			bg = Color(n - 40)
			changed = true
		case n >= 90 && n <= 97:
			fg = Color(n - 90 + 8)
			changed = true
		case n >= 100 && n <= 107:
			bg = Color(n - 100 + 8)
			changed = true
		case n == 39:
			fg = DefaultColor
			changed = true
		case n == 49:
			bg = DefaultColor
			changed = true
		case n == 38 || n == 48:
			consumed, col, ok := decodeExtendedColour(parts, i+1)
			if ok {
				if n == 38 {
					fg = col
				} else {
					bg = col
				}
				changed = true
			}
			i += consumed
		}
		i++
	}
	if !changed {
		return ColourChange{}, false
	}
	return ColourChange{FG: &fg, Attr: &attr, BG: &bg}, true
}

// decodeExtendedColour parses the "5;n" (palette index) or "2;r;g;b"
// (truecolor, mapped to nearest xterm-256 entry) forms following a 38/48
// introducer, returning how many further parameters it consumed.
func decodeExtendedColour(parts []string, at int) (consumed int, col Color, ok bool) {
	if at >= len(parts) {
		return 0, 0, false
	}
	mode, err := strconv.Atoi(parts[at])
	if err != nil {
		return 0, 0, false
	}
	switch mode {
	case 5:
		if at+1 >= len(parts) {
			return 1, 0, false
		}
		n, err := strconv.Atoi(parts[at+1])
		if err != nil {
			return 2, 0, false
		}
		return 2, Color(n), true
	case 2:
		if at+3 >= len(parts) {
			return len(parts) - at, 0, false
		}
		r, _ := strconv.Atoi(parts[at+1])
		g, _ := strconv.Atoi(parts[at+2])
		b, _ := strconv.Atoi(parts[at+3])
		return 4, nearestXterm256(byte(r), byte(g), byte(b)), true
	default:
		return 1, 0, false
	}
}

// nearestXterm256 maps a truecolor RGB triple to the nearest entry in the
// standard 256-colour xterm palette (16-231 colour cube, 232-255
// greyscale ramp), per spec.md §4.3's "truecolor-ignored-as-nearest".
func nearestXterm256(r, g, b byte) Color {
	if r == g && g == b {
		if r < 8 {
			return 16
		}
		if r > 248 {
			return 231
		}
		return Color(232 + (int(r)-8)*24/247)
	}
	toIdx := func(c byte) int {
		return int((float64(c) / 255.0) * 5.0 + 0.5)
	}
	ri, gi, bi := toIdx(r), toIdx(g), toIdx(b)
	return Color(16 + 36*ri + 6*gi + bi)
}
