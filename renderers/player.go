package renderers

import (
	"github.com/gostagecraft/stagecraft"
)

// screenPlayer is the shared cursor/canvas state and ANSI-token interpreter
// behind AnsiArtPlayer and AsciinemaPlayer (spec.md §4.4
// "AnsiArtPlayer/AsciinemaPlayer... maintain an internal cursor and
// scratch canvas", grounded on
// original_source/asciimatics/renderers/players.py's
// AbstractScreenPlayer). It feeds text through the shared AnsiParser and
// interprets the resulting tokens against a scratch Canvas.
type screenPlayer struct {
	canvas *stagecraft.Canvas
	parser *stagecraft.AnsiParser
	style  stagecraft.Style

	showCursor             bool
	cursorX, cursorY       int
	saveCursorX, saveCursorY int
}

func newScreenPlayer(height, width int) screenPlayer {
	p := screenPlayer{
		canvas: stagecraft.NewCanvas(width, height, height, false),
		parser: stagecraft.NewAnsiParser(),
		style:  stagecraft.DefaultStyle,
	}
	p.parser.Reset("", &p.style)
	return p
}

// playContent feeds raw text (one read chunk, possibly multi-line) through
// the ANSI parser and applies every resulting token to the scratch canvas,
// matching AbstractScreenPlayer._play_content.
func (p *screenPlayer) playContent(text string) {
	lines := splitLines(text)
	for i, line := range lines {
		p.parser.Reset(line, &p.style)
		for _, tok := range p.parser.Parse() {
			p.apply(tok)
		}
		p.style = p.parser.LastStyle()
		if i != len(lines)-1 {
			p.cursorX = 0
			p.cursorY++
			if p.cursorY-p.canvas.StartLine() >= p.canvas.Height() {
				p.canvas.Scroll(1)
			}
		}
	}
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i, r := range s {
		if r == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	lines = append(lines, s[start:])
	return lines
}

func (p *screenPlayer) printAt(text string, x, y int) {
	p.canvas.PrintAt(text, x, y, p.style, false)
}

func (p *screenPlayer) apply(tok stagecraft.Token) {
	switch tok.Kind {
	case stagecraft.DisplayText:
		width := p.canvas.Width()
		text := tok.Text
		if p.cursorX+len(text) >= width {
			part1 := text
			part2 := ""
			if width-p.cursorX >= 0 && width-p.cursorX <= len(text) {
				part1 = text[:width-p.cursorX]
				part2 = text[width-p.cursorX:]
			}
			p.printAt(part1, p.cursorX, p.cursorY)
			p.printAt(part2, 0, p.cursorY+1)
			p.cursorX = len(part2)
			p.cursorY++
			if p.cursorY-p.canvas.StartLine() >= p.canvas.Height() {
				p.canvas.Scroll(1)
			}
		} else {
			p.printAt(text, p.cursorX, p.cursorY)
			p.cursorX += len(text)
		}
	case stagecraft.ChangeColours:
		if tok.Colour.FG != nil {
			p.style.FG = *tok.Colour.FG
		}
		if tok.Colour.Attr != nil {
			p.style.Attr = *tok.Colour.Attr
		}
		if tok.Colour.BG != nil {
			p.style.BG = *tok.Colour.BG
		}
	case stagecraft.NextTab:
		p.cursorX = (p.cursorX/8)*8 + 8
	case stagecraft.MoveRelative:
		p.cursorX += tok.Move.DX
		p.cursorY += tok.Move.DY
		if p.cursorY < p.canvas.StartLine() {
			p.canvas.Scroll(p.cursorY - p.canvas.StartLine())
		}
	case stagecraft.MoveAbsolute:
		if tok.MoveAbs.X != nil {
			p.cursorX = *tok.MoveAbs.X
		}
		if tok.MoveAbs.Y != nil {
			p.cursorY = *tok.MoveAbs.Y + p.canvas.StartLine()
		}
	case stagecraft.DeleteLine:
		switch tok.Line {
		case stagecraft.DeleteToEnd:
			n := p.canvas.Width() - p.cursorX
			if n > 0 {
				p.printAt(spaces(n), p.cursorX, p.cursorY)
			}
		case stagecraft.DeleteFromStart:
			if p.cursorX > 0 {
				p.printAt(spaces(p.cursorX), 0, p.cursorY)
			}
		case stagecraft.DeleteWholeLine:
			p.printAt(spaces(p.canvas.Width()), 0, p.cursorY)
		}
	case stagecraft.DeleteChars:
		width := p.canvas.Width()
		for x := p.cursorX; x < width; x++ {
			var cell stagecraft.Cell
			if x+tok.Count < width {
				cell = p.canvas.GetFrom(x+tok.Count, p.cursorY)
			} else {
				cell = stagecraft.Cell{Ch: ' ', Style: p.style}
			}
			p.canvas.PrintAt(string(cell.Ch), x, p.cursorY, cell.Style, false)
		}
	case stagecraft.ShowCursor:
		p.showCursor = tok.Bool
	case stagecraft.SaveCursor:
		p.saveCursorX, p.saveCursorY = p.cursorX, p.cursorY
	case stagecraft.RestoreCursor:
		p.cursorX, p.cursorY = p.saveCursorX, p.saveCursorY
	case stagecraft.ClearScreen:
		p.canvas.ClearBuffer(p.style, 0, 0, p.canvas.Width(), p.canvas.Height())
		p.cursorX = 0
		p.cursorY = p.canvas.StartLine()
	}
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

func (p *screenPlayer) MaxWidth() int  { return p.canvas.Width() }
func (p *screenPlayer) MaxHeight() int { return p.canvas.Height() }

func (p *screenPlayer) snapshot() Image { return imageFromCanvas(p.canvas) }
