package driver

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gostagecraft/stagecraft"
)

// WriteCells applies one diff batch to the real terminal: cursor-move to
// each run's start, an SGR sequence for its style, and the run's glyphs,
// matching the CSI sequences purfecterm's renderer emits for cursor
// positioning and colour (phroun-purfecterm/cli/terminal.go's
// `\x1b[...]` literals, generalised here to per-cell SGR from a Style
// rather than one fixed scheme).
func (d *ANSIDriver) WriteCells(runs []stagecraft.CellRun) error {
	var b strings.Builder
	var last stagecraft.Style
	haveLast := false
	for _, run := range runs {
		fmt.Fprintf(&b, "\x1b[%d;%dH", run.Y+1, run.X+1)
		for _, cell := range run.Cells {
			if !haveLast || cell.Style != last {
				b.WriteString(sgr(cell.Style))
				last = cell.Style
				haveLast = true
			}
			if cell.Ch == 0 {
				b.WriteByte(' ')
			} else if !cell.IsWidthContinuation() {
				b.WriteRune(cell.Ch)
			}
		}
	}
	_, err := os.Stdout.WriteString(b.String())
	return err
}

// sgr renders a Style as an SGR escape sequence, reset-first so runs
// never inherit a previous run's attributes.
func sgr(s stagecraft.Style) string {
	var parts []string
	parts = append(parts, "0")
	if s.Attr&stagecraft.AttrBold != 0 {
		parts = append(parts, "1")
	}
	if s.Attr&stagecraft.AttrUnderline != 0 {
		parts = append(parts, "4")
	}
	if s.Attr&stagecraft.AttrReverse != 0 {
		parts = append(parts, "7")
	}
	if s.FG != stagecraft.DefaultColor {
		parts = append(parts, "38", "5", strconv.Itoa(int(s.FG)))
	}
	if s.BG != stagecraft.DefaultColor {
		parts = append(parts, "48", "5", strconv.Itoa(int(s.BG)))
	}
	return "\x1b[" + strings.Join(parts, ";") + "m"
}
