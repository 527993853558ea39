package renderers

import "strings"

// NewSpeechBubble builds a box-drawn callout around text, with an
// optional tail ("L" or "R" for left/right, "" for none). Grounded on
// original_source/asciimatics/renderers/speechbubble.py. uni selects the
// Unicode box-drawing glyph set over the plain-ASCII one (Testable
// Property S3 uses the ASCII set).
func NewSpeechBubble(text string, tail string, uni bool) *Static {
	lines := strings.Split(text, "\n")
	maxLen := 0
	for _, l := range lines {
		if n := lineWidth(l); n > maxLen {
			maxLen = n
		}
	}

	var b strings.Builder
	if uni {
		b.WriteString("╭─" + strings.Repeat("─", maxLen) + "─╮\n")
		for _, l := range lines {
			b.WriteString("│ " + l + strings.Repeat(" ", maxLen-lineWidth(l)) + " │\n")
		}
		b.WriteString("╰─" + strings.Repeat("─", maxLen) + "─╯")
	} else {
		b.WriteString(".-" + strings.Repeat("-", maxLen) + "-.\n")
		for _, l := range lines {
			b.WriteString("| " + l + strings.Repeat(" ", maxLen-lineWidth(l)) + " |\n")
		}
		b.WriteString("`-" + strings.Repeat("-", maxLen) + "-`")
	}

	switch tail {
	case "L":
		b.WriteString("\n  )/  \n-\"`\n")
	case "R":
		b.WriteString("\n" + strings.Repeat(" ", maxLen) + "\\(  \n" + strings.Repeat(" ", maxLen) + " `\"-\n")
	}

	return NewStatic([]string{strings.TrimRight(b.String(), "\n")}, nil)
}
