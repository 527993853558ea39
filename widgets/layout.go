package widgets

import "github.com/gostagecraft/stagecraft"

// Layout partitions a Frame's width into columns expressed as proportions
// (spec.md §4.8, C10). Widgets are appended into named (indexed) columns;
// a Layout may be marked FillFrame to consume remaining vertical space
// after non-fill Layouts are sized.
type Layout struct {
	proportions []float64
	columns     [][]Widget
	colX, colW  []int

	FillFrame bool

	liveColumn, liveWidget int
	y, height              int
}

// NewLayout creates a Layout with the given column proportions, normalised
// to sum to 1 (spec.md §4.8).
func NewLayout(proportions []int, fillFrame bool) *Layout {
	total := 0
	for _, p := range proportions {
		total += p
	}
	if total <= 0 {
		total = len(proportions)
		for i := range proportions {
			proportions[i] = 1
		}
	}
	norm := make([]float64, len(proportions))
	for i, p := range proportions {
		norm[i] = float64(p) / float64(total)
	}
	l := &Layout{
		proportions: norm,
		columns:     make([][]Widget, len(proportions)),
		liveColumn:  NoFocus,
		liveWidget:  NoFocus,
	}
	return l
}

// AddWidget appends w into column index.
func (l *Layout) AddWidget(w Widget, column int) {
	l.columns[column] = append(l.columns[column], w)
}

// Widgets returns every widget in the Layout, column by column.
func (l *Layout) Widgets() []Widget {
	var out []Widget
	for _, col := range l.columns {
		out = append(out, col...)
	}
	return out
}

// Fix computes column pixel widths from the proportions and lays out each
// column's widgets top-to-bottom starting at y, returning the height
// consumed. This is the two-pass fit of spec.md §4.8: pass one sums each
// widget's RequiredHeight (skipping FillColumn/FillFrame widgets), pass
// two gives the column's single fill widget, if any, the tallest column's
// height minus its own column's fixed height (at least one row). Fix takes
// no height to fill, so a fill widget does not grow to the Frame's
// remaining height; alone in a single-column Layout it gets one row.
func (l *Layout) Fix(x, y, width int) int {
	l.y = y
	l.colX = make([]int, len(l.columns))
	l.colW = make([]int, len(l.columns))
	cx := x
	for i, p := range l.proportions {
		w := int(float64(width) * p)
		if i == len(l.proportions)-1 {
			w = width - (cx - x)
		}
		l.colX[i] = cx
		l.colW[i] = w
		cx += w
	}

	maxHeight := 0
	for i, col := range l.columns {
		labelOffset := l.labelOffset(col, l.colW[i])
		fillIdx := -1
		fixed := 0
		for wi, w := range col {
			rh := w.RequiredHeight(labelOffset, l.colW[i])
			if rh == FillColumn || rh == FillFrame {
				if fillIdx >= 0 {
					highlanderPanic("Layout column")
				}
				fillIdx = wi
				continue
			}
			fixed += rh
		}
		colHeight := fixed
		if fillIdx >= 0 {
			// A fill widget counts as one row here; pass two stretches it
			// to whatever the tallest sibling column needs.
			colHeight = fixed + 1
		}
		if colHeight > maxHeight {
			maxHeight = colHeight
		}
	}

	cy := y
	for i, col := range l.columns {
		labelOffset := l.labelOffset(col, l.colW[i])
		fillIdx := -1
		fixed := 0
		for wi, w := range col {
			rh := w.RequiredHeight(labelOffset, l.colW[i])
			if rh == FillColumn || rh == FillFrame {
				fillIdx = wi
				continue
			}
			fixed += rh
		}
		wy := cy
		for wi, w := range col {
			if wi == fillIdx {
				fillHeight := maxHeight - fixed
				if fillHeight < 1 {
					fillHeight = 1
				}
				w.SetGeometry(l.colX[i], wy, l.colW[i], fillHeight, labelOffset)
				wy += fillHeight
				continue
			}
			rh := w.RequiredHeight(labelOffset, l.colW[i])
			w.SetGeometry(l.colX[i], wy, l.colW[i], rh, labelOffset)
			wy += rh
		}
	}
	l.height = maxHeight
	return maxHeight
}

// labelOffset computes min(max(label_length)+1, column_width/3) across a
// column's widgets (spec.md §4.8).
func (l *Layout) labelOffset(col []Widget, width int) int {
	maxLabel := 0
	for _, w := range col {
		if n := len(w.Label()); n > maxLabel {
			maxLabel = n
		}
	}
	if maxLabel == 0 {
		return 0
	}
	cap3 := width / 3
	off := maxLabel + 1
	if off > cap3 {
		off = cap3
	}
	return off
}

// Update draws every widget in the Layout.
func (l *Layout) Update(canvas *stagecraft.Canvas, frameNo int, pal Palette) {
	for _, col := range l.columns {
		for _, w := range col {
			w.Update(canvas, frameNo, pal)
		}
	}
}

// Reset restarts every widget in the Layout and clears focus.
func (l *Layout) Reset() {
	for _, col := range l.columns {
		for _, w := range col {
			w.Reset()
		}
	}
	l.liveColumn, l.liveWidget = NoFocus, NoFocus
}
