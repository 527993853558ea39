package widgets

import (
	"strings"
	"time"

	"github.com/gostagecraft/stagecraft"
	"github.com/gostagecraft/stagecraft/signals"
)

// ColumnAlign selects how a MultiColumnListBox column's text is padded to
// its column width (spec.md §4.8, grounded on
// original_source/asciimatics/widgets/multicolumnlistbox.py's `<`/`>`/`^`
// alignment qualifiers).
type ColumnAlign int

const (
	AlignLeft ColumnAlign = iota
	AlignRight
	AlignCentre
)

// Column is one MultiColumnListBox column's fixed character width and
// alignment.
type Column struct {
	Width int
	Align ColumnAlign
}

// Row is one MultiColumnListBox entry: one cell per column, plus the
// value that entry selects.
type Row struct {
	Cells []string
	Value any
}

// MultiColumnListBox is a tabular single-selection list (spec.md §4.8,
// SPEC_FULL.md §6.5, grounded on
// original_source/asciimatics/widgets/multicolumnlistbox.py, trimmed from
// the original's percentage/auto-fill column-width DSL to fixed integer
// widths — SPEC_FULL.md's widget roster needs the tabular display and
// selection contract, not a column-width mini-language).
type MultiColumnListBox struct {
	Base
	Columns []Column
	Titles  []string
	Rows    []Row

	selected signals.Accessor[int]
	setSel   signals.Setter[int]
	OnChange func(int)

	topRow     int
	searchText string
	lastSearch time.Time
}

// NewMultiColumnListBox creates a MultiColumnListBox named name with the
// given column widths/alignments and rows.
func NewMultiColumnListBox(name string, columns []Column, rows []Row) *MultiColumnListBox {
	sel, setSel := signals.CreateSignal(-1)
	return &MultiColumnListBox{Base: NewBase(name), Columns: columns, Rows: rows, selected: sel, setSel: setSel}
}

func (m *MultiColumnListBox) Selected() int { return m.selected() }

func (m *MultiColumnListBox) AnyValue() any {
	if i := m.selected(); i >= 0 && i < len(m.Rows) {
		return m.Rows[i].Value
	}
	return nil
}
func (m *MultiColumnListBox) ZeroValue() any { return nil }

func (m *MultiColumnListBox) setIndex(i int) {
	if i == m.selected() {
		return
	}
	m.setSel(i)
	if m.OnChange != nil {
		m.OnChange(i)
	}
}

func (m *MultiColumnListBox) SetAnyValue(v any) {
	for i, r := range m.Rows {
		if r.Value == v {
			m.setIndex(i)
			return
		}
	}
}

func (m *MultiColumnListBox) ValidateValue() bool { return true }

func (m *MultiColumnListBox) RequiredHeight(int, int) int { return FillColumn }

func (m *MultiColumnListBox) Reset() { m.topRow = 0 }

func (m *MultiColumnListBox) ensureVisible() {
	_, _, _, h, _ := m.Geometry()
	sel := m.selected()
	if sel < 0 {
		return
	}
	if sel < m.topRow {
		m.topRow = sel
	} else if sel >= m.topRow+h {
		m.topRow = sel - h + 1
	}
	if m.topRow < 0 {
		m.topRow = 0
	}
}

func padCell(text string, width int, align ColumnAlign) string {
	runes := []rune(text)
	if len(runes) > width {
		return string(runes[:width])
	}
	pad := width - len(runes)
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + text
	case AlignCentre:
		left := pad / 2
		return strings.Repeat(" ", left) + text + strings.Repeat(" ", pad-left)
	default:
		return text + strings.Repeat(" ", pad)
	}
}

func (m *MultiColumnListBox) formatRow(cells []string) string {
	var b strings.Builder
	for i, col := range m.Columns {
		if i > 0 {
			b.WriteByte(' ')
		}
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		b.WriteString(padCell(cell, col.Width, col.Align))
	}
	return b.String()
}

func (m *MultiColumnListBox) Update(canvas *stagecraft.Canvas, frameNo int, pal Palette) {
	m.ensureVisible()
	x, y, w, h, _ := m.Geometry()
	row := 0
	if len(m.Titles) > 0 {
		canvas.PrintAt(m.formatRow(m.Titles), x, y, pal.Get("title"), false)
		row = 1
	}
	for i := row; i < h; i++ {
		idx := m.topRow + i - row
		key := "field"
		if idx == m.selected() {
			key = "selected_field"
			if m.HasFocus() {
				key = "selected_focus_field"
			}
		} else if m.HasFocus() {
			key = "focus_field"
		}
		style := pal.Get(key)
		text := ""
		if idx >= 0 && idx < len(m.Rows) {
			text = m.formatRow(m.Rows[idx].Cells)
		}
		canvas.ClearBuffer(style, x, y+i, w, 1)
		canvas.PrintAt(text, x, y+i, style, false)
	}
}

func (m *MultiColumnListBox) searchFor(r rune) {
	now := time.Now()
	if now.Sub(m.lastSearch) > typeAheadTimeout {
		m.searchText = ""
	}
	m.lastSearch = now
	m.searchText += strings.ToLower(string(r))
	for i, row := range m.Rows {
		if len(row.Cells) > 0 && strings.HasPrefix(strings.ToLower(row.Cells[0]), m.searchText) {
			m.setIndex(i)
			return
		}
	}
}

func (m *MultiColumnListBox) ProcessEvent(ev stagecraft.Event) stagecraft.Event {
	if m.IsDisabled() || len(m.Rows) == 0 {
		return ev
	}
	titleRows := 0
	if len(m.Titles) > 0 {
		titleRows = 1
	}
	switch e := ev.(type) {
	case stagecraft.KeyboardEvent:
		switch e.Key {
		case stagecraft.KeyUp:
			if m.selected() > 0 {
				m.setIndex(m.selected() - 1)
			} else if m.selected() < 0 {
				m.setIndex(0)
			}
			return nil
		case stagecraft.KeyDown:
			if m.selected() < len(m.Rows)-1 {
				m.setIndex(m.selected() + 1)
			}
			return nil
		default:
			if e.Key.IsPrintable() && e.Key < 256 {
				m.searchFor(rune(e.Key))
				return nil
			}
		}
	case stagecraft.MouseEvent:
		if e.Buttons&stagecraft.MouseLeft != 0 && m.IsMouseOver(e, false, 0) {
			_, y, _, _, _ := m.Geometry()
			idx := m.topRow + (e.Y - y - titleRows)
			if idx >= 0 && idx < len(m.Rows) {
				m.setIndex(idx)
			}
			return nil
		}
	}
	return ev
}
