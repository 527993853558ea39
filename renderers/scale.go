package renderers

import "strconv"

// NewScale renders a horizontal ruler: a '-' every column, a '+' every 5th,
// and the lowest significant digit of the column number every 10th,
// useful for debugging positions (spec.md §4.4 "BarChart... axis
// labelling", grounded on
// original_source/asciimatics/renderers/scales.py's Scale).
func NewScale(width int) *Static {
	out := make([]rune, width)
	for i := 0; i < width; i++ {
		x := i + 1
		switch {
		case x%10 == 0:
			s := strconv.Itoa(x)
			out[i] = rune(s[len(s)-1])
		case x%5 == 0:
			out[i] = '+'
		default:
			out[i] = '-'
		}
	}
	return NewStatic([]string{string(out)}, nil)
}

// NewVScale is NewScale's vertical counterpart: one digit per row, the
// lowest significant digit of the row number.
func NewVScale(height int) *Static {
	rows := make([]string, height)
	for i := 0; i < height; i++ {
		s := strconv.Itoa(i + 1)
		rows[i] = string(s[len(s)-1])
	}
	var joined string
	for i, r := range rows {
		if i > 0 {
			joined += "\n"
		}
		joined += r
	}
	return NewStatic([]string{joined}, nil)
}
