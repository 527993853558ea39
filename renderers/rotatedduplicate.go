package renderers

import "strings"

func reverseString(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

// NewRotatedDuplicate wraps source, stacking a copy rotated by 180
// degrees (rows in reverse order, each row reversed) underneath the original and centring the whole thing within
// the given width/height (spec.md §4.4 "chained/derived renderers",
// grounded on
// original_source/asciimatics/renderers/rotatedduplicate.py).
func NewRotatedDuplicate(width, height int, source Renderer) *Static {
	var images []string
	for _, img := range source.Images() {
		maxLine := 0
		for _, l := range img.Lines {
			if n := lineWidth(l); n > maxLine {
				maxLine = n
			}
		}
		mx := (width - maxLine) / 2
		my := height/2 - len(img.Lines)

		pad := ""
		if mx > 0 {
			pad = strings.Repeat(" ", mx)
		}

		var rows []string
		for i := 0; i < my; i++ {
			rows = append(rows, "")
		}
		rows = append(rows, img.Lines...)
		for i := len(img.Lines) - 1; i >= 0; i-- {
			rows = append(rows, reverseString(img.Lines[i]))
		}
		for i := 0; i < my; i++ {
			rows = append(rows, "")
		}

		if mx < 0 {
			// Negative margin: clip symmetrically, matching the
			// original's x[-mx:mx] slicing.
			for i, r := range rows {
				if len(r) > -2*mx {
					rows[i] = r[-mx : len(r)+mx]
				} else {
					rows[i] = ""
				}
			}
		}
		if my < 0 && -my < len(rows) {
			rows = rows[-my : len(rows)+my]
		}
		images = append(images, strings.Join(rows, pad+"\n"+pad))
	}
	return NewStatic(images, nil)
}
