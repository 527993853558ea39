package renderers

import (
	"strings"
	"testing"
)

// TestBarChart_S4 is Testable Property S4: a BarChart with a Y-axis draws
// an outer double-line box, an inner Y-axis, and one bar per sample
// function — each bar's length scaled linearly against maxVal — with a
// blank row between bars. maxVal is chosen equal to the axis track width
// (16) and the sample values (8, 4) are exact halves/quarters of it so
// the scaled bar lengths land on whole numbers without float rounding.
func TestBarChart_S4(t *testing.T) {
	samples := []func() float64{
		func() float64 { return 8 },
		func() float64 { return 4 },
	}
	chart := NewBarChart(7, 19, samples, AxesY, 16)
	got := chart.String()

	want := strings.Join([]string{
		"╔═════════════════╗",
		"║│████████        ║",
		"║│                ║",
		"║│████            ║",
		"║│                ║",
		"║│                ║",
		"╚═════════════════╝",
	}, "\n")

	if got != want {
		t.Errorf("BarChart rendering mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}
