package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildFormFrame() (*Frame, *TextBox, *Text, *CheckBox, *RadioButtons) {
	frame := NewFrame(0, 0, 30, 12, "form", BorderSingle, false)

	ta := NewTextBox("TA", []string{""})
	tb := NewText("TB", "label:")
	ca := NewCheckBox("CA", "enabled")
	things := NewRadioButtons("Things", []Option{
		{Label: "one", Value: "one"},
		{Label: "two", Value: "two"},
	})

	layout := NewLayout([]int{1}, false)
	layout.AddWidget(ta, 0)
	layout.AddWidget(tb, 0)
	layout.AddWidget(ca, 0)
	layout.AddWidget(things, 0)
	frame.AddLayout(layout)
	frame.Fix()

	return frame, ta, tb, ca, things
}

// TestFrame_DataRoundTrip is Testable Property S6: a Frame with named
// widgets TA:TextBox, TB:Text, CA:CheckBox, Things:RadioButtons and no
// initial data has Data=={} immediately after construction, and after
// Save every named widget contributes its zero value.
func TestFrame_DataRoundTrip(t *testing.T) {
	frame, _, _, _, _ := buildFormFrame()

	require.Empty(t, frame.Data, "Data immediately after construction")

	require.NoError(t, frame.Save(false))

	want := map[string]any{
		"TA":     []string{""},
		"TB":     "",
		"CA":     false,
		"Things": "one",
	}
	for k, v := range want {
		got, ok := frame.Data[k]
		if !assert.True(t, ok, "Data missing key %q", k) {
			continue
		}
		assert.Equal(t, v, got, "Data[%q]", k)
	}
}

// TestFrame_TabFocus_VisitsEveryTabStopExactlyOnce is Testable Property 6:
// repeated Tab from any starting tab-stop eventually visits every enabled
// tab-stop in the Frame exactly once per cycle.
func TestFrame_TabFocus_VisitsEveryTabStopExactlyOnce(t *testing.T) {
	frame := NewFrame(0, 0, 30, 12, "form", BorderSingle, false)

	layoutA := NewLayout([]int{1}, false)
	b1 := NewButton("one", func() {})
	b2 := NewButton("two", func() {})
	layoutA.AddWidget(b1, 0)
	layoutA.AddWidget(b2, 0)
	frame.AddLayout(layoutA)

	layoutB := NewLayout([]int{1, 1}, false)
	b3 := NewButton("three", func() {})
	b4 := NewButton("four", func() {})
	layoutB.AddWidget(b3, 0)
	layoutB.AddWidget(b4, 1)
	frame.AddLayout(layoutB)

	frame.Fix()
	frame.Reset()

	allTabStops := []Widget{b1, b2, b3, b4}

	for start := range allTabStops {
		layoutA.Blur()
		layoutB.Blur()
		startLayoutIdx, startLayout := layoutIndexOf(frame, allTabStops[start])
		frame.liveLayout = startLayoutIdx
		frame.focusWidgetInLayout(startLayout, allTabStops[start])

		visited := map[Widget]int{}
		for i := 0; i < len(allTabStops); i++ {
			l := frame.currentLayout()
			w := l.CurrentWidget()
			require.NotNilf(t, w, "no widget focused at tab step %d starting from %d", i, start)
			visited[w]++
			frame.tabFocus(1)
		}

		for _, w := range allTabStops {
			assert.Equalf(t, 1, visited[w], "starting from widget %d: visited=%v", start, visited)
		}
	}
}

func layoutIndexOf(f *Frame, target Widget) (int, *Layout) {
	for i, l := range f.layouts {
		for _, w := range l.Widgets() {
			if w == target {
				return i, l
			}
		}
	}
	return -1, nil
}
