package stagecraft

import "testing"

// TestCanvas_PrintAtThenGetFrom_RoundTrips is Testable Property 1: for any
// single-width cell inside the visible region, print_at then get_from
// returns the same (char, style).
func TestCanvas_PrintAtThenGetFrom_RoundTrips(t *testing.T) {
	c := NewCanvas(10, 5, 5, true)
	style := Style{FG: ColorRed, Attr: AttrBold, BG: ColorBlue}

	c.PrintAt("x", 3, 2, style, false)
	got := c.GetFrom(3, 2)

	if got.Ch != 'x' || got.Style != style {
		t.Errorf("GetFrom(3,2) = %+v, want Ch='x' Style=%+v", got, style)
	}
}

// TestCanvas_Refresh_DoubleFlushIsIdempotent is Testable Property 2: a
// second Refresh with no intervening writes emits zero diffs.
func TestCanvas_Refresh_DoubleFlushIsIdempotent(t *testing.T) {
	c := NewCanvas(10, 5, 5, true)
	c.PrintAt("hello", 0, 0, DefaultStyle, false)

	drv := newFakeDriver(10, 5)
	if err := c.Refresh(drv); err != nil {
		t.Fatalf("first Refresh: %v", err)
	}
	if len(drv.writes) != 1 {
		t.Fatalf("expected 1 write after first Refresh, got %d", len(drv.writes))
	}

	if err := c.Refresh(drv); err != nil {
		t.Fatalf("second Refresh: %v", err)
	}
	if len(drv.writes) != 1 {
		t.Errorf("second Refresh emitted a write, want none: %v", drv.writes)
	}
}

// TestCanvas_Refresh_RetriesAfterDriverError ensures a failed flush leaves
// lastFlushed untouched, so a subsequent Refresh retries the same diff
// instead of silently believing it already flushed (canvas.go's Refresh
// doc comment invariant).
func TestCanvas_Refresh_RetriesAfterDriverError(t *testing.T) {
	c := NewCanvas(10, 5, 5, true)
	c.PrintAt("x", 0, 0, DefaultStyle, false)

	drv := newFakeDriver(10, 5)
	drv.writeErr = errBoom

	if err := c.Refresh(drv); err == nil {
		t.Fatal("expected Refresh to fail")
	}

	drv.writeErr = nil
	if err := c.Refresh(drv); err != nil {
		t.Fatalf("retry Refresh: %v", err)
	}
	if len(drv.writes) != 1 {
		t.Fatalf("expected exactly 1 successful write, got %d", len(drv.writes))
	}
}

// TestCanvas_Paint_AppliesColourMap is Testable Property 8: paint with a
// colour_map overrides fg/bg per character at the given offsets.
func TestCanvas_Paint_AppliesColourMap(t *testing.T) {
	c := NewCanvas(10, 2, 2, true)
	fg1, bg4 := ColorRed, ColorBlue
	fg4, bg1 := ColorBlue, ColorRed
	colourMap := []ColourMapEntry{
		{FG: &fg1, BG: &bg4},
		{},
		{},
		{FG: &fg4, BG: &bg1},
	}
	c.Paint("Text", 0, 0, DefaultStyle, colourMap)

	first := c.GetFrom(0, 0)
	if first.FG != ColorRed || first.BG != ColorBlue {
		t.Errorf("cell(0,0) = fg=%v bg=%v, want fg=1 bg=4", first.FG, first.BG)
	}
	fourth := c.GetFrom(3, 0)
	if fourth.FG != ColorBlue || fourth.BG != ColorRed {
		t.Errorf("cell(3,0) = fg=%v bg=%v, want fg=4 bg=1", fourth.FG, fourth.BG)
	}
}

var errBoom = &driverBoomError{}

type driverBoomError struct{}

func (*driverBoomError) Error() string { return "boom" }
