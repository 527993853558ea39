package stagecraft

import "testing"

// TestScroll_S5 is Testable Property S5: with Scroll(rate=2), update(1)
// does not scroll, and update(2) scrolls exactly once.
func TestScroll_S5(t *testing.T) {
	canvas := NewCanvas(10, 5, 20, true)
	scroll := NewScroll(2)

	scroll.Update(canvas, 1)
	if canvas.StartLine() != 0 {
		t.Fatalf("StartLine() after update(1) = %d, want 0 (no scroll yet)", canvas.StartLine())
	}

	scroll.Update(canvas, 2)
	if canvas.StartLine() != 1 {
		t.Errorf("StartLine() after update(2) = %d, want 1 (scrolled exactly once)", canvas.StartLine())
	}
}
