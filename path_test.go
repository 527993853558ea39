package stagecraft

import "testing"

// TestPath_MoveStraightTo_EndsExactlyAtTarget is Testable Property 5: the
// nth emitted position of move_straight_to(x, y, n) equals (x, y), and
// intermediate positions are integer-rounded linear interpolants.
func TestPath_MoveStraightTo_EndsExactlyAtTarget(t *testing.T) {
	p := NewPath().JumpTo(0, 0)
	if _, ok := p.NextPos(); !ok {
		t.Fatal("expected a position after JumpTo")
	}

	p.MoveStraightTo(10, 3, 4)
	if got := p.Len(); got != 5 {
		t.Fatalf("Len() = %d, want 5 (1 jump + 4 steps)", got)
	}

	want := []Point{
		{X: 3, Y: 1},
		{X: 5, Y: 2},
		{X: 8, Y: 2},
		{X: 10, Y: 3},
	}
	for i, w := range want {
		got, ok := p.NextPos()
		if !ok {
			t.Fatalf("step %d: expected a position, path exhausted", i)
		}
		if got != w {
			t.Errorf("step %d = %+v, want %+v", i, got, w)
		}
	}

	if !p.IsFinished() {
		t.Error("expected path to be finished after consuming all steps")
	}
}

// TestPath_Reset rewinds the cursor without discarding recorded steps.
func TestPath_Reset(t *testing.T) {
	p := NewPath().JumpTo(0, 0).MoveStraightTo(4, 0, 2)
	for !p.IsFinished() {
		p.NextPos()
	}
	p.Reset()
	if p.IsFinished() {
		t.Error("expected path to be unfinished after Reset")
	}
	first, ok := p.NextPos()
	if !ok || first != (Point{X: 0, Y: 0}) {
		t.Errorf("first position after Reset = %+v, %v, want (0,0), true", first, ok)
	}
}
