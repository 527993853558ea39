package stagecraft

import "testing"

// TestStyledText_Slice is Testable Property 4: str(ct[i:j]) == str(ct)[i:j]
// and len(ct[i:j].Styles) == j-i.
func TestStyledText_Slice(t *testing.T) {
	st := NewStyledText("a${1}bc${2}de", NewMarkupParser(), nil)

	i, j := 2, 5
	sub := st.Slice(i, j)

	full := st.String()
	if sub.String() != full[i:j] {
		t.Errorf("sub.String() = %q, want %q", sub.String(), full[i:j])
	}
	if len(sub.Styles) != j-i {
		t.Errorf("len(sub.Styles) = %d, want %d", len(sub.Styles), j-i)
	}
	for k := range sub.Styles {
		if sub.Styles[k] != st.Styles[i+k] {
			t.Errorf("sub.Styles[%d] = %+v, want %+v", k, sub.Styles[k], st.Styles[i+k])
		}
	}
}

// TestStyledText_StyleAt confirms StyleAt reproduces the per-character
// style map produced during parsing.
func TestStyledText_StyleAt(t *testing.T) {
	st := NewStyledText("a${1}b", NewMarkupParser(), nil)
	if st.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", st.Len())
	}
	if st.StyleAt(0) == st.StyleAt(1) {
		t.Errorf("expected distinct styles before/after markup change, got %+v for both", st.StyleAt(0))
	}
	if st.StyleAt(1).FG != 1 {
		t.Errorf("StyleAt(1).FG = %v, want 1", st.StyleAt(1).FG)
	}
}
