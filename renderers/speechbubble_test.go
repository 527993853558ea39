package renderers

import (
	"strings"
	"testing"
)

// TestSpeechBubble_S3 is Testable Property S3: NewSpeechBubble("hello",
// "", false) (ASCII box, no tail) renders the exact three-line bubble.
func TestSpeechBubble_S3(t *testing.T) {
	bubble := NewSpeechBubble("hello", "", false)
	lines, _ := bubble.RenderedText()
	got := strings.Join(lines, "\n")

	want := ".-------.\n| hello |\n`-------`"
	if got != want {
		t.Errorf("SpeechBubble(\"hello\") =\n%q\nwant\n%q", got, want)
	}
}
