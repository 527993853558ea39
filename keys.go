package stagecraft

// KeyCode is a key code as reported by a Driver. Values 32-1114111 are
// Unicode codepoints typed verbatim; negative values name keys with no
// printable representation. Grounded on germtb-goli/keys.go's constant
// style, extended to the full named-key set spec.md §6 requires.
type KeyCode int

// Named keys, matching spec.md §6's enumerated out-of-band range.
const (
	KeyTab KeyCode = -(iota + 1)
	KeyBackTab
	KeyBack // Backspace
	KeyDelete
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyEscape
	KeyEnter
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// IsPrintable reports whether this key code is a literal codepoint rather
// than a named key.
func (k KeyCode) IsPrintable() bool {
	return k >= 32 && k <= 1114111
}
