package stagecraft

// MouseButton is a bitset of mouse buttons/gestures, matching spec.md §6.
type MouseButton int

const (
	MouseLeft   MouseButton = 1 << 0
	MouseRight  MouseButton = 1 << 1
	MouseDouble MouseButton = 1 << 2
)

// Event is the sum type of input events a Driver can report: a keyboard
// event or a mouse event. It has no accessor methods; callers type-switch
// on the concrete type.
type Event interface {
	isEvent()
}

// KeyboardEvent carries one key code. Codepoints 32-1114111 are literal
// characters; negative values name special keys (see keys.go).
type KeyboardEvent struct {
	Key KeyCode
}

func (KeyboardEvent) isEvent() {}

// MouseEvent carries a cell position and the set of buttons/gestures
// active on this event.
type MouseEvent struct {
	X, Y    int
	Buttons MouseButton
}

func (MouseEvent) isEvent() {}
