package stagecraft

import "time"

// Screen is the root Canvas attached to a Driver (spec.md §4.2, C3). It
// adds palette metadata and the input queue on top of Canvas.
type Screen struct {
	*Canvas
	driver  Driver
	pending []Event
	logger  *Logger
}

// NewScreen queries the Driver for its current size and palette and
// constructs the root Canvas over it. bufferHeight lets the caller
// request scroll-back capacity beyond the visible height.
func NewScreen(driver Driver, bufferHeight int, logger *Logger) *Screen {
	w, h := driver.Size()
	canvas := NewCanvas(w, h, bufferHeight, driver.UnicodeAware())
	if logger == nil {
		logger = NewLogger(256)
	}
	return &Screen{Canvas: canvas, driver: driver, logger: logger}
}

// Colours is how many indexed colours the underlying driver supports.
func (s *Screen) Colours() int { return s.driver.ColourCount() }

// Palette returns the driver's current palette.
func (s *Screen) Palette() Palette { return s.driver.Palette() }

// HasResized reports whether the driver's terminal size has changed since
// the last call.
func (s *Screen) HasResized() bool { return s.driver.ResizedSinceLastCall() }

// SetCursorVisible shows or hides the native cursor.
func (s *Screen) SetCursorVisible(v bool) { s.driver.SetCursorVisible(v) }

// Bell rings the terminal bell.
func (s *Screen) Bell() { s.driver.Bell() }

// pollInput drains the driver's pending events into the Screen's queue.
func (s *Screen) pollInput() {
	s.pending = append(s.pending, s.driver.ReadInput()...)
}

// GetEvent returns the next queued input event, or nil if none pending
// (spec.md §4.2).
func (s *Screen) GetEvent() Event {
	s.pollInput()
	if len(s.pending) == 0 {
		return nil
	}
	ev := s.pending[0]
	s.pending = s.pending[1:]
	return ev
}

// GetKey removes and returns the first queued keyboard key code, or nil
// if no keyboard event is pending (spec.md §4.2). Non-keyboard events
// ahead of it stay queued.
func (s *Screen) GetKey() *KeyCode {
	s.pollInput()
	for i, ev := range s.pending {
		if ke, ok := ev.(KeyboardEvent); ok {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			k := ke.Key
			return &k
		}
	}
	return nil
}

// Refresh flushes the root Canvas's diff to the driver.
func (s *Screen) Refresh() error {
	return s.Canvas.Refresh(s.driver)
}

// Resize reacts to a driver-reported size change by reallocating the root
// Canvas's buffers.
func (s *Screen) Resize() {
	w, h := s.driver.Size()
	s.Canvas.Resize(w, h, max(s.Canvas.bufferHeight, h))
}

// Close releases the underlying Driver.
func (s *Screen) Close() error { return s.driver.Close() }

// WaitForInput cooperatively sleeps until input is pending or the timeout
// elapses (spec.md §4.2). This and the Player's inter-tick sleep are the
// only permitted suspension points (spec.md §5).
func (s *Screen) WaitForInput(timeout time.Duration) {
	const pollInterval = 10 * time.Millisecond
	deadline := time.Now().Add(timeout)
	for {
		s.pollInput()
		if len(s.pending) > 0 || time.Now().After(deadline) {
			return
		}
		time.Sleep(pollInterval)
	}
}
