package stagecraft

// Effect is one independently-updating element of a Scene (spec.md §4.6,
// C7). Concrete effects (stagecraft/renderers and the decorative effects
// it hosts) implement this against a *Canvas so they can draw without
// depending on the owning Screen.
type Effect interface {
	// Reset restarts the effect's internal state (called when its owning
	// Scene is (re-)entered).
	Reset()
	// Update draws one frame. frameNo is the Scene-relative frame counter.
	Update(canvas *Canvas, frameNo int)
	// ProcessEvent gives the effect first refusal on an input event;
	// returning nil means it consumed the event. Unconsumed events are
	// offered to the next effect in z-order.
	ProcessEvent(ev Event) Event
	// StopFrame is the frame number at which the effect (and by default
	// its Scene, if every effect agrees) is finished, or 0 to run forever.
	StopFrame() int
	// FrameUpdateCount is how many frames must elapse between calls to
	// Update (1 means every frame).
	FrameUpdateCount() int
}

// BaseEffect provides FrameUpdateCount/StopFrame/ProcessEvent/Reset
// defaults so concrete effects only need to implement Update, matching
// the teacher's habit of embedding a no-op base for optional interface
// methods (germtb-goli widget bases).
type BaseEffect struct {
	StopFrameNum int
	UpdateEvery  int
}

func (b *BaseEffect) Reset()                     {}
func (b *BaseEffect) ProcessEvent(ev Event) Event { return ev }
func (b *BaseEffect) StopFrame() int             { return b.StopFrameNum }
func (b *BaseEffect) FrameUpdateCount() int {
	if b.UpdateEvery <= 0 {
		return 1
	}
	return b.UpdateEvery
}

// SetFrameUpdateCount lets Options.ReduceCPU throttle an effect's redraw
// cadence at Play-construction time without touching its concrete type.
func (b *BaseEffect) SetFrameUpdateCount(n int) { b.UpdateEvery = n }
