package stagecraft

// Scene is an ordered collection of Effects sharing a duration and a
// clear-on-enter flag (spec.md §4.6, C8).
type Scene struct {
	Effects    []Effect
	Duration   int // frames; 0 means run until every Effect's StopFrame agrees, <0 forever
	ClearScene bool
	Name       string

	frameNo int
}

// NewScene creates a Scene. duration==0 means "run until every effect's
// StopFrame has passed"; duration<0 means the Scene never completes;
// clearScene controls whether the canvas is blanked
// when the Scene is (re-)entered (spec.md §4.6).
func NewScene(effects []Effect, duration int, clearScene bool, name string) *Scene {
	return &Scene{Effects: effects, Duration: duration, ClearScene: clearScene, Name: name}
}

// Reset restarts every effect and the Scene's own frame counter.
func (s *Scene) Reset(canvas *Canvas, oldScene *Scene) {
	s.frameNo = 0
	if s.ClearScene && canvas != nil {
		canvas.ClearBuffer(DefaultStyle, 0, 0, canvas.Width(), canvas.Height())
	}
	for _, e := range s.Effects {
		e.Reset()
	}
}

// AddEffect appends an effect to the Scene, reset immediately so it can
// be added mid-scene (spec.md §4.6).
func (s *Scene) AddEffect(e Effect) {
	e.Reset()
	s.Effects = append(s.Effects, e)
}

// RemoveEffect drops the first occurrence of e from the Scene.
func (s *Scene) RemoveEffect(e Effect) {
	for i, ex := range s.Effects {
		if ex == e {
			s.Effects = append(s.Effects[:i], s.Effects[i+1:]...)
			return
		}
	}
}

// ProcessEvent offers ev to each effect, front-to-back, until one
// consumes it (returns nil) or all decline.
func (s *Scene) ProcessEvent(ev Event) Event {
	for _, e := range s.Effects {
		ev = e.ProcessEvent(ev)
		if ev == nil {
			return nil
		}
	}
	return ev
}

// isComplete reports whether the Scene's duration (or, absent one, every
// effect's StopFrame) has elapsed at the current frame.
func (s *Scene) isComplete() bool {
	if s.Duration > 0 {
		return s.frameNo >= s.Duration
	}
	if s.Duration < 0 {
		return false
	}
	for _, e := range s.Effects {
		if e.StopFrame() == 0 || s.frameNo < e.StopFrame() {
			return false
		}
	}
	return len(s.Effects) > 0
}

// update draws one frame across every effect, honouring each one's
// FrameUpdateCount throttle, then advances the Scene's own counter.
func (s *Scene) update(canvas *Canvas) {
	for _, e := range s.Effects {
		n := e.FrameUpdateCount()
		if n <= 0 {
			n = 1
		}
		if s.frameNo%n == 0 {
			e.Update(canvas, s.frameNo)
		}
	}
	s.frameNo++
}
