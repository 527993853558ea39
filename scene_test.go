package stagecraft

import "testing"

type fakeEffect struct {
	BaseEffect
	updates []int
}

func newFakeEffect(stopFrame int) *fakeEffect {
	return &fakeEffect{BaseEffect: BaseEffect{StopFrameNum: stopFrame}}
}

func (e *fakeEffect) Update(canvas *Canvas, frameNo int) {
	e.updates = append(e.updates, frameNo)
}

// TestScene_ZeroDuration_EndsAtMaxStopFrame is Testable Property 7: with
// duration==0, the Scene ends on the tick where every effect's StopFrame
// has been reached, i.e. max(effect.StopFrame()).
func TestScene_ZeroDuration_EndsAtMaxStopFrame(t *testing.T) {
	a := newFakeEffect(2)
	b := newFakeEffect(3)
	scene := NewScene([]Effect{a, b}, 0, false, "zero-duration")

	for tick := 1; tick <= 2; tick++ {
		scene.update(nil)
		if scene.isComplete() {
			t.Fatalf("scene reported complete too early at tick %d", tick)
		}
	}

	scene.update(nil)
	if !scene.isComplete() {
		t.Error("expected scene to be complete once every effect's StopFrame has been reached")
	}
}

// TestScene_NegativeDuration_NeverEnds is Testable Property 7: with
// duration==-1, the Scene never completes, even with effects that have
// StopFrame set.
func TestScene_NegativeDuration_NeverEnds(t *testing.T) {
	e := newFakeEffect(1)
	scene := NewScene([]Effect{e}, -1, false, "forever")

	for i := 0; i < 50; i++ {
		scene.update(nil)
		if scene.isComplete() {
			t.Fatalf("scene with duration=-1 reported complete at tick %d", i)
		}
	}
}

// TestScene_FrameUpdateCount_Throttles confirms Scene.update only calls an
// effect's Update on frames divisible by its FrameUpdateCount.
func TestScene_FrameUpdateCount_Throttles(t *testing.T) {
	e := newFakeEffect(0)
	e.UpdateEvery = 2
	scene := NewScene([]Effect{e}, 10, false, "throttled")

	for i := 0; i < 4; i++ {
		scene.update(nil)
	}

	want := []int{0, 2}
	if len(e.updates) != len(want) {
		t.Fatalf("updates = %v, want %v", e.updates, want)
	}
	for i, w := range want {
		if e.updates[i] != w {
			t.Errorf("updates[%d] = %d, want %d", i, e.updates[i], w)
		}
	}
}
