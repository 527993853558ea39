package renderers

import "sync"

// StreamBuffer is a mutex-guarded ring buffer feeding a background thread's
// output (e.g. a recorded session being tailed) into the UI thread's
// per-frame render call, matching spec.md §5's rule that "the UI thread
// must acquire that mutex around update" (SPEC_FULL.md §7 concurrency
// carve-out). Grounded on the teacher's log_capture.go buffering style;
// the ring-buffer eviction policy itself is stagecraft-original since
// asciimatics' players read directly from a file/socket instead.
type StreamBuffer struct {
	mu       sync.Mutex
	data     []byte
	capacity int
}

// NewStreamBuffer creates a StreamBuffer retaining at most capacity bytes;
// writes beyond capacity evict the oldest bytes.
func NewStreamBuffer(capacity int) *StreamBuffer {
	if capacity <= 0 {
		capacity = 1 << 16
	}
	return &StreamBuffer{capacity: capacity}
}

// Write appends p, evicting the oldest bytes if the buffer would exceed
// its capacity. Safe to call from a background producer goroutine.
func (s *StreamBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append(s.data, p...)
	if over := len(s.data) - s.capacity; over > 0 {
		s.data = s.data[over:]
	}
	return len(p), nil
}

// Drain removes and returns every byte currently buffered. Called by the
// UI thread once per frame under the same mutex the producer writes
// under.
func (s *StreamBuffer) Drain() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.data) == 0 {
		return nil
	}
	out := make([]byte, len(s.data))
	copy(out, s.data)
	s.data = s.data[:0]
	return out
}

// Len reports how many bytes are currently buffered.
func (s *StreamBuffer) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}
