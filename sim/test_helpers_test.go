package sim

import (
	"bytes"
	"sync"
	"time"
)

// fastTimings shrinks the demo constants so the suite stays quick while
// preserving the contention shape (low hold > high hold, idles in between).
func fastTimings() Timings {
	return Timings{
		HighHold:   5 * time.Millisecond,
		HighIdle:   10 * time.Millisecond,
		MediumBusy: 5 * time.Millisecond,
		MediumIdle: 5 * time.Millisecond,
		LowHold:    20 * time.Millisecond,
		LowIdle:    15 * time.Millisecond,
	}
}

// stubAssigner records assignment requests and returns a fixed error.
type stubAssigner struct {
	mu      sync.Mutex
	calls   []WaiterInfo // Level + Handle of each request; ID unused
	failErr error
}

func (a *stubAssigner) Assign(h ThreadHandle, level PriorityLevel) error {
	a.mu.Lock()
	a.calls = append(a.calls, WaiterInfo{Level: level, Handle: h})
	a.mu.Unlock()
	return a.failErr
}

func (a *stubAssigner) assigned() []WaiterInfo {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]WaiterInfo, len(a.calls))
	copy(out, a.calls)
	return out
}

// syncBuffer is a goroutine-safe bytes.Buffer for capturing worker output.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
