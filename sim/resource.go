package sim

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// Booster temporarily raises a lock holder's OS priority to a waiter's level
// and restores it on release. It is wired only in the real inheritance mode;
// a nil Booster makes the resource a plain instrumented mutex and any
// "boosted" status purely cosmetic.
type Booster interface {
	Boost(h ThreadHandle, to PriorityLevel) error
	Restore(h ThreadHandle, base PriorityLevel) error
}

// WaiterInfo identifies the worker attempting an acquisition.
type WaiterInfo struct {
	ID     string
	Level  PriorityLevel
	Handle ThreadHandle
}

type holderInfo struct {
	WaiterInfo
	boostedTo PriorityLevel // zero while not boosted
}

// SharedResource guards one logical resource. There is no payload: the
// resource is the critical section itself, and at most one worker may be
// inside it at any instant. Acquisition wait time is measured around the
// blocking lock and returned on the guard.
type SharedResource struct {
	mu      sync.Mutex // the resource lock
	meta    sync.Mutex // guards holder bookkeeping
	holder  *holderInfo
	booster Booster
	holds   atomic.Int32 // concurrent holder count, must never exceed 1
}

// NewSharedResource builds a resource. b may be nil (no real boosting).
func NewSharedResource(b Booster) *SharedResource {
	return &SharedResource{booster: b}
}

// Acquire blocks until the resource is free. The returned guard must be
// released exactly once; workers defer Release immediately.
func (r *SharedResource) Acquire(w WaiterInfo) *ResourceGuard {
	start := time.Now()
	r.boostHolder(w)
	r.mu.Lock()
	if n := r.holds.Add(1); n != 1 {
		// Exclusivity is the one invariant the demo cannot survive losing.
		panic(fmt.Sprintf("shared resource exclusivity violated: %d concurrent holders", n))
	}
	r.meta.Lock()
	r.holder = &holderInfo{WaiterInfo: w}
	r.meta.Unlock()
	return &ResourceGuard{r: r, wait: time.Since(start)}
}

// boostHolder raises the current holder to the waiter's level when the real
// inheritance mode is active and the waiter outranks the holder. The holder
// is restored during its own Release.
func (r *SharedResource) boostHolder(w WaiterInfo) {
	if r.booster == nil {
		return
	}
	r.meta.Lock()
	defer r.meta.Unlock()
	h := r.holder
	if h == nil || w.Level <= h.Level || w.Level <= h.boostedTo {
		return
	}
	if err := r.booster.Boost(h.Handle, w.Level); err == nil {
		h.boostedTo = w.Level
	}
}

func (r *SharedResource) release() {
	r.meta.Lock()
	h := r.holder
	r.holder = nil
	r.meta.Unlock()
	if h != nil && h.boostedTo != 0 && r.booster != nil {
		// Best effort, same policy as Assign: a failed restore only warps
		// scheduling, never correctness.
		_ = r.booster.Restore(h.Handle, h.Level)
	}
	r.holds.Add(-1)
	r.mu.Unlock()
}

// ResourceGuard represents one held acquisition.
type ResourceGuard struct {
	r        *SharedResource
	wait     time.Duration
	released atomic.Bool
}

// Wait reports how long the acquiring worker blocked before entry.
func (g *ResourceGuard) Wait() time.Duration {
	return g.wait
}

// Release exits the critical section. Releasing twice corrupts the
// exclusivity accounting, so it is treated as fatal.
func (g *ResourceGuard) Release() {
	if !g.released.CompareAndSwap(false, true) {
		panic("resource guard released twice")
	}
	g.r.release()
}
