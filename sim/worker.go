package sim

import (
	"fmt"
	"io"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

// Worker IDs used in console output and measurements.
const (
	WorkerHigh   = "HIGH"
	WorkerMedium = "MEDIUM"
	WorkerLow    = "LOW"
)

// worker is one of the three simulated tasks. Each runs on its own pinned
// OS thread so a scheduling priority can apply to it; goroutines that are
// free to migrate between threads cannot be priority-set meaningfully.
type worker struct {
	id      string
	level   PriorityLevel
	state   *RunState
	res     *SharedResource
	metrics *Metrics
	timings Timings
	out     io.Writer
}

// start spawns the worker body on a dedicated OS thread and delivers the
// thread handle on ready before the first iteration, so the simulation can
// request the worker's priority while it is live.
func (w *worker) start(wg *sync.WaitGroup, ready chan<- ThreadHandle, body func(h ThreadHandle)) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		h := currentThreadHandle()
		ready <- h
		body(h)
		logrus.Debugf("%s worker exited after %d iterations", w.id, w.metrics.Iterations(w.id))
	}()
}

// runHigh repeatedly acquires the shared resource, measuring how long each
// acquisition blocked. The measured wait is the demo's headline number.
func (w *worker) runHigh(h ThreadHandle) {
	info := WaiterInfo{ID: w.id, Level: w.level, Handle: h}
	for w.state.Running() {
		func() {
			guard := w.res.Acquire(info)
			defer guard.Release()

			fmt.Fprintf(w.out, "HIGH: Waited %dms for resource\n", guard.Wait().Milliseconds())
			w.metrics.RecordWait(w.id, guard.Wait())
			w.metrics.RecordIteration(w.id)

			// Simulated critical computation.
			time.Sleep(w.timings.HighHold)
		}()
		time.Sleep(w.timings.HighIdle)
	}
}

// runMedium burns CPU without ever touching the shared resource. The point
// is to starve the low-priority holder of cycles purely through scheduling,
// independent of the lock.
func (w *worker) runMedium(_ ThreadHandle) {
	for w.state.Running() {
		fmt.Fprintln(w.out, "MEDIUM: Running background task...")
		w.metrics.RecordIteration(w.id)
		burnCPU(w.timings.MediumBusy)
		time.Sleep(w.timings.MediumIdle)
	}
}

// runLow holds the shared resource long enough to overlap a High-worker
// acquisition attempt. When inheritance is enabled its status line carries
// the boosted indicator; in the emulated mode that indicator is the entire
// mitigation.
func (w *worker) runLow(h ThreadHandle) {
	info := WaiterInfo{ID: w.id, Level: w.level, Handle: h}
	for w.state.Running() {
		func() {
			guard := w.res.Acquire(info)
			defer guard.Release()

			if w.state.InheritanceEnabled() {
				fmt.Fprintln(w.out, "LOW: Got resource (priority boosted!)")
			} else {
				fmt.Fprintln(w.out, "LOW: Got resource")
			}
			w.metrics.RecordIteration(w.id)

			// The high worker queues up behind this hold.
			time.Sleep(w.timings.LowHold)
		}()
		time.Sleep(w.timings.LowIdle)
	}
}

// busySink keeps the burn loop's accumulator observable so the compiler
// cannot discard the loop.
var busySink atomic.Int64

// burnCPU occupies the CPU for roughly d of wall-clock time. The arithmetic
// is meaningless; only the occupancy matters.
func burnCPU(d time.Duration) {
	deadline := time.Now().Add(d)
	var acc int64
	for time.Now().Before(deadline) {
		for i := int64(0); i < 50000; i++ {
			acc += i * i
		}
	}
	busySink.Store(acc)
}
