package sim

import "fmt"

// ThreadHandle identifies the OS thread a worker goroutine is pinned to.
// A zero TID means the platform does not expose usable thread identities.
type ThreadHandle struct {
	TID int
}

// PriorityError reports a refused or unsupported priority request. It is
// always recoverable: callers log a warning and continue with whatever
// scheduling the OS provides by default.
type PriorityError struct {
	Handle ThreadHandle
	Level  PriorityLevel
	Reason string
	Err    error
}

func (e *PriorityError) Error() string {
	msg := fmt.Sprintf("cannot set priority %s for thread %d: %s", e.Level, e.Handle.TID, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *PriorityError) Unwrap() error {
	return e.Err
}

// PriorityAssigner requests an OS scheduling priority for a pinned worker
// thread. Implementations are best-effort: the only contract is that when
// the platform honors requests, High maps above Medium, and Medium above
// Low, in effective scheduling priority. Failures are reported as
// *PriorityError and never abort a run.
type PriorityAssigner interface {
	Assign(h ThreadHandle, level PriorityLevel) error
}

// NewPriorityAssigner returns the assigner for the build platform. On
// platforms without an implementation the returned assigner is a no-op that
// reports an unsupported-platform PriorityError on every call.
func NewPriorityAssigner() PriorityAssigner {
	return newPlatformAssigner()
}
