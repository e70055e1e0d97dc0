//go:build linux

package sim

import (
	"golang.org/x/sys/unix"
)

// fifoPriority maps a level to a SCHED_FIFO sched_priority. The spread
// (90/50/10) keeps the three workers in distinct real-time bands.
func fifoPriority(level PriorityLevel) int {
	switch level {
	case PriorityHigh:
		return 90
	case PriorityMedium:
		return 50
	case PriorityLow:
		return 10
	default:
		return 1
	}
}

// niceValue maps a level to a nice value for the fallback used when
// real-time classes are denied (they usually require privilege).
func niceValue(level PriorityLevel) int {
	switch level {
	case PriorityHigh:
		return -10
	case PriorityMedium:
		return 0
	case PriorityLow:
		return 10
	default:
		return 0
	}
}

type linuxAssigner struct{}

func newPlatformAssigner() PriorityAssigner {
	return linuxAssigner{}
}

// Assign first requests SCHED_FIFO at the level's real-time priority, then
// degrades to a nice value under the default policy when the kernel
// refuses.
func (linuxAssigner) Assign(h ThreadHandle, level PriorityLevel) error {
	if h.TID <= 0 {
		return &PriorityError{Handle: h, Level: level, Reason: "no thread id for worker"}
	}

	attr := &unix.SchedAttr{
		Size:     unix.SizeofSchedAttr,
		Policy:   unix.SCHED_FIFO,
		Priority: uint32(fifoPriority(level)),
	}
	if err := unix.SchedSetAttr(h.TID, attr, 0); err == nil {
		return nil
	}

	if err := unix.Setpriority(unix.PRIO_PROCESS, h.TID, niceValue(level)); err != nil {
		return &PriorityError{Handle: h, Level: level, Reason: "setpriority refused", Err: err}
	}
	return nil
}

// currentThreadHandle must be called from a goroutine that has locked its
// OS thread; the returned handle is only meaningful while the lock holds.
func currentThreadHandle() ThreadHandle {
	return ThreadHandle{TID: unix.Gettid()}
}
