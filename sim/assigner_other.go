//go:build !linux

package sim

import "runtime"

// Priority assignment is only implemented for Linux. Elsewhere the assigner
// is a no-op that reports the unsupported platform; the simulation proceeds
// with default scheduling and the inversion effect is simply less
// pronounced.
type noopAssigner struct{}

func newPlatformAssigner() PriorityAssigner {
	return noopAssigner{}
}

func (noopAssigner) Assign(h ThreadHandle, level PriorityLevel) error {
	return &PriorityError{Handle: h, Level: level, Reason: "priority assignment not supported on " + runtime.GOOS}
}

func currentThreadHandle() ThreadHandle {
	return ThreadHandle{}
}
