package sim

import "sync/atomic"

// RunState is the per-run mutable state shared by all three workers. Both
// flags are written only by the owning Simulation: running flips true at
// spawn and false once the run duration elapses; inheritanceEnabled is set
// once before spawn. Workers only read. A fresh RunState is built for every
// run, so independent simulations never share state.
type RunState struct {
	running            atomic.Bool
	inheritanceEnabled atomic.Bool
}

// Running reports whether workers should begin another iteration. Checked
// at the top of every worker loop; an in-flight critical section is always
// finished before the flag is re-checked.
func (s *RunState) Running() bool {
	return s.running.Load()
}

// InheritanceEnabled reports whether the priority-inheritance mitigation is
// active for this run. Read by the low worker to annotate its status line.
func (s *RunState) InheritanceEnabled() bool {
	return s.inheritanceEnabled.Load()
}
