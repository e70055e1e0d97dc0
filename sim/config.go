package sim

import (
	"errors"
	"fmt"
	"time"
)

// Timings groups the fixed per-iteration durations that drive the
// contention pattern. Defaults reproduce the classic demo; tests scale them
// down to keep the suite fast.
type Timings struct {
	HighHold   time.Duration // High worker's simulated critical computation
	HighIdle   time.Duration // High worker's sleep between iterations
	MediumBusy time.Duration // Medium worker's CPU burn per iteration
	MediumIdle time.Duration // Medium worker's sleep between iterations
	LowHold    time.Duration // Low worker's hold, long enough to overlap a High acquisition
	LowIdle    time.Duration // Low worker's sleep between iterations
}

// DefaultTimings returns the canonical demo constants.
func DefaultTimings() Timings {
	return Timings{
		HighHold:   50 * time.Millisecond,
		HighIdle:   200 * time.Millisecond,
		MediumBusy: 150 * time.Millisecond,
		MediumIdle: 100 * time.Millisecond,
		LowHold:    200 * time.Millisecond,
		LowIdle:    400 * time.Millisecond,
	}
}

func (t Timings) validate() error {
	for _, d := range []struct {
		name string
		val  time.Duration
	}{
		{"high_hold", t.HighHold},
		{"high_idle", t.HighIdle},
		{"medium_busy", t.MediumBusy},
		{"medium_idle", t.MediumIdle},
		{"low_hold", t.LowHold},
		{"low_idle", t.LowIdle},
	} {
		if d.val <= 0 {
			return fmt.Errorf("timing %s must be > 0", d.name)
		}
	}
	return nil
}

// InheritanceMode selects how the priority-inheritance mitigation works when
// a run enables it.
type InheritanceMode int

const (
	// InheritEmulated only changes the low worker's reported status; the
	// holder's real OS priority is untouched. This mirrors the classic demo,
	// where the observer compares the HIGH wait times of the paired runs.
	InheritEmulated InheritanceMode = iota
	// InheritReal boosts the holder's OS priority to a blocked waiter's
	// level and restores it on release.
	InheritReal
)

func (m InheritanceMode) String() string {
	switch m {
	case InheritEmulated:
		return "emulated"
	case InheritReal:
		return "real"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseInheritanceMode maps a mode name to its value.
func ParseInheritanceMode(s string) (InheritanceMode, error) {
	switch s {
	case "", "emulated":
		return InheritEmulated, nil
	case "real":
		return InheritReal, nil
	default:
		return 0, fmt.Errorf("unknown inheritance mode %q (want 'emulated' or 'real')", s)
	}
}

// SimulationConfig parameterizes one run. Created once by the orchestrator
// and read-only afterwards.
type SimulationConfig struct {
	Scenario           string          // banner label, e.g. "PROBLEM" or "SOLUTION"
	InheritanceEnabled bool            // whether the mitigation is active this run
	Mode               InheritanceMode // emulated (status only) or real boosting
	Duration           time.Duration   // wall-clock run length
	Timings            Timings         // per-iteration durations
}

func (c SimulationConfig) validate() error {
	if c.Scenario == "" {
		return errors.New("scenario label required")
	}
	if c.Duration <= 0 {
		return errors.New("duration must be > 0")
	}
	return c.Timings.validate()
}
