package sim

import "fmt"

// PriorityLevel is the abstract scheduling priority of a worker.
// Levels are ordered: High > Medium > Low. A worker's level is fixed for the
// lifetime of a simulation run; only the real inheritance mode ever requests
// a different effective level for a thread, and only while it holds the
// shared resource.
type PriorityLevel int

const (
	PriorityLow PriorityLevel = iota + 1
	PriorityMedium
	PriorityHigh
)

var (
	strLevelMap = map[PriorityLevel]string{
		PriorityLow:    "low",
		PriorityMedium: "medium",
		PriorityHigh:   "high",
	}

	typeLevelMap = map[string]PriorityLevel{
		"low":    PriorityLow,
		"medium": PriorityMedium,
		"high":   PriorityHigh,
	}
)

func (p PriorityLevel) String() string {
	if s, ok := strLevelMap[p]; ok {
		return s
	}
	return fmt.Sprintf("priority(%d)", int(p))
}

func (p PriorityLevel) IsValid() bool {
	_, ok := strLevelMap[p]
	return ok
}

// ParsePriorityLevel maps a level name ("low", "medium", "high") back to its
// PriorityLevel value.
func ParsePriorityLevel(s string) (PriorityLevel, error) {
	if p, ok := typeLevelMap[s]; ok {
		return p, nil
	}
	return 0, fmt.Errorf("unknown priority level %q", s)
}
