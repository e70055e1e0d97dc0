//go:build linux

package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFifoPriority_Monotonic(t *testing.T) {
	assert.Greater(t, fifoPriority(PriorityHigh), fifoPriority(PriorityMedium))
	assert.Greater(t, fifoPriority(PriorityMedium), fifoPriority(PriorityLow))
	assert.Greater(t, fifoPriority(PriorityLow), 0)
}

func TestNiceValue_Monotonic(t *testing.T) {
	// Lower nice means higher effective priority.
	assert.Less(t, niceValue(PriorityHigh), niceValue(PriorityMedium))
	assert.Less(t, niceValue(PriorityMedium), niceValue(PriorityLow))
}

func TestLinuxAssigner_RejectsZeroTID(t *testing.T) {
	err := linuxAssigner{}.Assign(ThreadHandle{}, PriorityHigh)

	var perr *PriorityError
	assert.ErrorAs(t, err, &perr)
}
