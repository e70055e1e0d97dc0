package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriorityLevel_Ordering(t *testing.T) {
	assert.Greater(t, PriorityHigh, PriorityMedium)
	assert.Greater(t, PriorityMedium, PriorityLow)
}

func TestPriorityLevel_String(t *testing.T) {
	assert.Equal(t, "high", PriorityHigh.String())
	assert.Equal(t, "medium", PriorityMedium.String())
	assert.Equal(t, "low", PriorityLow.String())
	assert.Equal(t, "priority(0)", PriorityLevel(0).String())
}

func TestPriorityLevel_IsValid(t *testing.T) {
	for _, p := range []PriorityLevel{PriorityLow, PriorityMedium, PriorityHigh} {
		assert.True(t, p.IsValid(), p.String())
	}
	assert.False(t, PriorityLevel(0).IsValid())
	assert.False(t, PriorityLevel(4).IsValid())
}

func TestParsePriorityLevel_RoundTrip(t *testing.T) {
	for _, p := range []PriorityLevel{PriorityLow, PriorityMedium, PriorityHigh} {
		got, err := ParsePriorityLevel(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
}

func TestParsePriorityLevel_Unknown(t *testing.T) {
	_, err := ParsePriorityLevel("urgent")
	assert.Error(t, err)
}
