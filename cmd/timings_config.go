package cmd

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	sim "github.com/AniDashyan/priority-inversion/sim"
)

// timingsFileSpec is the YAML shape of a timings override file. Durations
// are in milliseconds; zero or omitted fields keep their defaults.
type timingsFileSpec struct {
	HighHoldMS   int64 `yaml:"high_hold_ms"`
	HighIdleMS   int64 `yaml:"high_idle_ms"`
	MediumBusyMS int64 `yaml:"medium_busy_ms"`
	MediumIdleMS int64 `yaml:"medium_idle_ms"`
	LowHoldMS    int64 `yaml:"low_hold_ms"`
	LowIdleMS    int64 `yaml:"low_idle_ms"`
}

// LoadTimings reads a YAML override file on top of the given defaults.
func LoadTimings(path string, base sim.Timings) (sim.Timings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, err
	}

	var spec timingsFileSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return base, err
	}

	apply := func(dst *time.Duration, ms int64) {
		if ms > 0 {
			*dst = time.Duration(ms) * time.Millisecond
		}
	}
	apply(&base.HighHold, spec.HighHoldMS)
	apply(&base.HighIdle, spec.HighIdleMS)
	apply(&base.MediumBusy, spec.MediumBusyMS)
	apply(&base.MediumIdle, spec.MediumIdleMS)
	apply(&base.LowHold, spec.LowHoldMS)
	apply(&base.LowIdle, spec.LowIdleMS)
	return base, nil
}
