package sim

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// WaitMeasurement records how long the high-priority worker waited for one
// acquisition of the shared resource. Produced per iteration, consumed by
// the report path; never persisted across runs.
type WaitMeasurement struct {
	WorkerID string
	Wait     time.Duration
}

// Metrics aggregates statistics about one simulation run for final
// reporting. Workers append concurrently.
type Metrics struct {
	mu           sync.Mutex
	measurements []WaitMeasurement
	iterations   map[string]int
}

func NewMetrics() *Metrics {
	return &Metrics{iterations: make(map[string]int)}
}

// RecordWait appends one acquisition-wait sample.
func (m *Metrics) RecordWait(workerID string, wait time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.measurements = append(m.measurements, WaitMeasurement{WorkerID: workerID, Wait: wait})
}

// RecordIteration counts one completed loop iteration for a worker.
func (m *Metrics) RecordIteration(workerID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.iterations[workerID]++
}

// Measurements returns a copy of all wait samples recorded so far.
func (m *Metrics) Measurements() []WaitMeasurement {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]WaitMeasurement, len(m.measurements))
	copy(out, m.measurements)
	return out
}

// Iterations returns the completed iteration count for a worker.
func (m *Metrics) Iterations(workerID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.iterations[workerID]
}

// MeanWait is the average acquisition wait across all samples, zero when no
// sample was recorded.
func (m *Metrics) MeanWait() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.measurements) == 0 {
		return 0
	}
	var total time.Duration
	for _, s := range m.measurements {
		total += s.Wait
	}
	return total / time.Duration(len(m.measurements))
}

// MaxWait is the largest acquisition wait recorded.
func (m *Metrics) MaxWait() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	var max time.Duration
	for _, s := range m.measurements {
		if s.Wait > max {
			max = s.Wait
		}
	}
	return max
}

// Print displays aggregated metrics at the end of a run.
func (m *Metrics) Print(w io.Writer, scenario string) {
	fmt.Fprintf(w, "=== %s Metrics ===\n", scenario)
	fmt.Fprintf(w, "HIGH acquisitions    : %d\n", m.Iterations(WorkerHigh))
	if len(m.Measurements()) > 0 {
		fmt.Fprintf(w, "Mean wait            : %dms\n", m.MeanWait().Milliseconds())
		fmt.Fprintf(w, "Max wait             : %dms\n", m.MaxWait().Milliseconds())
	}
	fmt.Fprintf(w, "MEDIUM iterations    : %d\n", m.Iterations(WorkerMedium))
	fmt.Fprintf(w, "LOW iterations       : %d\n", m.Iterations(WorkerLow))
}
