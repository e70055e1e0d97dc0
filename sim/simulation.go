package sim

import (
	"errors"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// simState tracks the simulation lifecycle: Idle until Run, Running while
// workers iterate, Stopping once the duration elapsed and the running flag
// dropped, Joined after all workers exited. Joined is terminal; a new run
// needs a new Simulation.
type simState int

const (
	stateIdle simState = iota
	stateRunning
	stateStopping
	stateJoined
)

// Result reports one completed run.
type Result struct {
	Scenario           string
	InheritanceEnabled bool
	Elapsed            time.Duration
	Measurements       []WaitMeasurement // the High worker's acquisition waits, in order
	MeanWait           time.Duration
	MaxWait            time.Duration
	Iterations         map[string]int // completed iterations per worker ID
}

// Simulation owns the shared resource and run state for exactly one run.
// Workers hold references to both but never outlive the run.
type Simulation struct {
	cfg      SimulationConfig
	assigner PriorityAssigner
	out      io.Writer

	mu       sync.Mutex
	state    simState
	runState *RunState
	res      *SharedResource
	metrics  *Metrics
}

// assignerBooster adapts a PriorityAssigner into the resource's Booster
// hook for the real inheritance mode. Boost and Restore are both plain
// priority assignments; the resource tracks which level to restore.
type assignerBooster struct {
	a PriorityAssigner
}

func (b assignerBooster) Boost(h ThreadHandle, to PriorityLevel) error {
	return b.a.Assign(h, to)
}

func (b assignerBooster) Restore(h ThreadHandle, base PriorityLevel) error {
	return b.a.Assign(h, base)
}

// NewSimulation validates cfg and builds a fresh run: new RunState, new
// SharedResource, new Metrics. A nil assigner selects the platform default.
func NewSimulation(cfg SimulationConfig, assigner PriorityAssigner, out io.Writer) (*Simulation, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if assigner == nil {
		assigner = NewPriorityAssigner()
	}
	var booster Booster
	if cfg.InheritanceEnabled && cfg.Mode == InheritReal {
		booster = assignerBooster{a: assigner}
	}
	return &Simulation{
		cfg:      cfg,
		assigner: assigner,
		out:      out,
		state:    stateIdle,
		runState: &RunState{},
		res:      NewSharedResource(booster),
		metrics:  NewMetrics(),
	}, nil
}

// State returns the current lifecycle state.
func (s *Simulation) State() simState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Simulation) setState(st simState) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

// Run executes the configured scenario: spawn the three workers, apply
// priorities (failures degrade, never abort), let the contention pattern
// play out for cfg.Duration, then stop cooperatively and join. Run may be
// called once; later calls fail.
func (s *Simulation) Run() (*Result, error) {
	s.mu.Lock()
	if s.state != stateIdle {
		s.mu.Unlock()
		return nil, errors.New("simulation already run; construct a new one per run")
	}
	s.state = stateRunning
	s.mu.Unlock()

	s.runState.inheritanceEnabled.Store(s.cfg.InheritanceEnabled)
	s.runState.running.Store(true)

	logrus.Infof("starting %s run: inheritance=%v mode=%s duration=%s",
		s.cfg.Scenario, s.cfg.InheritanceEnabled, s.cfg.Mode, s.cfg.Duration)

	high := s.newWorker(WorkerHigh, PriorityHigh)
	medium := s.newWorker(WorkerMedium, PriorityMedium)
	low := s.newWorker(WorkerLow, PriorityLow)

	start := time.Now()
	var wg sync.WaitGroup
	for _, spawn := range []struct {
		w    *worker
		body func(ThreadHandle)
	}{
		{high, high.runHigh},
		{medium, medium.runMedium},
		{low, low.runLow},
	} {
		w := spawn.w
		ready := make(chan ThreadHandle, 1)
		w.start(&wg, ready, spawn.body)
		h := <-ready
		if err := s.assigner.Assign(h, w.level); err != nil {
			logrus.Warnf("priority assignment for %s worker degraded: %v", w.id, err)
		}
	}

	time.Sleep(s.cfg.Duration)

	s.setState(stateStopping)
	s.runState.running.Store(false)
	wg.Wait()
	s.setState(stateJoined)

	res := &Result{
		Scenario:           s.cfg.Scenario,
		InheritanceEnabled: s.cfg.InheritanceEnabled,
		Elapsed:            time.Since(start),
		Measurements:       s.metrics.Measurements(),
		MeanWait:           s.metrics.MeanWait(),
		MaxWait:            s.metrics.MaxWait(),
		Iterations: map[string]int{
			WorkerHigh:   s.metrics.Iterations(WorkerHigh),
			WorkerMedium: s.metrics.Iterations(WorkerMedium),
			WorkerLow:    s.metrics.Iterations(WorkerLow),
		},
	}
	logrus.Infof("%s run joined after %s: %d HIGH acquisitions, mean wait %dms",
		res.Scenario, res.Elapsed.Round(time.Millisecond), len(res.Measurements), res.MeanWait.Milliseconds())
	return res, nil
}

func (s *Simulation) newWorker(id string, level PriorityLevel) *worker {
	return &worker{
		id:      id,
		level:   level,
		state:   s.runState,
		res:     s.res,
		metrics: s.metrics,
		timings: s.cfg.Timings,
		out:     s.out,
	}
}
