package bench

import (
	"time"
)

// MeasureFunc performs one timed invocation of the sleep primitive for
// the requested delay and returns the elapsed wall-clock time in
// milliseconds.
type MeasureFunc func(delay time.Duration) float64

// Config holds the benchmark parameters.
type Config struct {
	Delays        []time.Duration // Requested sleep durations, measured in order
	Iterations    int             // Timed invocations per (scenario, delay) pair
	BurstSize     int             // Sleeps issued per burst/loop measurement
	Settle        time.Duration   // Pause after the warm-up call, before timed iterations
	ScenarioPause time.Duration   // Pause between scenarios
}

// DefaultConfig returns the standard parameter set: four delay values
// spanning the sub-resolution range up to one 60fps frame.
func DefaultConfig() Config {
	return Config{
		Delays:        []time.Duration{0, time.Millisecond, 2 * time.Millisecond, 16 * time.Millisecond},
		Iterations:    100,
		BurstSize:     100,
		Settle:        10 * time.Millisecond,
		ScenarioPause: 100 * time.Millisecond,
	}
}

// Scenario pairs a measurement function with a label and its iteration
// count.
type Scenario struct {
	Name       string
	Measure    MeasureFunc
	Iterations int
}

// ScenarioResult holds the statistics for one (scenario, delay) pair.
// All values are in milliseconds.
type ScenarioResult struct {
	Delay time.Duration // Requested delay
	Avg   float64
	Min   float64
	Max   float64
}

// ScenarioRun collects the per-delay results of a single scenario.
type ScenarioRun struct {
	Name    string
	Results []ScenarioResult
}

// Harness runs the benchmark scenarios. Sleep and Now are the host
// capabilities under measurement; tests substitute them the same way
// a virtual clock would.
type Harness struct {
	Config Config

	Sleep func(time.Duration)
	Now   func() time.Time
}

// New creates a Harness backed by the runtime's real sleep and clock.
func New(cfg Config) *Harness {
	return &Harness{
		Config: cfg,
		Sleep:  time.Sleep,
		Now:    time.Now,
	}
}
