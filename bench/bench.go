package bench

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/montanaflynn/stats"

	"github.com/leehanjeong/scheduler-benchmark/report"
)

// MeasureOnce times a single sleep of the requested delay.
// The leading zero-duration sleep resets any timer-nesting state the
// host scheduler tracks (browsers clamp nested timers to 4ms once the
// nesting level reaches 5), so each measurement starts from the same
// baseline.
func (h *Harness) MeasureOnce(delay time.Duration) float64 {
	h.Sleep(0)

	start := h.Now()
	h.Sleep(delay)
	return h.elapsedMs(start)
}

// MeasureBurst times BurstSize sleeps issued concurrently. The timed
// region ends when every sleep in the burst has completed; ordering
// among them does not matter.
func (h *Harness) MeasureBurst(delay time.Duration) float64 {
	h.Sleep(0)

	start := h.Now()
	var wg sync.WaitGroup
	for i := 0; i < h.Config.BurstSize; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.Sleep(delay)
		}()
	}
	wg.Wait()
	return h.elapsedMs(start)
}

// MeasureLoop times BurstSize sleeps issued strictly one after
// another, the pattern of a frame-paced game loop.
func (h *Harness) MeasureLoop(delay time.Duration) float64 {
	h.Sleep(0)

	start := h.Now()
	for i := 0; i < h.Config.BurstSize; i++ {
		h.Sleep(delay)
	}
	return h.elapsedMs(start)
}

func (h *Harness) elapsedMs(start time.Time) float64 {
	return float64(h.Now().Sub(start).Nanoseconds()) / 1e6
}

// RunScenario measures one scenario across every configured delay, in
// delay-set order. Each delay gets one untimed warm-up call and a
// settle pause before the timed iterations. It returns exactly one
// ScenarioResult per configured delay.
func (h *Harness) RunScenario(s Scenario, rep *report.Writer) ([]ScenarioResult, error) {
	if s.Iterations < 1 {
		return nil, fmt.Errorf("scenario %q: iteration count must be positive, got %d", s.Name, s.Iterations)
	}

	rep.ScenarioHeader(s.Name)

	results := make([]ScenarioResult, 0, len(h.Config.Delays))
	for _, delay := range h.Config.Delays {
		s.Measure(delay) // warm up
		h.Sleep(h.Config.Settle)

		samples := make([]float64, 0, s.Iterations)
		for i := 0; i < s.Iterations; i++ {
			samples = append(samples, s.Measure(delay))
		}

		avg, err := stats.Mean(samples)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: computing mean: %w", s.Name, err)
		}
		min, err := stats.Min(samples)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: computing min: %w", s.Name, err)
		}
		max, err := stats.Max(samples)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: computing max: %w", s.Name, err)
		}

		r := ScenarioResult{Delay: delay, Avg: avg, Min: min, Max: max}
		rep.ResultLine(float64(delay)/float64(time.Millisecond), r.Avg, r.Min, r.Max)
		results = append(results, r)
	}

	return results, nil
}

// Run executes the three scenarios in fixed order and finishes with
// the cross-scenario summary table. The burst and loop scenarios use
// reduced iteration counts since each of their measurements already
// contains BurstSize sleeps.
func (h *Harness) Run(rep *report.Writer, runtimeLabel string) ([]ScenarioRun, error) {
	rep.RunHeader(runtimeLabel, h.Config.Delays, h.Config.Iterations, h.Config.BurstSize)

	scenarios := []Scenario{
		{
			Name:       "1. Basic (single call)",
			Measure:    h.MeasureOnce,
			Iterations: h.Config.Iterations,
		},
		{
			Name:       fmt.Sprintf("2. High-freq (%dx)", h.Config.BurstSize),
			Measure:    h.MeasureBurst,
			Iterations: max(20, h.Config.Iterations/10),
		},
		{
			Name:       fmt.Sprintf("3. Game loop (%dx)", h.Config.BurstSize),
			Measure:    h.MeasureLoop,
			Iterations: max(5, h.Config.Iterations/20),
		},
	}

	runs := make([]ScenarioRun, 0, len(scenarios))
	for i, s := range scenarios {
		if i > 0 {
			h.Sleep(h.Config.ScenarioPause)
		}
		log.Debugf("running scenario %s with %d iterations", s.Name, s.Iterations)

		results, err := h.RunScenario(s, rep)
		if err != nil {
			return nil, err
		}
		runs = append(runs, ScenarioRun{Name: s.Name, Results: results})
	}

	rep.SummaryTable(h.Config.Delays, Rows(runs))
	return runs, nil
}

// Rows converts scenario runs into the summary-row form the report
// package renders and plots.
func Rows(runs []ScenarioRun) []report.SummaryRow {
	rows := make([]report.SummaryRow, 0, len(runs))
	for _, run := range runs {
		row := report.SummaryRow{Name: run.Name, Avgs: make([]float64, 0, len(run.Results))}
		for _, r := range run.Results {
			row.Avgs = append(row.Avgs, r.Avg)
		}
		rows = append(rows, row)
	}
	return rows
}
