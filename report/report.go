package report

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// SummaryRow is one scenario's average latency per configured delay,
// in delay-set order.
type SummaryRow struct {
	Name string
	Avgs []float64
}

// Writer renders the human-readable benchmark report. It is not a
// machine-parseable format.
type Writer struct {
	w io.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// RunHeader prints the banner block identifying the run: runtime
// label, delay set, iteration count, and burst size.
func (r *Writer) RunHeader(runtimeLabel string, delays []time.Duration, iterations, burstSize int) {
	rule := strings.Repeat("=", 80)
	fmt.Fprintln(r.w, rule)
	fmt.Fprintln(r.w, "SCHEDULER BENCHMARK TEST")
	fmt.Fprintln(r.w, rule)
	fmt.Fprintf(r.w, "Runtime: %s\n", runtimeLabel)
	fmt.Fprintf(r.w, "Sleep values: %s\n", delayList(delays))
	fmt.Fprintf(r.w, "Iterations: %d\n", iterations)
	fmt.Fprintf(r.w, "Burst size: %d\n", burstSize)
	fmt.Fprintln(r.w, rule)
}

// ScenarioHeader prints the section header for one scenario.
func (r *Writer) ScenarioHeader(name string) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintf(r.w, "\n%s\n", rule)
	fmt.Fprintf(r.w, "  %s\n", name)
	fmt.Fprintln(r.w, rule)
}

// ResultLine prints the statistics for one (scenario, delay) pair.
func (r *Writer) ResultLine(delayMs, avg, min, max float64) {
	fmt.Fprintf(r.w, "  sleep(%5.1fms): avg=%7.2fms  min=%7.2fms  max=%7.2fms\n", delayMs, avg, min, max)
}

// SummaryTable prints the cross-scenario comparison: one row per
// scenario, one column per configured delay, average times in
// milliseconds.
func (r *Writer) SummaryTable(delays []time.Duration, rows []SummaryRow) {
	rule := strings.Repeat("=", 80)
	fmt.Fprintf(r.w, "\n%s\n", rule)
	fmt.Fprintln(r.w, "SUMMARY TABLE (average times in milliseconds)")
	fmt.Fprintln(r.w, rule)

	cols := make([]string, 0, len(delays))
	for _, d := range delays {
		cols = append(cols, fmt.Sprintf("%6.0fms", float64(d)/float64(time.Millisecond)))
	}
	fmt.Fprintf(r.w, "%-25s | %s\n", "Scenario", strings.Join(cols, " | "))
	fmt.Fprintln(r.w, strings.Repeat("-", 80))

	for _, row := range rows {
		vals := make([]string, 0, len(row.Avgs))
		for _, avg := range row.Avgs {
			vals = append(vals, fmt.Sprintf("%7.2f", avg))
		}
		fmt.Fprintf(r.w, "%-25s | %s\n", row.Name, strings.Join(vals, " | "))
	}

	fmt.Fprintln(r.w, rule)
}

func delayList(delays []time.Duration) string {
	parts := make([]string, 0, len(delays))
	for _, d := range delays {
		parts = append(parts, fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond)))
	}
	return strings.Join(parts, ", ")
}
