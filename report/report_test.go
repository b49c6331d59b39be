package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testDelays = []time.Duration{0, time.Millisecond, 2 * time.Millisecond, 16 * time.Millisecond}

func TestRunHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	w.RunHeader("Go/Firefox", testDelays, 100, 100)

	out := buf.String()
	assert.Contains(t, out, "SCHEDULER BENCHMARK TEST")
	assert.Contains(t, out, "Runtime: Go/Firefox")
	assert.Contains(t, out, "Sleep values: 0ms, 1ms, 2ms, 16ms")
	assert.Contains(t, out, "Iterations: 100")
	assert.Contains(t, out, "Burst size: 100")
}

func TestResultLineFormat(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	w.ResultLine(16.0, 16.42, 16.01, 18.73)

	assert.Equal(t, "  sleep( 16.0ms): avg=  16.42ms  min=  16.01ms  max=  18.73ms\n", buf.String())
}

func TestSummaryTable(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	rows := []SummaryRow{
		{Name: "1. Basic (single call)", Avgs: []float64{0.05, 1.12, 2.08, 16.21}},
		{Name: "2. High-freq (100x)", Avgs: []float64{0.31, 1.44, 2.39, 16.65}},
	}
	w.SummaryTable(testDelays, rows)

	out := buf.String()
	assert.Contains(t, out, "SUMMARY TABLE (average times in milliseconds)")
	for _, row := range rows {
		assert.Contains(t, out, row.Name, "every scenario should have a row")
	}
	assert.Contains(t, out, "16ms", "every delay should have a column")

	// One header row, one row per scenario, all inside the rules.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, "Scenario", strings.Fields(lines[4])[0], "header row should lead the table body")
}

func TestWritePlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latency.png")

	rows := []SummaryRow{
		{Name: "1. Basic (single call)", Avgs: []float64{0.05, 1.12, 2.08, 16.21}},
		{Name: "2. High-freq (100x)", Avgs: []float64{0.31, 1.44, 2.39, 16.65}},
		{Name: "3. Game loop (100x)", Avgs: []float64{4.8, 110.2, 205.8, 1641.0}},
	}

	err := WritePlot(path, testDelays, rows)
	assert.NoError(t, err, "writing the chart should succeed")

	info, statErr := os.Stat(path)
	assert.NoError(t, statErr, "the chart file should exist")
	assert.Greater(t, info.Size(), int64(0), "the chart file should not be empty")
}
