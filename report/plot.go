package report

import (
	"fmt"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// WritePlot renders the summary as a line chart, one series per
// scenario, requested delay on X and average measured latency on Y,
// and saves it to path. The image format follows the file extension.
func WritePlot(path string, delays []time.Duration, rows []SummaryRow) error {
	p := plot.New()
	p.Title.Text = "Sleep latency by scenario"
	p.X.Label.Text = "requested delay (ms)"
	p.Y.Label.Text = "average measured (ms)"

	args := make([]interface{}, 0, 2*len(rows))
	for _, row := range rows {
		pts := make(plotter.XYs, 0, len(row.Avgs))
		for i, avg := range row.Avgs {
			if i >= len(delays) {
				break
			}
			pts = append(pts, plotter.XY{
				X: float64(delays[i]) / float64(time.Millisecond),
				Y: avg,
			})
		}
		args = append(args, row.Name, pts)
	}

	if err := plotutil.AddLinePoints(p, args...); err != nil {
		return fmt.Errorf("building chart series: %w", err)
	}
	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("saving chart to %s: %w", path, err)
	}
	return nil
}
