package main

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/leehanjeong/scheduler-benchmark/bench"
	"github.com/leehanjeong/scheduler-benchmark/hostinfo"
	"github.com/leehanjeong/scheduler-benchmark/report"
)

func main() {
	log.SetLevel(log.DebugLevel)

	cfg := bench.DefaultConfig()
	h := bench.New(cfg)
	rep := report.NewWriter(os.Stdout)

	runs, err := h.Run(rep, hostinfo.Detect(hostinfo.UserAgent()))
	if err != nil {
		log.Fatalf("benchmark failed: %s", err)
	}

	// Optional single argument: write the summary as a chart. The
	// default zero-argument run produces stdout output only.
	if len(os.Args) > 1 {
		path := os.Args[1]
		if err := report.WritePlot(path, cfg.Delays, bench.Rows(runs)); err != nil {
			log.Errorf("chart not written: %s", err)
		} else {
			log.Infof("chart written to %s", path)
		}
	}
}
