package main

import (
	"fmt"
	"io"
	"time"

	"lumen/internal/buildpipeline"
	"lumen/internal/observ"
)

func printStageTimings(out io.Writer, timings buildpipeline.Timings) {
	if out == nil {
		return
	}
	if timings.Has(buildpipeline.StageParse) {
		fmt.Fprintf(out, "parsed %.1f ms\n", toMillis(timings.Duration(buildpipeline.StageParse)))
	}
	if timings.Has(buildpipeline.StageGenerate) {
		fmt.Fprintf(out, "generated %.1f ms\n", toMillis(timings.Duration(buildpipeline.StageGenerate)))
	}
	if timings.Has(buildpipeline.StageWrite) {
		fmt.Fprintf(out, "written %.1f ms\n", toMillis(timings.Duration(buildpipeline.StageWrite)))
	}
}

func printTimerSummary(out io.Writer, timer *observ.Timer, cached bool) {
	if cached {
		fmt.Fprintln(out, "cache hit, no passes ran")
		return
	}
	fmt.Fprint(out, timer.Summary())
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
