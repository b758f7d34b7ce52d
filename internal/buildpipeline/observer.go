package buildpipeline

import (
	"time"

	"lumen/internal/driver"
)

// phaseObserver turns driver pass events into per-file progress events.
type phaseObserver struct {
	sink   ProgressSink
	srcDir string
}

func (p *phaseObserver) OnPhase(ev driver.PhaseEvent) {
	if p == nil || p.sink == nil {
		return
	}
	file := relFile(p.srcDir, ev.File)
	switch ev.Status {
	case driver.PhaseStart:
		switch ev.Name {
		case driver.PassLex:
			emitStage(p.sink, file, StageParse, StatusWorking, nil, 0)
		case driver.PassCheck:
			emitStage(p.sink, file, StageGenerate, StatusWorking, nil, 0)
		}
	case driver.PhaseEnd:
		switch {
		case ev.Err != nil && (ev.Name == driver.PassLex || ev.Name == driver.PassParse):
			emitStage(p.sink, file, StageParse, StatusError, ev.Err, ev.Elapsed)
		case ev.Err != nil:
			emitStage(p.sink, file, StageGenerate, StatusError, ev.Err, ev.Elapsed)
		case ev.Name == driver.PassParse:
			emitStage(p.sink, file, StageParse, StatusDone, nil, ev.Elapsed)
		case ev.Name == driver.PassGenerate:
			emitStage(p.sink, file, StageGenerate, StatusDone, nil, ev.Elapsed)
		}
	}
}

func chainObservers(observers ...driver.PhaseObserver) driver.PhaseObserver {
	return func(ev driver.PhaseEvent) {
		for _, o := range observers {
			if o != nil {
				o(ev)
			}
		}
	}
}

func emitQueued(sink ProgressSink, files []string) {
	if sink == nil {
		return
	}
	for _, file := range files {
		sink.OnEvent(Event{File: file, Stage: StageParse, Status: StatusQueued})
	}
}

func emitStage(sink ProgressSink, file string, stage Stage, status Status, err error, elapsed time.Duration) {
	if sink == nil {
		return
	}
	sink.OnEvent(Event{File: file, Stage: stage, Status: status, Err: err, Elapsed: elapsed})
}
