package main

import (
	"context"
	"fmt"
	"io"

	"lumen/internal/buildpipeline"
	"lumen/internal/ui"
)

type buildOutcome struct {
	result buildpipeline.BuildResult
	err    error
}

// runBuildWithUI runs the build in the background and renders its
// progress events until the build closes the channel.
func runBuildWithUI(ctx context.Context, out io.Writer, title string, files []string, req *buildpipeline.BuildRequest) (buildpipeline.BuildResult, error) {
	if req == nil {
		return buildpipeline.BuildResult{}, fmt.Errorf("missing build request")
	}
	events := make(chan buildpipeline.Event, 256)
	outcomeCh := make(chan buildOutcome, 1)

	go func() {
		reqCopy := *req
		reqCopy.Progress = buildpipeline.ChannelSink{Ch: events}
		res, err := buildpipeline.Build(ctx, &reqCopy)
		outcomeCh <- buildOutcome{result: res, err: err}
		close(events)
	}()

	uiErr := ui.Run(out, title, files, events)
	// The build must not block on a full channel once the UI is gone.
	for range events {
	}
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
