package main

import (
	"strings"
	"testing"
	"time"

	"lumen/internal/buildpipeline"
)

func TestLooksIncomplete(t *testing.T) {
	cases := []struct {
		src  string
		want bool
	}{
		{"page Home {", true},
		{"page Home { <div>", true},
		{"<div>", true},
		{`<p title="x`, true},
		{"/* note", true},
		{"page Home { <p>hi</p> }", false},
		{"<p>hi</p>", false},
		{"<div></span>", false},
		{"page Home { <p>#</p> } #", false},
	}
	for _, tc := range cases {
		if got := looksIncomplete(probe(tc.src)); got != tc.want {
			t.Errorf("looksIncomplete(%q) = %v, want %v", tc.src, got, tc.want)
		}
	}
}

func TestReadUIMode(t *testing.T) {
	cases := map[string]uiMode{"": uiModeAuto, "auto": uiModeAuto, "ON": uiModeOn, " off ": uiModeOff}
	for in, want := range cases {
		got, err := readUIMode(in)
		if err != nil || got != want {
			t.Errorf("readUIMode(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := readUIMode("sometimes"); err == nil {
		t.Errorf("expected an error for an invalid mode")
	}
	if !useProgressUI(uiModeOn, nil) || useProgressUI(uiModeOff, nil) {
		t.Errorf("explicit modes must be honored")
	}
}

func TestPrintStageTimings(t *testing.T) {
	var timings buildpipeline.Timings
	timings.Add(buildpipeline.StageParse, 1500*time.Microsecond)
	timings.Add(buildpipeline.StageWrite, 2*time.Millisecond)

	var sb strings.Builder
	printStageTimings(&sb, timings)
	want := "parsed 1.5 ms\nwritten 2.0 ms\n"
	if sb.String() != want {
		t.Fatalf("got %q, want %q", sb.String(), want)
	}
}
