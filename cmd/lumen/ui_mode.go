package main

import (
	"fmt"
	"os"
	"strings"
)

// uiMode is the value of build --ui.
type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

func readUIMode(value string) (uiMode, error) {
	switch mode := uiMode(strings.TrimSpace(strings.ToLower(value))); mode {
	case "":
		return uiModeAuto, nil
	case uiModeAuto, uiModeOn, uiModeOff:
		return mode, nil
	}
	return "", fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
}

// useProgressUI decides whether build redraws a progress view on out.
// In auto mode that needs a terminal that is neither dumb nor a CI log.
func useProgressUI(mode uiMode, out *os.File) bool {
	switch mode {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	}
	if os.Getenv("TERM") == "dumb" || os.Getenv("CI") != "" {
		return false
	}
	return isTerminal(out)
}
