package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// setupColor applies --color to the global fatih/color switch.
func setupColor(cmd *cobra.Command) error {
	value, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	switch value {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
		color.NoColor = !isTerminal(os.Stdout)
	default:
		return fmt.Errorf("invalid --color value %q (expected auto|on|off)", value)
	}
	return nil
}

// useColor reports whether diagnostics on f should be colored.
func useColor(cmd *cobra.Command, f *os.File) bool {
	value, _ := cmd.Root().PersistentFlags().GetString("color")
	switch value {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(f)
	}
}
