package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"lumen/internal/driver"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [flags] [dir]",
	Short: "Remove build output",
	Long:  "Remove the output directory of a lumen project and, with --cache, the shared compile cache.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runClean,
}

func init() {
	cleanCmd.Flags().Bool("cache", false, "also drop the compile cache")
}

func runClean(cmd *cobra.Command, args []string) error {
	baseDir := "."
	if len(args) > 0 && args[0] != "" {
		baseDir = args[0]
	}
	dropCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return fmt.Errorf("failed to get cache flag: %w", err)
	}
	s, err := loadSettings(cmd, baseDir)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if err := removeOutDir(s); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		fmt.Fprintln(out, "output directory not found")
	} else {
		fmt.Fprintf(out, "removed %s\n", s.outDir)
	}

	if dropCache {
		dc, err := driver.OpenDiskCache("lumen")
		if err != nil {
			return fmt.Errorf("failed to open compile cache: %w", err)
		}
		if err := dc.DropAll(); err != nil {
			return fmt.Errorf("failed to drop compile cache: %w", err)
		}
		fmt.Fprintf(out, "dropped cache %s\n", dc.Dir())
	}
	return nil
}

// removeOutDir deletes the output directory unless it holds the sources.
func removeOutDir(s settings) error {
	info, err := os.Stat(s.outDir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%q is not a directory", s.outDir)
	}
	outAbs, err := filepath.Abs(s.outDir)
	if err != nil {
		return err
	}
	srcAbs, err := filepath.Abs(s.srcDir)
	if err != nil {
		return err
	}
	if srcAbs == outAbs || strings.HasPrefix(srcAbs, outAbs+string(filepath.Separator)) {
		return fmt.Errorf("refusing to remove %q: it contains the sources", s.outDir)
	}
	if err := os.RemoveAll(s.outDir); err != nil {
		return fmt.Errorf("failed to remove %q: %w", s.outDir, err)
	}
	return nil
}
