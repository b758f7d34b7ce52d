package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"lumen/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new lumen project",
	Long: `Initialize a new lumen project by creating a project manifest (lumen.toml)
and a starter page (src/pages/home.lumen). If [path|name] is omitted, initializes
the current directory. A non-existing name creates the directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

// runInit writes lumen.toml and a starter page into the target directory.
// An existing lumen.toml is never overwritten; an existing page is kept.
func runInit(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) == 1 && args[0] != "" {
		target = args[0]
	}
	target, err := filepath.Abs(target)
	if err != nil {
		return err
	}

	if st, err := os.Stat(target); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		if err = os.MkdirAll(target, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", target, err)
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	name := strings.TrimSpace(filepath.Base(target))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "lumen-project"
	}

	manifestPath := filepath.Join(target, project.ManifestName)
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("project already initialized: %s exists", manifestPath)
	}
	if err := os.WriteFile(manifestPath, []byte(defaultManifest(name)), 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	pagePath := filepath.Join(target, project.DefaultSrcDir, "pages", "home.lumen")
	createdPage := false
	if _, err := os.Stat(pagePath); errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(filepath.Dir(pagePath), 0o755); err != nil {
			return fmt.Errorf("failed to create %q: %w", filepath.Dir(pagePath), err)
		}
		if err := os.WriteFile(pagePath, []byte(defaultPage), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", pagePath, err)
		}
		createdPage = true
	}

	rel := target
	if wd, err := os.Getwd(); err == nil {
		if r, err := filepath.Rel(wd, target); err == nil {
			rel = r
		}
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Initialized lumen project in %s\n", rel)
	fmt.Fprintf(out, "  - %s\n", project.ManifestName)
	if createdPage {
		fmt.Fprintln(out, "  - src/pages/home.lumen")
	} else {
		fmt.Fprintln(out, "  - src/pages/home.lumen (existing)")
	}
	return nil
}

func defaultManifest(name string) string {
	return fmt.Sprintf(`# lumen project manifest
[package]
name = %q

[build]
src = %q
out = %q

[codegen]
runtime = %q
`, name, project.DefaultSrcDir, project.DefaultOutDir, project.DefaultRuntime)
}

const defaultPage = `page Home {
  state {
    count: number = 0
  }

  <main>
    <h1>Hello from lumen</h1>
    <button onClick={() => { count = count + 1 }}>Clicked {count} times</button>
  </main>
}
`
