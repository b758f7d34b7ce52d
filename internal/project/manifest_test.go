package project

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func writeManifest(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadManifestDefaults(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"site\"\n")
	nested := filepath.Join(root, "src", "pages")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	m, ok, err := LoadManifest(nested)
	if err != nil || !ok {
		t.Fatalf("LoadManifest = %v, %v", ok, err)
	}
	cfg := m.Config
	if cfg.Package.Name != "site" || cfg.Build.Src != "src" || cfg.Build.Out != "build" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Build.Jobs != runtime.GOMAXPROCS(0) || !cfg.CacheEnabled() || !cfg.HeaderEnabled() {
		t.Fatalf("unexpected build defaults: %+v", cfg.Build)
	}
	if cfg.Codegen.Runtime != "react" || cfg.Codegen.Extension != ".jsx" {
		t.Fatalf("unexpected codegen defaults: %+v", cfg.Codegen)
	}
	if m.SrcDir() != filepath.Join(root, "src") || m.OutDir() != filepath.Join(root, "build") {
		t.Fatalf("dirs = %s, %s", m.SrcDir(), m.OutDir())
	}
}

func TestLoadManifestOverrides(t *testing.T) {
	root := t.TempDir()
	path := writeManifest(t, root, `
[package]
name = "app"
[build]
src = "ui"
out = "dist"
jobs = 3
cache = false
[codegen]
runtime = "preact/hooks"
extension = "js"
header = false
colour = "blue"
`)
	m, err := LoadManifestFile(path)
	if err != nil {
		t.Fatal(err)
	}
	cfg := m.Config
	if cfg.Build.Jobs != 3 || cfg.CacheEnabled() || cfg.HeaderEnabled() {
		t.Fatalf("unexpected build: %+v", cfg)
	}
	if cfg.Codegen.Extension != ".js" || cfg.Codegen.Runtime != "preact/hooks" {
		t.Fatalf("unexpected codegen: %+v", cfg.Codegen)
	}
	if len(m.Unknown) != 1 || m.Unknown[0] != "codegen.colour" {
		t.Fatalf("unknown keys = %v", m.Unknown)
	}
}

func TestLoadManifestErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"no package", "[build]\nsrc = \"src\"\n", "missing [package]"},
		{"no name", "[package]\n", "missing [package].name"},
		{"blank name", "[package]\nname = \"  \"\n", "missing [package].name"},
		{"negative jobs", "[package]\nname = \"a\"\n[build]\njobs = -1\n", "must not be negative"},
		{"bad toml", "[package\n", "failed to parse TOML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, t.TempDir(), tt.body)
			_, err := LoadManifestFile(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestFindManifestMissing(t *testing.T) {
	// Walks to the filesystem root; a manifest above TempDir would be unusual.
	if _, ok, err := FindManifest(t.TempDir()); err != nil || ok {
		t.Skipf("manifest found above temp dir (ok=%v err=%v)", ok, err)
	}
}

func TestDigest(t *testing.T) {
	a, b := Sum([]byte("a")), Sum([]byte("b"))
	if a == b || a.IsZero() {
		t.Fatal("distinct inputs must hash differently")
	}
	if Combine(a, b) == Combine(b, a) {
		t.Fatal("Combine must be order-sensitive")
	}
	if len(a.String()) != 64 {
		t.Fatalf("hex length = %d", len(a.String()))
	}
}
