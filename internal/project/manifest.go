package project

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
)

// Default values applied to keys the manifest leaves out.
const (
	DefaultSrcDir    = "src"
	DefaultOutDir    = "build"
	DefaultRuntime   = "react"
	DefaultExtension = ".jsx"
)

// Manifest is a loaded lumen.toml.
type Manifest struct {
	Path   string
	Root   string
	Config Config
	// Unknown lists keys present in the file that no field decoded.
	Unknown []string
}

type Config struct {
	Package PackageConfig `toml:"package"`
	Build   BuildConfig   `toml:"build"`
	Codegen CodegenConfig `toml:"codegen"`
}

type PackageConfig struct {
	Name string `toml:"name"`
}

type BuildConfig struct {
	Src   string `toml:"src"`
	Out   string `toml:"out"`
	Jobs  int    `toml:"jobs"`
	Cache *bool  `toml:"cache"`
}

type CodegenConfig struct {
	Runtime   string `toml:"runtime"`
	Extension string `toml:"extension"`
	Header    *bool  `toml:"header"`
}

// DefaultConfig is used when no manifest is found.
func DefaultConfig() Config {
	var cfg Config
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Build.Src == "" {
		c.Build.Src = DefaultSrcDir
	}
	if c.Build.Out == "" {
		c.Build.Out = DefaultOutDir
	}
	if c.Build.Jobs <= 0 {
		c.Build.Jobs = runtime.GOMAXPROCS(0)
	}
	if c.Build.Cache == nil {
		c.Build.Cache = boolPtr(true)
	}
	if c.Codegen.Runtime == "" {
		c.Codegen.Runtime = DefaultRuntime
	}
	if c.Codegen.Extension == "" {
		c.Codegen.Extension = DefaultExtension
	} else if !strings.HasPrefix(c.Codegen.Extension, ".") {
		c.Codegen.Extension = "." + c.Codegen.Extension
	}
	if c.Codegen.Header == nil {
		c.Codegen.Header = boolPtr(true)
	}
}

// CacheEnabled reports the effective [build].cache value.
func (c Config) CacheEnabled() bool {
	return c.Build.Cache == nil || *c.Build.Cache
}

// HeaderEnabled reports the effective [codegen].header value.
func (c Config) HeaderEnabled() bool {
	return c.Codegen.Header == nil || *c.Codegen.Header
}

func boolPtr(b bool) *bool { return &b }

// LoadManifest finds lumen.toml above startDir and loads it.
// ok is false when no manifest exists.
func LoadManifest(startDir string) (*Manifest, bool, error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	m, err := LoadManifestFile(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return m, true, nil
}

// LoadManifestFile decodes and validates the manifest at path.
func LoadManifestFile(path string) (*Manifest, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return nil, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return nil, fmt.Errorf("%s: missing [package].name", path)
	}
	if meta.IsDefined("build", "jobs") && cfg.Build.Jobs < 0 {
		return nil, fmt.Errorf("%s: [build].jobs must not be negative", path)
	}
	if meta.IsDefined("build", "src") && filepath.IsAbs(cfg.Build.Src) {
		return nil, fmt.Errorf("%s: [build].src must be relative to the project root", path)
	}
	cfg.applyDefaults()

	var unknown []string
	for _, key := range meta.Undecoded() {
		unknown = append(unknown, key.String())
	}
	return &Manifest{
		Path:    path,
		Root:    filepath.Dir(path),
		Config:  cfg,
		Unknown: unknown,
	}, nil
}

// SrcDir is the absolute source directory.
func (m *Manifest) SrcDir() string {
	return m.resolve(m.Config.Build.Src)
}

// OutDir is the absolute output directory.
func (m *Manifest) OutDir() string {
	return m.resolve(m.Config.Build.Out)
}

func (m *Manifest) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(m.Root, filepath.FromSlash(p))
}
