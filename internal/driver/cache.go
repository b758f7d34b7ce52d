package driver

import (
	"fmt"
	"sync"

	"lumen/internal/codegen"
	"lumen/internal/project"
	"lumen/internal/version"
)

// Cache stores compile results by CacheKey. Errors are reported as
// warnings and never fail a compile.
type Cache interface {
	Get(key project.Digest) (entry Entry, ok bool, err error)
	Put(key project.Digest, entry Entry) error
}

// Entry is what a cache hit restores without parsing the source.
type Entry struct {
	Output  string
	Imports []string // module specifiers in source order
}

// CacheKey identifies one compile: the source bytes, every option that
// changes the output, and the compiler version.
func CacheKey(src []byte, opts codegen.Options) project.Digest {
	setup := fmt.Sprintf("lumen %s\x00runtime=%s\x00header=%t\x00source=%s\x00indent=%q",
		version.Version, opts.Runtime, opts.Header, opts.Source, opts.Indent)
	return project.Combine(project.Sum(src), project.Sum([]byte(setup)))
}

// MemCache is an in-process Cache.
type MemCache struct {
	mu      sync.RWMutex
	entries map[project.Digest]Entry
}

// NewMemCache creates a MemCache with the given capacity hint.
func NewMemCache(capHint int) *MemCache {
	return &MemCache{entries: make(map[project.Digest]Entry, capHint)}
}

func (c *MemCache) Get(key project.Digest) (Entry, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	return e, ok, nil
}

func (c *MemCache) Put(key project.Digest, entry Entry) error {
	c.mu.Lock()
	c.entries[key] = entry
	c.mu.Unlock()
	return nil
}

// Len returns the number of cached entries.
func (c *MemCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
