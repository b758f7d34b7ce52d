package driver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"lumen/internal/project"
)

// Increment when DiskPayload changes shape.
const diskCacheSchemaVersion uint16 = 2

// DiskCache stores generated output under a cache directory, one msgpack
// file per key. Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload is the on-disk record for one compile.
type DiskPayload struct {
	Schema  uint16
	Key     project.Digest
	Output  string
	Imports []string
	Created int64 // unix seconds
}

// OpenDiskCache opens the cache for app under $XDG_CACHE_HOME or ~/.cache.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return NewDiskCache(filepath.Join(base, app))
}

// NewDiskCache opens a cache rooted at dir, creating it if needed.
func NewDiskCache(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache dir: %w", err)
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *DiskCache) Dir() string { return c.dir }

func (c *DiskCache) pathFor(key project.Digest) string {
	hexKey := key.String()
	return filepath.Join(c.dir, "out", hexKey[:2], hexKey+".mp")
}

// Put writes entry atomically.
func (c *DiskCache) Put(key project.Digest, entry Entry) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	payload := DiskPayload{
		Schema:  diskCacheSchemaVersion,
		Key:     key,
		Output:  entry.Output,
		Imports: entry.Imports,
		Created: time.Now().Unix(),
	}
	if err = msgpack.NewEncoder(f).Encode(&payload); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads the entry stored for key. Records from another schema
// version, or stored under a different key, are misses.
func (c *DiskCache) Get(key project.Digest) (Entry, bool, error) {
	if c == nil {
		return Entry{}, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Entry{}, false, nil
		}
		return Entry{}, false, err
	}
	defer f.Close()

	var payload DiskPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return Entry{}, false, fmt.Errorf("corrupt cache entry %s: %w", key, err)
	}
	if payload.Schema != diskCacheSchemaVersion || payload.Key != key {
		return Entry{}, false, nil
	}
	return Entry{Output: payload.Output, Imports: payload.Imports}, true, nil
}

// DropAll removes every cached entry.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}
