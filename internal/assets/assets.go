// Package assets loads files from asset directories and decodes the scene's
// background image and title font off the render thread.
package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/tetsuo/internal/config"
	"github.com/Faultbox/tetsuo/internal/logger"
)

// ErrNotFound is returned when no asset root contains the requested file.
var ErrNotFound = errors.New("asset not found")

// Manager resolves asset names against a list of root directories.
type Manager struct {
	roots []string
	cache *Cache
	mu    sync.RWMutex
}

// NewManager creates a manager searching roots.
func NewManager(roots ...string) *Manager {
	return &Manager{
		roots: append([]string(nil), roots...),
		cache: NewCache(),
	}
}

// ManagerFor creates a manager searching base, with the configured asset
// directory, if any, taking priority over it.
func ManagerFor(base string, cfg config.AssetsConfig) *Manager {
	m := NewManager(base)
	if cfg.Dir != "" {
		m.AddRoot(cfg.Dir)
	}
	return m
}

// AddRoot adds an asset directory.
// Roots are searched in reverse order (last added = highest priority).
func (m *Manager) AddRoot(dir string) {
	m.mu.Lock()
	m.roots = append(m.roots, dir)
	m.mu.Unlock()
}

// Resolve returns the path of name. Absolute paths and paths relative to
// the working directory are used as is when they exist.
func (m *Manager) Resolve(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("empty name: %w", ErrNotFound)
	}
	if filepath.IsAbs(name) {
		if fileExists(name) {
			return name, nil
		}
		return "", fmt.Errorf("%s: %w", name, ErrNotFound)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := len(m.roots) - 1; i >= 0; i-- {
		p := filepath.Join(m.roots[i], name)
		if fileExists(p) {
			return p, nil
		}
	}
	if fileExists(name) {
		return name, nil
	}
	return "", fmt.Errorf("%s: %w", name, ErrNotFound)
}

// Load reads an asset, serving repeated loads from the cache.
func (m *Manager) Load(name string) ([]byte, error) {
	if data, ok := m.cache.Get(name); ok {
		return data, nil
	}

	path, err := m.Resolve(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	m.cache.Set(name, data)
	logger.Debug("asset loaded", zap.String("name", name), zap.String("path", path), zap.Int("bytes", len(data)))
	return data, nil
}

// Close drops cached data.
func (m *Manager) Close() {
	hits, misses := m.cache.Stats()
	logger.Debug("asset cache closed", zap.Int("hits", hits), zap.Int("misses", misses))
	m.cache.Clear()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Cache is a simple in-memory cache for loaded assets.
type Cache struct {
	data map[string][]byte
	mu   sync.Mutex

	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
