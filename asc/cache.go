package asc

import (
	"errors"
	"strings"
	"sync"

	"github.com/katalvlaran/terrain50/dem"
)

// Cache memoizes Load results by tile name. It is an explicit, caller-owned
// object: create one per dataset and share it between goroutines as needed;
// there is no package-level cache.
//
// Successful loads and ErrNotPresent outcomes are cached (a square in the
// sea stays in the sea). ErrTileSource and parse failures are not, so a
// retry after fixing the data re-reads the tile.
type Cache struct {
	src Source

	mu    sync.RWMutex
	tiles map[string]cacheEntry
}

type cacheEntry struct {
	header Header
	grid   dem.Grid
	err    error // nil or ErrNotPresent
}

// NewCache returns an empty Cache loading from src.
func NewCache(src Source) *Cache {
	return &Cache{src: src, tiles: make(map[string]cacheEntry)}
}

// Load implements Loader, consulting the cache first. Tile names are
// case-insensitive.
func (c *Cache) Load(name string) (Header, dem.Grid, error) {
	key := strings.ToUpper(name)

	c.mu.RLock()
	entry, ok := c.tiles[key]
	c.mu.RUnlock()
	if ok {
		return entry.header, entry.grid, entry.err
	}

	header, grid, err := Load(c.src, name)
	if err == nil || errors.Is(err, ErrNotPresent) {
		c.mu.Lock()
		c.tiles[key] = cacheEntry{header: header, grid: grid, err: err}
		c.mu.Unlock()
	}

	return header, grid, err
}

// Len returns the number of cached tiles, sea squares included.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.tiles)
}

// Purge drops every cached tile.
func (c *Cache) Purge() {
	c.mu.Lock()
	c.tiles = make(map[string]cacheEntry)
	c.mu.Unlock()
}
