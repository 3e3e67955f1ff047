package source

import (
	"image"
	"sync"
)

// CachedSource wraps a Source and memoizes decoded pages in memory. A
// detection pass followed by panel extraction visits every page twice;
// archive decompression and PDF rasterization are too slow to repeat.
//
// Decoded pages are kept until evicted, so cache a Source only for
// workloads that revisit pages. Two goroutines requesting the same uncached
// page may both decode it; the extra decode is harmless and cheaper than
// holding a lock across I/O.
type CachedSource struct {
	src Source

	mu    sync.RWMutex
	pages map[int]image.Image
}

// NewCachedSource wraps src with a page cache.
func NewCachedSource(src Source) *CachedSource {
	return &CachedSource{
		src:   src,
		pages: make(map[int]image.Image),
	}
}

// PageCount implements Source.
func (c *CachedSource) PageCount() int { return c.src.PageCount() }

// Page implements Source, serving repeated requests from the cache.
func (c *CachedSource) Page(index int) (image.Image, error) {
	c.mu.RLock()
	img, ok := c.pages[index]
	c.mu.RUnlock()
	if ok {
		return img, nil
	}

	img, err := c.src.Page(index)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.pages[index] = img
	c.mu.Unlock()
	return img, nil
}

// Label implements Source.
func (c *CachedSource) Label(index int) string { return c.src.Label(index) }

// Evict drops one cached page.
func (c *CachedSource) Evict(index int) {
	c.mu.Lock()
	delete(c.pages, index)
	c.mu.Unlock()
}

// Clear drops every cached page.
func (c *CachedSource) Clear() {
	c.mu.Lock()
	c.pages = make(map[int]image.Image)
	c.mu.Unlock()
}

// Len returns the number of cached pages.
func (c *CachedSource) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.pages)
}

// Close implements Source, clearing the cache and closing the underlying
// container.
func (c *CachedSource) Close() error {
	c.Clear()
	return c.src.Close()
}
