package cache

import (
	"container/list"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"

	"github.com/standardbeagle/namesake/internal/types"
)

// DefaultMaxEntries is used when a non-positive size is requested
const DefaultMaxEntries = 1024

// NameCache is a thread-safe least-recently-used cache of analyzed names,
// keyed by xxhash digests of the analysis inputs
type NameCache struct {
	maxSize int
	mu      sync.Mutex
	items   map[uint64]*list.Element
	order   *list.List

	// Atomic counters
	hits      int64
	misses    int64
	evictions int64
}

// cacheEntry represents an entry in the cache
type cacheEntry struct {
	key   uint64
	value []*types.Name
}

// Stats is a snapshot of cache counters
type Stats struct {
	Size      int
	Hits      int64
	Misses    int64
	Evictions int64
}

// NewNameCache creates a new cache with the specified maximum size
func NewNameCache(maxSize int) *NameCache {
	if maxSize <= 0 {
		maxSize = DefaultMaxEntries
	}
	return &NameCache{
		maxSize: maxSize,
		items:   make(map[uint64]*list.Element),
		order:   list.New(),
	}
}

// Key digests the analysis inputs. Each field is length-delimited by a zero
// byte so ("ab","c") and ("a","bc") hash differently.
func Key(fields ...string) uint64 {
	d := xxhash.New()
	for _, f := range fields {
		_, _ = d.WriteString(f)
		_, _ = d.Write([]byte{0})
	}
	return d.Sum64()
}

// Get retrieves names and marks them as recently used. The returned names
// are shared and must not be modified.
func (c *NameCache) Get(key uint64) ([]*types.Name, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		atomic.AddInt64(&c.hits, 1)
		return elem.Value.(*cacheEntry).value, true
	}
	atomic.AddInt64(&c.misses, 1)
	return nil, false
}

// Set adds or updates an entry
func (c *NameCache) Set(key uint64, value []*types.Name) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		elem.Value.(*cacheEntry).value = value
		return
	}

	elem := c.order.PushFront(&cacheEntry{key: key, value: value})
	c.items[key] = elem

	// Evict oldest if over capacity
	if c.order.Len() > c.maxSize {
		if oldest := c.order.Back(); oldest != nil {
			c.order.Remove(oldest)
			delete(c.items, oldest.Value.(*cacheEntry).key)
			atomic.AddInt64(&c.evictions, 1)
		}
	}
}

// Clear removes all entries from the cache
func (c *NameCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[uint64]*list.Element)
	c.order = list.New()
}

// Size returns the current number of entries
func (c *NameCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Stats returns the current counters
func (c *NameCache) Stats() Stats {
	return Stats{
		Size:      c.Size(),
		Hits:      atomic.LoadInt64(&c.hits),
		Misses:    atomic.LoadInt64(&c.misses),
		Evictions: atomic.LoadInt64(&c.evictions),
	}
}
