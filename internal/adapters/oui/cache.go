package oui

import (
	"container/list"
	"sync"
	"time"
)

// CacheConfig sizes the lookup cache in front of a Registry.
type CacheConfig struct {
	// Size is the number of prefixes remembered. Values below 1 mean 1.
	Size int
	// MissTTL is how long an unregistered prefix is remembered.
	// Zero disables negative caching.
	MissTTL time.Duration
}

// DefaultCacheConfig fits a capture with a few thousand access points.
var DefaultCacheConfig = CacheConfig{Size: 1024, MissTTL: 5 * time.Minute}

// CacheStats counts lookup cache outcomes.
type CacheStats struct {
	Hits    int64 // answered from the cache, vendor or miss
	Misses  int64 // sent to the database
	Expired int64 // misses dropped after MissTTL
	Evicted int64 // dropped to stay within Size
	Entries int
}

// answer is one cached registry reply. An empty vendor records a prefix
// the registry does not know; only those carry an expiry.
type answer struct {
	prefix  string
	vendor  string
	expires time.Time
}

// prefixCache is an LRU of registry answers keyed by OUI prefix.
type prefixCache struct {
	mu       sync.Mutex
	size     int
	missTTL  time.Duration
	now      func() time.Time
	order    *list.List // front is most recently used
	byPrefix map[string]*list.Element
	stats    CacheStats
}

func newPrefixCache(cfg CacheConfig) *prefixCache {
	if cfg.Size < 1 {
		cfg.Size = 1
	}
	return &prefixCache{
		size:     cfg.Size,
		missTTL:  cfg.MissTTL,
		now:      time.Now,
		order:    list.New(),
		byPrefix: make(map[string]*list.Element),
	}
}

// lookup returns the cached vendor for prefix. cached is false when the
// registry has to be asked; a cached miss returns "" and true.
func (c *prefixCache) lookup(prefix string) (vendor string, cached bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.byPrefix[prefix]
	if !ok {
		c.stats.Misses++
		return "", false
	}
	a := elem.Value.(*answer)
	if a.vendor == "" && !c.now().Before(a.expires) {
		c.drop(elem)
		c.stats.Expired++
		c.stats.Misses++
		return "", false
	}
	c.order.MoveToFront(elem)
	c.stats.Hits++
	return a.vendor, true
}

// remember stores a registry reply. An empty vendor is a miss and is kept
// for missTTL only.
func (c *prefixCache) remember(prefix, vendor string) {
	if vendor == "" && c.missTTL <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	a := &answer{prefix: prefix, vendor: vendor}
	if vendor == "" {
		a.expires = c.now().Add(c.missTTL)
	}
	if elem, ok := c.byPrefix[prefix]; ok {
		elem.Value = a
		c.order.MoveToFront(elem)
		return
	}
	c.byPrefix[prefix] = c.order.PushFront(a)

	for c.order.Len() > c.size {
		c.drop(c.order.Back())
		c.stats.Evicted++
	}
}

// forget drops the answers cached for prefixes.
func (c *prefixCache) forget(prefixes []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, p := range prefixes {
		if elem, ok := c.byPrefix[p]; ok {
			c.drop(elem)
		}
	}
}

func (c *prefixCache) snapshot() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.stats
	s.Entries = c.order.Len()
	return s
}

func (c *prefixCache) drop(elem *list.Element) {
	c.order.Remove(elem)
	delete(c.byPrefix, elem.Value.(*answer).prefix)
}
