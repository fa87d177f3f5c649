// Package cache memoizes annotation results keyed by input text. Entries
// are bounded both by count and by age; the engine itself never depends on
// the cache being present or warm.
package cache

import (
	"container/list"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	grammatik "github.com/deutschspectrum/grammatik"
)

// Stats is a point-in-time snapshot of cache state and counters.
type Stats struct {
	Size       int     `json:"size"`
	MaxEntries int     `json:"max_entries"`
	TTLSeconds float64 `json:"ttl_seconds"`
	Hits       uint64  `json:"hits"`
	Misses     uint64  `json:"misses"`
}

type entry struct {
	key      string
	tokens   []grammatik.TokenAnnotation
	expires  time.Time
	listElem *list.Element
}

// Cache is a TTL + size-bounded store of annotation results. At most one
// entry exists per key; when full, the oldest entry is evicted. All methods
// are safe for concurrent use.
type Cache struct {
	mu         sync.Mutex
	entries    map[string]*entry
	order      *list.List // front = oldest
	maxEntries int
	ttl        time.Duration
	hits       uint64
	misses     uint64

	// now is the clock; replaced in tests.
	now func() time.Time
}

// New creates a cache holding at most maxEntries results, each valid for
// ttl. maxEntries must be positive.
func New(maxEntries int, ttl time.Duration) *Cache {
	if maxEntries <= 0 {
		maxEntries = 1
	}
	return &Cache{
		entries:    make(map[string]*entry),
		order:      list.New(),
		maxEntries: maxEntries,
		ttl:        ttl,
		now:        time.Now,
	}
}

// key hashes the input text so arbitrarily long texts index a fixed-size key.
func key(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// Get returns the cached annotations for text, or false when absent or
// expired. Expired entries are dropped on read.
func (c *Cache) Get(text string) ([]grammatik.TokenAnnotation, bool) {
	k := key(text)

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[k]
	if !ok {
		c.misses++
		return nil, false
	}
	if c.now().After(e.expires) {
		c.remove(e)
		c.misses++
		return nil, false
	}
	c.hits++
	return e.tokens, true
}

// Set stores the annotations for text, replacing any existing entry for the
// same key and evicting the oldest entry when the cache is full.
func (c *Cache) Set(text string, tokens []grammatik.TokenAnnotation) {
	k := key(text)

	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[k]; ok {
		e.tokens = tokens
		e.expires = c.now().Add(c.ttl)
		c.order.MoveToBack(e.listElem)
		return
	}
	for len(c.entries) >= c.maxEntries {
		oldest := c.order.Front()
		if oldest == nil {
			break
		}
		c.remove(oldest.Value.(*entry))
	}
	e := &entry{key: k, tokens: tokens, expires: c.now().Add(c.ttl)}
	e.listElem = c.order.PushBack(e)
	c.entries[k] = e
}

// Clear drops every entry. Hit/miss counters are kept.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*entry)
	c.order.Init()
}

// Stats returns a snapshot of the cache state.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Size:       len(c.entries),
		MaxEntries: c.maxEntries,
		TTLSeconds: c.ttl.Seconds(),
		Hits:       c.hits,
		Misses:     c.misses,
	}
}

// remove deletes e from both indexes. Caller holds the lock.
func (c *Cache) remove(e *entry) {
	delete(c.entries, e.key)
	c.order.Remove(e.listElem)
}
