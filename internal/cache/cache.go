// Package cache implements ResolutionCache: a process-wide memo from
// (set identity, arity, actual-type-vector, insight-vector) to a chosen
// candidate index, bounded with LRU eviction so long-running hosts don't
// grow it without limit.
package cache

import (
	"container/list"
	"fmt"
	"strings"
	"sync"

	"github.com/tliron/commonlog"

	"overcall/internal/descriptor"
	"overcall/internal/insight"
)

// DefaultCapacity bounds the default process-wide cache's entry count.
const DefaultCapacity = 4096

// Sentinel is the outcome of a Lookup.
type Sentinel int

const (
	// Missed means no entry exists for the key.
	Missed Sentinel = iota
	// Hit means a winning candidate index was found.
	Hit
	// Impossible memoizes a known no-match, so repeated calls with the same
	// fingerprint don't re-run a doomed tournament. Storing it is an
	// optimisation the core may skip.
	Impossible
)

// SetHandle is an opaque identity for an OverloadedSet, used only for
// pointer-identity comparison in cache keys — the cache references
// OverloadedSets by identity only and never owns them.
type SetHandle any

// Key is the composite cache key: set identity, arity, and the parallel
// type/insight vectors fingerprinting one call's actuals.
type Key struct {
	Set      SetHandle
	Arity    int
	Types    []*descriptor.TypeDescriptor
	Insights []insight.Insight
}

func (k Key) fingerprint() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%p|%d", k.Set, k.Arity)
	for i := range k.Types {
		fmt.Fprintf(&b, "|%p:%d", k.Types[i], k.Insights[i])
	}
	return b.String()
}

type entry struct {
	key       Key // owned copy; never aliases the caller's transient buffers
	sentinel  Sentinel
	candidate int
}

// ResolutionCache is a bounded, evicting memo. The zero value is not usable;
// construct with New.
type ResolutionCache struct {
	mu       sync.Mutex
	capacity int
	byKey    map[string]*list.Element // fingerprint -> list element holding *entry
	order    *list.List               // front = most recently used
	logger   commonlog.Logger

	hits, misses, evictions uint64
}

// New creates a ResolutionCache bounded to capacity entries. A capacity of
// 0 or less means unbounded (no eviction). Pass WithLogger to report hits,
// misses, and evictions; the default is silent.
func New(capacity int, opts ...Option) *ResolutionCache {
	c := &ResolutionCache{
		capacity: capacity,
		byKey:    make(map[string]*list.Element),
		order:    list.New(),
		logger:   commonlog.NewNilLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lookup probes key. On Hit, candidate is the previously-installed winning
// index. On Impossible, the caller should fail fast with OverloadingNoMatch
// without re-running the tournament. On Missed, full resolution proceeds.
func (c *ResolutionCache) Lookup(key Key) (candidate int, sentinel Sentinel) {
	fp := key.fingerprint()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.byKey[fp]
	if !ok {
		c.misses++
		c.logger.Debugf("resolution cache miss: %s", fp)
		return 0, Missed
	}
	c.order.MoveToFront(elem)
	e := elem.Value.(*entry)
	if e.sentinel == Impossible {
		c.misses++
		c.logger.Debugf("resolution cache impossible: %s", fp)
		return 0, Impossible
	}
	c.hits++
	c.logger.Debugf("resolution cache hit: %s -> candidate %d", fp, e.candidate)
	return e.candidate, Hit
}

// Store installs key -> candidate as a winning resolution, evicting the
// least-recently-used entry first if the cache is at capacity.
func (c *ResolutionCache) Store(key Key, candidate int) {
	c.put(key, entry{key: ownedCopy(key), sentinel: Hit, candidate: candidate})
}

// StoreImpossible memoizes that key is known to have no match.
func (c *ResolutionCache) StoreImpossible(key Key) {
	c.put(key, entry{key: ownedCopy(key), sentinel: Impossible})
}

func (c *ResolutionCache) put(key Key, e entry) {
	fp := key.fingerprint()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.byKey[fp]; ok {
		elem.Value = &e
		c.order.MoveToFront(elem)
		return
	}

	elem := c.order.PushFront(&e)
	c.byKey[fp] = elem

	if c.capacity > 0 {
		for len(c.byKey) > c.capacity {
			c.evictOldestLocked()
		}
	}
}

func (c *ResolutionCache) evictOldestLocked() {
	oldest := c.order.Back()
	if oldest == nil {
		return
	}
	c.order.Remove(oldest)
	e := oldest.Value.(*entry)
	delete(c.byKey, e.key.fingerprint())
	c.evictions++
	c.logger.Debugf("resolution cache evicted %s at capacity %d", e.key.fingerprint(), c.capacity)
}

// ownedCopy duplicates the type/insight slices of key so the stored entry
// never aliases a caller's transient buffer.
func ownedCopy(key Key) Key {
	types := append([]*descriptor.TypeDescriptor(nil), key.Types...)
	insights := append([]insight.Insight(nil), key.Insights...)
	return Key{Set: key.Set, Arity: key.Arity, Types: types, Insights: insights}
}

// Flush empties the cache. forceRecompute is equivalent to Flush at the
// process level; an embedder with one shared cache need only call Flush
// once.
func (c *ResolutionCache) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.byKey = make(map[string]*list.Element)
	c.order = list.New()
	c.logger.Info("resolution cache flushed")
}

// Stats is a read-only snapshot of cache health.
type Stats struct {
	Hits, Misses, Evictions uint64
	Entries                 int
}

// Stats returns a snapshot of the cache's counters and current size.
func (c *ResolutionCache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{Hits: c.hits, Misses: c.misses, Evictions: c.evictions, Entries: len(c.byKey)}
}

var (
	defaultOnce sync.Once
	defaultC    *ResolutionCache
)

// Default returns the process-wide default cache, creating it on first use.
// Most embedders that don't need multiple independent caches should share
// this one; a "process-wide" cache contract can equally be satisfied by a
// per-runtime handle threaded through calls instead — Default is that
// handle when callers don't thread their own.
func Default() *ResolutionCache {
	defaultOnce.Do(func() {
		defaultC = New(DefaultCapacity)
	})
	return defaultC
}

// ForceRecompute flushes the default process-wide cache. Callers using
// their own ResolutionCache should call Flush on it directly instead.
func ForceRecompute() {
	Default().Flush()
}
