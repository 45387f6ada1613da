package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"overcall/internal/descriptor"
	"overcall/internal/insight"
)

func key(set SetHandle, types ...*descriptor.TypeDescriptor) Key {
	insights := make([]insight.Insight, len(types))
	return Key{Set: set, Arity: len(types), Types: types, Insights: insights}
}

func TestLookupMissesOnEmptyCache(t *testing.T) {
	c := New(8)
	reg := descriptor.NewRegistry()
	setA := new(int)

	_, sentinel := c.Lookup(key(setA, reg.Intern("Int")))
	assert.Equal(t, Missed, sentinel)
}

func TestStoreThenLookupHits(t *testing.T) {
	c := New(8)
	reg := descriptor.NewRegistry()
	setA := new(int)
	k := key(setA, reg.Intern("Int"), reg.Intern("Int"))

	c.Store(k, 3)

	idx, sentinel := c.Lookup(k)
	assert.Equal(t, Hit, sentinel)
	assert.Equal(t, 3, idx)
}

func TestStoreImpossibleIsRemembered(t *testing.T) {
	c := New(8)
	reg := descriptor.NewRegistry()
	setA := new(int)
	k := key(setA, reg.Intern("String"))

	c.StoreImpossible(k)

	_, sentinel := c.Lookup(k)
	assert.Equal(t, Impossible, sentinel)
}

func TestKeyDoesNotAliasCallerSlice(t *testing.T) {
	c := New(8)
	reg := descriptor.NewRegistry()
	setA := new(int)
	types := []*descriptor.TypeDescriptor{reg.Intern("Int")}
	k := Key{Set: setA, Arity: 1, Types: types, Insights: []insight.Insight{insight.None}}

	c.Store(k, 1)
	types[0] = reg.Intern("Double") // mutate caller's buffer after storing

	idx, sentinel := c.Lookup(Key{Set: setA, Arity: 1, Types: []*descriptor.TypeDescriptor{reg.Intern("Int")}, Insights: []insight.Insight{insight.None}})
	assert.Equal(t, Hit, sentinel)
	assert.Equal(t, 1, idx)
}

func TestEvictsLeastRecentlyUsedAtCapacity(t *testing.T) {
	c := New(2)
	reg := descriptor.NewRegistry()
	setA := new(int)
	k1 := key(setA, reg.Intern("A"))
	k2 := key(setA, reg.Intern("B"))
	k3 := key(setA, reg.Intern("C"))

	c.Store(k1, 1)
	c.Store(k2, 2)
	c.Store(k3, 3) // evicts k1, the least recently touched

	_, sentinel := c.Lookup(k1)
	assert.Equal(t, Missed, sentinel)

	_, sentinel = c.Lookup(k2)
	assert.Equal(t, Hit, sentinel)

	stats := c.Stats()
	assert.Equal(t, uint64(1), stats.Evictions)
	assert.Equal(t, 2, stats.Entries)
}

func TestFlushClearsAllEntries(t *testing.T) {
	c := New(8)
	reg := descriptor.NewRegistry()
	setA := new(int)
	k := key(setA, reg.Intern("Int"))
	c.Store(k, 7)

	c.Flush()

	_, sentinel := c.Lookup(k)
	assert.Equal(t, Missed, sentinel)
}

func TestDistinctSetsDoNotCollideWithSameTypeVector(t *testing.T) {
	c := New(8)
	reg := descriptor.NewRegistry()
	setA, setB := new(int), new(int)
	kA := key(setA, reg.Intern("Int"))
	kB := key(setB, reg.Intern("Int"))

	c.Store(kA, 1)

	_, sentinel := c.Lookup(kB)
	assert.Equal(t, Missed, sentinel)
}

func TestForceRecomputeFlushesDefaultCache(t *testing.T) {
	reg := descriptor.NewRegistry()
	setA := new(int)
	k := key(setA, reg.Intern("Int"))
	Default().Store(k, 9)

	ForceRecompute()

	_, sentinel := Default().Lookup(k)
	assert.Equal(t, Missed, sentinel)
}
