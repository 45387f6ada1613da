// Package gcsink implements GarbageSink, the scoped accumulator of
// transient values a ConversionRoute produces while converting one call's
// actual arguments.
//
// A Sink brackets exactly one OverloadedSet.Call: created at the start,
// released on every exit path (success, selection failure, or a native
// exception propagating out), regardless of which path was taken.
package gcsink

import (
	"sync"

	"overcall/internal/value"
)

// Releaser hands a replaced scripting value back to the embedding runtime's
// memory manager. It is the MemoryManager contract narrowed to the one
// operation the sink needs.
type Releaser interface {
	Release(v value.Value)
}

// Sink accumulates values produced by conversions during one call and
// releases them all at scope exit. It is safe for the single goroutine that
// owns the call — dispatch is synchronous, so the sink is not shared
// across concurrent calls.
type Sink struct {
	mu       sync.Mutex
	tracked  []value.Value
	released bool
}

// New creates an empty, unreleased Sink.
func New() *Sink {
	return &Sink{}
}

// Track records v as a transient value owned by this call and returns v
// unchanged. ConversionRoute.Apply calls it for every value an edge
// produces; the edges themselves never see the sink.
func (s *Sink) Track(v value.Value) value.Value {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tracked = append(s.tracked, v)
	return v
}

// Len reports how many values are currently tracked and not yet released.
func (s *Sink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.tracked)
}

// Release hands every tracked value to r and clears the sink. Release is
// idempotent: calling it again after the sink has already been released is
// a no-op, so defer sink.Release(mm) is always safe even if an earlier
// return path already released it explicitly.
func (s *Sink) Release(r Releaser) {
	s.mu.Lock()
	if s.released {
		s.mu.Unlock()
		return
	}
	tracked := s.tracked
	s.tracked = nil
	s.released = true
	s.mu.Unlock()

	for _, v := range tracked {
		r.Release(v)
	}
}
