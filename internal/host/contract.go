// Package host declares the external collaborator contracts the dispatch
// core depends on but does not implement: the scripting frontend that
// fingerprints actual arguments, and the memory manager that reclaims
// values an edge conversion replaces.
package host

import (
	"overcall/internal/descriptor"
	"overcall/internal/insight"
	"overcall/internal/value"
)

// Frontend detects the runtime type and Insight of a scripting value. Both
// operations must be pure and cheap — the core calls them once per actual,
// per call, and may call DetectType again on a cache hit's single-candidate
// re-resolution.
type Frontend interface {
	DetectType(v value.Value) *descriptor.TypeDescriptor
	DetectInsight(v value.Value) insight.Insight
}

// MemoryManager relinquishes a scripting value that an edge conversion has
// replaced. The GarbageSink calls Release exactly once per tracked value,
// on every exit path of a call.
type MemoryManager interface {
	Release(v value.Value)
}
