// Package descriptor provides TypeDescriptor, the reference-identity token
// the dispatch core uses to recognize a native argument type.
//
// Two actuals have the "same type" iff their descriptors are the same
// pointer. Descriptors are created once, at registration time, and live for
// the process; nothing in this package ever mutates one after creation.
package descriptor

import "sync"

// TypeDescriptor identifies one native argument or return type. Identity is
// by address, not by Name: two descriptors with equal Name are distinct
// types unless they are the same pointer.
type TypeDescriptor struct {
	// Name is a human-readable label for diagnostics; it plays no role in
	// equality.
	Name string
}

// String implements fmt.Stringer for diagnostics and debug logging.
func (d *TypeDescriptor) String() string {
	if d == nil {
		return "<nil type>"
	}
	return d.Name
}

// Registry interns TypeDescriptors by name so that repeated registration of
// the same native type yields the same pointer. A process typically keeps
// one Registry; the dispatch core itself only ever compares descriptors it
// is handed, so a Registry is a convenience for callers that name types by
// string, not a requirement of the core.
type Registry struct {
	mu    sync.Mutex
	byKey map[string]*TypeDescriptor
}

// NewRegistry creates an empty descriptor registry.
func NewRegistry() *Registry {
	return &Registry{byKey: make(map[string]*TypeDescriptor)}
}

// Intern returns the TypeDescriptor for name, creating it on first use.
// Subsequent calls with the same name return the identical pointer.
func (r *Registry) Intern(name string) *TypeDescriptor {
	r.mu.Lock()
	defer r.mu.Unlock()

	if d, ok := r.byKey[name]; ok {
		return d
	}
	d := &TypeDescriptor{Name: name}
	r.byKey[name] = d
	return d
}

// Lookup returns the descriptor previously interned under name, if any.
func (r *Registry) Lookup(name string) (*TypeDescriptor, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.byKey[name]
	return d, ok
}

// Same reports whether two descriptors are the identical registered type.
func Same(a, b *TypeDescriptor) bool {
	return a == b
}
