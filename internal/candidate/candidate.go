// Package candidate implements CandidateFunction: one native function plus
// its formal signature, return type, and invoker.
package candidate

import (
	"strings"

	"overcall/internal/descriptor"
	"overcall/internal/value"
)

// Invoker marshals already-converted scripting values into a native call's
// ABI and wraps the native return. The dispatch core never marshals
// arguments itself; it only owns selecting and converting.
type Invoker func(convertedActuals []value.Value) (value.Value, error)

// CandidateFunction is one alternative inside an OverloadedSet.
type CandidateFunction struct {
	name       string
	signature  []*descriptor.TypeDescriptor
	returnType *descriptor.TypeDescriptor
	invoke     Invoker
}

// New builds a candidate. signature is the ordered vector of formal
// parameter types (length = arity); returnType may be nil for a void
// native function.
func New(name string, signature []*descriptor.TypeDescriptor, returnType *descriptor.TypeDescriptor, invoke Invoker) *CandidateFunction {
	return &CandidateFunction{
		name:       name,
		signature:  append([]*descriptor.TypeDescriptor(nil), signature...),
		returnType: returnType,
		invoke:     invoke,
	}
}

// Name returns the candidate's symbolic name (shared by every member of its
// OverloadedSet).
func (c *CandidateFunction) Name() string { return c.name }

// Signature returns the candidate's formal parameter types.
func (c *CandidateFunction) Signature() []*descriptor.TypeDescriptor {
	return append([]*descriptor.TypeDescriptor(nil), c.signature...)
}

// Arity is the candidate's parameter count.
func (c *CandidateFunction) Arity() int { return len(c.signature) }

// ReturnType returns the candidate's declared return type, or nil if void.
func (c *CandidateFunction) ReturnType() *descriptor.TypeDescriptor { return c.returnType }

// Call invokes the native function with already-converted actuals. The core
// assumes convertedActuals has already been produced by applying the
// candidate's chosen routes; it does no further marshalling.
func (c *CandidateFunction) Call(convertedActuals []value.Value) (value.Value, error) {
	return c.invoke(convertedActuals)
}

// Identical reports whether a and b have element-wise identical signatures,
// used to suppress spurious ambiguity between, e.g., const and non-const
// overloads sharing a signature. It is reflexive, symmetric, and purely
// structural — it does not compare names, return types, or invokers.
func Identical(a, b *CandidateFunction) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if len(a.signature) != len(b.signature) {
		return false
	}
	for i := range a.signature {
		if !descriptor.Same(a.signature[i], b.signature[i]) {
			return false
		}
	}
	return true
}

// String renders the candidate's signature for diagnostics.
func (c *CandidateFunction) String() string {
	var b strings.Builder
	b.WriteString(c.name)
	b.WriteByte('(')
	for i, p := range c.signature {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteByte(')')
	if c.returnType != nil {
		b.WriteString(" -> ")
		b.WriteString(c.returnType.String())
	}
	return b.String()
}
