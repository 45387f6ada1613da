// Package convert implements ConversionRoute: a composed chain of
// conversion edges from one native type to another, with a total weight
// that is a function of the per-argument Insight.
package convert

import (
	"strings"

	"overcall/internal/descriptor"
	"overcall/internal/gcsink"
	"overcall/internal/insight"
	"overcall/internal/value"
	"overcall/internal/weight"
)

// ApplyFunc converts a value along one edge. It may allocate into sink
// (values it returns are tracked there by the caller, not by ApplyFunc
// itself, so that a single edge implementation can be reused across routes
// without knowing which sink owns the call).
type ApplyFunc func(v value.Value) (value.Value, error)

// WeightFunc computes an edge's cost given the Insight of the value flowing
// into it. Most edges ignore the insight and return a constant; an edge
// that distinguishes runtime shapes of the same static type (e.g. "exact
// subclass" vs "any instance of the base") uses it to return a cheaper
// weight for a more specific insight.
type WeightFunc func(ins insight.Insight) weight.Weight

// Edge is one labelled step of a ConversionRoute.
type Edge struct {
	From, To *descriptor.TypeDescriptor
	Weight   WeightFunc
	Apply    ApplyFunc
}

// Constant returns a WeightFunc that ignores the insight and always
// reports w — the common case for edges whose cost doesn't depend on
// runtime shape.
func Constant(w weight.Weight) WeightFunc {
	return func(insight.Insight) weight.Weight { return w }
}

// ConversionRoute is a finite ordered sequence of Edges. An empty route is
// the identity conversion: zero weight, value passed through unchanged.
type ConversionRoute struct {
	From, To *descriptor.TypeDescriptor
	edges    []Edge
}

// NewRoute builds a route from From to To through edges, in order. Each
// edge's From must equal the previous edge's To (or From, for the first
// edge); callers that build routes by hand (tests, hand-registered direct
// conversions) are expected to honor this, the same way the ConversionTable
// does when it replays a shortest path.
func NewRoute(from, to *descriptor.TypeDescriptor, edges ...Edge) ConversionRoute {
	return ConversionRoute{From: from, To: to, edges: append([]Edge(nil), edges...)}
}

// Identity returns the zero-weight, pass-through route from and to the same
// type.
func Identity(t *descriptor.TypeDescriptor) ConversionRoute {
	return ConversionRoute{From: t, To: t}
}

// Len reports how many edges the route is composed of; zero means Identity.
func (r ConversionRoute) Len() int {
	return len(r.edges)
}

// TotalWeight aggregates the route's edges under the given Insight. The
// Insight is applied to every edge's WeightFunc; in practice only the edge
// closest to the original actual argument (commonly the first) branches on
// it, but the route itself does not special-case position.
func (r ConversionRoute) TotalWeight(ins insight.Insight) weight.Weight {
	total := weight.Zero
	for _, e := range r.edges {
		total = weight.Add(total, e.Weight(ins))
	}
	return total
}

// Apply converts v by running it through each edge in order, tracking every
// intermediate (and the final) value into sink so the call's epilogue can
// release them. An empty route returns v unchanged and tracks nothing.
func (r ConversionRoute) Apply(v value.Value, sink *gcsink.Sink) (value.Value, error) {
	cur := v
	for _, e := range r.edges {
		next, err := e.Apply(cur)
		if err != nil {
			return nil, err
		}
		sink.Track(next)
		cur = next
	}
	return cur, nil
}

// String renders the route's type path for diagnostics.
func (r ConversionRoute) String() string {
	var b strings.Builder
	b.WriteString(r.From.String())
	for _, e := range r.edges {
		b.WriteString(" -> ")
		b.WriteString(e.To.String())
	}
	if len(r.edges) == 0 {
		b.WriteString(" (identity)")
	}
	return b.String()
}
