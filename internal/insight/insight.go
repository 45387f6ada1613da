// Package insight provides Insight, the per-argument runtime refinement tag
// the scripting frontend attaches to an actual so that a single conversion
// route can carry different weights for different runtime shapes of the
// same static type.
package insight

// Insight is a small, totally ordered, equality-comparable tag. The zero
// value, None, denotes "no refinement" and is what a frontend returns for a
// value whose runtime shape tells the core nothing beyond its type.
//
// A frontend for a polymorphic host language typically assigns one Insight
// per concrete subclass it can distinguish cheaply (e.g. "this Base-typed
// value is actually a Derived"), ordered so that more specific insights sort
// lower when used as a tiebreaker.
type Insight int

// None is the default insight: no refinement beyond the actual's static type.
const None Insight = 0

// Less reports whether a sorts before b. The dispatch core does not call it:
// ResolutionCache matches insights by exact value inside its key
// fingerprint, and the resolution semantics live in
// ConversionRoute.TotalWeight, which may branch on the Insight value itself.
func Less(a, b Insight) bool {
	return a < b
}

// Equal reports whether a and b are the same insight.
func Equal(a, b Insight) bool {
	return a == b
}
