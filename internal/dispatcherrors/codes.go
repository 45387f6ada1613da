// Package dispatcherrors implements the dispatch core's error taxonomy:
// stable codes, structured error values, and a colorized reporter, in the
// same idiom as a compiler's diagnostics package.
package dispatcherrors

// Error codes for the dispatch core.
//
// Code ranges:
// D0001-D0001: Argument-count errors
// D0002-D0002: Overload-resolution failure (no match)
// D0003-D0003: Overload-resolution failure (ambiguity)
// D0004-D0004: Per-argument conversion failure (internal; never surfaced)
// D0005-D0005: Native invocation failure (propagated verbatim, not ours to describe)
// G0001-G0001: Scripting-host syntax errors (grammar/ is outside the core
// proper, but shares this code-table-plus-reporter idiom rather than
// maintaining a second one)
const (
	// D0001: too many actual arguments at a call site.
	CodeArgumentArrayLimitExceeded = "D0001"

	// D0002: no registered candidate produced a possible route vector.
	CodeOverloadingNoMatch = "D0002"

	// D0003: two or more non-identical candidates tied as best.
	CodeOverloadingAmbiguity = "D0003"

	// D0004: a single argument position had no applicable conversion.
	// Recovered locally inside the tournament; never returned to a caller.
	CodeNoApplicableConversion = "D0004"

	// G0001: the scripting host's call-expression grammar failed to parse a
	// line. Not one of the core's own error kinds (spec.md §7) — grammar/
	// lives outside the dispatch core's scope — but reported through the
	// same Reporter so the demo host has one diagnostic voice, not two.
	CodeSyntaxError = "G0001"
)

// Description returns a human-readable explanation of code, for reporters
// and documentation; it is independent of any particular error instance.
func Description(code string) string {
	switch code {
	case CodeArgumentArrayLimitExceeded:
		return "argument limit exceeded"
	case CodeOverloadingNoMatch:
		return "no overloaded member matches arguments"
	case CodeOverloadingAmbiguity:
		return "call is ambiguous with given arguments"
	case CodeNoApplicableConversion:
		return "no applicable conversion for one argument position"
	case CodeSyntaxError:
		return "syntax error in call expression"
	default:
		return "unknown dispatch error"
	}
}

// Category groups a code into the dispatch core's coarse error taxonomy.
func Category(code string) string {
	switch code {
	case CodeArgumentArrayLimitExceeded:
		return "Argument Count"
	case CodeOverloadingNoMatch, CodeOverloadingAmbiguity:
		return "Overload Resolution"
	case CodeNoApplicableConversion:
		return "Conversion (internal)"
	case CodeSyntaxError:
		return "Syntax"
	default:
		return "Unknown"
	}
}
