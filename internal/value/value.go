// Package value names the scripting-value type threaded through the
// dispatch core. The core is agnostic to what a scripting value actually
// is — that is the frontend's concern — so Value is simply an opaque
// handle.
package value

// Value is an opaque scripting-host value: an argument going into a native
// call, a result coming back out, or an intermediate produced by a
// conversion edge. The dispatch core never inspects it; it only moves it
// between the frontend, the conversion routes, and the native invoker.
type Value = any
