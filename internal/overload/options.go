package overload

import "github.com/tliron/commonlog"

// Option configures an OverloadedSet at construction time.
type Option func(*OverloadedSet)

// WithLogger attaches logger to report tournament verdicts (champion
// chosen, ambiguity detected, no match) to. The default is a silent no-op
// logger.
func WithLogger(logger commonlog.Logger) Option {
	return func(s *OverloadedSet) { s.logger = logger }
}
