package cache

import "github.com/tliron/commonlog"

// Option configures a ResolutionCache at construction time.
type Option func(*ResolutionCache)

// WithLogger attaches logger to report hits, misses, and evictions to. The
// default is a silent no-op logger, the same "quiet unless asked" default
// an LSP handler uses for library consumers that haven't called
// commonlog.Configure.
func WithLogger(logger commonlog.Logger) Option {
	return func(c *ResolutionCache) { c.logger = logger }
}
