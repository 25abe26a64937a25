package gomap

// MapOption is an option for controlling the mapping from Go values to
// trees.
type MapOption interface {
	applyMap(*mapConfig)
}

type mapOptionFunc func(*mapConfig)

func (f mapOptionFunc) applyMap(c *mapConfig) { f(c) }

// DefaultMaxDepth bounds the nesting of composites. Cyclic records hit
// it rather than recursing forever.
const DefaultMaxDepth = 64

type mapConfig struct {
	maxDepth int
	logf     func(string, ...any)
}

func newMapConfig(opts ...MapOption) *mapConfig {
	cfg := &mapConfig{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt.applyMap(cfg)
	}
	return cfg
}

// MaxDepth sets the maximum nesting of composites. Values below 1 reset
// it to DefaultMaxDepth.
func MaxDepth(n int) MapOption {
	if n < 1 {
		n = DefaultMaxDepth
	}
	return mapOptionFunc(func(c *mapConfig) { c.maxDepth = n })
}

// WithLogger makes the mapper report each composite it projects to f.
func WithLogger(f func(format string, args ...any)) MapOption {
	return mapOptionFunc(func(c *mapConfig) { c.logf = f })
}
