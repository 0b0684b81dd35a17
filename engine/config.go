package engine

import "github.com/katalvlaran/vdiff/atomize"

// defaultMaxRecursionDepth is used when Config.MaxRecursionDepth is zero,
// matching the original framework's "config->max_recursion_depth ?: 1024".
const defaultMaxRecursionDepth = 1024

// Config configures a call to Diff.
type Config struct {
	Atomizer          atomize.Atomizer
	Algorithm         *Algorithm
	MaxRecursionDepth int
}

// Option mutates a Config under construction, the same functional-options
// shape core.GraphOption and dtw.Options use.
type Option func(*Config)

// WithAtomizer sets the atomizer used to split both input buffers into
// atoms.
func WithAtomizer(a atomize.Atomizer) Option {
	return func(c *Config) { c.Atomizer = a }
}

// WithAlgorithm sets the root of the algorithm graph Diff dispatches into.
func WithAlgorithm(a *Algorithm) Option {
	return func(c *Config) { c.Algorithm = a }
}

// WithMaxRecursionDepth overrides the recursion budget (zero means the
// default of 1024).
func WithMaxRecursionDepth(n int) Option {
	return func(c *Config) { c.MaxRecursionDepth = n }
}

// NewConfig builds a Config from the given options. Atomizer has no usable
// zero value: Diff reports ErrInvalidConfig if it is left nil. A nil
// Algorithm makes Diff run None.
func NewConfig(opts ...Option) Config {
	var c Config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c Config) recursionDepth() int {
	if c.MaxRecursionDepth == 0 {
		return defaultMaxRecursionDepth
	}
	return c.MaxRecursionDepth
}
