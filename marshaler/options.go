package marshaler

import "go.uber.org/zap"

// DefaultMaxDepth bounds how many lists, maps and objects may nest during
// encoding and decoding. Pointers and leaves do not count.
const DefaultMaxDepth = 64

// Option configures a Marshaler.
type Option func(*Marshaler)

// WithRegistry sets the registry conversions are resolved from.
func WithRegistry(r *Registry) Option {
	return func(m *Marshaler) {
		m.registry = r
	}
}

// WithCompiler shares a field descriptor cache between marshalers.
func WithCompiler(c *Compiler) Option {
	return func(m *Marshaler) {
		m.compiler = c
	}
}

// WithMaxDepth sets the maximum nesting depth. Values below 1 are ignored.
func WithMaxDepth(n int) Option {
	return func(m *Marshaler) {
		if n > 0 {
			m.maxDepth = n
		}
	}
}

// WithLogger sets the logger used by the marshaler.
func WithLogger(l *zap.Logger) Option {
	return func(m *Marshaler) {
		m.logger = l
	}
}
