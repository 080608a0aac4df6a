package ignore

import "github.com/bethropolis/print-files/internal/utils"

// Option functions for configuration
type Option func(*IgnoreMatcher)

// WithPatterns appends patterns to the matcher, keeping their order.
func WithPatterns(patterns ...string) Option {
	return func(m *IgnoreMatcher) {
		m.patterns = append(m.patterns, patterns...)
	}
}

func WithMode(mode MatchMode) Option {
	return func(m *IgnoreMatcher) {
		if mode != "" {
			m.mode = mode
		}
	}
}

func WithLogger(logger utils.Logger) Option {
	return func(m *IgnoreMatcher) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithTrace registers a hook called with every path ShouldIgnore lets through.
func WithTrace(fn utils.TraceFunc) Option {
	return func(m *IgnoreMatcher) {
		m.trace = fn
	}
}
