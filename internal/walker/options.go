package walker

import (
	"github.com/bethropolis/print-files/internal/utils"
)

// WalkOptions configures the behavior of the Walk function
type WalkOptions struct {
	Logger    utils.Logger
	Tracker   *SkippedTracker
	SkipFiles []string // files never written, e.g. the output file itself
}

// defaultOptions returns the default walk options
func defaultOptions() WalkOptions {
	return WalkOptions{
		Logger: utils.NoopLogger{},
	}
}

// Option is a functional option for configuring WalkOptions
type Option func(*WalkOptions)

// WithLogger sets a custom logger for the walker
func WithLogger(logger utils.Logger) Option {
	return func(opts *WalkOptions) {
		if logger != nil {
			opts.Logger = logger
		}
	}
}

// WithTracker records skipped items into tracker instead of a fresh one, so
// several passes can share one report.
func WithTracker(tracker *SkippedTracker) Option {
	return func(opts *WalkOptions) {
		opts.Tracker = tracker
	}
}

// WithSkipFiles excludes the given files (compared by identity, not by
// name) from the walk.
func WithSkipFiles(paths ...string) Option {
	return func(opts *WalkOptions) {
		opts.SkipFiles = append(opts.SkipFiles, paths...)
	}
}
