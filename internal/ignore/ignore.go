package ignore

// NewFromConfig creates an IgnoreMatcher from a Config struct
func NewFromConfig(cfg Config) (*IgnoreMatcher, error) {
	options := []Option{
		WithPatterns(cfg.Patterns...),
		WithMode(cfg.Mode),
	}

	if cfg.Logger != nil {
		options = append(options, WithLogger(cfg.Logger))
	}
	if cfg.Trace != nil {
		options = append(options, WithTrace(cfg.Trace))
	}

	return New(cfg.RootDir, options...)
}

// IsIgnored is a nil-safe shorthand for matcher.ShouldIgnore.
func IsIgnored(matcher *IgnoreMatcher, path string, isDir bool) bool {
	if matcher == nil {
		return false
	}
	return matcher.ShouldIgnore(path, isDir)
}
