// Package setup provides initialization and configuration functions
package setup

import (
	"fmt"

	"github.com/bethropolis/print-files/internal/ignore"
	"github.com/bethropolis/print-files/internal/utils"
	"github.com/bethropolis/print-files/internal/walker"
)

// InfoLogger wraps the Info method for status updates
type InfoLogger func(format string, args ...interface{})

// WalkerConfig holds all parameters needed to configure a directory walker
type WalkerConfig struct {
	RootDir    string
	IgnoreFile string
	Exclude    []string
	MatchMode  string
	OutputFile string
	Trace      utils.TraceFunc
	Tracker    *walker.SkippedTracker
	Logger     utils.Logger
}

// ConfigureWalker loads the ignore patterns and builds the matcher and the
// walker options shared by the wildcard pass and the directory walk.
//
// Patterns are ordered: ignore file lines, built-in exclusions, then
// cfg.Exclude.
func ConfigureWalker(cfg WalkerConfig, infoLog InfoLogger) (
	*ignore.IgnoreMatcher,
	[]walker.Option,
	error,
) {
	log := cfg.Logger
	if log == nil {
		log = utils.NoopLogger{}
	}

	mode, err := ignore.ParseMode(cfg.MatchMode)
	if err != nil {
		return nil, nil, err
	}

	// --- Load ignore patterns ---
	patterns, err := ignore.LoadFile(cfg.IgnoreFile)
	if err != nil {
		return nil, nil, err
	}
	if len(patterns) > 0 {
		infoLog("Loaded %d ignore patterns from %s", len(patterns), cfg.IgnoreFile)
	} else {
		log.Debug("No patterns loaded from %s", cfg.IgnoreFile)
	}
	patterns = append(patterns, ignore.Builtin()...)
	if len(cfg.Exclude) > 0 {
		infoLog("Using extra exclude patterns: %v", cfg.Exclude)
		patterns = append(patterns, cfg.Exclude...)
	}

	// --- Initialize ignore matcher ---
	matcher, err := ignore.NewFromConfig(ignore.Config{
		RootDir:  cfg.RootDir,
		Patterns: patterns,
		Mode:     mode,
		Logger:   log,
		Trace:    cfg.Trace,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("error initializing ignore rules: %w", err)
	}

	// --- Set up walk options ---
	walkOptions := []walker.Option{
		walker.WithLogger(log),
		walker.WithTracker(cfg.Tracker),
	}
	if cfg.OutputFile != "" {
		walkOptions = append(walkOptions, walker.WithSkipFiles(cfg.OutputFile))
	}

	return matcher, walkOptions, nil
}
