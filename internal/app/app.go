// Package app ties configuration, filtering, traversal and output together.
package app

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/bethropolis/print-files/internal/config"
	"github.com/bethropolis/print-files/internal/glob"
	"github.com/bethropolis/print-files/internal/logger"
	"github.com/bethropolis/print-files/internal/printer"
	"github.com/bethropolis/print-files/internal/setup"
	"github.com/bethropolis/print-files/internal/summary"
	"github.com/bethropolis/print-files/internal/utils"
	"github.com/bethropolis/print-files/internal/walker"
)

// App encapsulates the main application functionality
type App struct {
	cfg    *config.Config
	log    *logger.Logger
	stdout io.Writer // path trace
	stderr io.Writer // logs and the skipped-items report
	stats  summary.Stats
}

// New creates a new App instance. Logs go to stderr, the path trace to
// stdout.
func New(cfg *config.Config, stdout, stderr io.Writer) *App {
	// Configure color globally
	color.NoColor = !cfg.UseColors

	log := logger.New(stderr, cfg.Verbose, cfg.UseColors)

	// Apply log level if specified (overrides verbose/quiet flags)
	if cfg.LogLevel != "" {
		log.SetLevel(cfg.LogLevel)
	} else if cfg.Quiet {
		log.WithLevel(logger.LevelWarn)
	}

	return &App{
		cfg:    cfg,
		log:    log,
		stdout: stdout,
		stderr: stderr,
	}
}

// Logger returns the application logger
func (a *App) Logger() *logger.Logger {
	return a.log
}

// Stats returns the counters of the last Run
func (a *App) Stats() summary.Stats {
	return a.stats
}

// Run writes every wildcard file, then every file under the root directory
// that no ignore pattern excludes, into the output file. The output file is
// flushed and closed on every path; on error whatever was written stays.
func (a *App) Run() (err error) {
	startTime := time.Now()
	a.stats = summary.Stats{}

	// Helper for info messages, suppressed by quiet flag
	infoLog := func(format string, args ...interface{}) {
		if !a.cfg.Quiet {
			a.log.Info(format, args...)
		}
	}

	if a.log.VerboseMode {
		a.log.Debug("Verbose mode enabled")
		a.log.Debug("Color output: %v (trace: %v)", a.cfg.UseColors, a.cfg.TraceColors)
		a.log.Debug("Directory: %s", a.cfg.RootDir)
		a.log.Debug("Wildcard patterns: %v", a.cfg.Patterns)
		a.log.Debug("Output file: %s", a.cfg.OutputFile)
		a.log.Debug("Ignore file: %s (match mode %s)", a.cfg.IgnoreFile, a.cfg.MatchMode)
	}

	wildcardFiles := glob.Expand(a.cfg.Patterns)
	if len(a.cfg.Patterns) > 0 {
		a.log.Debug("Wildcard patterns expanded to %d files", len(wildcardFiles))
	}

	var trace utils.TraceFunc
	if a.cfg.TraceEnabled() {
		trace = printer.Trace(a.stdout, a.cfg.TraceColors)
	}
	tracker := walker.NewSkippedTracker(64)

	matcher, walkOptions, err := setup.ConfigureWalker(setup.WalkerConfig{
		RootDir:    a.cfg.RootDir,
		IgnoreFile: a.cfg.IgnoreFile,
		Exclude:    a.cfg.Exclude,
		MatchMode:  a.cfg.MatchMode,
		OutputFile: a.cfg.OutputFile,
		Trace:      trace,
		Tracker:    tracker,
		Logger:     a.log,
	}, infoLog)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}

	// --- Open the output file ---
	file, err := os.Create(a.cfg.OutputFile)
	if err != nil {
		return fmt.Errorf("app: failed to create output file: %w", err)
	}
	out := bufio.NewWriter(file)
	defer func() {
		if flushErr := out.Flush(); flushErr != nil && err == nil {
			err = fmt.Errorf("app: failed to flush output file '%s': %w", a.cfg.OutputFile, flushErr)
		}
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("app: failed to close output file '%s': %w", a.cfg.OutputFile, closeErr)
		}
	}()

	p := printer.New(out)
	printFunc := func(path string, content string, enc walker.Encoding) error {
		if enc == walker.EncodingLatin1 {
			a.stats.Latin1++
		}
		a.log.Debug("Writing %s (%d bytes, %s)", path, len(content), enc)
		return p.PrintFile(path, content)
	}

	// --- Wildcard files first ---
	if len(wildcardFiles) > 0 {
		infoLog("Writing %d files matched by wildcard patterns.", len(wildcardFiles))
		if _, err := walker.Files(wildcardFiles, matcher, printFunc, walkOptions...); err != nil {
			return fmt.Errorf("app: %w", err)
		}
	}

	// --- Start the directory walk ---
	infoLog("Scanning directory: %s", a.cfg.RootDir)
	skippedItems, err := walker.Walk(a.cfg.RootDir, matcher, printFunc, walkOptions...)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}

	// --- Show results summary ---
	a.stats.Files = p.GetCount()
	a.stats.Bytes = p.GetBytes()
	a.stats.Tally(skippedItems)
	summary.DisplayResults(a.log, a.cfg.OutputFile, a.stats, time.Since(startTime), a.cfg.Quiet)

	if a.cfg.ShowSkipped {
		summary.DisplaySkippedItems(a.log, skippedItems, a.stderr, a.cfg.Quiet)
	}
	return nil
}
