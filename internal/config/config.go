// Package config holds the command-line and config-file settings of a run.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/bethropolis/print-files/internal/ignore"
	"github.com/bethropolis/print-files/internal/logger"
)

// Config holds all application configuration settings
type Config struct {
	// Input settings
	RootDir    string
	Patterns   []string // wildcard patterns, expanded before the walk
	IgnoreFile string
	Exclude    []string // extra ignore patterns from the config file
	MatchMode  string

	// Output settings
	OutputFile  string
	ConfigFile  string
	NoTrace     bool
	ShowSkipped bool

	// Logging settings
	Verbose   bool
	Quiet     bool
	LogLevel  string
	NoColor     bool
	UseColors   bool // logs and reports on stderr
	TraceColors bool // path trace on stdout

	Version string
}

// fileConfig is the YAML shape of a config file. Pointer fields tell an
// absent key from a zero value.
type fileConfig struct {
	Output      *string  `yaml:"output"`
	IgnoreFile  *string  `yaml:"ignore_file"`
	Exclude     []string `yaml:"exclude"`
	MatchMode   *string  `yaml:"match_mode"`
	LogLevel    *string  `yaml:"log_level"`
	Trace       *bool    `yaml:"trace"`
	ShowSkipped *bool    `yaml:"show_skipped"`
}

// New returns a Config holding the defaults
func New() *Config {
	return &Config{
		RootDir:    ".",
		OutputFile: "output.txt",
		IgnoreFile: ignore.DefaultIgnoreFile,
		MatchMode:  string(ignore.ModeFnmatch),
		Version:    "dev",
	}
}

// BindFlags registers the command-line flags on fs
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.OutputFile, "output", "o", c.OutputFile, "Output file (created or truncated)")
	fs.StringVarP(&c.ConfigFile, "config", "c", "", "YAML config file")
	fs.BoolVarP(&c.Verbose, "verbose", "v", false, "Enable verbose logging (DEBUG)")
	fs.BoolVarP(&c.Quiet, "quiet", "q", false, "Only log warnings and errors, and do not print the path trace")
	fs.StringVar(&c.LogLevel, "log-level", "", "Set the logging level (debug, info, warn, error, none)")
	fs.BoolVar(&c.NoColor, "no-color", false, "Disable color output")
	fs.BoolVar(&c.NoTrace, "no-trace", false, "Do not print each included path to stdout")
	fs.BoolVar(&c.ShowSkipped, "show-skipped", false, "Show a list of skipped files/directories and reasons at the end")
	fs.StringVar(&c.MatchMode, "match-mode", c.MatchMode, "How ignore patterns match paths (fnmatch, gitignore)")
}

// SetArgs takes the positional arguments: an optional root directory
// followed by wildcard patterns.
func (c *Config) SetArgs(args []string) {
	if len(args) == 0 {
		return
	}
	c.RootDir = args[0]
	c.Patterns = append([]string(nil), args[1:]...)
}

// LoadFile merges the YAML file at path into c. Keys whose flag was set
// explicitly on fs are left alone.
func (c *Config) LoadFile(path string, fs *pflag.FlagSet) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: failed to open '%s': %w", path, err)
	}
	defer f.Close()

	var fc fileConfig
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: failed to parse '%s': %w", path, err)
	}

	changed := func(name string) bool {
		return fs != nil && fs.Changed(name)
	}

	if fc.Output != nil && !changed("output") {
		c.OutputFile = *fc.Output
	}
	if fc.IgnoreFile != nil {
		c.IgnoreFile = *fc.IgnoreFile
	}
	c.Exclude = append(c.Exclude, fc.Exclude...)
	if fc.MatchMode != nil && !changed("match-mode") {
		c.MatchMode = *fc.MatchMode
	}
	if fc.LogLevel != nil && !changed("log-level") {
		c.LogLevel = *fc.LogLevel
	}
	if fc.Trace != nil && !changed("no-trace") {
		c.NoTrace = !*fc.Trace
	}
	if fc.ShowSkipped != nil && !changed("show-skipped") {
		c.ShowSkipped = *fc.ShowSkipped
	}
	return nil
}

// Validate rejects settings that would fail later in the run
func (c *Config) Validate() error {
	if c.OutputFile == "" {
		return errors.New("config: output file must not be empty")
	}
	if _, err := ignore.ParseMode(c.MatchMode); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if !logger.ValidLevel(c.LogLevel) {
		return fmt.Errorf("config: unknown log level %q", c.LogLevel)
	}
	return nil
}

// ResolveColors decides whether colored output is used on each stream,
// given the file descriptors of stderr (logs) and stdout (trace).
func (c *Config) ResolveColors(stderrFd, stdoutFd uintptr) {
	c.UseColors = !c.NoColor && isTerminal(stderrFd)
	c.TraceColors = !c.NoColor && isTerminal(stdoutFd)
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// TraceEnabled reports whether included paths are printed to stdout.
func (c *Config) TraceEnabled() bool {
	return !c.NoTrace && !c.Quiet
}
