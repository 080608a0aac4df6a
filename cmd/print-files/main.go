// Package main provides the entry point for the print-files CLI.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bethropolis/print-files/internal/app"
	"github.com/bethropolis/print-files/internal/config"
	"github.com/bethropolis/print-files/internal/logger"
)

// Build info set via ldflags, e.g. -ldflags "-X main.version=1.0.0"
var version = "dev"

// errReported marks an error already logged by the application logger.
var errReported = errors.New("run failed")

func main() {
	os.Exit(run())
}

func run() int {
	cmd := newRootCmd(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		}
		return 1
	}
	return 0
}

// newRootCmd creates the root command. The path trace goes to stdout, logs
// to stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cfg := config.New()
	cfg.Version = version

	cmd := &cobra.Command{
		Use:   "print-files [root_directory] [wildcard_pattern ...]",
		Short: "Concatenate the files of a directory tree into one text file",
		Long: `print-files walks root_directory (default ".") and writes every file that
is not excluded by .gitignore or the built-in exclusions to the output file,
each as its path, its content and a blank line.

Files matched by the wildcard patterns are written first, in argument order.`,
		Args:          cobra.ArbitraryArgs,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.SetArgs(args)
			if cfg.ConfigFile != "" {
				if err := cfg.LoadFile(cfg.ConfigFile, cmd.Flags()); err != nil {
					return err
				}
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			cfg.ResolveColors(fdOf(stderr), fdOf(stdout))

			a := app.New(cfg, stdout, stderr)
			defer syncLogger(a.Logger(), stderr)

			if err := a.Run(); err != nil {
				if a.Logger().Level() == logger.LevelNone {
					fmt.Fprintf(stderr, "ERROR: %v\n", err)
				} else {
					a.Logger().Error("%v", err)
				}
				return errReported
			}
			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cfg.BindFlags(cmd.Flags())

	return cmd
}

// syncLogger flushes the logger when stderr can be synced: a terminal or a
// regular file. Pipes report EINVAL on sync.
func syncLogger(log *logger.Logger, stderr io.Writer) {
	f, ok := stderr.(*os.File)
	if !ok {
		return
	}
	if term.IsTerminal(int(f.Fd())) || isRegularFile(f) {
		if err := log.Sync(); err != nil && !strings.Contains(strings.ToLower(err.Error()), "invalid argument") {
			fmt.Fprintf(stderr, "Logger sync failed: %v\n", err)
		}
	}
}

// fdOf returns the descriptor behind w, or an invalid one when w is not a
// file, which no terminal check accepts.
func fdOf(w io.Writer) uintptr {
	if f, ok := w.(*os.File); ok {
		return f.Fd()
	}
	return ^uintptr(0)
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
