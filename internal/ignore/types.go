// Package ignore decides which paths are left out of the concatenated output
package ignore

import (
	"fmt"
	"strings"

	"github.com/bethropolis/print-files/internal/utils"
	gitignore "github.com/denormal/go-gitignore"
)

// MatchMode selects how patterns are interpreted.
type MatchMode string

const (
	// ModeFnmatch excludes a path when it matches a pattern, or "*/"+pattern,
	// with shell wildcard semantics where '*' also crosses '/'.
	ModeFnmatch MatchMode = "fnmatch"
	// ModeGitignore compiles the same pattern list with full .gitignore
	// semantics and matches paths relative to the traversal root.
	ModeGitignore MatchMode = "gitignore"
)

// ParseMode converts a mode name. The empty string means ModeFnmatch.
func ParseMode(s string) (MatchMode, error) {
	switch MatchMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeFnmatch:
		return ModeFnmatch, nil
	case ModeGitignore:
		return ModeGitignore, nil
	default:
		return "", fmt.Errorf("ignore: unknown match mode %q (want %q or %q)", s, ModeFnmatch, ModeGitignore)
	}
}

// IgnoreMatcher determines whether a file or directory should be ignored
type IgnoreMatcher struct {
	// compiled form of patterns, only set in ModeGitignore
	repoIgnore gitignore.GitIgnore

	rootDir  string // absolute traversal root
	patterns []string
	mode     MatchMode
	logger   utils.Logger
	trace    utils.TraceFunc
}

// Config holds configuration options for the ignore matcher
type Config struct {
	RootDir  string
	Patterns []string
	Mode     MatchMode
	Logger   utils.Logger
	Trace    utils.TraceFunc
}
