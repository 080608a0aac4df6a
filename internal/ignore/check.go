package ignore

import (
	"path/filepath"
	"strings"

	"github.com/danwakefield/fnmatch"
)

// fnmatchFlags gives shell-style matching where '*' crosses '/', a leading
// '.' needs no explicit match and backslash is an ordinary character.
const fnmatchFlags = fnmatch.FNM_NOESCAPE

// ShouldIgnore checks if a file or directory should be ignored. path is used
// exactly as the walker built it (e.g. "./src/main.go"). Paths that are not
// ignored are passed to the trace hook.
func (m *IgnoreMatcher) ShouldIgnore(path string, isDir bool) bool {
	if m == nil {
		return false
	}

	var ignored bool
	if m.mode == ModeGitignore {
		ignored = m.gitignoreMatch(path, isDir)
	} else {
		ignored = m.fnmatchMatch(path)
	}

	if ignored {
		return true
	}
	m.logger.Debug("ignore.ShouldIgnore: %q not ignored", path)
	if m.trace != nil {
		m.trace(path)
	}
	return false
}

// fnmatchMatch reports whether path matches some pattern directly or as
// "*/"+pattern.
func (m *IgnoreMatcher) fnmatchMatch(path string) bool {
	unixPath := filepath.ToSlash(path)
	for _, pattern := range m.patterns {
		if fnmatch.Match(pattern, unixPath, fnmatchFlags) || fnmatch.Match("*/"+pattern, unixPath, fnmatchFlags) {
			m.logger.Debug("ignore.ShouldIgnore: %q ignored by pattern %q", path, pattern)
			return true
		}
	}
	return false
}

// gitignoreMatch matches path relative to the root. A path is ignored when
// it, or any directory above it, is ignored by the last matching pattern.
// Paths outside the root fall back to fnmatch matching.
func (m *IgnoreMatcher) gitignoreMatch(path string, isDir bool) bool {
	rel, ok := m.relative(path)
	if !ok {
		m.logger.Debug("ignore.ShouldIgnore: %q is outside %s, using fnmatch rules", path, m.rootDir)
		return m.fnmatchMatch(path)
	}
	if rel == "." {
		return false
	}

	parts := strings.Split(rel, "/")
	for i := 1; i < len(parts); i++ {
		parent := strings.Join(parts[:i], "/")
		if match := m.repoIgnore.Relative(parent, true); match != nil && match.Ignore() {
			m.logger.Debug("ignore.ShouldIgnore: %q ignored with parent %q by pattern %q", path, parent, match.String())
			return true
		}
	}

	if match := m.repoIgnore.Relative(rel, isDir); match != nil {
		if match.Ignore() {
			m.logger.Debug("ignore.ShouldIgnore: %q ignored by pattern %q", path, match.String())
			return true
		}
		m.logger.Debug("ignore.ShouldIgnore: %q re-included by pattern %q", path, match.String())
	}
	return false
}

// relative returns path relative to the root in slash form.
func (m *IgnoreMatcher) relative(path string) (string, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}
	rel, err := filepath.Rel(m.rootDir, abs)
	if err != nil {
		return "", false
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", false
	}
	return rel, true
}
