// Package glob expands the wildcard patterns given on the command line.
//
// Expansion keeps paths exactly as they are joined (so "./*.go" yields
// "./main.go"), matches each path component with fnmatch rules, and lets a
// wildcard component match a leading '.' only when the pattern component
// itself starts with '.'.
package glob

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bethropolis/print-files/internal/utils"
	"github.com/danwakefield/fnmatch"
)

const sep = string(filepath.Separator)

// Expand expands every pattern in order and concatenates the results.
// Duplicates are kept.
func Expand(patterns []string) []string {
	var files []string
	for _, pattern := range patterns {
		files = append(files, Glob(pattern)...)
	}
	return files
}

// Glob returns the existing paths matching pattern, sorted by name within
// each directory. A pattern without wildcards yields itself if it exists.
// Patterns that match nothing, or cannot be matched, yield nil.
func Glob(pattern string) []string {
	return glob(pattern, false)
}

// HasMagic reports whether s contains wildcard characters.
func HasMagic(s string) bool {
	return strings.ContainsAny(s, "*?[")
}

func glob(pattern string, dirOnly bool) []string {
	dir, base := split(pattern)

	if !HasMagic(pattern) {
		if base != "" {
			if lexists(pattern) {
				return []string{pattern}
			}
		} else if isDir(dir) {
			return []string{pattern}
		}
		return nil
	}

	if dir == "" {
		return matchNames(".", base, dirOnly)
	}

	dirs := []string{dir}
	if dir != pattern && HasMagic(dir) {
		dirs = glob(dir, true)
	}

	var matches []string
	for _, d := range dirs {
		var names []string
		if HasMagic(base) {
			names = matchNames(d, base, dirOnly)
		} else {
			names = literalName(d, base)
		}
		for _, name := range names {
			matches = append(matches, utils.JoinPath(d, name))
		}
	}
	return matches
}

// matchNames lists dir and returns the entry names matching pattern.
func matchNames(dir, pattern string, dirOnly bool) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if isHidden(name) && !isHidden(pattern) {
			continue
		}
		if dirOnly && !entryIsDir(dir, entry) {
			continue
		}
		if fnmatch.Match(pattern, name, fnmatch.FNM_NOESCAPE) {
			names = append(names, name)
		}
	}
	return names
}

func literalName(dir, base string) []string {
	if base == "" {
		if isDir(dir) {
			return []string{base}
		}
		return nil
	}
	if lexists(utils.JoinPath(dir, base)) {
		return []string{base}
	}
	return nil
}

// split splits after the last separator and trims trailing separators from
// the head unless the head is only separators ("/").
func split(p string) (dir, base string) {
	i := strings.LastIndex(p, sep) + 1
	dir, base = p[:i], p[i:]
	if trimmed := strings.TrimRight(dir, sep); trimmed != "" {
		dir = trimmed
	}
	return dir, base
}

func entryIsDir(dir string, entry os.DirEntry) bool {
	if entry.Type()&os.ModeSymlink != 0 {
		return isDir(utils.JoinPath(dir, entry.Name()))
	}
	return entry.IsDir()
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

func lexists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
