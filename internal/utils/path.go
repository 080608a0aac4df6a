package utils

import (
	"path/filepath"
	"strings"
)

// JoinPath appends name to dir with a single separator and no cleaning, so
// JoinPath(".", "a") is "./a" rather than "a".
func JoinPath(dir, name string) string {
	sep := string(filepath.Separator)
	if dir == "" || strings.HasSuffix(dir, sep) || strings.HasSuffix(dir, "/") {
		return dir + name
	}
	return dir + sep + name
}
