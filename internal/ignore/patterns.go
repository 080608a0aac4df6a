package ignore

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// DefaultIgnoreFile is read from the current working directory, not from
// the traversal root.
const DefaultIgnoreFile = ".gitignore"

// BuiltinPatterns are always applied after the ignore file's patterns.
var BuiltinPatterns = []string{
	".git",
	".gitignore",
	"*.py",
	"*.lock",
	"*.lockb",
	"*.png",
	"*.jpg",
	"*.jpeg",
	"*.ico",
	"*.gif",
	"*.svg",
	"*.pdf",
	"*.doc",
	"*.docx",
	"*.sqlite*",
	"*.ppt",
	"*.pptx",
	"*-lock.json",
	".devcontainer",
	".vscode",
	"node_modules",
	"prisma/migrations",
	".next",
}

// Builtin returns a copy of BuiltinPatterns.
func Builtin() []string {
	return append([]string(nil), BuiltinPatterns...)
}

// LoadFile reads patterns from an ignore file. A missing file yields no
// patterns and no error.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("ignore: failed to open ignore file '%s': %w", path, err)
	}
	defer f.Close()

	patterns, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("ignore: failed to read ignore file '%s': %w", path, err)
	}
	return patterns, nil
}

// Parse returns the trimmed, non-blank, non-comment lines of r in order.
// Patterns are not validated.
func Parse(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(scanLines)

	var patterns []string
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, "\uFEFF")
			first = false
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	return patterns, scanner.Err()
}

// scanLines is bufio.ScanLines that also accepts a lone '\r' as a line end.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		// '\r': need one more byte to know whether it is "\r\n"
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
