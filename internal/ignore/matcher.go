package ignore

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bethropolis/print-files/internal/utils"
	gitignore "github.com/denormal/go-gitignore"
)

// New creates and initializes an IgnoreMatcher
func New(rootDir string, opts ...Option) (*IgnoreMatcher, error) {
	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("ignore: failed to get absolute path for rootDir '%s': %w", rootDir, err)
	}

	matcher := &IgnoreMatcher{
		rootDir: absRootDir,
		mode:    ModeFnmatch,
		logger:  utils.NoopLogger{},
	}

	for _, opt := range opts {
		opt(matcher)
	}

	if err := matcher.init(); err != nil {
		return nil, err
	}

	return matcher, nil
}

// init compiles the pattern list for ModeGitignore
func (m *IgnoreMatcher) init() error {
	m.logger.Debug("ignore.New: root=%s mode=%s patterns=%d", m.rootDir, m.mode, len(m.patterns))

	switch m.mode {
	case ModeFnmatch:
		return nil
	case ModeGitignore:
		source := strings.NewReader(strings.Join(m.patterns, "\n"))
		m.repoIgnore = gitignore.New(source, m.rootDir, func(e gitignore.Error) bool {
			m.logger.Warn("ignore.New: Skipping unparsable pattern at %s: %v", e.Position(), e.Underlying())
			return true
		})
		return nil
	default:
		return fmt.Errorf("ignore: unknown match mode %q", m.mode)
	}
}

// Patterns returns a copy of the pattern list in evaluation order.
func (m *IgnoreMatcher) Patterns() []string {
	return append([]string(nil), m.patterns...)
}

// Mode reports how patterns are interpreted.
func (m *IgnoreMatcher) Mode() MatchMode {
	return m.mode
}
