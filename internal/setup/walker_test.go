package setup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/print-files/internal/ignore"
	"github.com/bethropolis/print-files/internal/walker"
)

func discard(string, ...interface{}) {}

func TestConfigureWalker_PatternOrder(t *testing.T) {
	dir := t.TempDir()
	ignoreFile := filepath.Join(dir, ".gitignore")
	require.NoError(t, os.WriteFile(ignoreFile, []byte("# secrets\nsecret.txt\n\nbuild\n"), 0o644))

	matcher, opts, err := ConfigureWalker(WalkerConfig{
		RootDir:    dir,
		IgnoreFile: ignoreFile,
		Exclude:    []string{"*.log"},
	}, discard)
	require.NoError(t, err)
	assert.Len(t, opts, 2)

	want := append([]string{"secret.txt", "build"}, ignore.BuiltinPatterns...)
	want = append(want, "*.log")
	assert.Equal(t, want, matcher.Patterns())
	assert.Equal(t, ignore.ModeFnmatch, matcher.Mode())

	assert.True(t, matcher.ShouldIgnore(filepath.Join(dir, "secret.txt"), false))
	assert.True(t, matcher.ShouldIgnore(filepath.Join(dir, "app.log"), false))
	assert.False(t, matcher.ShouldIgnore(filepath.Join(dir, "main.go"), false))
}

func TestConfigureWalker_MissingIgnoreFile(t *testing.T) {
	dir := t.TempDir()

	matcher, _, err := ConfigureWalker(WalkerConfig{
		RootDir:    dir,
		IgnoreFile: filepath.Join(dir, ".gitignore"),
	}, discard)
	require.NoError(t, err)
	assert.Equal(t, ignore.BuiltinPatterns, matcher.Patterns())
}

func TestConfigureWalker_Errors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := ConfigureWalker(WalkerConfig{RootDir: dir, IgnoreFile: dir}, discard)
	assert.Error(t, err, "an ignore file that is a directory cannot be read")

	_, _, err = ConfigureWalker(WalkerConfig{RootDir: dir, MatchMode: "regex"}, discard)
	assert.Error(t, err)
}

func TestConfigureWalker_SkipsOutputAndTraces(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "output.txt")
	require.NoError(t, os.WriteFile(output, []byte("previous run"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0o644))

	var traced []string
	tracker := walker.NewSkippedTracker(4)
	matcher, opts, err := ConfigureWalker(WalkerConfig{
		RootDir:    dir,
		IgnoreFile: filepath.Join(dir, "none"),
		OutputFile: output,
		MatchMode:  "gitignore",
		Trace:      func(path string) { traced = append(traced, path) },
		Tracker:    tracker,
	}, discard)
	require.NoError(t, err)

	var written []string
	_, err = walker.Walk(dir, matcher, func(path, _ string, _ walker.Encoding) error {
		written = append(written, path)
		return nil
	}, opts...)
	require.NoError(t, err)

	assert.Equal(t, []string{dir + "/a.txt"}, written)
	assert.Equal(t, []string{dir + "/a.txt"}, traced, "the output file is never reported as included")
	assert.Equal(t, 1, tracker.Count(walker.ReasonSkippedOutputFile))
}
