package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand_Version(t *testing.T) {
	saved := version
	version = "1.2.3"
	defer func() { version = saved }()

	out, _, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "print-files")
	assert.Contains(t, out, "1.2.3")
}

func TestRootCommand_Help(t *testing.T) {
	out, _, err := execute(t, "--help")
	require.NoError(t, err)

	for _, expected := range []string{"Usage:", "--output", "--match-mode", "--config", "--no-trace"} {
		assert.Contains(t, out, expected)
	}
}

func TestRootCommand_Run(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("A"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.py"), []byte("B"), 0o644))
	output := filepath.Join(t.TempDir(), "out.txt")

	stdout, _, err := execute(t, root, "-o", output)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, root+"/a.txt\nA\n\n", string(data))
	assert.Equal(t, root+"/a.txt\n", stdout)
}

func TestRootCommand_ConfigFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("A"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.md"), []byte("B"), 0o644))
	output := filepath.Join(t.TempDir(), "out.txt")

	cfgFile := filepath.Join(t.TempDir(), "print-files.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("exclude: [\"*.md\"]\ntrace: false\noutput: ignored.txt\n"), 0o644))

	stdout, _, err := execute(t, "--config", cfgFile, "-o", output, root)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, root+"/a.txt\nA\n\n", string(data))
}

func TestRootCommand_Errors(t *testing.T) {
	t.Run("invalid match mode", func(t *testing.T) {
		_, _, err := execute(t, "--match-mode", "regex", t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "match mode")
	})

	t.Run("run failure is logged", func(t *testing.T) {
		output := filepath.Join(t.TempDir(), "missing", "out.txt")
		_, stderr, err := execute(t, t.TempDir(), "-o", output)
		assert.True(t, errors.Is(err, errReported))
		assert.Contains(t, stderr, "ERROR")
		assert.Contains(t, stderr, "failed to create output file")
	})

	t.Run("run failure is reported with logging off", func(t *testing.T) {
		output := filepath.Join(t.TempDir(), "missing", "out.txt")
		_, stderr, err := execute(t, t.TempDir(), "-o", output, "--log-level", "none")
		assert.True(t, errors.Is(err, errReported))
		assert.Contains(t, stderr, "ERROR: app: failed to create output file")
	})
}
