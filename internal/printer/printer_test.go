package printer

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintFile(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	require.NoError(t, p.PrintFile("./a.txt", "hello"))
	require.NoError(t, p.PrintFile("./empty.txt", ""))
	require.NoError(t, p.PrintFile("./nl.txt", "line\n"))

	assert.Equal(t, "./a.txt\nhello\n\n./empty.txt\n\n\n./nl.txt\nline\n\n\n", buf.String())
	assert.EqualValues(t, 3, p.GetCount())
	assert.EqualValues(t, buf.Len(), p.GetBytes())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("no space left on device") }

func TestPrintFile_WriteError(t *testing.T) {
	p := New(failingWriter{})

	err := p.PrintFile("x", "y")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "printer: failed to write entry for 'x'")
	assert.Zero(t, p.GetCount())
}

func TestTrace(t *testing.T) {
	saved := color.NoColor
	defer func() { color.NoColor = saved }()

	tests := []struct {
		name        string
		globalNo    bool
		useColors   bool
		wantEscapes bool
	}{
		{name: "plain when colors are off", globalNo: true, useColors: false},
		{name: "plain even if stderr enabled colors", globalNo: false, useColors: false},
		{name: "colored on a terminal", globalNo: true, useColors: true, wantEscapes: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			color.NoColor = tt.globalNo

			var buf bytes.Buffer
			trace := Trace(&buf, tt.useColors)
			trace("./a.txt")
			trace("./src")

			if tt.wantEscapes {
				assert.Contains(t, buf.String(), "\x1b[36m./a.txt\x1b[0m")
				return
			}
			assert.Equal(t, "./a.txt\n./src\n", buf.String())
		})
	}
}
