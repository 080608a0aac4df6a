package summary

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/print-files/internal/walker"
)

type recorder struct {
	lines []string
}

func (r *recorder) Info(format string, args ...interface{}) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func noColor(t *testing.T) {
	t.Helper()
	saved := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = saved })
}

func TestStatsTally(t *testing.T) {
	var s Stats
	s.Tally([]walker.SkippedItem{
		{Path: "./node_modules", Reason: walker.ReasonIgnoredRule, IsDir: true},
		{Path: "./a.py", Reason: walker.ReasonIgnoredRule},
		{Path: "./b.lock", Reason: walker.ReasonIgnoredRule},
		{Path: "./output.txt", Reason: walker.ReasonSkippedOutputFile},
	})

	assert.Equal(t, 1, s.PrunedDirs)
	assert.Equal(t, 2, s.IgnoredFiles)
}

func TestDisplayResults(t *testing.T) {
	stats := Stats{Files: 3, Bytes: 42, Latin1: 1, PrunedDirs: 2, IgnoredFiles: 5}

	rec := &recorder{}
	DisplayResults(rec, "output.txt", stats, 1500*time.Millisecond, false)
	require.Len(t, rec.lines, 4)
	assert.Equal(t, "Wrote 3 files (42 bytes) to output.txt.", rec.lines[0])
	assert.Equal(t, "Ignored 5 files and pruned 2 directories.", rec.lines[1])
	assert.Contains(t, rec.lines[2], "Latin-1")

	quiet := &recorder{}
	DisplayResults(quiet, "output.txt", stats, time.Second, true)
	assert.Empty(t, quiet.lines)
}

func TestDisplaySkippedItems(t *testing.T) {
	noColor(t)

	rec := &recorder{}
	var out bytes.Buffer
	DisplaySkippedItems(rec, []walker.SkippedItem{
		{Path: "./z.py", Reason: walker.ReasonIgnoredRule},
		{Path: "./.git", Reason: walker.ReasonIgnoredRule, IsDir: true},
	}, &out, false)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Skipped DIR : ./.git"))
	assert.True(t, strings.HasSuffix(lines[0], "[Ignored (Ignore Pattern)]"))
	assert.True(t, strings.HasPrefix(lines[1], "Skipped FILE: ./z.py"))
	assert.Equal(t, "--- Skipped Items (2) ---", rec.lines[0])
}

func TestDisplaySkippedItems_Empty(t *testing.T) {
	rec := &recorder{}
	var out bytes.Buffer
	DisplaySkippedItems(rec, nil, &out, false)

	assert.Empty(t, out.String())
	assert.Equal(t, []string{"--- Skipped Items (0) ---", "No items were skipped.", "--- End Skipped Items ---"}, rec.lines)
}
