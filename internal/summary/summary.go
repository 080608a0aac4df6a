// Package summary handles display of scan results and statistics
package summary

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/fatih/color"

	"github.com/bethropolis/print-files/internal/walker"
)

// Logger defines the minimal logging interface required
type Logger interface {
	Info(format string, args ...interface{})
}

// Stats counts what a run did
type Stats struct {
	Files        int64 // entries written
	Bytes        int64
	Latin1       int // files decoded with the Latin-1 fallback
	PrunedDirs   int
	IgnoredFiles int
}

// Tally adds the skipped items ignored by a pattern to the stats.
func (s *Stats) Tally(items []walker.SkippedItem) {
	for _, item := range items {
		if item.Reason != walker.ReasonIgnoredRule {
			continue
		}
		if item.IsDir {
			s.PrunedDirs++
		} else {
			s.IgnoredFiles++
		}
	}
}

// DisplayResults shows the end results of a run
func DisplayResults(
	logger Logger,
	output string,
	stats Stats,
	duration time.Duration,
	quiet bool,
) {
	if quiet {
		return
	}
	logger.Info("Wrote %d files (%d bytes) to %s.", stats.Files, stats.Bytes, output)
	logger.Info("Ignored %d files and pruned %d directories.", stats.IgnoredFiles, stats.PrunedDirs)
	if stats.Latin1 > 0 {
		logger.Info("%d files were not valid UTF-8 and were read as Latin-1.", stats.Latin1)
	}
	logger.Info("Run complete in %v.", duration.Round(time.Millisecond))
}

// DisplaySkippedItems formats and prints information about skipped items
func DisplaySkippedItems(
	logger Logger,
	skippedItems []walker.SkippedItem,
	output io.Writer,
	quiet bool,
) {
	infoLog := func(format string, args ...interface{}) {
		if !quiet {
			logger.Info(format, args...)
		}
	}

	infoLog("--- Skipped Items (%d) ---", len(skippedItems))
	if len(skippedItems) > 0 {
		// Sort for consistent output
		sort.SliceStable(skippedItems, func(i, j int) bool {
			return skippedItems[i].Path < skippedItems[j].Path
		})
		reasonColor := color.New(color.FgYellow)
		for _, item := range skippedItems {
			typeStr := "FILE"
			if item.IsDir {
				typeStr = "DIR " // Add space for alignment
			}
			fmt.Fprintf(output, "Skipped %s: %-50s [%s]\n",
				typeStr,
				item.Path,
				reasonColor.Sprint(item.Reason),
			)
		}
	} else {
		infoLog("No items were skipped.")
	}
	infoLog("--- End Skipped Items ---")
}
