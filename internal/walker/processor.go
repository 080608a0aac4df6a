package walker

import (
	"fmt"
	"os"
)

// processFile reads path and hands its text to walkFn. Unusable entries are
// skipped; failing to stat or read a regular file is fatal for the run.
func (w *walker) processFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("walker: failed to stat '%s': %w", path, err)
	}

	if info.IsDir() {
		w.options.Logger.Warn("Skipping '%s': is a directory", path)
		w.tracker.Track(path, ReasonSkippedDirectory, true)
		return nil
	}
	if !info.Mode().IsRegular() {
		w.options.Logger.Warn("Skipping '%s': not a regular file (%s)", path, info.Mode().Type())
		w.tracker.Track(path, ReasonSkippedNotRegular, false)
		return nil
	}

	content, enc, err := ReadText(path)
	if err != nil {
		return fmt.Errorf("walker: failed to read '%s': %w", path, err)
	}
	if enc != EncodingUTF8 {
		w.options.Logger.Debug("processFile [%s]: not valid UTF-8, decoded as %s", path, enc)
	}

	if err := w.walkFn(path, content, enc); err != nil {
		return fmt.Errorf("walker: '%s': %w", path, err)
	}
	return nil
}

// isSkipFile reports, and records, whether path is one of the skip files.
// It runs before the ignore filter so skip files never reach the trace.
func (w *walker) isSkipFile(path string) bool {
	if len(w.skipInfo) == 0 {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	for _, skip := range w.skipInfo {
		if os.SameFile(info, skip) {
			w.options.Logger.Debug("walker: Skipping [%s]: output file", path)
			w.tracker.Track(path, ReasonSkippedOutputFile, false)
			return true
		}
	}
	return false
}
