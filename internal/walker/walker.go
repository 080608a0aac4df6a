package walker

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/bethropolis/print-files/internal/ignore"
	"github.com/bethropolis/print-files/internal/utils"
)

type walker struct {
	matcher  *ignore.IgnoreMatcher
	walkFn   WalkFunc
	options  WalkOptions
	tracker  *SkippedTracker
	skipInfo []os.FileInfo
}

type subdir struct {
	path    string
	symlink bool
}

func newWalker(matcher *ignore.IgnoreMatcher, walkFn WalkFunc, opts []Option) *walker {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	tracker := options.Tracker
	if tracker == nil {
		tracker = NewSkippedTracker(64)
	}

	w := &walker{
		matcher: matcher,
		walkFn:  walkFn,
		options: options,
		tracker: tracker,
	}
	for _, path := range options.SkipFiles {
		if info, err := os.Stat(path); err == nil {
			w.skipInfo = append(w.skipInfo, info)
		}
	}
	return w
}

// Walk traverses rootDir top-down. In every directory the subdirectories
// are filtered first (an ignored directory is never entered), then the
// directory's files are handed to walkFn, then the kept subdirectories are
// walked in name order. Paths are built by joining onto rootDir as given.
//
// A rootDir that cannot be listed yields nothing. The first error from
// reading a file or from walkFn stops the walk and is returned.
func Walk(rootDir string, matcher *ignore.IgnoreMatcher, walkFn WalkFunc, opts ...Option) ([]SkippedItem, error) {
	startTime := time.Now()
	w := newWalker(matcher, walkFn, opts)

	w.options.Logger.Debug("walker.Walk started. Root: %s", rootDir)
	err := w.walkDir(rootDir)
	w.options.Logger.Debug("walker.Walk: finished in %s", time.Since(startTime))

	return w.tracker.Items(), err
}

// Files hands each path in order to walkFn unless the matcher ignores it.
func Files(paths []string, matcher *ignore.IgnoreMatcher, walkFn WalkFunc, opts ...Option) ([]SkippedItem, error) {
	w := newWalker(matcher, walkFn, opts)

	for _, path := range paths {
		isDir := false
		if info, err := os.Stat(path); err == nil {
			isDir = info.IsDir()
		}
		if w.isSkipFile(path) {
			continue
		}
		if ignore.IsIgnored(w.matcher, path, isDir) {
			w.options.Logger.Debug("walker.Files: Ignored %q", path)
			w.tracker.Track(path, ReasonIgnoredRule, isDir)
			continue
		}
		if err := w.processFile(path); err != nil {
			return w.tracker.Items(), err
		}
	}
	return w.tracker.Items(), nil
}

func (w *walker) walkDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		reason := ReasonSkippedWalkError
		if errors.Is(err, fs.ErrPermission) {
			reason = ReasonSkippedPermError
		}
		w.options.Logger.Warn("Cannot list directory '%s': %v", dir, err)
		w.tracker.Track(dir, reason, true)
		return nil
	}

	var dirs []subdir
	var files []string
	for _, entry := range entries {
		path := utils.JoinPath(dir, entry.Name())
		switch {
		case entry.IsDir():
			dirs = append(dirs, subdir{path: path})
		case entry.Type()&fs.ModeSymlink != 0 && isDirTarget(path):
			dirs = append(dirs, subdir{path: path, symlink: true})
		default:
			files = append(files, path)
		}
	}

	kept := dirs[:0]
	for _, d := range dirs {
		if ignore.IsIgnored(w.matcher, d.path, true) {
			w.options.Logger.Debug("Walker: Pruned directory %q", d.path)
			w.tracker.Track(d.path, ReasonIgnoredRule, true)
			continue
		}
		kept = append(kept, d)
	}

	for _, path := range files {
		if w.isSkipFile(path) {
			continue
		}
		if ignore.IsIgnored(w.matcher, path, false) {
			w.options.Logger.Debug("Walker: Ignored file %q", path)
			w.tracker.Track(path, ReasonIgnoredRule, false)
			continue
		}
		if err := w.processFile(path); err != nil {
			return err
		}
	}

	for _, d := range kept {
		if d.symlink {
			w.options.Logger.Debug("Walker: Not following symlinked directory %q", d.path)
			w.tracker.Track(d.path, ReasonSkippedSymlinkDir, true)
			continue
		}
		if err := w.walkDir(d.path); err != nil {
			return err
		}
	}
	return nil
}

func isDirTarget(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
