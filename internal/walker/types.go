// Package walker handles directory traversal and file processing
package walker

// WalkFunc receives the text of every file that passed the filter. A non-nil
// return aborts the walk.
type WalkFunc func(path string, content string, enc Encoding) error

// SkippedReason clarifies why a file/directory was not processed.
type SkippedReason string

const (
	ReasonIgnoredRule       SkippedReason = "Ignored (Ignore Pattern)"
	ReasonSkippedSymlinkDir SkippedReason = "Skipped (Symlinked Directory)"
	ReasonSkippedDirectory  SkippedReason = "Skipped (Directory)"
	ReasonSkippedNotRegular SkippedReason = "Skipped (Not a Regular File)"
	ReasonSkippedOutputFile SkippedReason = "Skipped (Output File)"
	ReasonSkippedPermError  SkippedReason = "Skipped (Permission Error)"
	ReasonSkippedWalkError  SkippedReason = "Skipped (Walk Error)"
)

// SkippedItem holds information about a skipped path.
type SkippedItem struct {
	Path   string
	Reason SkippedReason
	IsDir  bool
}

// SkippedTracker is a struct to track skipped items
type SkippedTracker struct {
	items []SkippedItem
}

// NewSkippedTracker creates a new SkippedTracker
func NewSkippedTracker(capacity int) *SkippedTracker {
	return &SkippedTracker{
		items: make([]SkippedItem, 0, capacity),
	}
}

// Track adds a skipped item to the tracker
func (st *SkippedTracker) Track(path string, reason SkippedReason, isDir bool) {
	st.items = append(st.items, SkippedItem{Path: path, Reason: reason, IsDir: isDir})
}

// Items returns the tracked skipped items
func (st *SkippedTracker) Items() []SkippedItem {
	return append([]SkippedItem(nil), st.items...)
}

// Count returns how many items were tracked with reason.
func (st *SkippedTracker) Count(reason SkippedReason) int {
	n := 0
	for _, item := range st.items {
		if item.Reason == reason {
			n++
		}
	}
	return n
}
