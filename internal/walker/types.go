// Package walker implements the depth-first directory traversal that feeds
// kept files to the collector.
package walker

// SkippedReason clarifies why an entry was not yielded.
type SkippedReason string

const (
	ReasonIgnoredRule  SkippedReason = "Ignored (Ignore Rule)"
	ReasonNotRecursive SkippedReason = "Skipped (Non-Recursive Mode)"
	ReasonListError    SkippedReason = "Skipped (Directory List Error)"
	ReasonDeclined     SkippedReason = "Skipped (Confirmation Declined)"
)

// SkippedItem records one path that was filtered out during a walk, with
// the reason, for verbose reporting.
type SkippedItem struct {
	Path   string
	Reason SkippedReason
	IsDir  bool
}

// skippedTracker accumulates skipped items. The walk is single-threaded,
// so no locking is needed.
type skippedTracker struct {
	items []SkippedItem
}

func (t *skippedTracker) track(path string, reason SkippedReason, isDir bool) {
	t.items = append(t.items, SkippedItem{Path: path, Reason: reason, IsDir: isDir})
}
