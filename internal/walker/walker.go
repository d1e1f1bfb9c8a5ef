package walker

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/LucMc/toprompt/internal/ignore"
)

// Walk traverses root depth-first, filtering entries through cascading
// ignore rules, and calls fn for every kept file. Entries of a directory
// are visited in lexical order; this ordering is part of the output
// contract, not cosmetic. It returns the skipped items and any fatal error.
//
// Per-directory failures (unlistable directory, unreadable ignore file) are
// logged and skipped; only a bad root or an error from fn aborts the walk.
func Walk(root string, fn WalkFunc, opts ...Option) ([]SkippedItem, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("walker: resolving %q: %w", root, err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("walker: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("walker: %q is not a directory", root)
	}

	set := ignore.Empty()
	if options.UseGitignore {
		set = ignore.WithDefaults(absRoot)
		for _, pat := range options.ExtraPatterns {
			set.Add(pat, absRoot)
		}
	}

	w := &walkState{root: absRoot, opts: options, fn: fn, tracker: &skippedTracker{}}
	err = w.walkDir(absRoot, set, true)
	return w.tracker.items, err
}

// walkState carries the fixed parameters of one Walk call through the
// recursion; the per-frame state is the directory and its inherited set.
type walkState struct {
	root    string
	opts    WalkOptions
	fn      WalkFunc
	tracker *skippedTracker
}

func (w *walkState) rel(path string) string {
	r, err := filepath.Rel(w.root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(r)
}

func (w *walkState) walkDir(dir string, inherited *ignore.PatternSet, top bool) error {
	rel := w.rel(dir)

	// A directory the inherited rules already exclude is never entered:
	// nothing under it can be yielded, negations included.
	if w.opts.UseGitignore && rel != "." && inherited.ShouldIgnore(rel, true) {
		w.opts.Logger.Debug("Ignoring directory (due to parent rules): %s", rel)
		w.tracker.track(rel, ReasonIgnoredRule, true)
		return nil
	}

	// The effective set for this level is a clone of the parent's, so
	// sibling subtrees never observe each other's local rules.
	set := inherited
	if w.opts.UseGitignore {
		set = inherited.Clone()
		set.Merge(ignore.Load(dir, w.opts.Logger))
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		w.opts.Logger.Warn("Could not read directory %q: %v", dir, err)
		w.tracker.track(rel, ReasonListError, true)
		return nil
	}
	// os.ReadDir sorts already; the explicit sort keeps the ordering
	// contract independent of that implementation detail.
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	type entry struct {
		name  string
		rel   string
		isDir bool
	}
	var survivors []entry
	for _, e := range entries {
		childRel := e.Name()
		if rel != "." {
			childRel = rel + "/" + e.Name()
		}
		isDir := e.IsDir()
		if w.opts.UseGitignore && set.ShouldIgnore(childRel, isDir) {
			w.opts.Logger.Debug("Ignoring: %s", childRel)
			w.tracker.track(childRel, ReasonIgnoredRule, isDir)
			continue
		}
		survivors = append(survivors, entry{name: e.Name(), rel: childRel, isDir: isDir})
	}

	if top && w.opts.Confirm != nil && len(survivors) > ConfirmThreshold {
		if !w.opts.Confirm(dir, len(survivors)) {
			w.opts.Logger.Info("Skipping directory %q (confirmation declined)", dir)
			w.tracker.track(rel, ReasonDeclined, true)
			return nil
		}
	}

	for _, e := range survivors {
		full := filepath.Join(dir, e.name)
		if e.isDir {
			if !w.opts.Recursive {
				w.opts.Logger.Debug("Skipping subdirectory (non-recursive mode): %s", e.rel)
				w.tracker.track(e.rel, ReasonNotRecursive, true)
				continue
			}
			if err := w.walkDir(full, set, false); err != nil {
				return err
			}
			continue
		}
		if err := w.fn(full, e.rel); err != nil {
			return err
		}
	}
	return nil
}
