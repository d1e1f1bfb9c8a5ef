package walker

import "github.com/LucMc/toprompt/internal/utils"

// ConfirmThreshold is the survivor count above which the confirmation hook
// is consulted for the top-level directory.
const ConfirmThreshold = 10

// WalkFunc receives each kept file in sorted order. path is the file as
// reachable from the walk argument; relPath is relative to the walk root,
// slash-separated.
type WalkFunc func(path, relPath string) error

// ConfirmFunc decides whether to proceed with a top-level directory whose
// kept entry count exceeds ConfirmThreshold. The walker itself performs no
// terminal I/O; interactive prompting is the caller's concern.
type ConfirmFunc func(dir string, count int) bool

// WalkOptions configures Walk.
type WalkOptions struct {
	Logger        utils.Logger
	Recursive     bool
	UseGitignore  bool
	ExtraPatterns []string
	Confirm       ConfirmFunc
}

func defaultOptions() WalkOptions {
	return WalkOptions{Logger: utils.NoopLogger{}}
}

// Option is a functional option for configuring WalkOptions.
type Option func(*WalkOptions)

// WithLogger sets a custom logger for the walker.
func WithLogger(logger utils.Logger) Option {
	return func(opts *WalkOptions) {
		if logger != nil {
			opts.Logger = logger
		}
	}
}

// WithRecursive enables descending into kept subdirectories.
func WithRecursive(enabled bool) Option {
	return func(opts *WalkOptions) {
		opts.Recursive = enabled
	}
}

// WithGitignore enables ignore-rule filtering: default rules plus a
// .gitignore loaded from every directory the walk enters.
func WithGitignore(enabled bool) Option {
	return func(opts *WalkOptions) {
		opts.UseGitignore = enabled
	}
}

// WithExtraPatterns adds rules, in gitignore syntax, evaluated before any
// rules loaded from ignore files. Only effective in gitignore mode.
func WithExtraPatterns(patterns []string) Option {
	return func(opts *WalkOptions) {
		opts.ExtraPatterns = patterns
	}
}

// WithConfirm sets the hook consulted when the top-level directory keeps
// more than ConfirmThreshold entries.
func WithConfirm(fn ConfirmFunc) Option {
	return func(opts *WalkOptions) {
		opts.Confirm = fn
	}
}
