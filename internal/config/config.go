// Package config holds the run configuration assembled once at startup.
package config

import (
	"os"

	"github.com/mattn/go-isatty"
)

// Config holds all settings for one run. The command layer builds it and
// passes it down by parameter; core packages never read process state.
type Config struct {
	// Positional file or directory arguments.
	Paths []string

	// Traversal settings
	Recursive    bool
	UseGitignore bool

	// Extra ignore rules in gitignore syntax, applied before any
	// .gitignore file rules.
	IgnorePatterns []string

	// Output settings
	Verbose   bool
	Quiet     bool
	NoColor   bool
	UseColors bool

	// When set, the result is written to this file instead of the
	// clipboard.
	OutputFile string
}

// Finalize derives settings that depend on the environment, such as whether
// color output is enabled.
func (c *Config) Finalize() {
	c.UseColors = !c.NoColor && isatty.IsTerminal(os.Stderr.Fd())
}
