// Package app wires configuration, logging, the walker and the collector
// together for one run.
package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/LucMc/toprompt/internal/clipboard"
	"github.com/LucMc/toprompt/internal/collector"
	"github.com/LucMc/toprompt/internal/config"
	"github.com/LucMc/toprompt/internal/logger"
	"github.com/LucMc/toprompt/internal/walker"
)

// PreviewChars is how much of the clipboard text is echoed after a
// successful copy.
const PreviewChars = 500

// App is the application: it gathers files from the configured paths and
// delivers the formatted result.
type App struct {
	cfg *config.Config
	log *logger.Logger

	// Out receives the user-facing result output (summary, preview, or
	// the fallback dump when the clipboard fails). Defaults to stdout.
	Out io.Writer

	// In is consulted by the interactive confirmation prompt.
	In *os.File
}

// New creates an App from a finalized Config.
func New(cfg *config.Config) *App {
	color.NoColor = !cfg.UseColors

	log := logger.New(os.Stderr, cfg.Verbose, cfg.UseColors)
	if cfg.Quiet {
		log.WithLevel(logger.LevelWarn)
	}

	return &App{cfg: cfg, log: log, Out: os.Stdout, In: os.Stdin}
}

// Run processes every configured path and delivers the accumulated text.
// It returns an error only for fatal conditions: no input paths, a missing
// explicit path argument, or no files processed at all. Per-item failures
// are logged and skipped.
func (a *App) Run() error {
	if len(a.cfg.Paths) == 0 {
		return errors.New("no input paths given")
	}

	col := collector.New()
	for _, arg := range a.cfg.Paths {
		if err := a.processPath(arg, col); err != nil {
			return err
		}
	}

	if col.Count() == 0 {
		return errors.New("no files were successfully processed")
	}
	return a.deliver(col)
}

// processPath handles one positional argument: a file is collected
// directly, a directory is walked.
func (a *App) processPath(arg string, col *collector.Collector) error {
	info, err := os.Stat(arg)
	if err != nil {
		return fmt.Errorf("path %q does not exist or is not accessible", arg)
	}

	if !info.IsDir() {
		a.addFile(arg, arg, col)
		return nil
	}

	opts := []walker.Option{
		walker.WithLogger(a.log),
		walker.WithRecursive(a.cfg.Recursive),
		walker.WithGitignore(a.cfg.UseGitignore),
		walker.WithConfirm(a.confirmLarge),
	}
	if len(a.cfg.IgnorePatterns) > 0 {
		opts = append(opts, walker.WithExtraPatterns(a.cfg.IgnorePatterns))
	}

	skipped, err := walker.Walk(arg, func(path, rel string) error {
		a.addFile(path, filepath.ToSlash(filepath.Join(arg, rel)), col)
		return nil
	}, opts...)
	if err != nil {
		return fmt.Errorf("walking %q: %w", arg, err)
	}
	a.log.Debug("Walk of %q finished: %d item(s) skipped", arg, len(skipped))
	return nil
}

// addFile reads one file and hands it to the collector. Read failures and
// non-text paths are logged and skipped, never fatal.
func (a *App) addFile(path, display string, col *collector.Collector) {
	if !utf8.ValidString(path) {
		a.log.Warn("Skipping file with invalid path encoding: %q", path)
		return
	}
	content, err := os.ReadFile(path)
	if err != nil {
		a.log.Warn("Skipping %q: %v", display, err)
		return
	}
	col.Add(display, content)
	a.log.Debug("Collected %s (%d bytes)", display, len(content))
}

// confirmLarge asks before processing a top-level directory that keeps more
// than the threshold of entries. Non-interactive runs proceed silently.
func (a *App) confirmLarge(dir string, count int) bool {
	if a.In == nil || !isatty.IsTerminal(a.In.Fd()) {
		return true
	}
	fmt.Fprintf(os.Stderr, "\nWarning: directory %q has %d entries to process.\n", dir, count)
	fmt.Fprint(os.Stderr, "Do you want to process all of them? (y/n): ")

	line, err := bufio.NewReader(a.In).ReadString('\n')
	if err != nil {
		return false
	}
	line = strings.ToLower(strings.TrimSpace(line))
	return line == "y" || line == "yes"
}

// deliver places the accumulated text on the clipboard (or in the output
// file) and prints the summary. A clipboard failure is not fatal: the text
// is printed instead of discarded.
func (a *App) deliver(col *collector.Collector) error {
	text := col.String()

	if a.cfg.OutputFile != "" {
		if err := os.WriteFile(a.cfg.OutputFile, []byte(text), 0o644); err != nil {
			return fmt.Errorf("writing %q: %w", a.cfg.OutputFile, err)
		}
		a.log.Info("Wrote %d file(s) to %s", col.Count(), a.cfg.OutputFile)
		return nil
	}

	if err := clipboard.Copy(text); err != nil {
		a.log.Error("Failed to copy to clipboard: %v", err)
		fmt.Fprintf(a.Out, "\n--- Output (not copied) ---\n\n%s\n", text)
		return nil
	}

	fmt.Fprintf(a.Out, "\nSuccessfully copied %d file(s) to clipboard!\n", col.Count())
	if a.cfg.UseGitignore {
		fmt.Fprintln(a.Out, "(.gitignore rules were applied)")
	}
	if a.cfg.Recursive {
		fmt.Fprintln(a.Out, "(Processed directories recursively)")
	}
	if !a.cfg.Quiet {
		fmt.Fprintf(a.Out, "\n--- Clipboard Contents Preview (first %d chars) ---\n\n%s...\n", PreviewChars, col.Preview(PreviewChars))
	}
	return nil
}
