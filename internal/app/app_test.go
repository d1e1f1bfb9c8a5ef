package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LucMc/toprompt/internal/config"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// runToFile runs the app with --output so tests never touch the clipboard.
func runToFile(t *testing.T, cfg *config.Config) (string, error) {
	t.Helper()
	out := filepath.Join(t.TempDir(), "out.txt")
	cfg.OutputFile = out
	cfg.Quiet = true

	err := New(cfg).Run()
	if err != nil {
		return "", err
	}
	data, readErr := os.ReadFile(out)
	require.NoError(t, readErr)
	return string(data), nil
}

func TestRunExplicitFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.py")
	b := filepath.Join(dir, "b.go")
	writeFile(t, a, "print('a')\n")
	writeFile(t, b, "package b\n")

	got, err := runToFile(t, &config.Config{Paths: []string{a, b}})
	require.NoError(t, err)
	assert.Contains(t, got, "# "+a+"\n```python\nprint('a')\n```")
	assert.Contains(t, got, "# "+b+"\n```go\npackage b\n```")
}

func TestRunDirectoryWithGitignore(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".gitignore"), "*.log\n")
	writeFile(t, filepath.Join(dir, "a.py"), "print('a')")
	writeFile(t, filepath.Join(dir, "b.log"), "noise")
	writeFile(t, filepath.Join(dir, "sub", "c.py"), "print('c')")

	got, err := runToFile(t, &config.Config{
		Paths:        []string{dir},
		Recursive:    true,
		UseGitignore: true,
	})
	require.NoError(t, err)
	assert.Contains(t, got, "a.py")
	assert.Contains(t, got, "sub/c.py")
	assert.NotContains(t, got, "b.log")
	assert.NotContains(t, got, ".gitignore")
}

func TestRunMissingPathIsFatal(t *testing.T) {
	cfg := &config.Config{Paths: []string{filepath.Join(t.TempDir(), "nope")}, Quiet: true}
	err := New(cfg).Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestRunNoPathsIsFatal(t *testing.T) {
	err := New(&config.Config{Quiet: true}).Run()
	require.Error(t, err)
}

func TestRunNoFilesProcessed(t *testing.T) {
	_, err := runToFile(t, &config.Config{Paths: []string{t.TempDir()}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no files")
}

func TestRunUnreadableFileIsSkipped(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("file modes are not enforced for root")
	}
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "ok.txt"), "fine")
	locked := filepath.Join(dir, "locked.txt")
	writeFile(t, locked, "secret")
	require.NoError(t, os.Chmod(locked, 0o000))

	got, err := runToFile(t, &config.Config{Paths: []string{dir}})
	require.NoError(t, err)
	assert.Contains(t, got, "ok.txt")
	assert.NotContains(t, got, "secret")
}

func TestRunExtraIgnorePatterns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "keep.txt"), "k")
	writeFile(t, filepath.Join(dir, "drop.md"), "d")

	got, err := runToFile(t, &config.Config{
		Paths:          []string{dir},
		UseGitignore:   true,
		IgnorePatterns: []string{"*.md"},
	})
	require.NoError(t, err)
	assert.Contains(t, got, "keep.txt")
	assert.NotContains(t, got, "drop.md")
}
