package ignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LucMc/toprompt/internal/utils"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	content := "# build artifacts\n\n*.log\r\n!keep.log\n/dist/\n   \n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(content), 0o644))

	set := Load(dir, utils.NoopLogger{})
	assert.Equal(t, 3, set.Len(), "comments and blank lines carry no rules")
	assert.True(t, set.ShouldIgnore("debug.log", false))
	assert.False(t, set.ShouldIgnore("keep.log", false))
	assert.True(t, set.ShouldIgnore("dist", true))
	assert.False(t, set.ShouldIgnore("dist", false))
}

func TestLoadMissingFile(t *testing.T) {
	set := Load(t.TempDir(), utils.NoopLogger{})
	assert.Equal(t, 0, set.Len())
	assert.False(t, set.ShouldIgnore("anything", false))
}

func TestLoadUnreadableFile(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("file modes are not enforced for root")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, ".gitignore")
	require.NoError(t, os.WriteFile(path, []byte("*.log\n"), 0o000))

	set := Load(dir, utils.NoopLogger{})
	assert.Equal(t, 0, set.Len(), "unreadable ignore file yields an empty set, not an error")
}
