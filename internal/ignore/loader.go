package ignore

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/LucMc/toprompt/internal/utils"
)

// Load reads dir/.gitignore into a PatternSet scoped to dir. A missing file
// yields an empty set. A file that exists but cannot be read also yields an
// empty set plus a warning: a bad ignore file must not abort a walk.
func Load(dir string, log utils.Logger) *PatternSet {
	set := &PatternSet{}

	data, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) && log != nil {
			log.Warn("Could not read .gitignore in %q: %v", dir, err)
		}
		return set
	}

	for _, line := range strings.Split(string(data), "\n") {
		set.Add(strings.TrimSuffix(line, "\r"), dir)
	}
	if log != nil && set.Len() > 0 {
		log.Debug("Loaded %d rule(s) from %s", set.Len(), filepath.Join(dir, ".gitignore"))
	}
	return set
}
