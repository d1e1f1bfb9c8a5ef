package ignore

import "path/filepath"

// PatternSet is an ordered collection of rules. Order is significant:
// the ignore decision for a path is made by the last matching rule, so a
// later negated rule re-includes what an earlier rule excluded.
type PatternSet struct {
	patterns []Pattern
}

// Empty returns a set with no rules.
func Empty() *PatternSet {
	return &PatternSet{}
}

// WithDefaults returns a set seeded with the always-on rules: the .git
// directory (directory-only) and .gitignore files themselves.
func WithDefaults(baseDir string) *PatternSet {
	s := &PatternSet{}
	s.Add(".git/", baseDir)
	s.Add(".gitignore", baseDir)
	return s
}

// Add parses line and appends the resulting rule, if the line carries one.
func (s *PatternSet) Add(line, scope string) {
	if p, ok := ParsePattern(line, scope); ok {
		s.patterns = append(s.patterns, p)
	}
}

// Merge appends other's rules after s's own. Parent rules keep their
// position, so child rules can override them but never reorder them.
func (s *PatternSet) Merge(other *PatternSet) {
	if other != nil {
		s.patterns = append(s.patterns, other.patterns...)
	}
}

// Clone returns a copy that a child recursion frame can extend without the
// parent frame observing the additions.
func (s *PatternSet) Clone() *PatternSet {
	c := &PatternSet{patterns: make([]Pattern, len(s.patterns))}
	copy(c.patterns, s.patterns)
	return c
}

// Len reports the number of rules in the set.
func (s *PatternSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.patterns)
}

// ShouldIgnore reports whether relPath is excluded by the set. Every rule
// is applied in declaration order; each match sets the running state to the
// rule's polarity, so the last matching rule wins.
func (s *PatternSet) ShouldIgnore(relPath string, isDir bool) bool {
	if s == nil || relPath == "" || relPath == "." {
		return false
	}
	relPath = filepath.ToSlash(relPath)

	ignored := false
	for _, p := range s.patterns {
		if p.Match(relPath, isDir) {
			ignored = !p.Negated
		}
	}
	return ignored
}
