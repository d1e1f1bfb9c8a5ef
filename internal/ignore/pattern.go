// Package ignore implements a gitignore-style exclusion engine: cascading
// per-directory rule lists with negation, anchoring, directory-only rules
// and `*`/`?` globs.
//
// The semantics are a deliberate subset of git's. There is no `**`, no
// character classes, and `*` may cross `/` in anchored or path-structured
// patterns. See DESIGN.md for the known divergences.
package ignore

import "strings"

// Pattern is a single parsed ignore rule.
type Pattern struct {
	Glob     string // rule text with leading !, leading / and trailing / stripped
	Negated  bool   // rule began with ! and re-includes a previously excluded path
	Anchored bool   // rule began with / and matches from the walk root only
	DirOnly  bool   // rule ended with / and matches directories only
	HasSlash bool   // glob still contains an internal /
	Scope    string // directory whose ignore file declared this rule
}

// ParsePattern parses one line from an ignore file, scoped to the directory
// that declared it. It reports ok=false for lines that carry no rule: blank
// lines, #-comments, and lines whose text is empty after stripping markers.
func ParsePattern(line, scope string) (Pattern, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Pattern{}, false
	}

	p := Pattern{Scope: scope}
	if strings.HasPrefix(line, "!") {
		p.Negated = true
		line = line[1:]
	}
	if strings.HasPrefix(line, "/") {
		p.Anchored = true
		line = line[1:]
	}
	if strings.HasSuffix(line, "/") {
		p.DirOnly = true
		line = line[:len(line)-1]
	}
	if line == "" {
		return Pattern{}, false
	}

	p.Glob = line
	p.HasSlash = strings.Contains(line, "/")
	return p, true
}

// Match reports whether the rule matches relPath, a slash-separated path
// relative to the walk root. Anchored and path-structured rules are matched
// against the full path and never fall back to filename matching. Bare-name
// rules match the final path component, or any single component when the
// candidate is a directory.
func (p Pattern) Match(relPath string, isDir bool) bool {
	if p.DirOnly && !isDir {
		return false
	}

	if p.Anchored || p.HasSlash {
		return globMatch(p.Glob, relPath)
	}

	base := relPath
	if i := strings.LastIndexByte(relPath, '/'); i >= 0 {
		base = relPath[i+1:]
	}
	if globMatch(p.Glob, base) {
		return true
	}
	if isDir {
		for _, part := range strings.Split(relPath, "/") {
			if globMatch(p.Glob, part) {
				return true
			}
		}
	}
	return false
}

// globMatch matches text against pattern where `*` matches any run of
// characters (including `/`) and `?` matches exactly one character.
// Matching is case-sensitive; an empty pattern matches only empty text.
func globMatch(pattern, text string) bool {
	pat := []rune(pattern)
	txt := []rune(text)

	pi, ti := 0, 0
	star, starTi := -1, 0
	for ti < len(txt) {
		switch {
		case pi < len(pat) && (pat[pi] == '?' || pat[pi] == txt[ti]):
			pi++
			ti++
		case pi < len(pat) && pat[pi] == '*':
			// Remember the star so we can retry with a longer span.
			star, starTi = pi, ti
			pi++
		case star >= 0:
			starTi++
			pi, ti = star+1, starTi
		default:
			return false
		}
	}
	for pi < len(pat) && pat[pi] == '*' {
		pi++
	}
	return pi == len(pat)
}
