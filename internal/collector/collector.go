// Package collector accumulates kept files as labeled fenced code blocks.
package collector

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/LucMc/toprompt/internal/language"
)

// Collector turns each kept file into a "# path" header plus a fenced code
// block and concatenates the blocks, separated by blank lines, into the
// text that is eventually placed on the clipboard.
type Collector struct {
	buf   strings.Builder
	count int
}

// New creates an empty Collector.
func New() *Collector {
	return &Collector{}
}

// Add appends one file. The fence label comes from the file's extension
// and trailing whitespace of the content is trimmed.
func (c *Collector) Add(displayPath string, content []byte) {
	if c.count > 0 {
		c.buf.WriteString("\n\n")
	}
	fmt.Fprintf(&c.buf, "# %s\n```%s\n%s\n```",
		displayPath,
		language.Label(displayPath),
		strings.TrimRight(string(content), " \t\r\n"))
	c.count++
}

// Count reports how many files have been added.
func (c *Collector) Count() int {
	return c.count
}

// String returns the accumulated text.
func (c *Collector) String() string {
	return c.buf.String()
}

// Preview returns at most n leading bytes of the accumulated text, cut at
// a rune boundary.
func (c *Collector) Preview(n int) string {
	s := c.buf.String()
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
