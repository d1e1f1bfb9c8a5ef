// Package clipboard places text on the system clipboard.
package clipboard

import (
	"fmt"

	atotto "github.com/atotto/clipboard"
)

// Copy puts text on the system clipboard. On Linux the underlying
// implementation shells out to xclip, xsel or wl-copy; on macOS to pbcopy.
// Failure is reported, never retried: the caller decides whether to fall
// back to plain output.
func Copy(text string) error {
	if atotto.Unsupported {
		return fmt.Errorf("clipboard: no clipboard tool available on this platform")
	}
	if err := atotto.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	return nil
}
