// Package clipboard writes text to the system clipboard.
package clipboard

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// Writer is the clipboard-write capability.
type Writer interface {
	WriteAll(text string) error
}

// System uses the platform clipboard (pbcopy, clip.exe, wl-copy, xclip or xsel).
type System struct{}

func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard: no clipboard utility available")
	}
	if err := clipboard.WriteAll(strings.ReplaceAll(text, "\r\n", "\n")); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	return nil
}
