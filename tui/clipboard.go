package tui

import (
	"github.com/atotto/clipboard"

	"github.com/sqwxl/jx/errors"
)

// copyToClipboard writes the given string to the system clipboard.
func copyToClipboard(content string) error {
	if clipboard.Unsupported {
		return errors.ClipboardUnavailable(nil)
	}
	if err := clipboard.WriteAll(content); err != nil {
		return errors.ClipboardUnavailable(err)
	}
	return nil
}
