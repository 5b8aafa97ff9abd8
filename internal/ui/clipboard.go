package ui

import "github.com/atotto/clipboard"

// Clipboard receives copied passwords.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the OS clipboard (xclip/xsel/wl-copy, pbcopy, or
// the Windows API).
type SystemClipboard struct{}

// WriteAll implements Clipboard.
func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// ClipboardSupported reports whether a system clipboard backend was found.
func ClipboardSupported() bool {
	return !clipboard.Unsupported
}
