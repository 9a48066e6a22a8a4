package ui

import "github.com/atotto/clipboard"

// Clipboard reads and writes the system clipboard.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) ReadAll() (string, error) { return clipboard.ReadAll() }

func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// SystemClipboard returns a Clipboard backed by the platform clipboard
// utilities (pbcopy, xclip, xsel, wl-copy or the Windows API).
func SystemClipboard() Clipboard {
	return systemClipboard{}
}
