// Package clipboard wraps system clipboard access so the UI can be tested
// without touching the real clipboard.
package clipboard

import "github.com/atotto/clipboard"

// WriteFunc copies text to the system clipboard. Tests swap it out.
type WriteFunc func(text string) error

// Write is the process-wide clipboard writer. The default implementation uses
// the platform clipboard (pbcopy/xclip/xsel/clip under the hood).
var Write WriteFunc = clipboard.WriteAll

// Available reports whether a clipboard backend exists on this system.
// A variable for the same reason Write is.
var Available = func() bool {
	return !clipboard.Unsupported
}
