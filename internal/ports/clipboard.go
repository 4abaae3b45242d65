package ports

import "context"

// Clipboard is the two-operation capability the watcher needs from the
// shared text buffer it watches. Implemented by the clipboard adapters.
//
// Failures wrap domain.ErrClipboard. Content that cannot be represented as
// text is reported as a failure, not as an empty string.
type Clipboard interface {
	// Contents returns the current clipboard text.
	Contents(ctx context.Context) (string, error)

	// SetContents replaces the clipboard text.
	SetContents(ctx context.Context, text string) error
}
