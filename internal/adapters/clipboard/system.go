// Package clipboard provides the outbound adapters for the system clipboard.
//
// System talks to the OS clipboard through github.com/atotto/clipboard,
// which shells out to pbcopy/pbpaste on macOS, xclip, xsel or wl-clipboard
// on Linux, and the Win32 API on Windows. Resilient wraps any provider with
// retry, a circuit breaker and an optional write rate limit:
//
//	system, err := clipboard.NewSystem()
//	cb := clipboard.NewResilient(system, &cfg.Clipboard, metrics, logger)
//	text, err := cb.Contents(ctx)
package clipboard

import (
	"context"
	"errors"
	"runtime"
	"unicode/utf8"

	"github.com/atotto/clipboard"

	"github.com/jsamuelsen11/clipdate/internal/domain"
	"github.com/jsamuelsen11/clipdate/internal/ports"
)

// Compile-time interface check.
var _ ports.Clipboard = (*System)(nil)

// ErrNotText is returned when the clipboard holds bytes that are not valid
// UTF-8 text.
var ErrNotText = errors.New("clipboard contents are not text")

// ErrUnsupported is returned by NewSystem when no clipboard utility is
// available on this platform.
var ErrUnsupported = errors.New("no clipboard utility available on " + runtime.GOOS)

// System reads and writes the OS clipboard.
type System struct {
	read  func() (string, error)
	write func(string) error
}

// NewSystem returns the OS clipboard provider. It fails with a
// domain.ErrClipboard when the platform has no usable clipboard utility,
// which the entry point treats as fatal.
func NewSystem() (*System, error) {
	if clipboard.Unsupported {
		return nil, domain.NewClipboardError(domain.OpInit, ErrUnsupported)
	}
	return &System{read: clipboard.ReadAll, write: clipboard.WriteAll}, nil
}

// Contents returns the clipboard text.
func (s *System) Contents(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", domain.NewClipboardError(domain.OpRead, err)
	}

	text, err := s.read()
	if err != nil {
		return "", domain.NewClipboardError(domain.OpRead, err)
	}
	if !utf8.ValidString(text) {
		return "", domain.NewClipboardError(domain.OpRead, ErrNotText)
	}
	return text, nil
}

// SetContents replaces the clipboard text.
func (s *System) SetContents(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return domain.NewClipboardError(domain.OpWrite, err)
	}

	if err := s.write(text); err != nil {
		return domain.NewClipboardError(domain.OpWrite, err)
	}
	return nil
}

// Name identifies the provider in health results.
func (s *System) Name() string { return "clipboard" }
