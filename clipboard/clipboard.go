package clipboard

import (
	"context"
	"fmt"
)

// Clipboard is the narrow port to the host operating system's clipboard. Both
// calls block until the platform responds; the server never retries them and
// enforces no internal timeout, so callers that need a bound should wrap the
// context on their side.
type Clipboard interface {
	// ReadText returns the current clipboard contents as UTF-8 text. An
	// empty clipboard reads as the empty string.
	ReadText(ctx context.Context) (string, error)

	// WriteText replaces the clipboard contents with the given text.
	WriteText(ctx context.Context, text string) error
}

// Op identifies which clipboard operation failed.
type Op string

const (
	OpRead  Op = "read"
	OpWrite Op = "write"
)

// Error decorates a platform clipboard failure with the operation, the
// detected platform and remediation guidance. It wraps the underlying error.
type Error struct {
	Op       Op
	Platform string
	Guidance string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("clipboard %s failed on %s: %v. Solution: %s", e.Op, e.Platform, e.Err, e.Guidance)
}

func (e *Error) Unwrap() error { return e.Err }
