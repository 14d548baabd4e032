// Package clipboardtest provides an in-memory clipboard.Clipboard fake with
// failure injection for tests.
package clipboardtest

import (
	"context"
	"sync"

	"github.com/clipmcp/mcp-clipboard-go/clipboard"
)

// Fake is an in-memory Clipboard. The zero value is ready to use. Read and
// write failures can be injected per-operation; an injected error is returned
// on every subsequent call until cleared.
type Fake struct {
	mu       sync.Mutex
	text     string
	readErr  error
	writeErr error

	reads  int
	writes int
}

var _ clipboard.Clipboard = (*Fake)(nil)

// New returns a Fake seeded with the given text.
func New(text string) *Fake {
	return &Fake{text: text}
}

func (f *Fake) ReadText(ctx context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads++
	if f.readErr != nil {
		return "", f.readErr
	}
	return f.text, nil
}

func (f *Fake) WriteText(ctx context.Context, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes++
	if f.writeErr != nil {
		return f.writeErr
	}
	f.text = text
	return nil
}

// FailReads makes every subsequent ReadText return err. Pass nil to restore
// normal behavior.
func (f *Fake) FailReads(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.readErr = err
}

// FailWrites makes every subsequent WriteText return err. Pass nil to restore
// normal behavior.
func (f *Fake) FailWrites(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writeErr = err
}

// Text returns the current clipboard contents.
func (f *Fake) Text() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.text
}

// Reads returns the number of ReadText calls observed.
func (f *Fake) Reads() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reads
}

// Writes returns the number of WriteText calls observed.
func (f *Fake) Writes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writes
}
