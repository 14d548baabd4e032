// Package cliptools defines the two clipboard tools this server exposes and
// wires them to a clipboard.Clipboard port.
package cliptools

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/clipmcp/mcp-clipboard-go/clipboard"
	"github.com/clipmcp/mcp-clipboard-go/internal/protoerr"
	"github.com/clipmcp/mcp-clipboard-go/mcp"
	"github.com/clipmcp/mcp-clipboard-go/mcpservice"
)

// MaxTextLength bounds the text accepted by set_clipboard, counted in Unicode
// code points.
const MaxTextLength = 1048576

type getClipboardArgs struct{}

type setClipboardArgs struct {
	Text string `json:"text" jsonschema:"maxLength=1048576"`
}

// Option customizes the tool set.
type Option func(*toolset)

// WithLogger overrides the logger used for clipboard diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(ts *toolset) {
		if l != nil {
			ts.log = l
		}
	}
}

type toolset struct {
	clip clipboard.Clipboard
	log  *slog.Logger
}

// NewToolsContainer builds the static tool registry for the given clipboard
// port: get_clipboard and set_clipboard.
func NewToolsContainer(clip clipboard.Clipboard, opts ...Option) *mcpservice.ToolsContainer {
	ts := &toolset{clip: clip, log: slog.Default()}
	for _, opt := range opts {
		opt(ts)
	}

	return mcpservice.NewToolsContainer(
		mcpservice.NewTool("get_clipboard", ts.getClipboard,
			mcpservice.WithToolDescription("Get the current contents of the system clipboard"),
		),
		mcpservice.NewTool("set_clipboard", ts.setClipboard,
			mcpservice.WithToolDescription("Set the system clipboard contents to the provided text"),
		),
	)
}

// getClipboard reads the system clipboard. Platform read failures degrade to
// a successful empty-string result: a caller that cannot read the clipboard
// gets the same answer as one reading an empty clipboard. Write failures (see
// setClipboard) do not share this policy.
func (ts *toolset) getClipboard(ctx context.Context, _ getClipboardArgs) (*mcp.CallToolResult, error) {
	text, err := ts.clip.ReadText(ctx)
	if err != nil {
		ts.log.WarnContext(ctx, "cliptools.get_clipboard.read_failed_degraded",
			slog.String("err", err.Error()))
		return mcpservice.TextResult(""), nil
	}
	return mcpservice.TextResult(text), nil
}

// setClipboard writes the validated text to the system clipboard.
func (ts *toolset) setClipboard(ctx context.Context, args setClipboardArgs) (*mcp.CallToolResult, error) {
	if err := ts.clip.WriteText(ctx, args.Text); err != nil {
		ts.log.ErrorContext(ctx, "cliptools.set_clipboard.write_failed",
			slog.String("err", err.Error()))
		return nil, protoerr.New(protoerr.KindClipboard, "Clipboard operation failed").WithDetails(err.Error())
	}
	n := utf8.RuneCountInString(args.Text)
	return mcpservice.TextResult(fmt.Sprintf("Successfully copied %d characters to clipboard", n)), nil
}
