package stdio

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/clipmcp/mcp-clipboard-go/internal/engine"
	"github.com/clipmcp/mcp-clipboard-go/internal/jsonrpc"
	"github.com/clipmcp/mcp-clipboard-go/internal/protoerr"
	"github.com/clipmcp/mcp-clipboard-go/mcpservice"
)

// Handler is a single-connection stdio transport that reads newline-delimited
// JSON-RPC messages from an io.Reader and writes responses to an io.Writer.
// By default it uses os.Stdin and os.Stdout.
//
// The handler owns framing only (lines, single vs batch, response ordering,
// per-line flush); protocol semantics live in the engine and the provided
// mcpservice.Server.
type Handler struct {
	srv *mcpservice.Server

	r io.Reader
	w io.Writer
	l *slog.Logger
}

// NewHandler constructs a stdio Handler with defaults and applies options.
func NewHandler(srv *mcpservice.Server, opts ...Option) *Handler {
	h := &Handler{
		srv: srv,
		r:   os.Stdin,
		w:   os.Stdout,
		l:   slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

type flusher interface {
	Flush() error
}

// Serve runs the stdio event loop until EOF on the reader or the context is
// canceled. It is safe to call at most once per Handler.
//
// Processing is strictly sequential: one line is read, fully resolved to its
// response line, written and flushed before the next read. Cancellation is
// cooperative; a request already being handled always completes and its
// response is written before Serve returns.
func (h *Handler) Serve(ctx context.Context) error {
	eng := engine.New(h.srv, engine.WithLogger(h.l))
	sess := engine.NewSession()

	h.l.InfoContext(ctx, "stdio.serve.start", slog.String("session_id", sess.ID()))

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		br := bufio.NewReader(h.r)
		for {
			line, err := br.ReadString('\n')
			if len(line) > 0 {
				select {
				case lines <- line:
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					readErr <- err
				}
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			sess.BeginShutdown()
			h.l.InfoContext(ctx, "stdio.serve.stop", slog.String("reason", "context canceled"))
			return nil
		case line, ok := <-lines:
			if !ok {
				sess.BeginShutdown()
				select {
				case err := <-readErr:
					h.l.ErrorContext(ctx, "stdio.serve.read_error", slog.String("err", err.Error()))
					return err
				default:
				}
				h.l.InfoContext(ctx, "stdio.serve.stop", slog.String("reason", "eof"))
				return nil
			}

			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}

			out := h.handleLine(ctx, eng, sess, []byte(line))
			if out == nil {
				continue
			}
			if err := h.writeLine(out); err != nil {
				h.l.ErrorContext(ctx, "stdio.serve.write_error", slog.String("err", err.Error()))
				return err
			}
		}
	}
}

// handleLine resolves one input line to one serialized output line. The
// returned slice never contains a newline; writeLine appends the terminator.
func (h *Handler) handleLine(ctx context.Context, eng *engine.Engine, sess *engine.Session, line []byte) []byte {
	if !json.Valid(line) {
		return h.marshalResponse(protoerr.Response(jsonrpc.NullRequestID(),
			protoerr.New(protoerr.KindParse, "Parse error").WithDetails("invalid JSON")))
	}

	switch line[0] {
	case '{':
		res := h.dispatchOne(ctx, eng, sess, line)
		return h.marshalResponse(res)

	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(line, &elems); err != nil {
			return h.marshalResponse(protoerr.Response(jsonrpc.NullRequestID(),
				protoerr.New(protoerr.KindParse, "Parse error").WithDetails(err.Error())))
		}
		if len(elems) == 0 {
			// An empty batch is a single top-level error, not a batch.
			return h.marshalResponse(protoerr.Response(jsonrpc.NullRequestID(),
				protoerr.New(protoerr.KindInvalidRequest, "Invalid Request").WithDetails("empty batch")))
		}

		responses := make([]*jsonrpc.Response, 0, len(elems))
		for _, elem := range elems {
			responses = append(responses, h.dispatchOne(ctx, eng, sess, elem))
		}
		out, err := json.Marshal(responses)
		if err != nil {
			h.l.ErrorContext(ctx, "stdio.handle_line.marshal_error", slog.String("err", err.Error()))
			return h.marshalResponse(protoerr.Response(jsonrpc.NullRequestID(),
				protoerr.New(protoerr.KindInternal, "Internal server error")))
		}
		return out

	default:
		// Valid JSON but neither an object nor an array.
		return h.marshalResponse(protoerr.Response(jsonrpc.NullRequestID(),
			protoerr.New(protoerr.KindParse, "Parse error").WithDetails("message must be a JSON object or array")))
	}
}

// dispatchOne turns one candidate request document into exactly one response.
// A malformed element yields an invalid-request error for that slot only;
// batch siblings are unaffected.
func (h *Handler) dispatchOne(ctx context.Context, eng *engine.Engine, sess *engine.Session, raw json.RawMessage) *jsonrpc.Response {
	var msg jsonrpc.AnyMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return protoerr.Response(probeRequestID(raw),
			protoerr.New(protoerr.KindInvalidRequest, "Invalid Request").WithDetails(err.Error()))
	}

	req := msg.AsRequest()
	if req == nil {
		return protoerr.Response(probeRequestID(raw),
			protoerr.New(protoerr.KindInvalidRequest, "Invalid Request").WithDetails("expected a request object"))
	}

	return eng.HandleRequest(ctx, sess, req)
}

// probeRequestID extracts the id member from an otherwise unusable request so
// error responses can still echo it. Failing that, the id stays null.
func probeRequestID(raw json.RawMessage) *jsonrpc.RequestID {
	var probe struct {
		ID *jsonrpc.RequestID `json:"id"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil || probe.ID == nil {
		return jsonrpc.NullRequestID()
	}
	return probe.ID
}

func (h *Handler) marshalResponse(res *jsonrpc.Response) []byte {
	out, err := json.Marshal(res)
	if err != nil {
		// A response that cannot be serialized is an internal bug; fall back
		// to a minimal error document so the caller is never left hanging.
		out, _ = json.Marshal(protoerr.Response(res.ID, protoerr.New(protoerr.KindInternal, "Internal server error")))
	}
	return out
}

// writeLine writes one JSON document followed by a newline and flushes the
// writer when it supports flushing. The caller is waiting synchronously on
// this turn's result, so output is never held across turns.
func (h *Handler) writeLine(doc []byte) error {
	if _, err := h.w.Write(append(doc, '\n')); err != nil {
		return err
	}
	if f, ok := h.w.(flusher); ok {
		return f.Flush()
	}
	return nil
}
