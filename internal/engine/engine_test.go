package engine

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/clipmcp/mcp-clipboard-go/clipboard/clipboardtest"
	"github.com/clipmcp/mcp-clipboard-go/cliptools"
	"github.com/clipmcp/mcp-clipboard-go/internal/jsonrpc"
	"github.com/clipmcp/mcp-clipboard-go/mcp"
	"github.com/clipmcp/mcp-clipboard-go/mcpservice"
)

func newTestEngine(t *testing.T) (*Engine, *Session) {
	t.Helper()
	srv := mcpservice.NewServer(
		mcpservice.WithServerInfo(mcp.ImplementationInfo{Name: "mcp-clipboard-server", Version: "0.0.1"}),
		mcpservice.WithToolsCapability(cliptools.NewToolsContainer(clipboardtest.New(""))),
	)
	return New(srv), NewSession()
}

func request(t *testing.T, id any, method mcp.Method, params any) *jsonrpc.Request {
	t.Helper()
	req := &jsonrpc.Request{
		JSONRPCVersion: jsonrpc.ProtocolVersion,
		Method:         string(method),
		ID:             jsonrpc.NewRequestID(id),
	}
	if params != nil {
		raw, err := json.Marshal(params)
		if err != nil {
			t.Fatalf("marshal params: %v", err)
		}
		req.Params = raw
	}
	return req
}

func decodeResult(t *testing.T, res *jsonrpc.Response, into any) {
	t.Helper()
	if res.Error != nil {
		t.Fatalf("unexpected error response: %+v", res.Error)
	}
	if err := json.Unmarshal(res.Result, into); err != nil {
		t.Fatalf("decode result: %v", err)
	}
}

func TestInitializeIsIdempotent(t *testing.T) {
	eng, sess := newTestEngine(t)
	ctx := context.Background()

	params := mcp.InitializeRequest{
		ProtocolVersion: "2099-01-01", // accepted without validation
		ClientInfo:      mcp.ImplementationInfo{Name: "client", Version: "0.0.1"},
	}

	res1 := eng.HandleRequest(ctx, sess, request(t, 1, mcp.InitializeMethod, params))
	if sess.State() != StateInitialized {
		t.Fatalf("state = %q, want initialized", sess.State())
	}
	res2 := eng.HandleRequest(ctx, sess, request(t, 2, mcp.InitializeMethod, params))

	var first, second mcp.InitializeResult
	decodeResult(t, res1, &first)
	decodeResult(t, res2, &second)

	if string(res1.Result) != string(res2.Result) {
		t.Fatalf("initialize not idempotent: %s vs %s", res1.Result, res2.Result)
	}
	if first.ProtocolVersion != mcp.ProtocolVersion {
		t.Fatalf("protocolVersion = %q, want %q", first.ProtocolVersion, mcp.ProtocolVersion)
	}
	if first.ServerInfo.Name != "mcp-clipboard-server" {
		t.Fatalf("serverInfo = %+v", first.ServerInfo)
	}
	if first.Capabilities.Tools == nil {
		t.Fatalf("tools capability not advertised: %+v", first.Capabilities)
	}
	if sess.ClientInfo().Name != "client" {
		t.Fatalf("client info not recorded: %+v", sess.ClientInfo())
	}
}

func TestToolsBeforeInitialize(t *testing.T) {
	eng, sess := newTestEngine(t)
	ctx := context.Background()

	for _, method := range []mcp.Method{mcp.ToolsListMethod, mcp.ToolsCallMethod} {
		res := eng.HandleRequest(ctx, sess, request(t, "x", method, nil))
		if res.Error == nil || res.Error.Code != jsonrpc.ErrorCodeInternalError {
			t.Fatalf("%s before initialize: got %+v, want -32603", method, res.Error)
		}
	}
	if sess.State() != StateUninitialized {
		t.Fatalf("premature calls must not change state, got %q", sess.State())
	}
}

func TestUnknownMethod(t *testing.T) {
	eng, sess := newTestEngine(t)
	res := eng.HandleRequest(context.Background(), sess, request(t, 7, "frobnicate", nil))
	if res.Error == nil || res.Error.Code != jsonrpc.ErrorCodeMethodNotFound {
		t.Fatalf("got %+v, want -32601", res.Error)
	}
	if res.ID.String() != "7" {
		t.Fatalf("id = %q, want 7", res.ID.String())
	}
}

func TestPingAnyState(t *testing.T) {
	eng, sess := newTestEngine(t)
	res := eng.HandleRequest(context.Background(), sess, request(t, "p", mcp.PingMethod, nil))
	if res.Error != nil {
		t.Fatalf("ping before initialize failed: %+v", res.Error)
	}
	if string(res.Result) != "{}" {
		t.Fatalf("ping result = %s, want {}", string(res.Result))
	}
}

func TestToolsListAfterInitialize(t *testing.T) {
	eng, sess := newTestEngine(t)
	ctx := context.Background()
	eng.HandleRequest(ctx, sess, request(t, 1, mcp.InitializeMethod, mcp.InitializeRequest{}))

	var result mcp.ListToolsResult
	decodeResult(t, eng.HandleRequest(ctx, sess, request(t, 2, mcp.ToolsListMethod, nil)), &result)
	if len(result.Tools) != 2 {
		t.Fatalf("tool count = %d, want 2", len(result.Tools))
	}
	if result.Tools[0].Name != "get_clipboard" || result.Tools[1].Name != "set_clipboard" {
		t.Fatalf("unexpected tools: %+v", result.Tools)
	}
}

func TestToolCallUnknownTool(t *testing.T) {
	eng, sess := newTestEngine(t)
	ctx := context.Background()
	eng.HandleRequest(ctx, sess, request(t, 1, mcp.InitializeMethod, mcp.InitializeRequest{}))

	res := eng.HandleRequest(ctx, sess, request(t, 2, mcp.ToolsCallMethod, map[string]any{
		"name":      "nonexistent",
		"arguments": map[string]any{},
	}))
	if res.Error == nil || res.Error.Code != jsonrpc.ErrorCodeMethodNotFound {
		t.Fatalf("got %+v, want -32601", res.Error)
	}
}

func TestToolCallMissingParams(t *testing.T) {
	eng, sess := newTestEngine(t)
	ctx := context.Background()
	eng.HandleRequest(ctx, sess, request(t, 1, mcp.InitializeMethod, mcp.InitializeRequest{}))

	res := eng.HandleRequest(ctx, sess, request(t, 2, mcp.ToolsCallMethod, nil))
	if res.Error == nil || res.Error.Code != jsonrpc.ErrorCodeInvalidParams {
		t.Fatalf("got %+v, want -32602", res.Error)
	}
}

func TestResponseEchoesRequestID(t *testing.T) {
	eng, sess := newTestEngine(t)
	ctx := context.Background()

	for _, id := range []any{"string-id", 42} {
		res := eng.HandleRequest(ctx, sess, request(t, id, mcp.InitializeMethod, mcp.InitializeRequest{}))
		want := jsonrpc.NewRequestID(id).String()
		if res.ID.String() != want {
			t.Fatalf("id = %q, want %q", res.ID.String(), want)
		}
	}
}

func TestShutdownStateIsTerminal(t *testing.T) {
	sess := NewSession()
	sess.BeginShutdown()
	if got := transition(sess.State(), mcp.InitializeMethod); got != StateShuttingDown {
		t.Fatalf("transition from shutting-down = %q", got)
	}
}
