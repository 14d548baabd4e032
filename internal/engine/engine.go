// Package engine routes parsed JSON-RPC requests through the protocol state
// machine to the server capabilities and converts every failure into a wire
// error response. It is transport-agnostic: the stdio framer hands it one
// request at a time and writes whatever response comes back.
package engine

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/clipmcp/mcp-clipboard-go/internal/jsonrpc"
	"github.com/clipmcp/mcp-clipboard-go/internal/logctx"
	"github.com/clipmcp/mcp-clipboard-go/internal/protoerr"
	"github.com/clipmcp/mcp-clipboard-go/mcp"
	"github.com/clipmcp/mcp-clipboard-go/mcpservice"
)

// Engine dispatches requests against a server descriptor. It holds no
// per-session state; the Session is threaded through each call.
type Engine struct {
	srv *mcpservice.Server
	log *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger overrides the engine logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// New constructs an Engine over the given server descriptor.
func New(srv *mcpservice.Server, opts ...EngineOption) *Engine {
	e := &Engine{srv: srv, log: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// precondition is the pure routing check of the state machine: it decides,
// from (state, method) alone, whether a method may run now. A nil return
// means the method is routable.
func precondition(state State, method mcp.Method) error {
	switch method {
	case mcp.InitializeMethod, mcp.PingMethod:
		return nil
	case mcp.ToolsListMethod, mcp.ToolsCallMethod:
		if state != StateInitialized {
			return protoerr.New(protoerr.KindInternal, "Server not initialized. Call initialize first.")
		}
		return nil
	default:
		return protoerr.Newf(protoerr.KindMethodNotFound, "Method not found: %s", method)
	}
}

// HandleRequest resolves a single request to exactly one response. It never
// returns nil: every failure mode is folded into an error response carrying
// the request's ID, echoed verbatim (including null).
func (e *Engine) HandleRequest(ctx context.Context, sess *Session, req *jsonrpc.Request) *jsonrpc.Response {
	start := time.Now()
	method := mcp.Method(req.Method)

	ctx = logctx.WithSessionData(ctx, &logctx.SessionData{SessionID: sess.ID(), State: string(sess.State())})
	ctx = logctx.WithRPCMessage(ctx, &logctx.RPCMessage{Method: req.Method, ID: req.ID.String()})
	log := e.log

	if err := precondition(sess.State(), method); err != nil {
		log.InfoContext(ctx, "engine.handle_request.rejected",
			slog.String("err", err.Error()),
			slog.Int64("dur_ms", time.Since(start).Milliseconds()))
		return protoerr.Response(req.ID, err)
	}

	var res *jsonrpc.Response
	switch method {
	case mcp.InitializeMethod:
		res = e.handleInitialize(ctx, sess, req)
	case mcp.PingMethod:
		res = e.handlePing(ctx, req)
	case mcp.ToolsListMethod:
		res = e.handleToolsList(ctx, req)
	case mcp.ToolsCallMethod:
		res = e.handleToolCall(ctx, req)
	}

	if res != nil && res.Error == nil {
		sess.state = transition(sess.State(), method)
	}

	if res != nil && res.Error != nil {
		log.InfoContext(ctx, "engine.handle_request.fail",
			slog.Int("code", int(res.Error.Code)),
			slog.String("err", res.Error.Message),
			slog.Int64("dur_ms", time.Since(start).Milliseconds()))
	} else {
		log.DebugContext(ctx, "engine.handle_request.ok",
			slog.Int64("dur_ms", time.Since(start).Milliseconds()))
	}
	return res
}

func (e *Engine) handleInitialize(ctx context.Context, sess *Session, req *jsonrpc.Request) *jsonrpc.Response {
	var params mcp.InitializeRequest
	if len(req.Params) > 0 {
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return protoerr.Response(req.ID, protoerr.New(protoerr.KindInvalidParams, "Invalid initialize parameters"))
		}
	}

	// The requested protocol version is accepted without validation; the
	// server always answers with the version it implements. Re-initializing
	// is tolerated and simply re-records client info.
	sess.clientInfo = params.ClientInfo
	e.log.InfoContext(ctx, "engine.initialize",
		slog.String("client_name", params.ClientInfo.Name),
		slog.String("client_version", params.ClientInfo.Version),
		slog.String("requested_protocol_version", params.ProtocolVersion))

	result := &mcp.InitializeResult{
		ProtocolVersion: mcp.ProtocolVersion,
		Capabilities: mcp.ServerCapabilities{
			Tools: &mcp.ToolsCapabilityInfo{},
		},
		ServerInfo: e.srv.GetServerInfo(),
	}
	if instr, ok := e.srv.GetInstructions(); ok {
		result.Instructions = instr
	}

	return e.result(req.ID, result)
}

func (e *Engine) handlePing(_ context.Context, req *jsonrpc.Request) *jsonrpc.Response {
	return e.result(req.ID, mcp.EmptyResult{})
}

func (e *Engine) handleToolsList(ctx context.Context, req *jsonrpc.Request) *jsonrpc.Response {
	tc, ok := e.srv.GetToolsCapability()
	if !ok {
		return protoerr.Response(req.ID, protoerr.New(protoerr.KindMethodNotFound, "tools capability not supported"))
	}

	tools := tc.ListTools()
	e.log.DebugContext(ctx, "engine.tools_list", slog.Int("tool_count", len(tools)))

	return e.result(req.ID, &mcp.ListToolsResult{Tools: tools})
}

func (e *Engine) handleToolCall(ctx context.Context, req *jsonrpc.Request) *jsonrpc.Response {
	var params mcp.CallToolRequestReceived
	if len(req.Params) == 0 {
		return protoerr.Response(req.ID, protoerr.New(protoerr.KindInvalidParams, "Missing parameters for tool call"))
	}
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return protoerr.Response(req.ID, protoerr.New(protoerr.KindInvalidParams, "Invalid tool call parameters"))
	}
	if params.Name == "" {
		return protoerr.Response(req.ID, protoerr.New(protoerr.KindInvalidParams, "Missing 'name' parameter"))
	}

	ctx = logctx.WithToolCallData(ctx, &logctx.ToolCallData{ToolName: params.Name})

	tc, ok := e.srv.GetToolsCapability()
	if !ok {
		return protoerr.Response(req.ID, protoerr.New(protoerr.KindMethodNotFound, "tools capability not supported"))
	}

	res, err := tc.CallTool(ctx, &params)
	if err != nil {
		return protoerr.Response(req.ID, err)
	}
	return e.result(req.ID, res)
}

func (e *Engine) result(id *jsonrpc.RequestID, result any) *jsonrpc.Response {
	res, err := jsonrpc.NewResultResponse(id, result)
	if err != nil {
		return protoerr.Response(id, protoerr.New(protoerr.KindInternal, "Internal server error"))
	}
	return res
}
