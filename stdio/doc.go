// Package stdio implements a minimal single-connection MCP transport over
// stdin/stdout. It is intended for embedding the clipboard server as a
// subprocess: the host spawns the binary, writes one JSON-RPC document per
// line and reads one response line per request turn.
//
// Characteristics
//
//	Connection model : 1 process <-> 1 client
//	Sessions         : One ephemeral session per process; nothing persists
//	Transport        : Line-oriented JSON-RPC 2.0 (single or batch documents)
//	Concurrency      : Strictly sequential; one request resolves before the
//	                   next line is read
//
// Options allow supplying alternate io.Reader / io.Writer or a custom logger.
//
// Example:
//
//	srv := mcpservice.NewServer(
//	    mcpservice.WithServerInfo(mcp.ImplementationInfo{Name: "mcp-clipboard-server", Version: "1.0.0"}),
//	    mcpservice.WithToolsCapability(cliptools.NewToolsContainer(clipboard.NewSystem())),
//	)
//	h := stdio.NewHandler(srv)
//	if err := h.Serve(context.Background()); err != nil { log.Fatal(err) }
package stdio
