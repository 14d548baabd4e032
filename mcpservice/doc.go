// Package mcpservice provides the building blocks the dispatch engine
// consumes: the server descriptor (implementation info, instructions, tools
// capability), the static tool registry, and the argument validator.
//
// Quick start:
//
//	type EchoArgs struct { Message string `json:"message"` }
//	tools := mcpservice.NewToolsContainer(
//	    mcpservice.NewTool("echo",
//	        func(ctx context.Context, a EchoArgs) (*mcp.CallToolResult, error) {
//	            return mcpservice.TextResult("you said: " + a.Message), nil
//	        },
//	        mcpservice.WithToolDescription("Echo a message back to the caller"),
//	    ),
//	)
//
//	srv := mcpservice.NewServer(
//	    mcpservice.WithServerInfo(mcp.ImplementationInfo{Name: "example", Version: "1.0.0"}),
//	    mcpservice.WithToolsCapability(tools),
//	)
//
// Tool input schemas are reflected from the typed argument struct via
// invopop/jsonschema once at construction; the registry is immutable for the
// life of the process and incoming arguments are validated against the
// reflected schema before any handler runs.
package mcpservice
