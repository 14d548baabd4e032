// Package mcp contains protocol data types and constants shared across the
// transport and server capability implementations. It mirrors the wire
// representation of the Model Context Protocol methods this server speaks
// (initialize, ping, tools/list, tools/call) while keeping the surface
// Go-friendly: exported structs with json tags and string constants for
// method names.
//
// The package is intentionally free of transport logic: the stdio framer and
// the dispatch engine import these types but implement their own framing and
// session handling.
//
// # Method Names
//
// JSON-RPC method names are enumerated as Method constants (e.g.
// ToolsCallMethod). Using the constants avoids typographical mistakes and
// gives a single point of truth.
//
// # Capabilities
//
// ClientCapabilities and ServerCapabilities capture the advertised feature
// sets exchanged during initialize. This server advertises exactly one
// capability: an empty tools object.
package mcp
