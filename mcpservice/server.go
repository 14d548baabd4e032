package mcpservice

import (
	"github.com/clipmcp/mcp-clipboard-go/mcp"
)

// ServerOption configures a Server.
type ServerOption func(*Server)

// Server bundles the static facts the dispatch engine needs to answer
// protocol requests: implementation info, optional instructions, and the
// tools capability. Everything is fixed at construction time; the server has
// no per-session configuration.
type Server struct {
	info         mcp.ImplementationInfo
	instructions *string
	tools        *ToolsContainer
}

// NewServer builds a Server using functional options.
func NewServer(opts ...ServerOption) *Server {
	s := &Server{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithServerInfo sets the server info returned from initialize.
func WithServerInfo(info mcp.ImplementationInfo) ServerOption {
	return func(s *Server) { s.info = info }
}

// WithInstructions sets human-readable instructions returned during initialize.
func WithInstructions(instr string) ServerOption {
	return func(s *Server) { s.instructions = &instr }
}

// WithToolsCapability wires the tools container advertised and dispatched by
// the server.
func WithToolsCapability(tc *ToolsContainer) ServerOption {
	return func(s *Server) { s.tools = tc }
}

// GetServerInfo returns the configured implementation info.
func (s *Server) GetServerInfo() mcp.ImplementationInfo {
	return s.info
}

// GetInstructions returns the configured instructions, if any.
func (s *Server) GetInstructions() (string, bool) {
	if s.instructions == nil {
		return "", false
	}
	return *s.instructions, true
}

// GetToolsCapability returns the tools container, if one was configured.
func (s *Server) GetToolsCapability() (*ToolsContainer, bool) {
	if s.tools == nil {
		return nil, false
	}
	return s.tools, true
}
