package mcp

// Capabilities
// ClientCapabilities advertises client features. The clipboard server does
// not act on any of them but records what the client sent.
type ClientCapabilities struct {
	Roots *struct {
		ListChanged bool `json:"listChanged"`
	} `json:"roots,omitempty"`
	Sampling    *struct{} `json:"sampling,omitempty"`
	Elicitation *struct{} `json:"elicitation,omitempty"`
}

// ServerCapabilities advertises server features.
type ServerCapabilities struct {
	Tools *ToolsCapabilityInfo `json:"tools,omitempty"`
}

// ToolsCapabilityInfo is the tools capability advertisement. This server
// never changes its tool set after startup, so listChanged is omitted when
// false and the capability serializes as the empty object.
type ToolsCapabilityInfo struct {
	ListChanged bool `json:"listChanged,omitzero"`
}

// ImplementationInfo describes the implementation name and version.
type ImplementationInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Title   string `json:"title,omitzero"`
}

// Content types
// ContentBlock is a typed content part of a tool result. Tool results in this
// server always carry exactly one text block.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ContentTypeText is the only content block type this server produces.
const ContentTypeText = "text"

// Tools
// Tool describes a callable tool and its input schema.
type Tool struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	InputSchema ToolInputSchema `json:"inputSchema"`
}

// ToolInputSchema is a JSON-schema-like description of tool input.
type ToolInputSchema struct {
	Type                 string                    `json:"type"`
	Properties           map[string]SchemaProperty `json:"properties,omitempty"`
	Required             []string                  `json:"required,omitempty"`
	AdditionalProperties bool                      `json:"additionalProperties,omitzero"`
}

// SchemaProperty is a simplified schema node used in tool input schemas.
type SchemaProperty struct {
	Type        string                    `json:"type,omitempty"`
	Description string                    `json:"description,omitzero"`
	Items       *SchemaProperty           `json:"items,omitempty"`
	Properties  map[string]SchemaProperty `json:"properties,omitempty"`
	Enum        []any                     `json:"enum,omitempty"`
	// MaxLength bounds string properties, counted in Unicode code points.
	MaxLength *int `json:"maxLength,omitempty"`
}

// ProtocolVersion is the protocol revision this server implements and always
// returns from initialize, regardless of the version the client requested.
const ProtocolVersion = "2024-11-05"
