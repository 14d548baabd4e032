package mcpservice

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/clipmcp/mcp-clipboard-go/internal/protoerr"
	"github.com/clipmcp/mcp-clipboard-go/mcp"
	"github.com/invopop/jsonschema"
)

// ToolHandler is the function signature used to handle a tool invocation.
// Arguments have already been validated against the tool's input schema when
// the handler runs.
type ToolHandler func(ctx context.Context, req *mcp.CallToolRequestReceived) (*mcp.CallToolResult, error)

// StaticTool pairs an MCP tool descriptor with its handler.
type StaticTool struct {
	Descriptor mcp.Tool
	Handler    ToolHandler
}

// ToolOption configures NewTool behavior.
type ToolOption func(*toolConfig)

type toolConfig struct {
	description               string
	allowAdditionalProperties bool // default false (strict)
}

// WithToolDescription sets the tool description used in listings.
func WithToolDescription(desc string) ToolOption {
	return func(c *toolConfig) { c.description = desc }
}

// NewTool constructs a StaticTool from a typed args struct A. It:
//   - Reflects a JSON Schema from A using invopop/jsonschema
//   - Down-converts it to MCP's simplified ToolInputSchema
//   - Wraps the handler with typed JSON decoding of the validated arguments
func NewTool[A any](name string, fn func(ctx context.Context, args A) (*mcp.CallToolResult, error), opts ...ToolOption) StaticTool {
	cfg := toolConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	input := reflectToMCPInputSchema[A](cfg.allowAdditionalProperties)
	desc := mcp.Tool{
		Name:        name,
		Description: cfg.description,
		InputSchema: input,
	}

	handler := func(ctx context.Context, req *mcp.CallToolRequestReceived) (*mcp.CallToolResult, error) {
		var a A
		if len(req.Arguments) > 0 {
			dec := json.NewDecoder(bytes.NewReader(req.Arguments))
			if !cfg.allowAdditionalProperties {
				dec.DisallowUnknownFields()
			}
			if err := dec.Decode(&a); err != nil {
				return nil, protoerr.Newf(protoerr.KindInvalidParams, "invalid arguments: %v", err)
			}
		}
		return fn(ctx, a)
	}

	return StaticTool{Descriptor: desc, Handler: handler}
}

// reflectToMCPInputSchema reflects a Go type A into a jsonschema.Schema and
// converts it to the simplified mcp.ToolInputSchema. Unknown field policy is
// surfaced via the AdditionalProperties flag on the returned schema.
func reflectToMCPInputSchema[A any](allowAdditional bool) mcp.ToolInputSchema {
	r := &jsonschema.Reflector{
		DoNotReference:            true, // inline defs
		ExpandedStruct:            true, // put struct at root
		AllowAdditionalProperties: allowAdditional,
	}
	// Reflect from a zero value pointer to capture struct tags consistently
	s := r.Reflect(new(A))

	// Only object schemas map cleanly to MCP ToolInputSchema. If not an object,
	// expose an empty object with the configured additionalProperties policy.
	if s == nil || s.Type != "object" {
		return mcp.ToolInputSchema{
			Type:                 "object",
			Properties:           map[string]mcp.SchemaProperty{},
			AdditionalProperties: allowAdditional,
		}
	}

	props := make(map[string]mcp.SchemaProperty)
	if s.Properties != nil {
		for el := s.Properties.Oldest(); el != nil; el = el.Next() {
			props[el.Key] = toMCPProperty(el.Value)
		}
	}
	var required []string
	if len(s.Required) > 0 {
		required = append(required, s.Required...)
	}

	return mcp.ToolInputSchema{
		Type:                 "object",
		Properties:           props,
		Required:             required,
		AdditionalProperties: allowAdditional,
	}
}

// toMCPProperty recursively maps a jsonschema.Schema to the simplified MCP SchemaProperty.
func toMCPProperty(s *jsonschema.Schema) mcp.SchemaProperty {
	if s == nil {
		return mcp.SchemaProperty{}
	}
	p := mcp.SchemaProperty{
		Type:        s.Type,
		Description: s.Description,
	}
	if len(s.Enum) > 0 {
		p.Enum = s.Enum
	}
	if s.MaxLength != nil {
		v := int(*s.MaxLength)
		p.MaxLength = &v
	}
	// Arrays
	if s.Type == "array" && s.Items != nil {
		item := toMCPProperty(s.Items)
		p.Items = &item
	}
	// Objects
	if s.Type == "object" && s.Properties != nil {
		m := make(map[string]mcp.SchemaProperty, s.Properties.Len())
		for el := s.Properties.Oldest(); el != nil; el = el.Next() {
			m[el.Key] = toMCPProperty(el.Value)
		}
		p.Properties = m
	}
	return p
}

// ToolsContainer owns the static, ordered set of tool descriptors and
// handlers. It is the schema registry of the server: built once at startup
// and read-only thereafter. Listing order is insertion order.
type ToolsContainer struct {
	tools    []mcp.Tool             // descriptors for listing, in insertion order
	handlers map[string]ToolHandler // name -> handler
	index    map[string]int         // name -> position in tools
}

// NewToolsContainer constructs a ToolsContainer with the given tool
// definitions. Duplicate names are rejected via Add semantics: the first
// definition wins.
func NewToolsContainer(defs ...StaticTool) *ToolsContainer {
	tc := &ToolsContainer{
		handlers: make(map[string]ToolHandler, len(defs)),
		index:    make(map[string]int, len(defs)),
	}
	for _, d := range defs {
		tc.Add(d)
	}
	return tc
}

// Add registers a new tool if it doesn't duplicate an existing name.
// Returns true if added.
func (tc *ToolsContainer) Add(def StaticTool) bool {
	name := def.Descriptor.Name
	if _, exists := tc.index[name]; exists {
		return false
	}
	tc.index[name] = len(tc.tools)
	tc.tools = append(tc.tools, def.Descriptor)
	if def.Handler != nil {
		tc.handlers[name] = def.Handler
	}
	return true
}

// ListTools returns a copy of the tool descriptors in registry order.
func (tc *ToolsContainer) ListTools() []mcp.Tool {
	out := make([]mcp.Tool, len(tc.tools))
	copy(out, tc.tools)
	return out
}

// CallTool validates the request against the named tool's input schema and
// dispatches to its handler. Unknown tool names map to a method-not-found
// failure, distinct from an unknown top-level method only in message.
func (tc *ToolsContainer) CallTool(ctx context.Context, req *mcp.CallToolRequestReceived) (*mcp.CallToolResult, error) {
	if req == nil || req.Name == "" {
		return nil, protoerr.New(protoerr.KindInvalidParams, "Missing 'name' parameter")
	}
	i, ok := tc.index[req.Name]
	if !ok {
		return nil, protoerr.Newf(protoerr.KindMethodNotFound, "Unknown tool: %s", req.Name)
	}
	if err := ValidateArguments(tc.tools[i].InputSchema, req.Arguments); err != nil {
		return nil, err
	}
	h := tc.handlers[req.Name]
	if h == nil {
		return nil, protoerr.Newf(protoerr.KindInternal, "tool has no handler: %s", req.Name)
	}
	return h(ctx, req)
}

// TextResult is a small helper to build a single-block text CallToolResult.
func TextResult(s string) *mcp.CallToolResult {
	return &mcp.CallToolResult{Content: []mcp.ContentBlock{{Type: mcp.ContentTypeText, Text: s}}}
}
