package mcpservice

import (
	"bytes"
	"encoding/json"
	"sort"
	"unicode/utf8"

	"github.com/clipmcp/mcp-clipboard-go/internal/protoerr"
	"github.com/clipmcp/mcp-clipboard-go/mcp"
)

// ValidateArguments checks a raw argument payload against a tool input
// schema. Rules are applied in order:
//
//  1. arguments must be a JSON object; absence counts as an empty object only
//     when the schema declares no required properties
//  2. every required property must be present
//  3. no properties outside the declared set are permitted
//  4. each present property must match its declared primitive type
//  5. string properties with a declared maxLength must not exceed it, counted
//     in Unicode code points regardless of byte encoding
//
// Failures are returned as invalid-params protocol errors whose message is
// the human-readable detail.
func ValidateArguments(schema mcp.ToolInputSchema, raw json.RawMessage) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		if len(schema.Required) > 0 {
			return protoerr.Newf(protoerr.KindInvalidParams, "Missing required parameter: '%s'", schema.Required[0])
		}
		return nil
	}

	var args map[string]json.RawMessage
	if err := json.Unmarshal(raw, &args); err != nil {
		return protoerr.New(protoerr.KindInvalidParams, "Tool arguments must be an object")
	}

	for _, key := range schema.Required {
		if _, ok := args[key]; !ok {
			return protoerr.Newf(protoerr.KindInvalidParams, "Missing required parameter: '%s'", key)
		}
	}

	// Deterministic iteration keeps failure messages stable across runs.
	keys := make([]string, 0, len(args))
	for key := range args {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	// Undeclared keys are rejected before any per-property check so the
	// reported failure follows the rule order, not the keys' lexical order.
	for _, key := range keys {
		if _, declared := schema.Properties[key]; !declared {
			return protoerr.Newf(protoerr.KindInvalidParams, "Unexpected parameter: '%s'", key)
		}
	}

	for _, key := range keys {
		if err := validateProperty(key, schema.Properties[key], args[key]); err != nil {
			return err
		}
	}

	return nil
}

func validateProperty(key string, prop mcp.SchemaProperty, raw json.RawMessage) error {
	// json.Unmarshal leaves the target untouched on a JSON null, so a null
	// value would slip past every type check below.
	isNull := bytes.Equal(bytes.TrimSpace(raw), []byte("null"))

	switch prop.Type {
	case "string":
		var s string
		if err := json.Unmarshal(raw, &s); err != nil || isNull {
			return protoerr.Newf(protoerr.KindInvalidParams, "Parameter '%s' must be a string", key)
		}
		if prop.MaxLength != nil {
			if n := utf8.RuneCountInString(s); n > *prop.MaxLength {
				return protoerr.Newf(protoerr.KindInvalidParams,
					"Parameter '%s' exceeds maximum length of %d characters (got %d)", key, *prop.MaxLength, n)
			}
		}
	case "number":
		var f float64
		if err := json.Unmarshal(raw, &f); err != nil || isNull {
			return protoerr.Newf(protoerr.KindInvalidParams, "Parameter '%s' must be a number", key)
		}
	case "integer":
		var f float64
		if err := json.Unmarshal(raw, &f); err != nil || isNull || f != float64(int64(f)) {
			return protoerr.Newf(protoerr.KindInvalidParams, "Parameter '%s' must be an integer", key)
		}
	case "boolean":
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil || isNull {
			return protoerr.Newf(protoerr.KindInvalidParams, "Parameter '%s' must be a boolean", key)
		}
	case "array":
		var a []json.RawMessage
		if err := json.Unmarshal(raw, &a); err != nil || isNull {
			return protoerr.Newf(protoerr.KindInvalidParams, "Parameter '%s' must be an array", key)
		}
	case "object":
		var m map[string]json.RawMessage
		if err := json.Unmarshal(raw, &m); err != nil || isNull {
			return protoerr.Newf(protoerr.KindInvalidParams, "Parameter '%s' must be an object", key)
		}
	}
	return nil
}
