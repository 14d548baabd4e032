// Package protoerr defines the closed set of failure kinds the server can
// produce and the single translation step from those kinds to JSON-RPC wire
// error codes. Components return *Error values; only the dispatch boundary
// converts them into jsonrpc.Error objects.
package protoerr

import (
	"errors"
	"fmt"

	"github.com/clipmcp/mcp-clipboard-go/internal/jsonrpc"
)

// Kind enumerates every failure class the server distinguishes on the wire.
type Kind int

const (
	// KindParse covers malformed JSON and non-object/array top-level input.
	KindParse Kind = iota
	// KindInvalidRequest covers structurally invalid request objects,
	// including the empty batch.
	KindInvalidRequest
	// KindMethodNotFound covers unknown top-level methods and unknown tools.
	KindMethodNotFound
	// KindInvalidParams covers schema/validation failures.
	KindInvalidParams
	// KindInternal covers premature use and unclassified internal failures.
	KindInternal
	// KindServer covers unexpected tool-domain failures.
	KindServer
	// KindClipboard covers clipboard write failures reported by the platform.
	KindClipboard
)

// ErrorCodeClipboard is the application-defined wire code for clipboard
// failures, in the implementation-reserved -32000..-32099 range.
const ErrorCodeClipboard jsonrpc.ErrorCode = -32001

// wireCodes is the kind -> wire code mapping. It is deliberately a data
// structure rather than scattered switch statements so the mapping itself is
// testable.
var wireCodes = map[Kind]jsonrpc.ErrorCode{
	KindParse:          jsonrpc.ErrorCodeParseError,
	KindInvalidRequest: jsonrpc.ErrorCodeInvalidRequest,
	KindMethodNotFound: jsonrpc.ErrorCodeMethodNotFound,
	KindInvalidParams:  jsonrpc.ErrorCodeInvalidParams,
	KindInternal:       jsonrpc.ErrorCodeInternalError,
	KindServer:         jsonrpc.ErrorCodeServerError,
	KindClipboard:      ErrorCodeClipboard,
}

// WireCode returns the JSON-RPC error code for a kind. Unknown kinds fall
// back to the internal error code.
func WireCode(k Kind) jsonrpc.ErrorCode {
	if code, ok := wireCodes[k]; ok {
		return code
	}
	return jsonrpc.ErrorCodeInternalError
}

// Error is a protocol failure carrying its kind, a human-readable message and
// an optional details string surfaced under the wire error's data.details.
type Error struct {
	Kind    Kind
	Message string
	Details string
}

func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Details)
	}
	return e.Message
}

// New builds an Error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf builds an Error of the given kind with a formatted message.
func Newf(kind Kind, format string, a ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, a...)}
}

// WithDetails returns a copy of the error carrying a details string.
func (e *Error) WithDetails(details string) *Error {
	dup := *e
	dup.Details = details
	return &dup
}

// errorData is the wire shape of the optional error data member.
type errorData struct {
	Details string `json:"details"`
}

// Response converts any error into a JSON-RPC error response for the given
// request ID. *Error values map through the wire code table; everything else
// becomes an internal error. This is the single translation point from Go
// errors to wire errors.
func Response(id *jsonrpc.RequestID, err error) *jsonrpc.Response {
	var pe *Error
	if !errors.As(err, &pe) {
		pe = &Error{Kind: KindInternal, Message: "Internal server error"}
	}

	var data any
	if pe.Details != "" {
		data = errorData{Details: pe.Details}
	}
	return jsonrpc.NewErrorResponse(id, WireCode(pe.Kind), pe.Message, data)
}
