package engine

import (
	"github.com/clipmcp/mcp-clipboard-go/mcp"
	"github.com/google/uuid"
)

// State is the protocol lifecycle state of a session.
type State string

const (
	// StateUninitialized is the state before a successful initialize call.
	StateUninitialized State = "uninitialized"
	// StateInitialized is the normal operating state.
	StateInitialized State = "initialized"
	// StateShuttingDown is terminal: the transport stops reading and no
	// further requests reach the engine.
	StateShuttingDown State = "shutting-down"
)

// Session carries the per-connection protocol state. The stdio transport
// creates exactly one per process and threads it through every dispatch; the
// engine itself stays stateless.
type Session struct {
	id         string
	state      State
	clientInfo mcp.ImplementationInfo
}

// NewSession returns a fresh uninitialized session with a unique identity
// used in logs.
func NewSession() *Session {
	return &Session{
		id:    uuid.NewString(),
		state: StateUninitialized,
	}
}

// ID returns the session's log identity.
func (s *Session) ID() string { return s.id }

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// ClientInfo returns the implementation info the client sent in its most
// recent initialize call.
func (s *Session) ClientInfo() mcp.ImplementationInfo { return s.clientInfo }

// BeginShutdown moves the session to the terminal shutting-down state. It is
// driven from outside the state machine (signal handling, EOF) and never
// reverses.
func (s *Session) BeginShutdown() { s.state = StateShuttingDown }

// transition is the pure state-transition function: given the current state
// and the incoming method, it yields the state after a successful handling of
// that method. Initialize is idempotent; no method leaves the shutting-down
// state.
func transition(state State, method mcp.Method) State {
	if state == StateShuttingDown {
		return state
	}
	if method == mcp.InitializeMethod {
		return StateInitialized
	}
	return state
}
