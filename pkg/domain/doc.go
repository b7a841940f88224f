// Package domain contains the core value types of the conversation engine:
// steps and options (the static script graph), transcript messages, session
// state, sentinel errors, and lifecycle events.
//
// Everything here is plain data. Behavior lives in the engine and in the
// adapters around it.
package domain
