// Package middleware wraps a StateStore with at-rest behaviors such as
// encryption and PII masking. Middlewares compose; the engine and the session
// manager see a plain StateStore either way.
package middleware

import "github.com/acrowfliedover/eGainAssignment/pkg/ports"

// Middleware allows wrapping a StateStore to add behavior.
type Middleware func(ports.StateStore) ports.StateStore

// Chain applies middlewares so the first listed is the outermost wrapper.
func Chain(store ports.StateStore, middlewares ...Middleware) ports.StateStore {
	for i := len(middlewares) - 1; i >= 0; i-- {
		store = middlewares[i](store)
	}
	return store
}
