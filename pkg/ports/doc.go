// Package ports declares the boundary interfaces of the conversation engine:
// the script repository it reads from and the state store sessions persist
// to. Adapters under internal/adapters provide the implementations.
package ports
