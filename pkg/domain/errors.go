package domain

import "errors"

// ErrSessionNotFound is returned when a session ID cannot be found in the store.
var ErrSessionNotFound = errors.New("session not found")

// ErrStepNotFound is returned when a step ID does not resolve in the script.
var ErrStepNotFound = errors.New("step not found")

// ErrUnknownOption is returned when an option ID is not offered by the
// current step.
var ErrUnknownOption = errors.New("unknown option")

// ErrNotAwaitingInput is returned when numeric input is submitted while the
// current step is not an input prompt.
var ErrNotAwaitingInput = errors.New("conversation is not awaiting numeric input")
