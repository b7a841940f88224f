package ports

import "github.com/acrowfliedover/eGainAssignment/pkg/domain"

// ScriptRepository defines how the engine looks up step definitions.
// The script is authored data, loaded once and never mutated; implementations
// must be safe for concurrent reads.
type ScriptRepository interface {
	// Lookup retrieves a step by ID. The second return reports whether the
	// step exists.
	Lookup(stepID string) (domain.Step, bool)

	// InitialStepID returns the designated entry point of the script.
	InitialStepID() string

	// Steps returns all steps in authoring order, for introspection and
	// visualization tools.
	Steps() []domain.Step
}
