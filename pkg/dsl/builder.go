package dsl

import (
	"github.com/acrowfliedover/eGainAssignment/internal/script"
	"github.com/acrowfliedover/eGainAssignment/pkg/domain"
)

// Builder accumulates steps for a dialogue script.
type Builder struct {
	initialStepID string
	order         []string
	steps         map[string]*StepBuilder
}

// New creates a script builder rooted at the given initial step.
func New(initialStepID string) *Builder {
	return &Builder{
		initialStepID: initialStepID,
		steps:         make(map[string]*StepBuilder),
	}
}

// Step creates a step in the script, or returns the existing builder when the
// ID was already added.
func (b *Builder) Step(id string) *StepBuilder {
	if sb, ok := b.steps[id]; ok {
		return sb
	}
	sb := &StepBuilder{
		step:    domain.Step{ID: id},
		builder: b,
	}
	b.steps[id] = sb
	b.order = append(b.order, id)
	return sb
}

// Build compiles and validates the script. Validation reports every finding
// at once, the same as loading a YAML script would.
func (b *Builder) Build() (*script.Repository, error) {
	steps := make([]domain.Step, 0, len(b.order))
	for _, id := range b.order {
		steps = append(steps, b.steps[id].step)
	}
	return script.New(b.initialStepID, steps)
}
