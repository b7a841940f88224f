// Package script provides the in-memory script repository, the embedded
// default decision tree, and a YAML loader for custom scripts.
//
// A repository is validated once at construction: every transition must
// resolve, the initial step must exist, and every numeric-input step must be
// one of the recognized pricing steps. A script that fails validation never
// reaches the engine.
package script

import (
	"fmt"
	"strings"

	"github.com/acrowfliedover/eGainAssignment/pkg/domain"
	"github.com/acrowfliedover/eGainAssignment/pkg/pricing"
)

// Repository is an immutable id -> step map with a designated entry point.
// It implements ports.ScriptRepository.
type Repository struct {
	initialStepID string
	steps         []domain.Step
	index         map[string]int
}

// New builds a validated repository from authored steps.
// Steps keep their authoring order for introspection; lookup is O(1) via the
// internal index. All validation findings are aggregated into one error.
func New(initialStepID string, steps []domain.Step) (*Repository, error) {
	r := &Repository{
		initialStepID: initialStepID,
		steps:         make([]domain.Step, len(steps)),
		index:         make(map[string]int, len(steps)),
	}
	copy(r.steps, steps)

	var errs []error
	for i, s := range r.steps {
		if s.ID == "" {
			errs = append(errs, &ValidationError{StepID: fmt.Sprintf("#%d", i), Reason: "step has empty id"})
			continue
		}
		if _, dup := r.index[s.ID]; dup {
			errs = append(errs, &ValidationError{StepID: s.ID, Reason: "duplicate step id"})
			continue
		}
		r.index[s.ID] = i
	}

	errs = append(errs, r.validate()...)
	if len(errs) > 0 {
		return nil, &AggregateError{Errors: errs}
	}
	return r, nil
}

// Lookup retrieves a step by ID.
func (r *Repository) Lookup(stepID string) (domain.Step, bool) {
	i, ok := r.index[stepID]
	if !ok {
		return domain.Step{}, false
	}
	return r.steps[i], true
}

// InitialStepID returns the designated entry point.
func (r *Repository) InitialStepID() string {
	return r.initialStepID
}

// Steps returns all steps in authoring order.
func (r *Repository) Steps() []domain.Step {
	out := make([]domain.Step, len(r.steps))
	copy(out, r.steps)
	return out
}

// validate runs the referential-integrity pass over the assembled index.
func (r *Repository) validate() []error {
	var errs []error

	if r.initialStepID == "" {
		errs = append(errs, &ValidationError{Reason: "initial step id is empty"})
	} else if _, ok := r.index[r.initialStepID]; !ok {
		errs = append(errs, &ValidationError{StepID: r.initialStepID, Reason: "initial step not defined"})
	}

	for _, s := range r.steps {
		seen := make(map[string]bool, len(s.Options))
		for _, o := range s.Options {
			if o.ID == "" {
				errs = append(errs, &ValidationError{StepID: s.ID, Reason: "option has empty id"})
			} else if seen[o.ID] {
				errs = append(errs, &ValidationError{StepID: s.ID, OptionID: o.ID, Reason: "duplicate option id"})
			}
			seen[o.ID] = true

			if o.NextStep == "" {
				errs = append(errs, &ValidationError{StepID: s.ID, OptionID: o.ID, Reason: "option has empty next_step"})
			} else if _, ok := r.index[o.NextStep]; !ok {
				errs = append(errs, &ValidationError{StepID: s.ID, OptionID: o.ID,
					Reason: fmt.Sprintf("next_step %q does not resolve", o.NextStep)})
			}
		}

		if s.IsInputPrompt {
			if s.InputKind != domain.InputKindNumber {
				errs = append(errs, &ValidationError{StepID: s.ID,
					Reason: fmt.Sprintf("unsupported input kind %q", s.InputKind)})
			}
			route, ok := pricing.RouteForStep(s.ID)
			if !ok {
				errs = append(errs, &ValidationError{StepID: s.ID,
					Reason: "input step has no pricing route; recognized steps: " + strings.Join(pricing.InputStepIDs(), ", ")})
			} else if _, ok := r.index[route.ResultStepID]; !ok {
				errs = append(errs, &ValidationError{StepID: s.ID,
					Reason: fmt.Sprintf("pricing result step %q does not resolve", route.ResultStepID)})
			}
		}
	}

	return errs
}
