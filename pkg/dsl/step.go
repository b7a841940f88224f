package dsl

import "github.com/acrowfliedover/eGainAssignment/pkg/domain"

// StepBuilder provides a fluent API for configuring one step.
type StepBuilder struct {
	step    domain.Step
	builder *Builder
}

// Message sets the bot text shown when the conversation enters the step.
func (s *StepBuilder) Message(text string) *StepBuilder {
	s.step.Message = text
	return s
}

// Option adds a choice transitioning to the target step.
func (s *StepBuilder) Option(id, text, target string) *StepBuilder {
	s.step.Options = append(s.step.Options, domain.Option{
		ID:       id,
		Text:     text,
		NextStep: target,
	})
	return s
}

// Restart adds the conventional restart option back to the initial step.
func (s *StepBuilder) Restart(text string) *StepBuilder {
	return s.Option(domain.OptionIDRestart, text, s.builder.initialStepID)
}

// NumberInput marks the step as a numeric input prompt.
func (s *StepBuilder) NumberInput() *StepBuilder {
	s.step.IsInputPrompt = true
	s.step.InputKind = domain.InputKindNumber
	s.step.Options = nil
	return s
}

// End marks the step as a terminal step of the conversation.
func (s *StepBuilder) End() *StepBuilder {
	s.step.IsEndStep = true
	return s
}

// Build returns the underlying domain.Step.
// This is primarily used by the Builder, but exposed for advanced usage.
func (s *StepBuilder) Build() domain.Step {
	return s.step
}
