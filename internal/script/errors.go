package script

import "fmt"

// ValidationError represents a single script validation failure.
type ValidationError struct {
	StepID   string // Offending step (empty for script-level findings)
	OptionID string // Offending option within the step, if any
	Reason   string
}

func (e *ValidationError) Error() string {
	switch {
	case e.StepID == "":
		return e.Reason
	case e.OptionID == "":
		return fmt.Sprintf("step %q: %s", e.StepID, e.Reason)
	default:
		return fmt.Sprintf("step %q option %q: %s", e.StepID, e.OptionID, e.Reason)
	}
}

// AggregateError collects every validation failure found in one pass, so a
// broken script reports all problems at once instead of the first.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d script validation errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

// ValidationErrors returns the individual findings if err is an
// AggregateError, otherwise nil.
func ValidationErrors(err error) []error {
	if aggr, ok := err.(*AggregateError); ok {
		return aggr.Errors
	}
	return nil
}
