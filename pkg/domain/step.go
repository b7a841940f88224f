package domain

// InputKind defines the kind of free-form input a step expects.
type InputKind string

const (
	// InputKindNumber requests a positive whole number.
	// It is the only kind the script currently uses; the type exists so new
	// kinds can be added without changing the Step shape.
	InputKindNumber InputKind = "number"
)

// OptionIDRestart marks an option as a conversation reset. An option with
// this ID whose NextStep equals the script's initial step is handled by the
// engine as a full restart instead of a normal transition.
const OptionIDRestart = "restart"

// Option is a user-selectable transition from one step to another.
type Option struct {
	ID       string `json:"id" yaml:"id"`
	Text     string `json:"text" yaml:"text"`
	NextStep string `json:"next_step" yaml:"next_step"`
}

// Step is a node in the dialogue graph.
// A step either offers options or prompts for free-form input, never both.
type Step struct {
	ID      string `json:"id" yaml:"id"`
	Message string `json:"message" yaml:"message"`

	// Options are the transitions offered to the user, in display order.
	Options []Option `json:"options,omitempty" yaml:"options,omitempty"`

	// IsInputPrompt marks steps that wait for a typed value instead of a click.
	IsInputPrompt bool `json:"is_input_prompt,omitempty" yaml:"input_prompt,omitempty"`

	// InputKind qualifies the expected input when IsInputPrompt is set.
	InputKind InputKind `json:"input_kind,omitempty" yaml:"input_kind,omitempty"`

	// IsEndStep is informational framing only; end steps still carry a
	// restart option and behave like any other step.
	IsEndStep bool `json:"is_end_step,omitempty" yaml:"end_step,omitempty"`
}

// IsRestart reports whether selecting this option should reset the
// conversation rather than transition, given the script's initial step.
func (o Option) IsRestart(initialStepID string) bool {
	return o.ID == OptionIDRestart && o.NextStep == initialStepID
}
