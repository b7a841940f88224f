package domain

// State is the mutable snapshot of one conversation session.
// It is owned by a single engine instance and mutated only through the
// engine's three operations (select, submit, reset).
type State struct {
	// CurrentStepID is the step the conversation is positioned at.
	CurrentStepID string `json:"current_step_id"`

	// Transcript is the append-only message log, oldest first.
	Transcript []Message `json:"transcript"`

	// AwaitingNumericInput mirrors the current step's input-prompt flag once
	// the prompt has been shown.
	AwaitingNumericInput bool `json:"awaiting_numeric_input"`

	// Path records the option IDs chosen so far. Debugging/analytics only;
	// no transition or formula consumes it.
	Path []string `json:"path"`
}

// NewState creates a clean state positioned at the given step.
// The transcript starts empty; the engine appends the welcome message as its
// first action.
func NewState(initialStepID string) *State {
	return &State{
		CurrentStepID: initialStepID,
		Transcript:    []Message{},
		Path:          []string{},
	}
}

// LatestMessage returns the newest transcript entry, or false when the
// transcript is empty.
func (s *State) LatestMessage() (Message, bool) {
	if len(s.Transcript) == 0 {
		return Message{}, false
	}
	return s.Transcript[len(s.Transcript)-1], true
}

// Clone returns a deep copy of the state. Stores and snapshots use this so
// callers can never alias the engine's internal slices.
func (s *State) Clone() *State {
	c := &State{
		CurrentStepID:        s.CurrentStepID,
		AwaitingNumericInput: s.AwaitingNumericInput,
		Transcript:           make([]Message, len(s.Transcript)),
		Path:                 make([]string, len(s.Path)),
	}
	copy(c.Path, s.Path)
	for i, m := range s.Transcript {
		if len(m.Options) > 0 {
			opts := make([]Option, len(m.Options))
			copy(opts, m.Options)
			m.Options = opts
		}
		c.Transcript[i] = m
	}
	return c
}
