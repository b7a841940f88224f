package engine_test

import (
	"strings"
	"testing"

	"github.com/acrowfliedover/eGainAssignment/internal/engine"
	"github.com/acrowfliedover/eGainAssignment/internal/script"
	"github.com/acrowfliedover/eGainAssignment/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, opts ...engine.Option) *engine.Engine {
	t.Helper()
	e, err := engine.New(script.Default(), opts...)
	require.NoError(t, err)
	return e
}

func TestNew_StartsWithWelcome(t *testing.T) {
	e := newEngine(t)
	state := e.State()

	assert.Equal(t, "welcome", state.CurrentStepID)
	assert.False(t, state.AwaitingNumericInput)
	assert.Empty(t, state.Path)

	require.Len(t, state.Transcript, 1)
	msg := state.Transcript[0]
	assert.Equal(t, domain.AuthorBot, msg.Author)
	assert.Contains(t, msg.Content, "Welcome to eGain")
	assert.Len(t, msg.Options, 3)
	assert.NotEmpty(t, msg.ID)
}

func TestSelectOption_Transition(t *testing.T) {
	e := newEngine(t)

	err := e.SelectOption("ai-agent")
	require.NoError(t, err)

	state := e.State()
	assert.Equal(t, "ai-agent-pricing", state.CurrentStepID)
	assert.Equal(t, []string{"ai-agent"}, state.Path)

	// User echo then bot response, in that order.
	require.Len(t, state.Transcript, 3)
	assert.Equal(t, domain.AuthorUser, state.Transcript[1].Author)
	assert.Equal(t, "AI Agent", state.Transcript[1].Content)
	assert.Equal(t, domain.AuthorBot, state.Transcript[2].Author)
	assert.Contains(t, state.Transcript[2].Content, "two pricings for AI Agent")
}

func TestSelectOption_EveryResolvableOptionAppendsTwoMessages(t *testing.T) {
	repo := script.Default()

	for _, step := range repo.Steps() {
		for _, opt := range step.Options {
			if opt.IsRestart(repo.InitialStepID()) {
				continue
			}

			e, err := engine.New(repo)
			require.NoError(t, err)

			// Position the engine at the owning step.
			require.NoError(t, e.Hydrate(&domain.State{
				CurrentStepID: step.ID,
				Transcript:    []domain.Message{{ID: "seed", Author: domain.AuthorBot, Content: step.Message}},
				Path:          []string{},
			}))

			before := len(e.State().Transcript)
			require.NoError(t, e.SelectOption(opt.ID), "step %s option %s", step.ID, opt.ID)

			state := e.State()
			assert.Equal(t, opt.NextStep, state.CurrentStepID, "step %s option %s", step.ID, opt.ID)
			require.Len(t, state.Transcript, before+2)
			assert.Equal(t, domain.AuthorUser, state.Transcript[before].Author)
			assert.Equal(t, domain.AuthorBot, state.Transcript[before+1].Author)
		}
	}
}

func TestSelectOption_Unknown(t *testing.T) {
	e := newEngine(t)

	err := e.SelectOption("no-such-option")
	assert.ErrorIs(t, err, domain.ErrUnknownOption)
	assert.Len(t, e.State().Transcript, 1, "rejected selection must not mutate state")
}

func TestSelectOption_Restart(t *testing.T) {
	e := newEngine(t)
	require.NoError(t, e.SelectOption("neither"))
	require.Equal(t, "exit", e.State().CurrentStepID)

	require.NoError(t, e.SelectOption("restart"))

	state := e.State()
	assert.Equal(t, "welcome", state.CurrentStepID)
	assert.Empty(t, state.Path)
	require.Len(t, state.Transcript, 1, "restart clears the transcript down to the welcome message")
	assert.Contains(t, state.Transcript[0].Content, "Welcome to eGain")
}

// stubRepo lets tests build graphs the validating repository would refuse,
// such as an option whose target does not exist.
type stubRepo struct {
	initial string
	steps   map[string]domain.Step
}

func (s *stubRepo) Lookup(id string) (domain.Step, bool) {
	st, ok := s.steps[id]
	return st, ok
}
func (s *stubRepo) InitialStepID() string { return s.initial }
func (s *stubRepo) Steps() []domain.Step {
	out := make([]domain.Step, 0, len(s.steps))
	for _, st := range s.steps {
		out = append(out, st)
	}
	return out
}

func TestSelectOption_UnresolvableTargetIsSilent(t *testing.T) {
	repo := &stubRepo{
		initial: "welcome",
		steps: map[string]domain.Step{
			"welcome": {
				ID:      "welcome",
				Message: "Hi",
				Options: []domain.Option{{ID: "go", Text: "Go", NextStep: "missing"}},
			},
		},
	}

	e, err := engine.New(repo)
	require.NoError(t, err)

	require.NoError(t, e.SelectOption("go"))

	state := e.State()
	assert.Equal(t, "welcome", state.CurrentStepID, "state must not advance")
	require.Len(t, state.Transcript, 2, "user echo is kept, no bot response follows")
	assert.Equal(t, domain.AuthorUser, state.Transcript[1].Author)
}

func TestSubmitNumericInput_Validation(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantMessage string // expected bot error content, empty for silent
	}{
		{"decimal point", "5.0", "Please enter a whole number (no decimals)."},
		{"integer-valued decimal", "250.00", "Please enter a whole number (no decimals)."},
		{"zero", "0", "Please enter a valid number greater than 0."},
		{"negative", "-3", "Please enter a valid number greater than 0."},
		{"not a number", "abc", "Please enter a valid number greater than 0."},
		{"empty", "", ""},
		{"whitespace", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(t)
			require.NoError(t, e.SelectOption("ai-agent"))
			require.NoError(t, e.SelectOption("option-1"))
			require.True(t, e.State().AwaitingNumericInput)

			before := len(e.State().Transcript)
			require.NoError(t, e.SubmitNumericInput(tt.input))

			state := e.State()
			assert.Equal(t, "ai-agent-resolution-input", state.CurrentStepID, "rejection must not advance the step")
			assert.True(t, state.AwaitingNumericInput)

			if tt.wantMessage == "" {
				assert.Len(t, state.Transcript, before, "blank input is ignored with no feedback")
				return
			}

			require.Len(t, state.Transcript, before+1)
			last := state.Transcript[len(state.Transcript)-1]
			assert.Equal(t, domain.AuthorBot, last.Author)
			assert.Equal(t, tt.wantMessage, last.Content)
			assert.True(t, last.IsInputPrompt, "error message re-prompts for input")
			assert.Equal(t, domain.InputKindNumber, last.InputKind)
		})
	}
}

func TestSubmitNumericInput_ResolutionEstimate(t *testing.T) {
	e := newEngine(t)
	require.NoError(t, e.SelectOption("ai-agent"))
	require.NoError(t, e.SelectOption("option-1"))

	require.NoError(t, e.SubmitNumericInput("250"))

	state := e.State()
	assert.Equal(t, "resolution-cost-calculation", state.CurrentStepID)
	assert.False(t, state.AwaitingNumericInput)

	last := state.Transcript[len(state.Transcript)-1]
	assert.Equal(t, domain.AuthorBot, last.Author)
	assert.Contains(t, last.Content, "250 resolutions")
	assert.Contains(t, last.Content, "Total Monthly Cost: $150")
	require.Len(t, last.Options, 1)
	assert.Equal(t, "restart", last.Options[0].ID)

	// The user echo precedes the estimate.
	echo := state.Transcript[len(state.Transcript)-2]
	assert.Equal(t, domain.AuthorUser, echo.Author)
	assert.Equal(t, "250", echo.Content)
}

func TestSubmitNumericInput_EnterpriseEstimate(t *testing.T) {
	e := newEngine(t)
	require.NoError(t, e.SelectOption("ai-knowledge-hub"))
	require.NoError(t, e.SelectOption("enterprise-user"))

	require.NoError(t, e.SubmitNumericInput("4"))

	state := e.State()
	assert.Equal(t, "enterprise-cost-calculation", state.CurrentStepID)

	last := state.Transcript[len(state.Transcript)-1]
	assert.Contains(t, last.Content, "4 Enterprise Users")
	assert.Contains(t, last.Content, "Total Monthly Cost: $50")
}

func TestSubmitNumericInput_FractionalEnterpriseTotal(t *testing.T) {
	e := newEngine(t)
	require.NoError(t, e.SelectOption("ai-knowledge-hub"))
	require.NoError(t, e.SelectOption("enterprise-user"))

	require.NoError(t, e.SubmitNumericInput("3"))

	last := e.State().Transcript[len(e.State().Transcript)-1]
	assert.Contains(t, last.Content, "Total Monthly Cost: $37.5")
}

func TestSubmitNumericInput_LeadingDigitsParse(t *testing.T) {
	e := newEngine(t)
	require.NoError(t, e.SelectOption("ai-knowledge-hub"))
	require.NoError(t, e.SelectOption("contact-center-user"))

	// parseInt semantics: trailing garbage is ignored.
	require.NoError(t, e.SubmitNumericInput("3users"))

	state := e.State()
	assert.Equal(t, "contact-center-cost-calculation", state.CurrentStepID)
	last := state.Transcript[len(state.Transcript)-1]
	assert.Contains(t, last.Content, "Your Input: 3 Contact Center Users")
	assert.Contains(t, last.Content, "Total Monthly Cost: $75")
}

func TestSubmitNumericInput_NotAwaiting(t *testing.T) {
	e := newEngine(t)

	err := e.SubmitNumericInput("5")
	assert.ErrorIs(t, err, domain.ErrNotAwaitingInput)
	assert.Len(t, e.State().Transcript, 1)
}

func TestReset_Idempotent(t *testing.T) {
	e := newEngine(t)
	require.NoError(t, e.SelectOption("ai-agent"))

	e.Reset()
	first := e.State()
	e.Reset()
	second := e.State()

	assert.Equal(t, first.CurrentStepID, second.CurrentStepID)
	assert.Equal(t, len(first.Transcript), len(second.Transcript))
	require.Len(t, second.Transcript, 1)
	assert.Empty(t, second.Path)
	assert.Equal(t, first.Transcript[0].Content, second.Transcript[0].Content)
}

func TestHydrate(t *testing.T) {
	t.Run("empty transcript behaves like reset", func(t *testing.T) {
		e := newEngine(t)
		require.NoError(t, e.Hydrate(domain.NewState("welcome")))

		state := e.State()
		require.Len(t, state.Transcript, 1)
		assert.Contains(t, state.Transcript[0].Content, "Welcome to eGain")
	})

	t.Run("resumes persisted state", func(t *testing.T) {
		e := newEngine(t)
		require.NoError(t, e.SelectOption("ai-agent"))
		saved := e.State()

		resumed := newEngine(t)
		require.NoError(t, resumed.Hydrate(saved))

		state := resumed.State()
		assert.Equal(t, "ai-agent-pricing", state.CurrentStepID)
		assert.Len(t, state.Transcript, 3)

		// The resumed session continues normally.
		require.NoError(t, resumed.SelectOption("option-2"))
		assert.Equal(t, "ai-agent-session-input", resumed.State().CurrentStepID)
	})

	t.Run("unknown current step fails", func(t *testing.T) {
		e := newEngine(t)
		err := e.Hydrate(domain.NewState("no-such-step"))
		assert.ErrorIs(t, err, domain.ErrStepNotFound)
	})
}

func TestHooks(t *testing.T) {
	var steps []string
	var estimates []domain.EstimateEvent
	var rejections []string
	resets := 0

	hooks := domain.LifecycleHooks{
		OnStepEnter: func(ev *domain.StepEvent) { steps = append(steps, ev.StepID) },
		OnEstimate:  func(ev *domain.EstimateEvent) { estimates = append(estimates, *ev) },
		OnInputRejected: func(ev *domain.InputRejectedEvent) {
			rejections = append(rejections, ev.Reason)
		},
		OnReset: func() { resets++ },
	}

	e := newEngine(t, engine.WithHooks(hooks))
	require.NoError(t, e.SelectOption("ai-agent"))
	require.NoError(t, e.SelectOption("option-2"))
	require.NoError(t, e.SubmitNumericInput("2.5"))
	require.NoError(t, e.SubmitNumericInput("-1"))
	require.NoError(t, e.SubmitNumericInput("oops"))
	require.NoError(t, e.SubmitNumericInput("1001"))

	assert.Equal(t, []string{"welcome", "ai-agent-pricing", "ai-agent-session-input", "session-cost-calculation"}, steps)
	assert.Equal(t, []string{"decimal", "not_positive", "unparsable"}, rejections)
	assert.Equal(t, 1, resets, "initial construction counts as a reset")

	require.Len(t, estimates, 1)
	assert.Equal(t, "session", estimates[0].Category)
	assert.Equal(t, 1001, estimates[0].Quantity)
	assert.Equal(t, float64(400), estimates[0].Total)
}

func TestTranscript_MessageIDsUnique(t *testing.T) {
	e := newEngine(t)
	require.NoError(t, e.SelectOption("ai-agent"))
	require.NoError(t, e.SelectOption("option-1"))
	require.NoError(t, e.SubmitNumericInput("100"))

	seen := make(map[string]bool)
	for _, m := range e.State().Transcript {
		if seen[m.ID] {
			t.Fatalf("duplicate message id %q", m.ID)
		}
		seen[m.ID] = true
		if strings.TrimSpace(m.ID) == "" {
			t.Fatal("empty message id")
		}
	}
}
