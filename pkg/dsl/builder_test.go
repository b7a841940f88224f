package dsl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acrowfliedover/eGainAssignment/internal/engine"
	"github.com/acrowfliedover/eGainAssignment/pkg/domain"
	"github.com/acrowfliedover/eGainAssignment/pkg/dsl"
)

func buildMinimalScript(t *testing.T) *dsl.Builder {
	t.Helper()
	b := dsl.New("welcome")

	b.Step("welcome").
		Message("Which product do you want to look into?").
		Option("ai-agent", "AI Agent", "ai-agent-resolution-input").
		Option("neither", "Neither", "exit")

	b.Step("ai-agent-resolution-input").
		Message("How many resolutions per month?").
		NumberInput()

	b.Step("resolution-cost-calculation").
		Message("Your Input: {userInput}\nTotal Monthly Cost: ${totalCost}").
		Restart("Return").
		End()

	b.Step("exit").
		Message("Thanks for stopping by.").
		Restart("Return").
		End()

	return b
}

func TestBuilder_BuildsRunnableScript(t *testing.T) {
	repo, err := buildMinimalScript(t).Build()
	require.NoError(t, err)

	assert.Equal(t, "welcome", repo.InitialStepID())
	assert.Len(t, repo.Steps(), 4)

	// The built script drives the engine end to end.
	eng, err := engine.New(repo)
	require.NoError(t, err)
	require.NoError(t, eng.SelectOption("ai-agent"))
	require.NoError(t, eng.SubmitNumericInput("250"))

	state := eng.State()
	assert.Equal(t, "resolution-cost-calculation", state.CurrentStepID)
	last, _ := state.LatestMessage()
	assert.Contains(t, last.Content, "$150")
}

func TestBuilder_StepOrderIsPreserved(t *testing.T) {
	repo, err := buildMinimalScript(t).Build()
	require.NoError(t, err)

	var ids []string
	for _, step := range repo.Steps() {
		ids = append(ids, step.ID)
	}
	assert.Equal(t, []string{"welcome", "ai-agent-resolution-input", "resolution-cost-calculation", "exit"}, ids)
}

func TestBuilder_StepIsIdempotent(t *testing.T) {
	b := dsl.New("welcome")
	first := b.Step("welcome").Message("Hello")
	second := b.Step("welcome")
	assert.Same(t, first, second)
}

func TestBuilder_RestartTargetsInitialStep(t *testing.T) {
	b := dsl.New("welcome")
	step := b.Step("exit").Message("Bye").Restart("Return").End().Build()

	require.Len(t, step.Options, 1)
	assert.Equal(t, domain.OptionIDRestart, step.Options[0].ID)
	assert.Equal(t, "welcome", step.Options[0].NextStep)
	assert.True(t, step.Options[0].IsRestart("welcome"))
}

func TestBuilder_ValidationFindingsSurface(t *testing.T) {
	b := dsl.New("welcome")
	b.Step("welcome").
		Message("Hello").
		Option("go", "Go", "missing-step")

	_, err := b.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing-step")
}
