package graph_test

import (
	"strings"
	"testing"

	"github.com/acrowfliedover/eGainAssignment/internal/presentation/graph"
	"github.com/acrowfliedover/eGainAssignment/internal/script"
	"github.com/acrowfliedover/eGainAssignment/pkg/domain"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		steps    []domain.Step
		contains []string
	}{
		{
			name: "Initial Step Shape",
			steps: []domain.Step{
				{ID: "welcome"},
			},
			contains: []string{
				`welcome(("welcome"))`,
			},
		},
		{
			name: "Input Step Shape",
			steps: []domain.Step{
				{ID: "count-input", IsInputPrompt: true},
			},
			contains: []string{
				`count_input[/"count-input"/]`,
			},
		},
		{
			name: "End Step Shape",
			steps: []domain.Step{
				{ID: "exit", IsEndStep: true},
			},
			contains: []string{
				`exit[["exit"]]`,
			},
		},
		{
			name: "Option Edge With Label",
			steps: []domain.Step{
				{
					ID: "pick",
					Options: []domain.Option{
						{ID: "a", Text: "Option \"A\"", NextStep: "next-step"},
					},
				},
			},
			contains: []string{
				`pick -- "Option 'A'" --> next_step`,
			},
		},
		{
			name: "Restart Edge Is Dotted",
			steps: []domain.Step{
				{
					ID: "exit",
					Options: []domain.Option{
						{ID: "restart", Text: "Return", NextStep: "welcome"},
					},
					IsEndStep: true,
				},
			},
			contains: []string{
				`exit -. "Return" .-> welcome`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(tt.steps, "welcome", nil)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("GenerateMermaid() = \n%v\nWant substring: %v", got, want)
				}
			}
		})
	}
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	repo := script.Default()
	got := graph.GenerateMermaid(repo.Steps(), repo.InitialStepID(), &graph.Overlay{
		VisitedSteps: []string{"welcome", "ai-agent-pricing", "ai-agent-pricing"},
		CurrentStep:  "ai-agent-resolution-input",
	})

	for _, want := range []string{
		"classDef visited",
		"classDef current",
		"class ai_agent_pricing visited;",
		"class ai_agent_resolution_input current;",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}

	// Duplicates in the visited list must not produce duplicate class lines.
	if strings.Count(got, "class ai_agent_pricing visited;") != 1 {
		t.Errorf("visited class emitted more than once:\n%s", got)
	}
}

func TestGenerateMermaid_FullScript(t *testing.T) {
	repo := script.Default()
	got := graph.GenerateMermaid(repo.Steps(), repo.InitialStepID(), nil)

	if !strings.HasPrefix(got, "graph TD\n") {
		t.Errorf("flowchart header missing:\n%s", got)
	}
	for _, step := range repo.Steps() {
		id := strings.ReplaceAll(step.ID, "-", "_")
		if !strings.Contains(got, id) {
			t.Errorf("step %q missing from graph", step.ID)
		}
	}
}
