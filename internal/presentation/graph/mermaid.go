// Package graph renders the dialogue script as a Mermaid flowchart.
package graph

import (
	"fmt"
	"strings"

	"github.com/acrowfliedover/eGainAssignment/pkg/domain"
)

// Overlay contains session state to highlight on the graph.
type Overlay struct {
	VisitedSteps []string
	CurrentStep  string
}

// GenerateMermaid produces Mermaid flowchart syntax from a script.
// Shapes encode step roles:
//   - initial step: ((circle))
//   - input prompt: [/parallelogram/]
//   - end step: [[subroutine]]
//   - everything else: [rectangle]
//
// Restart edges back to the initial step are dotted so the main flow stays
// readable.
func GenerateMermaid(steps []domain.Step, initialStepID string, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, step := range steps {
		safeID := sanitizeMermaidID(step.ID)

		opener, closer := "[", "]"
		switch {
		case step.ID == initialStepID:
			opener, closer = "((", "))"
		case step.IsInputPrompt:
			opener, closer = "[/", "/]"
		case step.IsEndStep:
			opener, closer = "[[", "]]"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, step.ID, closer))

		for _, opt := range step.Options {
			safeTo := sanitizeMermaidID(opt.NextStep)
			label := strings.ReplaceAll(opt.Text, "\"", "'")

			arrow := fmt.Sprintf("-- \"%s\" -->", label)
			if opt.IsRestart(initialStepID) {
				arrow = fmt.Sprintf("-. \"%s\" .->", label)
			}
			sb.WriteString(fmt.Sprintf("    %s %s %s\n", safeID, arrow, safeTo))
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text for contrast regardless of the viewer's theme.
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		visitedSet := make(map[string]bool)
		for _, id := range overlay.VisitedSteps {
			safeID := sanitizeMermaidID(id)
			if safeID != "" && !visitedSet[safeID] {
				visitedSet[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", safeID))
			}
		}
		if overlay.CurrentStep != "" {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", sanitizeMermaidID(overlay.CurrentStep)))
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	return strings.NewReplacer(".", "_", "-", "_", "/", "_", "\\", "_").Replace(id)
}
