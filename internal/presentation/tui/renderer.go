// Package tui renders conversation transcripts for the interactive terminal
// client.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/acrowfliedover/eGainAssignment/pkg/domain"
)

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer() func(string) (string, error) {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Detect light/dark background
		glamour.WithWordWrap(100),
	)

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// FormatBotMessage lays out a bot message with its numbered options as
// markdown, ready for the glamour renderer. Options are presented by number
// so the terminal user can answer "1" instead of typing an option ID.
func FormatBotMessage(msg domain.Message) string {
	var sb strings.Builder
	sb.WriteString(msg.Content)

	if len(msg.Options) > 0 {
		sb.WriteString("\n")
		for i, opt := range msg.Options {
			sb.WriteString(fmt.Sprintf("\n%d. %s", i+1, opt.Text))
		}
	}
	if msg.IsInputPrompt {
		sb.WriteString("\n\n*(type a whole number and press Enter)*")
	}
	return sb.String()
}

// PlainBotMessage is the fallback layout when the renderer is unavailable or
// the output is not a terminal.
func PlainBotMessage(msg domain.Message) string {
	var sb strings.Builder
	sb.WriteString(msg.Content)
	sb.WriteString("\n")

	if len(msg.Options) > 0 {
		sb.WriteString("\n")
		for i, opt := range msg.Options {
			sb.WriteString(fmt.Sprintf("  %d) %s\n", i+1, opt.Text))
		}
	}
	return sb.String()
}
