// Package chatbot is the high-level entry point for the eGain pricing
// assistant library. It wraps the internal engine and script loading behind a
// small API for embedding the conversation in other programs.
package chatbot

import (
	"fmt"
	"log/slog"

	"github.com/acrowfliedover/eGainAssignment/internal/engine"
	"github.com/acrowfliedover/eGainAssignment/internal/script"
	"github.com/acrowfliedover/eGainAssignment/pkg/domain"
)

// Version is the released version of the module.
const Version = "1.0.0"

// Conversation is one pricing dialogue. It is not safe for concurrent use;
// callers hosting multiple sessions should serialize access per conversation.
type Conversation struct {
	eng *engine.Engine

	scriptPath string
	logger     *slog.Logger
	hooks      domain.LifecycleHooks
}

// Option configures a Conversation.
type Option func(*Conversation)

// WithScriptPath loads the dialogue script from a YAML file instead of the
// embedded eGain script.
func WithScriptPath(path string) Option {
	return func(c *Conversation) {
		c.scriptPath = path
	}
}

// WithLogger sets a structured logger for engine diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Conversation) {
		c.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(c *Conversation) {
		c.hooks = hooks
	}
}

// New starts a conversation positioned at the welcome step.
func New(opts ...Option) (*Conversation, error) {
	c := &Conversation{}
	for _, opt := range opts {
		opt(c)
	}

	repo, err := script.Load(c.scriptPath)
	if err != nil {
		return nil, fmt.Errorf("loading script: %w", err)
	}

	engineOpts := []engine.Option{engine.WithHooks(c.hooks)}
	if c.logger != nil {
		engineOpts = append(engineOpts, engine.WithLogger(c.logger))
	}

	c.eng, err = engine.New(repo, engineOpts...)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// State returns a snapshot of the conversation.
func (c *Conversation) State() *domain.State {
	return c.eng.State()
}

// CurrentStep returns the step the conversation is positioned at.
func (c *Conversation) CurrentStep() (domain.Step, bool) {
	return c.eng.CurrentStep()
}

// SelectOption applies the transition for one of the current step's options.
func (c *Conversation) SelectOption(optionID string) error {
	return c.eng.SelectOption(optionID)
}

// SubmitNumericInput answers the current input prompt. Validation failures
// are conversational and surface as bot messages, not errors.
func (c *Conversation) SubmitNumericInput(raw string) error {
	return c.eng.SubmitNumericInput(raw)
}

// Reset starts the conversation over from the welcome step.
func (c *Conversation) Reset() {
	c.eng.Reset()
}

// Hydrate adopts a previously persisted state, for example one stored by a
// session store.
func (c *Conversation) Hydrate(state *domain.State) error {
	return c.eng.Hydrate(state)
}
