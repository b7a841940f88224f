// Package engine implements the conversation state machine: it tracks the
// current step, appends transcript messages, validates numeric input, and
// resolves estimates through the pricing calculator.
package engine

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/acrowfliedover/eGainAssignment/internal/logging"
	"github.com/acrowfliedover/eGainAssignment/pkg/domain"
	"github.com/acrowfliedover/eGainAssignment/pkg/ports"
	"github.com/acrowfliedover/eGainAssignment/pkg/pricing"
	"github.com/google/uuid"
)

// Validation error texts shown to the user. The wording is part of the
// conversational contract and must not drift.
const (
	msgWholeNumber    = "Please enter a whole number (no decimals)."
	msgPositiveNumber = "Please enter a valid number greater than 0."
)

// Engine drives one conversation session over a script.
// Operations are synchronous and must be serialized by the caller; the engine
// holds no locks of its own.
type Engine struct {
	repo   ports.ScriptRepository
	state  *domain.State
	hooks  domain.LifecycleHooks
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

// Option configures the Engine.
type Option func(*Engine)

// WithLogger sets a structured logger for engine diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithHooks registers observability callbacks.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithClock overrides the timestamp source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithIDGenerator overrides the message ID source. Used by tests.
func WithIDGenerator(newID func() string) Option {
	return func(e *Engine) {
		e.newID = newID
	}
}

// New creates an engine positioned at the script's initial step.
// The fresh session immediately receives the welcome message, mirroring a
// reset, so a new engine is always observable in a consistent shape.
func New(repo ports.ScriptRepository, opts ...Option) (*Engine, error) {
	if repo == nil {
		return nil, fmt.Errorf("script repository is required")
	}

	e := &Engine{
		repo:   repo,
		logger: logging.NewNop(),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}

	if _, ok := repo.Lookup(repo.InitialStepID()); !ok {
		return nil, fmt.Errorf("initial step %q: %w", repo.InitialStepID(), domain.ErrStepNotFound)
	}

	e.applyReset()
	return e, nil
}

// Hydrate adopts a previously persisted state.
// A state with an empty transcript behaves as if Reset had been called.
func (e *Engine) Hydrate(state *domain.State) error {
	if state == nil {
		return fmt.Errorf("state is nil")
	}
	if _, ok := e.repo.Lookup(state.CurrentStepID); !ok {
		return fmt.Errorf("current step %q: %w", state.CurrentStepID, domain.ErrStepNotFound)
	}

	e.state = state.Clone()
	if len(e.state.Transcript) == 0 {
		e.applyReset()
	}
	return nil
}

// State returns a read-only snapshot of the conversation.
func (e *Engine) State() *domain.State {
	return e.state.Clone()
}

// CurrentStep returns the step the conversation is positioned at.
func (e *Engine) CurrentStep() (domain.Step, bool) {
	return e.repo.Lookup(e.state.CurrentStepID)
}

// Reset replaces the session with a fresh one and replays the welcome message.
func (e *Engine) Reset() {
	e.applyReset()
}

// SelectOption applies the transition for an option offered by the current
// step. A restart option resets the session instead of transitioning.
// An option ID the current step does not offer returns ErrUnknownOption.
func (e *Engine) SelectOption(optionID string) error {
	current, ok := e.repo.Lookup(e.state.CurrentStepID)
	if !ok {
		return fmt.Errorf("current step %q: %w", e.state.CurrentStepID, domain.ErrStepNotFound)
	}

	var option *domain.Option
	for i := range current.Options {
		if current.Options[i].ID == optionID {
			option = &current.Options[i]
			break
		}
	}
	if option == nil {
		return fmt.Errorf("%w: %q is not offered by step %q", domain.ErrUnknownOption, optionID, current.ID)
	}

	if option.IsRestart(e.repo.InitialStepID()) {
		e.applyReset()
		return nil
	}

	e.appendUserMessage(option.Text)
	e.state.Path = append(e.state.Path, option.ID)

	next, ok := e.repo.Lookup(option.NextStep)
	if !ok {
		// A missing target drops the transition without user feedback: the
		// echo stays, the state does not advance. Surfaced through the
		// logger only.
		e.logger.Warn("transition target missing, conversation does not advance",
			"step", current.ID,
			"option", option.ID,
			"next_step", option.NextStep,
		)
		return nil
	}

	e.enterStep(next)
	return nil
}

// SubmitNumericInput validates and applies a typed value at an input prompt.
// Rejections are conversational (a bot message) and leave the step unchanged;
// blank input is ignored entirely. A successful submission computes the
// estimate and advances to the result step.
func (e *Engine) SubmitNumericInput(raw string) error {
	if !e.state.AwaitingNumericInput {
		return domain.ErrNotAwaitingInput
	}

	if strings.TrimSpace(raw) == "" {
		return nil
	}

	// Textual check, not numeric: "5.0" is rejected even though its value is
	// a whole number.
	if strings.Contains(raw, ".") {
		e.rejectInput(msgWholeNumber, "decimal")
		return nil
	}

	n, err := parseLeadingInt(strings.TrimSpace(raw))
	if err != nil {
		e.rejectInput(msgPositiveNumber, "unparsable")
		return nil
	}
	if n <= 0 {
		e.rejectInput(msgPositiveNumber, "not_positive")
		return nil
	}

	e.appendUserMessage(raw)

	route, ok := pricing.RouteForStep(e.state.CurrentStepID)
	if !ok {
		// Defensive: validated scripts cannot position an input prompt
		// outside the dispatch table.
		e.logger.Warn("input step has no pricing route", "step", e.state.CurrentStepID)
		return nil
	}

	total, err := pricing.Cost(route.Category, n)
	if err != nil {
		return fmt.Errorf("computing estimate for step %q: %w", e.state.CurrentStepID, err)
	}

	result, ok := e.repo.Lookup(route.ResultStepID)
	if !ok {
		return fmt.Errorf("result step %q: %w", route.ResultStepID, domain.ErrStepNotFound)
	}

	content := strings.NewReplacer(
		"{userInput}", strconv.Itoa(n),
		"{totalCost}", pricing.FormatAmount(total),
	).Replace(result.Message)

	e.state.CurrentStepID = result.ID
	e.state.AwaitingNumericInput = false
	e.appendBotMessage(content, result.Options, false, "")

	if e.hooks.OnEstimate != nil {
		e.hooks.OnEstimate(&domain.EstimateEvent{
			Timestamp: e.now(),
			StepID:    result.ID,
			Category:  string(route.Category),
			Quantity:  n,
			Total:     total,
		})
	}
	e.emitStepEnter(result)
	return nil
}

// applyReset replaces the state wholesale and replays the welcome message.
func (e *Engine) applyReset() {
	e.state = domain.NewState(e.repo.InitialStepID())
	if e.hooks.OnReset != nil {
		e.hooks.OnReset()
	}

	initial, ok := e.repo.Lookup(e.repo.InitialStepID())
	if !ok {
		// New() verifies the initial step; this is unreachable for a
		// validated repository.
		e.logger.Error("initial step missing on reset", "step", e.repo.InitialStepID())
		return
	}
	e.enterStep(initial)
}

// enterStep positions the conversation at a step and appends its message.
func (e *Engine) enterStep(step domain.Step) {
	e.state.CurrentStepID = step.ID
	e.state.AwaitingNumericInput = step.IsInputPrompt
	e.appendBotMessage(step.Message, step.Options, step.IsInputPrompt, step.InputKind)
	e.emitStepEnter(step)
}

// rejectInput surfaces a validation error as a bot message and re-prompts.
func (e *Engine) rejectInput(text, reason string) {
	e.appendBotMessage(text, nil, true, domain.InputKindNumber)
	if e.hooks.OnInputRejected != nil {
		e.hooks.OnInputRejected(&domain.InputRejectedEvent{
			Timestamp: e.now(),
			StepID:    e.state.CurrentStepID,
			Reason:    reason,
		})
	}
}

func (e *Engine) appendUserMessage(content string) {
	e.append(domain.Message{
		ID:        e.newID(),
		Author:    domain.AuthorUser,
		Content:   content,
		CreatedAt: e.now(),
	})
}

func (e *Engine) appendBotMessage(content string, options []domain.Option, isInputPrompt bool, kind domain.InputKind) {
	e.append(domain.Message{
		ID:            e.newID(),
		Author:        domain.AuthorBot,
		Content:       content,
		CreatedAt:     e.now(),
		Options:       options,
		IsInputPrompt: isInputPrompt,
		InputKind:     kind,
	})
}

func (e *Engine) append(msg domain.Message) {
	e.state.Transcript = append(e.state.Transcript, msg)
	if e.hooks.OnMessageAppended != nil {
		e.hooks.OnMessageAppended(&domain.MessageEvent{
			Timestamp: msg.CreatedAt,
			MessageID: msg.ID,
			Author:    msg.Author,
			StepID:    e.state.CurrentStepID,
		})
	}
}

func (e *Engine) emitStepEnter(step domain.Step) {
	if e.hooks.OnStepEnter != nil {
		e.hooks.OnStepEnter(&domain.StepEvent{
			Timestamp: e.now(),
			StepID:    step.ID,
			EndStep:   step.IsEndStep,
		})
	}
}

// parseLeadingInt parses the leading integer portion of s: an optional sign
// followed by digits, with trailing garbage ignored ("12abc" -> 12).
func parseLeadingInt(s string) (int, error) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == i {
		return 0, fmt.Errorf("no leading digits in %q", s)
	}
	return strconv.Atoi(s[:j])
}
