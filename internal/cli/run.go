// Package cli implements the interactive terminal client for the pricing
// assistant.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/acrowfliedover/eGainAssignment/internal/adapters/file"
	"github.com/acrowfliedover/eGainAssignment/internal/engine"
	"github.com/acrowfliedover/eGainAssignment/internal/presentation/tui"
	"github.com/acrowfliedover/eGainAssignment/internal/script"
	"github.com/acrowfliedover/eGainAssignment/pkg/domain"
	"github.com/acrowfliedover/eGainAssignment/pkg/session"
)

// RunOptions contains all the configuration for the interactive run command.
type RunOptions struct {
	ScriptPath string
	SessionID  string
	SessionDir string
	Fresh      bool
	Debug      bool
	Plain      bool
}

// Execute runs one interactive conversation on the terminal.
func Execute(opts RunOptions) error {
	logger := createLogger(opts.Debug)

	repo, err := script.Load(opts.ScriptPath)
	if err != nil {
		return fmt.Errorf("loading script: %w", err)
	}

	interactive := term.IsTerminal(int(os.Stdout.Fd())) && !opts.Plain
	if interactive {
		tui.PrintBanner()
	}

	engineOpts := []engine.Option{engine.WithLogger(logger)}
	if opts.Debug {
		engineOpts = append(engineOpts, engine.WithHooks(debugHooks(logger)))
	}
	eng, err := engine.New(repo, engineOpts...)
	if err != nil {
		return fmt.Errorf("initializing conversation: %w", err)
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	var mgr *session.Manager
	if opts.SessionID != "" {
		mgr = session.NewManager(file.New(opts.SessionDir), session.WithLogger(logger))

		if opts.Fresh {
			if err := mgr.Delete(sigCtx, opts.SessionID); err != nil {
				return fmt.Errorf("resetting session %q: %w", opts.SessionID, err)
			}
		}

		state, err := mgr.LoadOrStart(sigCtx, opts.SessionID, eng.State)
		if err != nil {
			return fmt.Errorf("loading session %q: %w", opts.SessionID, err)
		}

		if err := eng.Hydrate(state); err != nil {
			// The stored step no longer exists, likely after a script edit.
			printSystemMessage("Stored session no longer matches the script, starting over.")
			logger.Warn("session hydration failed", "session_id", opts.SessionID, "err", err)
			eng.Reset()
		} else if len(state.Transcript) > 1 {
			printSystemMessage("Resuming session '%s' at '%s'.", opts.SessionID, state.CurrentStepID)
		} else {
			printSystemMessage("Session '%s' active.", opts.SessionID)
		}
	}

	loop := &conversationLoop{
		eng:       eng,
		mgr:       mgr,
		sessionID: opts.SessionID,
		scanner:   bufio.NewScanner(NewInterruptibleReader(os.Stdin, sigCtx.Done())),
	}
	if interactive {
		loop.render = tui.NewRenderer()
	}

	runErr := loop.run(sigCtx)
	if sigCtx.Err() != nil && runErr == nil {
		runErr = sigCtx.Err()
	}

	if isInterrupted(runErr) {
		if sigCtx.Signal() == os.Interrupt {
			fmt.Println("[CTRL+C]")
		}
		printSystemMessage("Goodbye.")
	}
	return handleExecutionError(runErr)
}

// conversationLoop owns the read-print cycle of one terminal conversation.
type conversationLoop struct {
	eng       *engine.Engine
	mgr       *session.Manager
	sessionID string
	scanner   *bufio.Scanner
	render    func(string) (string, error)
	printed   int
}

func (l *conversationLoop) run(ctx context.Context) error {
	for {
		l.printNewMessages()

		state := l.eng.State()
		line, err := l.readLine()
		if err != nil {
			return err
		}

		trimmed := strings.TrimSpace(line)
		switch strings.ToLower(trimmed) {
		case "q", "quit", "exit":
			printSystemMessage("Goodbye.")
			return nil
		}

		if state.AwaitingNumericInput {
			if err := l.eng.SubmitNumericInput(line); err != nil {
				return err
			}
		} else {
			l.selectFromOptions(trimmed)
		}

		if err := l.persist(ctx); err != nil {
			return err
		}
	}
}

// selectFromOptions resolves the typed answer against the current step's
// options, by 1-based number or by option ID.
func (l *conversationLoop) selectFromOptions(answer string) {
	step, ok := l.eng.CurrentStep()
	if !ok || len(step.Options) == 0 {
		return
	}

	if answer == "" {
		return
	}

	var chosen *domain.Option
	if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(step.Options) {
		chosen = &step.Options[n-1]
	} else {
		for i := range step.Options {
			if strings.EqualFold(step.Options[i].ID, answer) {
				chosen = &step.Options[i]
				break
			}
		}
	}

	if chosen == nil {
		printSystemMessage("Pick a number between 1 and %d.", len(step.Options))
		return
	}

	if err := l.eng.SelectOption(chosen.ID); err != nil {
		printSystemMessage("That option is not available: %v", err)
	}
	// A restart truncates the transcript; replay from the fresh welcome.
	if l.printed > len(l.eng.State().Transcript) {
		l.printed = 0
	}
}

// printNewMessages renders every transcript entry not yet shown.
func (l *conversationLoop) printNewMessages() {
	transcript := l.eng.State().Transcript
	for ; l.printed < len(transcript); l.printed++ {
		msg := transcript[l.printed]
		if msg.Author == domain.AuthorUser {
			fmt.Printf("> %s\n", msg.Content)
			continue
		}
		l.printBotMessage(msg)
	}
}

func (l *conversationLoop) printBotMessage(msg domain.Message) {
	if l.render != nil {
		if out, err := l.render(tui.FormatBotMessage(msg)); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Println(tui.PlainBotMessage(msg))
}

func (l *conversationLoop) readLine() (string, error) {
	fmt.Print("> ")
	if !l.scanner.Scan() {
		if err := l.scanner.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("interrupted")
	}
	return l.scanner.Text(), nil
}

func (l *conversationLoop) persist(ctx context.Context) error {
	if l.mgr == nil {
		return nil
	}
	if err := l.mgr.Save(ctx, l.sessionID, l.eng.State()); err != nil {
		return fmt.Errorf("saving session %q: %w", l.sessionID, err)
	}
	return nil
}
