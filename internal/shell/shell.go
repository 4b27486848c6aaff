package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/msto63/mcli/internal/prompt"
	"github.com/msto63/mcli/pkg/core/logging"
	"github.com/sirupsen/logrus"
)

// State is the position of the shell in its prompt/dispatch cycle
type State int

const (
	StatePrompting State = iota
	StateDispatching
	StateTerminated
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case StatePrompting:
		return "prompting"
	case StateDispatching:
		return "dispatching"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// terminationNotice is printed when an interrupt ends the session. Readers
// leave the cursor at the start of a line, so it needs no leading break.
const terminationNotice = "Terminating CLI instance..."

// Console is the output surface of the shell.
type Console interface {
	Print(text string)
	Error(msg string)
	Notice(msg string)
	Banner(text string)
	Clear()
}

// Options configures a Shell
type Options struct {
	Reader    prompt.Reader
	Console   Console
	Logger    *logrus.Entry
	Resources fs.FS
	Prompt    string

	// Commands are registered after the built-ins.
	Commands []*Command
}

// Shell runs the interactive dispatch loop
type Shell struct {
	registry   *Registry
	dispatcher *Dispatcher
	reader     prompt.Reader
	console    Console
	logger     *logrus.Entry
	resources  fs.FS
	prompt     string
	state      State
}

// New builds a shell with the built-in commands plus opts.Commands and seals
// its registry.
func New(opts Options) *Shell {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if opts.Prompt == "" {
		opts.Prompt = "> "
	}

	s := &Shell{
		registry:  NewRegistry(),
		reader:    opts.Reader,
		console:   opts.Console,
		logger:    logger.WithField("component", "shell"),
		resources: opts.Resources,
		prompt:    opts.Prompt,
		state:     StatePrompting,
	}

	s.registerBuiltins()
	for _, cmd := range opts.Commands {
		s.registry.Register(cmd)
	}
	s.registry.Seal()

	s.dispatcher = NewDispatcher(s.registry, logger)
	return s
}

// Registry returns the sealed command registry
func (s *Shell) Registry() *Registry {
	return s.registry
}

// State returns the current loop state
func (s *Shell) State() State {
	return s.state
}

// Run clears the screen, renders the banner and runs the loop until the
// exit command or an interrupt, both of which return nil. End of input
// returns ErrInputClosed.
func (s *Shell) Run(ctx context.Context) error {
	s.console.Clear()
	s.renderBanner(ctx)

	s.logger.Info("session started")

	for {
		s.state = StatePrompting
		s.console.Print("")

		line, err := s.reader.ReadLine(ctx, s.prompt, s.registry.Completions())
		if err != nil {
			switch {
			case errors.Is(err, prompt.ErrInterrupt):
				return s.terminate("interrupt")
			case errors.Is(err, io.EOF):
				s.state = StateTerminated
				s.logger.Info("input closed")
				return ErrInputClosed
			default:
				s.state = StateTerminated
				return fmt.Errorf("failed to read input: %w", err)
			}
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		s.state = StateDispatching
		if err := s.Execute(ctx, line); errors.Is(err, ErrExit) {
			s.state = StateTerminated
			s.logger.Info("session ended by exit")
			return nil
		}

		if ctx.Err() != nil {
			return s.terminate("signal")
		}
	}
}

// Execute tokenizes and dispatches one line. Failures are reported on the
// console and returned; ErrExit is returned without output.
func (s *Shell) Execute(ctx context.Context, line string) error {
	tokens, err := Tokenize(line)
	if err != nil {
		s.report(err)
		return err
	}
	return s.ExecuteTokens(ctx, tokens)
}

// ExecuteTokens dispatches already tokenized input with the same reporting
// as Execute.
func (s *Shell) ExecuteTokens(ctx context.Context, tokens []string) error {
	err := s.dispatcher.Dispatch(ctx, tokens)
	if err != nil && !errors.Is(err, ErrExit) {
		s.report(err)
	}
	return err
}

func (s *Shell) terminate(reason string) error {
	s.state = StateTerminated
	s.console.Notice(terminationNotice)
	s.logger.WithField("reason", reason).Info("session terminated")
	return nil
}

// report renders err as a single console line
func (s *Shell) report(err error) {
	var e *Error
	if errors.As(err, &e) && e.Code == CodeUnknownCommand {
		s.console.Error(fmt.Sprintf("Unknown command '%s'. See 'help' for more information.", e.Command))
	} else if e != nil {
		s.console.Error("Error: " + e.Detail())
	} else {
		s.console.Error("Error: " + err.Error())
	}

	s.logger.WithFields(logrus.Fields{
		"code":  CodeOf(err),
		"error": err.Error(),
	}).Warn("command failed")
}
