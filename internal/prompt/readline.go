package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"
)

// LineEditorConfig configures the readline backend. Nil streams use the
// process stdin/stdout/stderr.
type LineEditorConfig struct {
	HistoryFile string
	Stdin       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer
}

// LineEditor reads lines with readline editing, history and nested
// prefix completion.
type LineEditor struct {
	rl        *readline.Instance
	completer *completer
	stdin     *readline.CancelableStdin
	out       io.Writer
}

// NewLineEditor creates a readline instance
func NewLineEditor(cfg LineEditorConfig) (*LineEditor, error) {
	in := cfg.Stdin
	if in == nil {
		in = readline.Stdin
	}
	out := cfg.Stdout
	if out == nil {
		out = readline.Stdout
	}

	c := &completer{}
	// closing stdin is the only way to wake a blocked Readline
	stdin := readline.NewCancelableStdin(in)
	// InterruptPrompt "\n" makes readline print only the line break on Ctrl-C
	rlCfg := &readline.Config{
		Prompt:          "> ",
		AutoComplete:    c,
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "\n",
		EOFPrompt:       "",
		Stdin:           stdin,
		Stdout:          out,
		Stderr:          cfg.Stderr,
	}
	if cfg.Stdin != nil {
		// terminal detection only looks at the process descriptors
		rlCfg.FuncIsTerminal = func() bool { return false }
	}

	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		stdin.Close()
		return nil, fmt.Errorf("failed to initialize line editor: %w", err)
	}
	return &LineEditor{
		rl:        rl,
		completer: c,
		stdin:     stdin,
		out:       out,
	}, nil
}

// ReadLine blocks until the user submits a line, interrupts, closes input or
// ctx is cancelled. Cancellation closes the input, so the editor reads
// nothing afterwards.
func (e *LineEditor) ReadLine(ctx context.Context, prompt string, completions map[string][]string) (string, error) {
	if ctx.Err() != nil {
		return "", ErrInterrupt
	}

	e.completer.completions = completions
	e.rl.SetPrompt(prompt)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			e.stdin.Close()
		case <-done:
		}
	}()

	line, err := e.rl.Readline()
	if ctx.Err() != nil {
		fmt.Fprintln(e.out)
		return "", ErrInterrupt
	}
	if err != nil {
		return "", mapReadlineError(err)
	}
	return line, nil
}

// Close restores the terminal and flushes history
func (e *LineEditor) Close() error {
	e.stdin.Close()
	return e.rl.Close()
}

func mapReadlineError(err error) error {
	switch {
	case errors.Is(err, readline.ErrInterrupt):
		return ErrInterrupt
	case errors.Is(err, io.EOF):
		return io.EOF
	default:
		return fmt.Errorf("line editor failed: %w", err)
	}
}

// completer rebuilds the prefix tree from the current completion view on
// every completion request.
type completer struct {
	completions map[string][]string
}

// Do implements readline.AutoCompleter
func (c *completer) Do(line []rune, pos int) ([][]rune, int) {
	return newPrefixCompleter(c.completions).Do(line, pos)
}

func newPrefixCompleter(completions map[string][]string) *readline.PrefixCompleter {
	items := make([]readline.PrefixCompleterInterface, 0, len(completions))
	for _, name := range sortedNames(completions) {
		var children []readline.PrefixCompleterInterface
		for _, hint := range completions[name] {
			children = append(children, readline.PcItem(hint))
		}
		items = append(items, readline.PcItem(name, children...))
	}
	return readline.NewPrefixCompleter(items...)
}
