package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/msto63/mcli/internal/tui"
)

// TeaReader reads lines with an inline bubbletea program per prompt.
type TeaReader struct {
	in      io.Reader
	out     io.Writer
	styles  tui.Styles
	options []tea.ProgramOption
}

// NewTeaReader creates a reader on in/out. Extra program options are
// applied to every prompt program.
func NewTeaReader(in io.Reader, out io.Writer, styles tui.Styles, opts ...tea.ProgramOption) *TeaReader {
	return &TeaReader{
		in:      in,
		out:     out,
		styles:  styles,
		options: opts,
	}
}

// ReadLine blocks until the user submits a line, interrupts, closes input or
// ctx is cancelled.
func (r *TeaReader) ReadLine(ctx context.Context, prompt string, completions map[string][]string) (string, error) {
	if ctx.Err() != nil {
		return "", ErrInterrupt
	}

	opts := append([]tea.ProgramOption{
		tea.WithInput(r.in),
		tea.WithOutput(r.out),
	}, r.options...)
	opts = append(opts, tea.WithContext(ctx))

	p := tea.NewProgram(newLineModel(prompt, Suggestions(completions), r.styles), opts...)
	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrInterrupted) {
			return "", ErrInterrupt
		}
		// a killed program leaves the prompt line unterminated
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			fmt.Fprintln(r.out)
			return "", ErrInterrupt
		}
		return "", fmt.Errorf("prompt failed: %w", err)
	}

	m, ok := final.(lineModel)
	if !ok {
		return "", fmt.Errorf("prompt failed: unexpected model %T", final)
	}
	switch {
	case m.interrupted:
		return "", ErrInterrupt
	case m.eof:
		return "", io.EOF
	case !m.submitted:
		// input ended before a line was submitted
		return "", io.EOF
	}
	return m.value, nil
}

// Close is a no-op; each prompt program releases the terminal on exit.
func (r *TeaReader) Close() error {
	return nil
}

// lineModel is a single-line text input that quits on submit.
type lineModel struct {
	input textinput.Model

	value       string
	submitted   bool
	interrupted bool
	eof         bool
}

func newLineModel(prompt string, suggestions []string, styles tui.Styles) lineModel {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.PromptStyle = styles.Prompt
	ti.CompletionStyle = styles.Suggestion
	ti.ShowSuggestions = len(suggestions) > 0
	ti.SetSuggestions(suggestions)
	ti.Focus()

	return lineModel{input: ti}
}

// Init starts the cursor blink
func (m lineModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles submit, interrupt and end-of-input keys and forwards
// everything else to the text input.
func (m lineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter, tea.KeyCtrlJ:
			m.value = m.input.Value()
			m.submitted = true
			return m, tea.Quit

		case tea.KeyCtrlC:
			m.interrupted = true
			return m, tea.Quit

		case tea.KeyCtrlD:
			if m.input.Value() == "" {
				m.eof = true
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the input; once finished it leaves the plain line behind.
func (m lineModel) View() string {
	if m.submitted || m.interrupted || m.eof {
		return m.input.Prompt + m.input.Value() + "\n"
	}
	return m.input.View()
}
