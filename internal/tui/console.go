package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Console is the single writer for everything the shell shows the user.
// Colors are only emitted when the output is a color-capable terminal.
type Console struct {
	out      io.Writer
	terminal bool
	styles   Styles
}

// NewConsole creates a console writing to out
func NewConsole(out io.Writer) *Console {
	return &Console{
		out:      out,
		terminal: isTerminal(out),
		styles:   NewStyles(lipgloss.NewRenderer(out)),
	}
}

// Styles returns the styles bound to the console's renderer
func (c *Console) Styles() Styles {
	return c.styles
}

// Writer returns the underlying output
func (c *Console) Writer() io.Writer {
	return c.out
}

// Print writes text verbatim, terminated by a newline
func (c *Console) Print(text string) {
	if strings.HasSuffix(text, "\n") {
		fmt.Fprint(c.out, text)
		return
	}
	fmt.Fprintln(c.out, text)
}

// Error writes msg in the error color
func (c *Console) Error(msg string) {
	c.styled(c.styles.Error, msg)
}

// Notice writes msg in the notice color
func (c *Console) Notice(msg string) {
	c.styled(c.styles.Notice, msg)
}

// Banner writes a multi-line banner in the banner color
func (c *Console) Banner(text string) {
	c.styled(c.styles.Banner, strings.TrimRight(text, "\n"))
}

// Clear clears the screen and homes the cursor. It is a no-op when the
// output is not a terminal.
func (c *Console) Clear() {
	if !c.terminal {
		return
	}
	termenv.NewOutput(c.out).ClearScreen()
}

// styled renders each line separately so lines keep their own width.
func (c *Console) styled(style lipgloss.Style, text string) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	fmt.Fprintln(c.out, strings.Join(lines, "\n"))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
