package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorError   = lipgloss.Color("#EF4444")
	colorNotice  = lipgloss.Color("#06B6D4")
	colorBanner  = lipgloss.Color("#D7AF00")
	colorMuted   = lipgloss.Color("#6B7280")
)

// Styles groups the console and prompt styles bound to one renderer.
type Styles struct {
	Error      lipgloss.Style
	Notice     lipgloss.Style
	Banner     lipgloss.Style
	Prompt     lipgloss.Style
	Suggestion lipgloss.Style
}

// NewStyles builds the styles for renderer r. A nil renderer uses the
// lipgloss default renderer (stdout).
func NewStyles(r *lipgloss.Renderer) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Styles{
		Error: r.NewStyle().
			Foreground(colorError),

		Notice: r.NewStyle().
			Foreground(colorNotice),

		Banner: r.NewStyle().
			Foreground(colorBanner).
			Bold(true),

		Prompt: r.NewStyle().
			Foreground(colorPrimary).
			Bold(true),

		Suggestion: r.NewStyle().
			Foreground(colorMuted).
			Italic(true),
	}
}
