package tui

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsolePrint(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"adds newline", "hello", "hello\n"},
		{"keeps trailing newline", "hello\n", "hello\n"},
		{"multi-line verbatim", "a\n\tb  \nc\n", "a\n\tb  \nc\n"},
		{"empty", "", "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewConsole(&buf).Print(tt.input)
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestConsoleStyledOutputIsPlainOffTerminal(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.Error("Error: boom")
	c.Notice("Terminating")

	assert.Equal(t, "Error: boom\nTerminating\n", buf.String())
}

func TestConsoleBannerKeepsLines(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.Banner(" __\n|  |\n\n|__|\n")

	assert.Equal(t, " __\n|  |\n\n|__|\n", buf.String())
}

func TestConsoleClearIsNoopOffTerminal(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.Clear()

	assert.Empty(t, buf.String())
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, isTerminal(&bytes.Buffer{}))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, isTerminal(f), "regular files are not terminals")
}

func TestNewStylesNilRenderer(t *testing.T) {
	s := NewStyles(nil)
	assert.NotEmpty(t, s.Error.Render("x"))
}
