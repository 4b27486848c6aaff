// Package prompt reads single lines of user input with command completion.
//
// Two backends implement Reader: TeaReader renders an inline bubbletea
// text input with whole-line suggestions, LineEditor wraps readline with a
// nested prefix completer and an optional history file. Both map the
// user's interrupt key and a cancelled context to ErrInterrupt and end of
// input to io.EOF.
package prompt

import (
	"context"
	"errors"
	"sort"
)

// ErrInterrupt is returned when the user aborts the prompt (Ctrl-C).
var ErrInterrupt = errors.New("interrupted")

// Reader reads one line of input. completions maps every offered command
// name to its suggested argument literals and is rebuilt by the caller for
// each prompt. Cancelling ctx ends a blocked read with ErrInterrupt.
// However ReadLine returns, the cursor is left at the start of a line.
type Reader interface {
	ReadLine(ctx context.Context, prompt string, completions map[string][]string) (string, error)
	Close() error
}

// Suggestions flattens completions into whole-line suggestions: every
// command name, then "name hint" for each of its hints.
func Suggestions(completions map[string][]string) []string {
	var out []string
	for _, name := range sortedNames(completions) {
		out = append(out, name)
		for _, hint := range completions[name] {
			out = append(out, name+" "+hint)
		}
	}
	return out
}

func sortedNames(completions map[string][]string) []string {
	names := make([]string, 0, len(completions))
	for name := range completions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
