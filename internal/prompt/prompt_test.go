package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestions(t *testing.T) {
	tests := []struct {
		name        string
		completions map[string][]string
		expected    []string
	}{
		{
			name:        "empty",
			completions: nil,
			expected:    nil,
		},
		{
			name: "names sorted, hints follow their command",
			completions: map[string][]string{
				"version": {"-v", "--verbose"},
				"help":    nil,
				"exit":    nil,
			},
			expected: []string{"exit", "help", "version", "version -v", "version --verbose"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Suggestions(tt.completions))
		})
	}
}
