package shell

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nopHandler(context.Context, []string) error { return nil }

func TestRegistryRegisterLookup(t *testing.T) {
	r := NewRegistry()
	hit := false
	r.Register(&Command{Name: "sample", Handler: func(_ context.Context, args []string) error {
		hit = true
		return nil
	}})

	cmd, ok := r.Lookup("sample")
	require.True(t, ok)
	require.NoError(t, cmd.Call(context.Background(), nil))
	assert.True(t, hit)

	_, ok = r.Lookup("Sample")
	assert.False(t, ok, "lookup is case-sensitive")
}

func TestRegistryRegisterPanics(t *testing.T) {
	tests := []struct {
		name  string
		setup func(r *Registry)
		cmd   *Command
	}{
		{"nil command", nil, nil},
		{"empty name", nil, &Command{Name: " ", Handler: nopHandler}},
		{"whitespace in name", nil, &Command{Name: "a b", Handler: nopHandler}},
		{"missing handler", nil, &Command{Name: "x"}},
		{"duplicate", func(r *Registry) { r.Register(&Command{Name: "dup", Handler: nopHandler}) }, &Command{Name: "dup", Handler: nopHandler}},
		{"after seal", func(r *Registry) { r.Seal() }, &Command{Name: "late", Handler: nopHandler}},
		{"required after optional", nil, &Command{
			Name:    "bad",
			Params:  []Param{{Name: "a", Optional: true}, {Name: "b"}},
			Handler: nopHandler,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			if tt.setup != nil {
				tt.setup(r)
			}
			assert.Panics(t, func() { r.Register(tt.cmd) })
		})
	}
}

func TestRegistryReservedPrefix(t *testing.T) {
	r := NewRegistry()
	r.Register(&Command{Name: "_internal", Handler: nopHandler})
	r.Register(&Command{Name: "public", Handler: nopHandler})

	_, ok := r.Lookup("_internal")
	assert.False(t, ok, "reserved names never resolve from input")

	_, ok = r.lookupInternal("_internal")
	assert.True(t, ok)

	_, ok = r.Lookup("_missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"public"}, r.Names())
	assert.NotContains(t, r.Completions(), "_internal")
}

func TestRegistryCompletions(t *testing.T) {
	r := NewRegistry()
	r.Register(&Command{Name: "help", Handler: nopHandler})
	r.Register(&Command{Name: "version", Hints: []string{"-v", "--verbose"}, Handler: nopHandler})

	view := r.Completions()

	assert.Equal(t, Completions{
		"help":    nil,
		"version": {"-v", "--verbose"},
	}, view)

	view["version"][0] = "mutated"
	assert.Equal(t, []string{"-v", "--verbose"}, r.Completions()["version"], "views are fresh copies")
}

func TestCommandArity(t *testing.T) {
	cmd := &Command{
		Name:    "copy",
		Params:  []Param{{Name: "src"}, {Name: "dst"}, {Name: "mode", Optional: true}},
		Handler: nopHandler,
	}

	assert.Equal(t, 3, cmd.Arity())
	assert.Equal(t, 2, cmd.Required())
}

func TestCommandCallArgumentCount(t *testing.T) {
	var got []string
	cmd := &Command{
		Name:   "copy",
		Params: []Param{{Name: "src"}, {Name: "dst"}, {Name: "mode", Optional: true}},
		Handler: func(_ context.Context, args []string) error {
			got = args
			return nil
		},
	}

	err := cmd.Call(context.Background(), []string{"a"})
	assert.ErrorIs(t, err, ErrArgumentCount)
	assert.EqualError(t, err, "missing required argument: 'dst'")
	assert.Nil(t, got, "handler must not run with missing arguments")

	err = cmd.Call(context.Background(), nil)
	assert.EqualError(t, err, "missing required argument: 'src', 'dst'")

	require.NoError(t, cmd.Call(context.Background(), []string{"a", "b"}))
	assert.Equal(t, []string{"a", "b"}, got, "optional parameters are not padded")
}
