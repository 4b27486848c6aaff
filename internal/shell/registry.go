package shell

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// ReservedPrefix marks internal entries. Input can never resolve a name
// carrying it, even when such an entry is registered.
const ReservedPrefix = "_"

// Handler executes a command with its positional arguments.
type Handler func(ctx context.Context, args []string) error

// Param declares one positional parameter. Optional parameters must follow
// the required ones.
type Param struct {
	Name     string
	Optional bool
}

// Command is a registry entry.
type Command struct {
	Name        string
	Description string
	Params      []Param
	Hints       []string
	Handler     Handler
}

// Arity returns the declared parameter count.
func (c *Command) Arity() int {
	return len(c.Params)
}

// Required returns the number of leading required parameters.
func (c *Command) Required() int {
	n := 0
	for _, p := range c.Params {
		if p.Optional {
			break
		}
		n++
	}
	return n
}

// Call invokes the handler. It fails with ErrArgumentCount when args do not
// cover the required parameters; it never pads or truncates args itself.
func (c *Command) Call(ctx context.Context, args []string) error {
	if required := c.Required(); len(args) < required {
		missing := make([]string, 0, required-len(args))
		for _, p := range c.Params[len(args):required] {
			missing = append(missing, "'"+p.Name+"'")
		}
		return fmt.Errorf("%w: %s", ErrArgumentCount, strings.Join(missing, ", "))
	}
	return c.Handler(ctx, args)
}

// Completions maps each public command name to its hint literals.
type Completions map[string][]string

// Registry maps command names to commands. It is filled once at startup and
// sealed before the session starts.
type Registry struct {
	commands map[string]*Command
	sealed   bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]*Command)}
}

// Register adds cmd. It panics on an invalid or duplicate command and after
// the registry has been sealed.
func (r *Registry) Register(cmd *Command) {
	if cmd == nil || strings.TrimSpace(cmd.Name) == "" || strings.ContainsAny(cmd.Name, " \t\n") {
		panic("command needs a name without whitespace")
	}
	if r.sealed {
		panic(fmt.Sprintf("command %s registered after seal", cmd.Name))
	}
	if cmd.Handler == nil {
		panic(fmt.Sprintf("command %s has no handler", cmd.Name))
	}
	if _, exists := r.commands[cmd.Name]; exists {
		panic(fmt.Sprintf("command %s already registered", cmd.Name))
	}
	seenOptional := false
	for _, p := range cmd.Params {
		if !p.Optional && seenOptional {
			panic(fmt.Sprintf("command %s: required parameter %s follows an optional one", cmd.Name, p.Name))
		}
		seenOptional = seenOptional || p.Optional
	}
	r.commands[cmd.Name] = cmd
}

// Seal makes the registry immutable.
func (r *Registry) Seal() {
	r.sealed = true
}

// Lookup resolves a user-supplied name. Reserved names never resolve.
func (r *Registry) Lookup(name string) (*Command, bool) {
	if IsReserved(name) {
		return nil, false
	}
	cmd, ok := r.commands[name]
	return cmd, ok
}

// lookupInternal resolves any registered name, reserved ones included.
func (r *Registry) lookupInternal(name string) (*Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// Names returns the public command names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		if !IsReserved(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Completions builds a fresh completion view of the public commands.
// Commands without hints map to nil.
func (r *Registry) Completions() Completions {
	view := make(Completions, len(r.commands))
	for _, name := range r.Names() {
		var hints []string
		if h := r.commands[name].Hints; len(h) > 0 {
			hints = append([]string(nil), h...)
		}
		view[name] = hints
	}
	return view
}

// IsReserved reports whether name carries the reserved prefix.
func IsReserved(name string) bool {
	return strings.HasPrefix(name, ReservedPrefix)
}
