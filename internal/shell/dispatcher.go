package shell

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Dispatcher resolves tokens to registered commands and invokes them.
type Dispatcher struct {
	registry *Registry
	logger   *logrus.Entry
}

// NewDispatcher creates a dispatcher over registry
func NewDispatcher(registry *Registry, logger *logrus.Entry) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		logger:   logger.WithField("component", "dispatcher"),
	}
}

// Dispatch invokes the command named by tokens[0] with the remaining tokens
// truncated to the command's declared parameter count. Extra tokens are
// dropped, missing ones are never synthesized.
//
// It returns nil on success, ErrExit when the command ends the session, an
// ErrUnknownCommand error when the name does not resolve, and an
// ErrCommandExecution error for any failure or panic of the command itself.
// Empty tokens dispatch nothing.
func (d *Dispatcher) Dispatch(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	name, args := tokens[0], tokens[1:]
	cmd, ok := d.registry.Lookup(name)
	if !ok {
		return &Error{Code: CodeUnknownCommand, Command: name}
	}

	if n := cmd.Arity(); len(args) > n {
		d.logger.WithFields(logrus.Fields{
			"command": name,
			"dropped": len(args) - n,
		}).Debug("extra arguments dropped")
		args = args[:n:n]
	}

	d.logger.WithFields(logrus.Fields{
		"command": name,
		"args":    len(args),
	}).Debug("command dispatched")

	return d.invoke(ctx, cmd, args)
}

func (d *Dispatcher) invoke(ctx context.Context, cmd *Command, args []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &Error{Code: CodeCommandExecution, Command: cmd.Name, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	err = cmd.Call(ctx, args)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrExit):
		return ErrExit
	default:
		return &Error{Code: CodeCommandExecution, Command: cmd.Name, Err: err}
	}
}
