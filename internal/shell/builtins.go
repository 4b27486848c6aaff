package shell

import (
	"context"
	"errors"
	"fmt"

	"github.com/msto63/mcli/pkg/core/version"
)

const (
	bannerCommand = "_banner"

	helpMissingNotice = "FATAL. Help file not found."
)

func (s *Shell) registerBuiltins() {
	s.registry.Register(&Command{
		Name:        "exit",
		Description: "Exits the CLI.",
		Handler:     s.exit,
	})
	s.registry.Register(&Command{
		Name:        "clear",
		Description: "Clears the console screen.",
		Handler:     s.clear,
	})
	s.registry.Register(&Command{
		Name:        "help",
		Description: "Displays the help text.",
		Handler:     s.help,
	})
	s.registry.Register(&Command{
		Name:        "version",
		Description: "Prints version information.",
		Params:      []Param{{Name: "flag", Optional: true}},
		Hints:       []string{"-v", "--verbose"},
		Handler:     s.version,
	})
	s.registry.Register(&Command{
		Name:        bannerCommand,
		Description: "Renders the startup banner.",
		Handler:     s.banner,
	})
}

func (s *Shell) exit(context.Context, []string) error {
	return ErrExit
}

func (s *Shell) clear(context.Context, []string) error {
	s.console.Clear()
	return nil
}

func (s *Shell) help(context.Context, []string) error {
	text, err := s.readResource(HelpResource)
	if errors.Is(err, ErrResourceMissing) {
		s.logger.WithField("resource", HelpResource).Warn("help resource missing")
		s.console.Error(helpMissingNotice)
		return nil
	}
	if err != nil {
		return err
	}

	s.console.Print(text)
	return nil
}

func (s *Shell) version(_ context.Context, args []string) error {
	verbose := false
	if len(args) > 0 {
		switch args[0] {
		case "-v", "--verbose":
			verbose = true
		default:
			return fmt.Errorf("unknown flag %q", args[0])
		}
	}

	s.console.Print(version.Summary())
	if verbose {
		for _, line := range version.Details() {
			s.console.Print(line)
		}
	}
	return nil
}

func (s *Shell) banner(context.Context, []string) error {
	text, err := s.readResource(LogoResource)
	if err != nil {
		return err
	}
	s.console.Banner(text)
	return nil
}

// renderBanner runs the internal banner command; a missing logo is skipped.
func (s *Shell) renderBanner(ctx context.Context) {
	cmd, ok := s.registry.lookupInternal(bannerCommand)
	if !ok {
		return
	}
	if err := cmd.Call(ctx, nil); err != nil && !errors.Is(err, ErrResourceMissing) {
		s.logger.WithField("error", err.Error()).Warn("banner failed")
	}
}
