package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/msto63/mcli/internal/prompt"
	"github.com/msto63/mcli/internal/shell"
	"github.com/msto63/mcli/internal/tui"
	"github.com/msto63/mcli/pkg/core/config"
	"github.com/msto63/mcli/pkg/core/logging"
	"github.com/msto63/mcli/pkg/core/version"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfgFile      string
	verbose      bool
	inputBackend string
	resourcesDir string
	promptText   string
)

// errReported marks failures already shown on the console.
var errReported = errors.New("reported")

var rootCmd = &cobra.Command{
	Use:   "mcli",
	Short: "Minimal interactive command shell",
	Long: `mcli starts an interactive prompt that dispatches each input line to a
registered command.

Commands:
  help     - show the help text
  version  - print version information (-v for details)
  clear    - clear the screen
  exit     - leave the shell

Ctrl+C leaves the shell at any time.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runShell,
}

// Execute runs the root command. End of input and failures already shown
// by the shell return an error without printing it again.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, shell.ErrInputClosed) && !errors.Is(err, errReported) {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $MCLI_CONFIG, ./configs/mcli.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")
	rootCmd.PersistentFlags().StringVar(&inputBackend, "input", "", "prompt backend: tea or readline")
	rootCmd.PersistentFlags().StringVar(&resourcesDir, "resources", "", "directory holding help.txt and logo.txt")
	rootCmd.Flags().StringVar(&promptText, "prompt", "", "prompt string")
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

// session bundles what every shell invocation needs.
type session struct {
	cfg     *config.Config
	logger  *logrus.Entry
	console *tui.Console
	closers []io.Closer
}

func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	s := &session{
		cfg:     cfg,
		console: tui.NewConsole(os.Stdout),
	}

	lc := logging.DefaultLoggerConfig(version.Name)
	lc.Level = cfg.Logging.Level
	lc.Format = cfg.Logging.Format
	if verbose {
		lc.Output = os.Stderr
	}
	if cfg.Logging.File != "" {
		f, err := logging.OpenLogFile(cfg.Logging.File)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, f)
		lc.Output = f
	}
	s.logger = logging.NewLogger(lc)
	if verbose {
		s.logger = logging.WithLevel(s.logger, logging.LevelDebug)
	}

	return s, nil
}

func (s *session) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		_ = s.closers[i].Close()
	}
}

func (s *session) shell(reader prompt.Reader) *shell.Shell {
	return shell.New(shell.Options{
		Reader:    reader,
		Console:   s.console,
		Logger:    s.logger,
		Resources: shell.ResourcesFS(s.cfg.Shell.ResourcesDir),
		Prompt:    s.cfg.Shell.Prompt,
	})
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Shell.Input = inputBackend
	}
	if flags.Changed("resources") {
		cfg.Shell.ResourcesDir = resourcesDir
	}
	if flags.Changed("prompt") {
		cfg.Shell.Prompt = promptText
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newReader picks the prompt backend. Piped input always uses readline,
// which reads plain lines without a terminal.
func newReader(cfg config.ShellConfig, console *tui.Console) (prompt.Reader, error) {
	fd := os.Stdin.Fd()
	interactive := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)

	if cfg.Input == config.InputReadline || !interactive {
		editor, err := prompt.NewLineEditor(prompt.LineEditorConfig{HistoryFile: cfg.HistoryFile})
		if err != nil {
			return nil, err
		}
		return editor, nil
	}
	return prompt.NewTeaReader(os.Stdin, console.Writer(), console.Styles()), nil
}

func runShell(cmd *cobra.Command, _ []string) error {
	sess, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	reader, err := newReader(sess.cfg.Shell, sess.console)
	if err != nil {
		return err
	}
	defer reader.Close()

	sess.logger.WithFields(logrus.Fields{
		"input":     sess.cfg.Shell.Input,
		"resources": sess.cfg.Shell.ResourcesDir,
	}).Debug("starting shell")

	return sess.shell(reader).Run(cmd.Context())
}
