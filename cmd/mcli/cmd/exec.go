package cmd

import (
	"errors"

	"github.com/msto63/mcli/internal/shell"
	"github.com/spf13/cobra"
)

var execCmd = &cobra.Command{
	Use:   "exec <command> [args...]",
	Short: "Run one shell command and exit",
	Long: `Dispatches a single command the way the interactive shell would, without
clearing the screen or showing the banner. Arguments are passed as given;
extra ones beyond the command's parameters are dropped.

Exits with status 1 if the command is unknown or fails.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runExec,
}

func init() {
	// flags after the command name belong to the shell command
	execCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(execCmd)
}

func runExec(cmd *cobra.Command, args []string) error {
	sess, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	sh := sess.shell(nil)
	err = sh.ExecuteTokens(cmd.Context(), args)
	switch {
	case err == nil, errors.Is(err, shell.ErrExit):
		return nil
	default:
		return errReported
	}
}
