package cmd

import (
	"fmt"

	"github.com/msto63/mcli/pkg/core/version"
	"github.com/spf13/cobra"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, version.Summary())
		if versionShort {
			return
		}
		for _, line := range version.Details() {
			fmt.Fprintln(out, line)
		}
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "print only the version line")
	rootCmd.AddCommand(versionCmd)
}
