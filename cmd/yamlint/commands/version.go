package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/yamlint/cmd"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Long:  `Print the version, commit, and build date of yamlint.`,
	Run: func(c *cobra.Command, _ []string) {
		fmt.Fprint(c.OutOrStdout(), cmd.BuildInfo())
	},
}
