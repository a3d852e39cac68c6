package cmd

import (
	"github.com/spf13/cobra"

	"tscdk/output"
)

// version is set at build time with -ldflags "-X tscdk/cmd.version=...".
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the tscdk version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		output.Println("tscdk " + version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
