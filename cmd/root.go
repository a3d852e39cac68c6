package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tscdk/output"
)

var rootCmd = &cobra.Command{
	Use:   "tscdk",
	Short: "Scaffold TypeScript AWS CDK projects",
	Long: `tscdk creates a ready to build AWS CDK app written in TypeScript,
with the package manager, linter, formatter and test runner of your choice.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		output.SetupLogging(verbose)
	},
}

// Execute runs the root command. Interrupts cancel the command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().String("config", "", "Config file (default $HOME/.tscdk.yaml)")
}
