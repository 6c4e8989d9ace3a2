package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "salon-cli",
	Short: "Salon site CLI tool",
	Long: `salon-cli is a command-line interface for maintaining the salon site.

Available commands:
  content validate    Check a catalog file before deploying it
  content services    Print the service menu of a catalog
  version             Print the CLI version

Use "salon-cli [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
