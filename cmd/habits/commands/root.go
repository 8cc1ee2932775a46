// Package commands defines the habits command line.
package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "habits",
		Short:         "Habit tracking REST API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("conf", "c", "", "config file path (default: search ./config.yaml)")

	rootCmd.AddCommand(
		NewServeCommand(),
		NewVersionCommand(),
	)

	return rootCmd
}
