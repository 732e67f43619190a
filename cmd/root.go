// Package cmd implements the learnpath command-line interface.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/learnpath/learnpath/internal/i18n"
)

var rootCmd = &cobra.Command{
	Use:   "learnpath",
	Short: i18n.T(i18n.KeyAppTagline),
	Long: i18n.T(i18n.KeyAppName) + `

` + i18n.T(i18n.KeyAppTagline),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Bare invocation enters chat mode.
		return runChat(cmd, args)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
