// Package cmd implements the command-line interface for simratemon.
package cmd

import "github.com/spf13/cobra"

// Config holds all application configuration
type Config struct {
	Verbose  bool
	ShowLogs bool
	Startup  bool
}

// NewConfigFromFlags creates a Config from parsed command flags
func NewConfigFromFlags(cmd *cobra.Command) *Config {
	return &Config{
		Verbose:  getBoolFlag(cmd, "verbose"),
		ShowLogs: getBoolFlag(cmd, "logs"),
		Startup:  getBoolFlag(cmd, "startup"),
	}
}

// getBoolFlag retrieves a boolean flag, checking both local and persistent flags
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		// Try persistent flags if not found in local flags
		val, _ = cmd.PersistentFlags().GetBool(name)
	}

	return val
}
