package cmd

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/fsimtools/simratemon/internal/app"
	"github.com/fsimtools/simratemon/internal/logger"
	"github.com/fsimtools/simratemon/internal/version"
)

// RootCmd is the root command for the simratemon application.
var RootCmd = &cobra.Command{
	Use:          "simratemon",
	Short:        "simratemon - Monitor and adjust the MSFS simulation rate",
	Version:      version.GetVersion(),
	Args:         cobra.NoArgs,
	RunE:         Execute,
	SilenceUsage: true, // Don't show usage on runtime errors
}

func init() {
	// Set custom version template to show full version info
	RootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	// Add flags
	RootCmd.PersistentFlags().BoolP("verbose", "V", false, "enable verbose output")
	RootCmd.PersistentFlags().Bool("startup", false, "start silently with the control panel hidden")
	RootCmd.PersistentFlags().BoolP("logs", "l", false, "print the current log file to stdout and exit")
}

// handleLogsFlag processes the --logs flag and exits if needed
func handleLogsFlag(cfg *Config, exitFunc func(int)) error {
	if !cfg.ShowLogs {
		return nil
	}

	if err := logger.PrintLogFile(nil, logger.LoggerOptions{}); err != nil {
		if os.IsNotExist(err) {
			logPath := logger.GetLogPath(logger.LoggerOptions{})
			fmt.Fprintf(os.Stderr, "Log file does not exist: %s\n", logPath)
			exitFunc(1)
		}

		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		exitFunc(1)
	}

	exitFunc(0)
	return nil // Won't actually reach here due to exitFunc
}

// initializeLogger creates a logger and logs startup information
func initializeLogger(cfg *Config) (logger.LoggerInterface, error) {
	log, err := logger.NewLogger(logger.LoggerOptions{
		Verbose:  cfg.Verbose,
		Compress: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return log, nil
}

// Execute runs the provided command with the given arguments.
func Execute(cmd *cobra.Command, args []string) error {
	cfg := NewConfigFromFlags(cmd)

	if err := handleLogsFlag(cfg, os.Exit); err != nil {
		return err
	}

	log, err := initializeLogger(cfg)
	if err != nil {
		return err
	}

	defer log.Close()

	log.Debug("Starting simratemon", "version", version.GetVersion())
	log.Debug("Flags set",
		"verbose", cfg.Verbose,
		"startup", cfg.Startup,
	)

	// Recover from panics and log them
	defer func() {
		if r := recover(); r != nil {
			log.Error("PANIC RECOVERED",
				"panic", r,
				"stack", string(debug.Stack()),
			)

			fmt.Fprintf(os.Stderr, "\n*** PANIC: %v ***\n", r)
			fmt.Fprintf(os.Stderr, "Check log file for details\n")
		}
	}()

	return app.Run(app.Options{
		Log:    log,
		Silent: cfg.Startup,
	})
}
