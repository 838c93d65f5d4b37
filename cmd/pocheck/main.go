package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	configFile string
	debugMode  bool
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:          "pocheck",
		Short:        "Check gettext translation catalogs for common mistakes",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(debugMode)
		},
	}

	flags := rootCommand.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Path to the configuration file")
	flags.BoolVar(&debugMode, "debug", false, "Enable debug logging")

	rootCommand.AddCommand(newCheckCommand())
	rootCommand.AddCommand(newRulesCommand())
	rootCommand.AddCommand(newDictionaryCommand())
	rootCommand.AddCommand(newMigrateCommand())

	return rootCommand
}

func setupLogger(debugMode bool) {
	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
