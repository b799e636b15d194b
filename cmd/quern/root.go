package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/quernlab/quern/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "quern",
	Short: "quern is a recipe-based data transformation engine",
	Long:  `quern grinds input through a recipe of operations: plain transforms plus jumps, forks and register captures.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().String("log-file", "", "Also write JSON logs to this file")
}

// buildLogger constructs the application logger from persistent flags.
func buildLogger(cmd *cobra.Command) (*slog.Logger, func(), error) {
	levelStr, _ := cmd.Flags().GetString("log-level")
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelStr)); err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", levelStr, err)
	}

	logFile, _ := cmd.Flags().GetString("log-file")
	if logFile == "" {
		return logging.New(level), func() {}, nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return logging.NewWithFile(level, f), func() { f.Close() }, nil
}
