package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/icubam/bedmap-colorize/pkg/config"
	"github.com/icubam/bedmap-colorize/pkg/logger"
)

func main() {
	cfg := config.Load(config.ConstantConfigFilename)

	var logLevel string
	rootCmd := &cobra.Command{
		Use:           "colorize",
		Short:         "Heat-map colors for ICU bed tables",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level, err := logger.ParseLevel(logLevel)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%v, defaulting to INFO\n", err)
			}
			slog.SetDefault(slog.New(logger.New(os.Stderr, level)))
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newValuesCmd(cfg))
	rootCmd.AddCommand(newTableCmd(cfg))
	rootCmd.AddCommand(newThemesCmd(cfg))
	rootCmd.AddCommand(newServeCmd(cfg))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
