package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/icubam/bedmap-colorize/pkg/config"
)

func newThemesCmd(cfg *config.Config) *cobra.Command {
	var themesFile string

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List the available color themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			themes, err := config.LoadThemes(themesFile)
			if err != nil {
				return err
			}
			return writeJSON(os.Stdout, themes)
		},
	}
	cmd.Flags().StringVar(&themesFile, "themes-file", cfg.ThemesFile, "YAML file with additional themes")
	return cmd
}
