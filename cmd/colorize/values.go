package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/icubam/bedmap-colorize/pkg/colorize"
	"github.com/icubam/bedmap-colorize/pkg/config"
)

func newValuesCmd(cfg *config.Config) *cobra.Command {
	var flags colorFlags

	cmd := &cobra.Command{
		Use:   "values VALUE...",
		Short: "Colorize a list of values and print the results as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd, cfg)
			if err != nil {
				return err
			}
			results, err := colorize.Colorize(argsToCells(args), opts)
			if err != nil {
				return err
			}
			return writeJSON(os.Stdout, results)
		},
	}
	flags.register(cmd, cfg)
	return cmd
}
