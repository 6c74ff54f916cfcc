package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snakesweeper/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the configuration the game would run with, as YAML.

The result can be saved and edited, then passed back with --config.
Search order: --config, ~/.snakesweeper/configs, ./configs, built-in defaults.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
		return err
	},
}
