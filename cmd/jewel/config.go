package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/jewel-legend/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration after applying the search order
(--config, ~/.jewel/config.yaml, ./configs/jewel.yaml, built-in defaults)
as YAML. Redirect it to a file to start a custom configuration.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}
