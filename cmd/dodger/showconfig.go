package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/block-dodger/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would be built with, as YAML.

The search order is --config, then ~/.arcade/configs/dodger.yaml, then
./configs/dodger.yaml, then the built-in defaults. The configuration is
validated; an invalid one is reported and the command fails.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadDodger(flagConfig)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
