package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the blocks configuration that 'play' would use, after the
search path and --difficulty have been applied.

Search order:
  --config <path>
  ~/.blocks/configs/blocks.yaml
  ./configs/blocks.yaml
  built-in defaults

Examples:
  blocks config
  blocks config --difficulty hard > ~/.blocks/configs/blocks.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadBlocks(flagConfig)
	if err != nil {
		return err
	}

	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		config.ApplyBlocksPreset(&cfg, preset)
	}

	data, err := cfg.YAML()
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}
