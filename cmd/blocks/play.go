package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
	"github.com/vovakirdan/tui-blocks/internal/platform/tui"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode (default: blocks).

Controls:
  Left/A/H, Right/D/L  - Move
  Up/W/X               - Rotate clockwise
  Z                    - Rotate counter-clockwise
  Down/S               - Soft drop
  Space                - Hard drop
  Enter                - Start
  P/Esc                - Pause / resume
  R                    - Restart
  Ctrl+S               - Screenshot to ~/.blocks/screenshots
  Q/Ctrl+C             - Quit

Difficulty options:
  easy   - 800ms start, 15ms faster per level, 120ms floor
  normal - 600ms start, 20ms faster per level, 80ms floor
  hard   - 400ms start, 20ms faster per level, 60ms floor
  fixed  - Gravity never speeds up

Examples:
  blocks play
  blocks play blocks_weighted
  blocks play --difficulty hard
  blocks play --seed 42 --config ./my-blocks.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := string(blocks.ModeClassic)
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'blocks list' to see available modes", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	scores := openScores()
	defer scores.Close()

	if err := tui.Run(game, scores, runtimeConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
