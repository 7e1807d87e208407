package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a single game",
	Long: `Start a game straight away, without the menu.

Controls:
  Left/Right, A/D     - Move
  Down, S             - Move down
  Up, W, Space        - Rotate
  Enter               - Start / play again
  P                   - Pause
  R                   - Reset
  Esc/B, Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower starting speed
  normal - 500ms per row, 50ms faster each level
  hard   - Faster start, gentler speed-up
  fixed  - Speed never changes

Examples:
  blockfall play
  blockfall play --difficulty easy
  blockfall play --seed 42
  blockfall play --config ./my-blockfall.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	rules, err := loadRules()
	if err != nil {
		fatal("loading config", err)
	}

	logger, closeLog, err := newLogger("blockfall", false)
	if err != nil {
		fatal("opening log", err)
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(store, rules, runtimeConfig(), logger); err != nil {
		fatal("running game", err)
	}
}
