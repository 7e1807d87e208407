package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start blockfall with the main menu",
	Long: `Start blockfall in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game, Esc returns to the menu to play again or check high scores.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  blockfall menu
  blockfall menu --player ann
  blockfall menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
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

	if err := tui.RunSession(store, rules, runtimeConfig(), logger); err != nil {
		fatal("running menu", err)
	}
}
