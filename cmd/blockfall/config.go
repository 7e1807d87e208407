package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
)

var flagConfigDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective game settings",
	Long: `Print the settings a game would use after applying --config and
--difficulty, including the drop speed at each level.

With --default, print the built-in YAML, ready to be saved as
~/.blockfall/configs/blockfall.yaml and edited.

Examples:
  blockfall config
  blockfall config --difficulty hard
  blockfall config --default > ~/.blockfall/configs/blockfall.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefault, "default", false, "Print the built-in default YAML")
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagConfigDefault {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := config.LoadWithPreset(flagConfig, flagDifficulty)
	if err != nil {
		fatal("loading config", err)
	}

	fmt.Println("Timing")
	fmt.Printf("  base_interval:   %s\n", cfg.Timing.BaseInterval)
	fmt.Printf("  interval_step:   %s\n", cfg.Timing.IntervalStep)
	fmt.Printf("  min_interval:    %s\n", cfg.Timing.MinInterval)
	fmt.Println("Scoring")
	fmt.Printf("  line_points:     %d\n", cfg.Scoring.LinePoints)
	fmt.Printf("  lines_per_level: %d\n", cfg.Scoring.LinesPerLevel)
	fmt.Println()

	fmt.Printf("  %-5s  %s\n", "Level", "Drop")
	fmt.Printf("  %-5s  %s\n", "-----", "----")
	for level := 1; level <= 12; level++ {
		fmt.Printf("  %-5d  %s\n", level, cfg.Timing.Interval(level))
	}
}
