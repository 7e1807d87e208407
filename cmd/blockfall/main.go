// blockfall is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blockfall play           - Play a single game
//	blockfall menu           - Start menu with game and high scores
//	blockfall serve          - Start SSH server (and optional HTTP leaderboard)
//	blockfall scores         - Show high scores
//	blockfall config         - Show the effective game settings
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for a reproducible piece sequence
//	--db <path>           - Set database path (default: ~/.blockfall/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--player <name>       - Name recorded with local scores
//	--log-file <path>     - Write logs to a file while the TUI is running
//
// BLOCKFALL_DB and BLOCKFALL_PLAYER (also read from a .env file) set the
// defaults for --db and --player.
package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/storage"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagPlayer     string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - a falling-block puzzle in your terminal",
	Long: `Blockfall drops pieces into a 10x20 well. Fill rows to clear them,
score points and speed up as your level rises.

Available commands:
  play     - Play a single game
  menu     - Interactive menu with high scores
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Show game settings

Examples:
  blockfall play
  blockfall play --difficulty hard
  blockfall menu --player ann
  blockfall serve --ssh :2222 --http :8080
  blockfall scores`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", envOr("BLOCKFALL_DB", storage.DefaultPath), "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", envOr("BLOCKFALL_PLAYER", defaultPlayer()), "Player name recorded with scores")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// envOr returns the environment variable or fallback when unset.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// defaultPlayer names local players after their OS user.
func defaultPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "anonymous"
}
