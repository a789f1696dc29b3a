// blockfall is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blockfall play              - Play a game
//	blockfall replay list       - List saved replays
//	blockfall replay watch <id> - Watch a saved replay
//	blockfall replay verify <id> - Re-simulate a replay and check its result
//	blockfall scores            - Show high scores
//	blockfall serve             - Start SSH server for remote play
//
// Global flags:
//
//	--config <path> - Path to a custom config YAML
//	--db <path>     - Set database path (default: ~/.blockfall/scores.db)
//	--seed <value>  - Set RNG seed for reproducible gameplay
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mlevkov/blockfall/internal/config"
	"github.com/mlevkov/blockfall/internal/game"
	"github.com/mlevkov/blockfall/internal/storage"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - a falling-block puzzle game in your terminal",
	Long: `Blockfall is a terminal falling-block puzzle game. Pieces drop under
gravity, completed rows clear for points, and the pace rises with every
level. Every game is recorded and can be replayed or verified later.

Available commands:
  play     - Play a game in the current terminal
  replay   - List, watch or verify saved replays
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  blockfall play
  blockfall play --seed 42
  blockfall replay list
  blockfall replay watch 3
  blockfall scores
  blockfall serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blockfall/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadRules resolves the effective simulation rules from configuration.
func loadRules() game.Rules {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg.Rules()
}

// openStore opens the score database, or returns nil with a warning so the
// game can still run without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// mustOpenStore opens the score database or exits; used by commands that
// cannot do anything useful without it.
func mustOpenStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	return store
}
