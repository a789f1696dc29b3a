package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mlevkov/blockfall/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game in the current terminal.

Controls:
  Left/H/A   - Move left
  Right/L/D  - Move right
  Down/S     - Soft drop
  Space      - Hard drop
  Up/W/X     - Rotate clockwise
  Z          - Rotate counter-clockwise
  P/Esc      - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Every finished game is saved to the score table along with a replay that
can be watched or verified later.

Examples:
  blockfall play
  blockfall play --seed 42
  blockfall play --config ./my-rules.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	rules := loadRules()
	store := openStore()

	runErr := tui.Run(rules, store, flagSeed)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
