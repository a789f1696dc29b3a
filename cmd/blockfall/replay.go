package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mlevkov/blockfall/internal/platform/tui"
	"github.com/mlevkov/blockfall/internal/replay"
	"github.com/mlevkov/blockfall/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "List, watch or verify saved replays",
	Long: `Work with saved replays.

Every finished game is recorded as a deterministic command log. A replay
can be watched in the terminal or re-simulated headlessly to verify that
it reproduces the recorded result.

Examples:
  blockfall replay list
  blockfall replay watch 3
  blockfall replay verify 3`,
}

var replayListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved replays",
	Args:  cobra.NoArgs,
	Run:   runReplayList,
}

var replayWatchCmd = &cobra.Command{
	Use:   "watch <id>",
	Short: "Watch a saved replay",
	Args:  cobra.ExactArgs(1),
	Run:   runReplayWatch,
}

var replayVerifyCmd = &cobra.Command{
	Use:   "verify <id>",
	Short: "Re-simulate a replay and check it matches the recorded result",
	Args:  cobra.ExactArgs(1),
	Run:   runReplayVerify,
}

var replayDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved replay",
	Args:  cobra.ExactArgs(1),
	Run:   runReplayDelete,
}

func init() {
	replayCmd.AddCommand(replayListCmd)
	replayCmd.AddCommand(replayWatchCmd)
	replayCmd.AddCommand(replayVerifyCmd)
	replayCmd.AddCommand(replayDeleteCmd)
}

func runReplayList(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	entries, err := store.ListReplays(20)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing replays: %v\n", err)
		os.Exit(1)
	}

	if len(entries) == 0 {
		fmt.Println("No replays saved yet.")
		fmt.Println("Play 'blockfall play' to record one!")
		return
	}

	fmt.Printf("  %-4s  %-24s  %-8s  %-6s  %-7s  %s\n", "ID", "Name", "Score", "Lines", "Frames", "Date")
	fmt.Printf("  %-4s  %-24s  %-8s  %-6s  %-7s  %s\n", "--", "----", "-----", "-----", "------", "----")
	for _, e := range entries {
		fmt.Printf("  %-4d  %-24s  %-8d  %-6d  %-7d  %s\n",
			e.ID, e.Name, e.Score, e.Lines, e.Frames,
			e.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func runReplayWatch(_ *cobra.Command, args []string) {
	entry, data := loadReplay(args[0])

	if err := tui.RunPlayback(loadRules(), data, entry.Name); err != nil {
		fmt.Fprintf(os.Stderr, "Error running playback: %v\n", err)
		os.Exit(1)
	}
}

func runReplayVerify(_ *cobra.Command, args []string) {
	entry, data := loadReplay(args[0])

	runner, err := replay.NewRunner(loadRules(), data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error preparing replay: %v\n", err)
		os.Exit(1)
	}

	final, err := runner.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Verification FAILED: %v\n", err)
		os.Exit(1)
	}

	if final.Score != data.FinalScore || final.Lines != data.FinalLines {
		fmt.Fprintf(os.Stderr, "Verification FAILED: replayed score %d / %d lines, recorded %d / %d\n",
			final.Score, final.Lines, data.FinalScore, data.FinalLines)
		os.Exit(1)
	}

	fmt.Printf("Replay %d (%s) verified: score %d, %d lines over %d frames\n",
		entry.ID, entry.Name, final.Score, final.Lines, final.Frame)
}

func runReplayDelete(_ *cobra.Command, args []string) {
	id := parseReplayID(args[0])

	store := mustOpenStore()
	defer store.Close()

	if err := store.DeleteReplay(id); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting replay: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Replay %d deleted.\n", id)
}

// loadReplay fetches and decodes a stored replay by its ID argument.
func loadReplay(arg string) (*storage.ReplayEntry, replay.Data) {
	id := parseReplayID(arg)

	store := mustOpenStore()
	defer store.Close()

	entry, err := store.GetReplay(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading replay: %v\n", err)
		os.Exit(1)
	}
	if entry == nil {
		fmt.Fprintf(os.Stderr, "Error: no replay with ID %d\n", id)
		fmt.Fprintln(os.Stderr, "Run 'blockfall replay list' to see saved replays.")
		os.Exit(1)
	}

	data, err := replay.Decode(string(entry.Payload))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding replay: %v\n", err)
		os.Exit(1)
	}

	return entry, data
}

func parseReplayID(arg string) int64 {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid replay ID %q\n", arg)
		os.Exit(1)
	}
	return id
}
