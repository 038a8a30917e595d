package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/younwookim/platformer/internal/application/replay"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-simulate a recording and print the result",
	Long: `Replay a file written by "game play --record" without opening a window.
The level is rebuilt from the recorded seed, so the result matches the
original run as long as the tuning values are the same.

Examples:
  game replay run.json
  game replay run.json --config ./game.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger("replay")
		if err != nil {
			return err
		}

		cfg, err := loadConfig(flagConfig, false)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger.Debug("replaying", "path", args[0])
		return runReplay(cmd.Context(), cmd.OutOrStdout(), cfg, args[0])
	},
}

func runReplay(ctx context.Context, w io.Writer, cfg *config.GameConfig, path string) error {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return err
	}

	res, err := replay.Run(ctx, cfg, *data)
	if err != nil {
		return err
	}

	printResult(w, data, res)
	return nil
}

func printResult(w io.Writer, data *replay.ReplayData, res replay.Result) {
	fmt.Fprintf(w, "seed:       %d\n", data.Seed)
	fmt.Fprintf(w, "generator:  %s\n", data.Generator)
	fmt.Fprintf(w, "frames:     %d\n", res.Frames)
	fmt.Fprintf(w, "state:      %s\n", res.State)
	fmt.Fprintf(w, "won:        %t\n", res.Won)
	fmt.Fprintf(w, "score:      %d\n", res.Score)
	fmt.Fprintf(w, "lives:      %d\n", res.Lives)
	fmt.Fprintf(w, "coins left: %d\n", res.CoinsLeft)
	fmt.Fprintf(w, "hits:       %d\n", res.Hits)
	fmt.Fprintf(w, "restarts:   %d\n", res.Restarts)
}
