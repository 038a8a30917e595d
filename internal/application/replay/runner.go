package replay

import (
	"context"
	"fmt"

	"github.com/younwookim/platformer/internal/application/state"
	"github.com/younwookim/platformer/internal/application/system"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// Result summarizes a headless replay
type Result struct {
	Frames    int
	Score     int
	Lives     int
	CoinsLeft int
	State     state.GameState
	Won       bool
	Restarts  int
	Hits      int
}

// Run re-simulates a recording without a window.
// The recording's seed, generator and lives mode override cfg so the level
// matches the one that was played. Cancellation is checked between frames.
func Run(ctx context.Context, cfg *config.GameConfig, data ReplayData) (Result, error) {
	if len(data.Frames) == 0 {
		return Result{}, ErrNoFrames
	}

	runCfg := *cfg
	if data.Generator != "" {
		runCfg.Gameplay.Generator = data.Generator
	}
	runCfg.Gameplay.LivesMode = data.LivesMode

	replayer := NewReplayer(data)
	session := system.NewSession(&runCfg, replayer.Seed())

	var res Result
	for !replayer.Done() {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("replay stopped at frame %d/%d: %w", replayer.CurrentFrame(), replayer.TotalFrames(), err)
		}

		in, _ := replayer.GetInput()
		for _, ev := range session.Update(in) {
			switch ev.(type) {
			case system.RestartEvent:
				res.Restarts++
			case system.PlayerHitEvent:
				res.Hits++
			}
		}
		res.Frames++
	}

	w := session.World()
	res.Score = w.Score
	res.Lives = w.Lives
	res.CoinsLeft = len(w.Coins)
	res.State = w.State
	res.Won = w.Over() && w.Won()
	return res, nil
}
