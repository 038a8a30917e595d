package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/younwookim/platformer/internal/application/game"
	"github.com/younwookim/platformer/internal/application/scene/playing"
	"github.com/younwookim/platformer/internal/infrastructure/audio"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

var (
	flagRecord string
	flagWatch  bool
	flagDebug  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in a window",
	Long: `Open the game window and play.

Controls:
  Left/Right or A/D  - Move
  Space/W/Up         - Jump (twice for a double jump)
  Shift              - Sprint
  R                  - Restart (after game over)
  Esc                - Quit

Examples:
  game play
  game play --seed 42 --record run.json
  game play --config ./game.yaml --watch`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagRecord, "record", "", "Record input to file (e.g. --record replay.json)")
	cmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload tuning when the --config file changes")
	cmd.Flags().BoolVar(&flagDebug, "debug-overlay", false, "Show TPS and frame counters")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, err := newLogger("game")
	if err != nil {
		return err
	}

	cfg, err := loadConfig(flagConfig, flagClassic)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	opts := playing.Options{
		Seed:       flagSeed,
		RecordPath: flagRecord,
		Debug:      flagDebug,
		Logger:     logger,
		Sounds:     audio.Mute{},
	}

	if cfg.Audio.Enabled {
		beeper, err := audio.NewBeeper(cfg.Audio.Volume)
		if err != nil {
			logger.Warn("audio unavailable, continuing muted", "error", err)
		} else {
			opts.Sounds = beeper
		}
	}

	if flagWatch {
		if flagConfig == "" {
			logger.Warn("--watch needs --config; hot reload disabled")
		} else {
			watcher, err := config.NewWatcher(filepath.Dir(flagConfig))
			if err != nil {
				return fmt.Errorf("failed to watch config: %w", err)
			}
			defer func() { _ = watcher.Close() }()

			path, classic := flagConfig, flagClassic
			opts.Changes = watcher
			opts.Reload = func() (*config.GameConfig, error) {
				return loadConfig(path, classic)
			}
			logger.Info("watching config", "path", flagConfig)
		}
	}

	scene := playing.New(cfg, opts)
	g := game.New(scene, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	g.SetTPS(cfg.TPS())

	scale := max(cfg.Display.Scale, 1)
	ebiten.SetWindowSize(cfg.Display.ScreenWidth*scale, cfg.Display.ScreenHeight*scale)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetTPS(cfg.TPS())

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
