// game is a side-scrolling platformer: collect every coin, avoid the patrollers.
//
// Usage:
//
//	game                  - Play (same as "game play")
//	game play             - Play in a window
//	game replay <file>    - Re-simulate a recording headlessly and print the result
//	game level            - Print the generated level as YAML
//
// Global flags:
//
//	--config <path>     - Custom game.yaml (default: embedded)
//	--seed <value>      - Level seed (0 = random based on time)
//	--classic           - Use the fixed classic layout
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/platformer/internal/infrastructure/config"
	"github.com/younwookim/platformer/internal/infrastructure/logging"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagClassic  bool
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "game",
	Short: "Ultimate Platformer - collect every coin",
	Long: `A side-scrolling platformer. Collect every coin in the level while
avoiding the patrolling enemies.

Examples:
  game
  game play --seed 42 --record run.json
  game play --config ./game.yaml --watch
  game replay run.json
  game level --seed 42 --classic`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Level seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagClassic, "classic", false, "Use the fixed classic level instead of a random one")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(levelCmd)
}

// loadConfig resolves the config from --config or the embedded default and
// applies command-line overrides
func loadConfig(path string, classic bool) (*config.GameConfig, error) {
	embedded, err := embeddedConfigs()
	if err != nil {
		return nil, fmt.Errorf("opening embedded configs: %w", err)
	}

	cfg, err := config.Load(path, embedded)
	if err != nil {
		return nil, err
	}
	if classic {
		cfg.Gameplay.Generator = config.GeneratorClassic
	}
	return cfg, nil
}

func newLogger(prefix string) (*log.Logger, error) {
	return logging.New(flagLogLevel, prefix)
}
