package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/younwookim/platformer/internal/application/system"
	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

var levelCmd = &cobra.Command{
	Use:   "level",
	Short: "Print the generated level as YAML",
	Long: `Generate the level for a seed and print it, without opening a window.

Examples:
  game level --seed 42
  game level --classic`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(flagConfig, flagClassic)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return writeLevel(cmd.OutOrStdout(), cfg, flagSeed)
	},
}

type rectDoc struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

type enemyDoc struct {
	Rect rectDoc `yaml:",inline"`
	MinX float64 `yaml:"minX"`
	MaxX float64 `yaml:"maxX"`
	VX   float64 `yaml:"vx"`
}

type levelDoc struct {
	Seed      int64      `yaml:"seed"`
	Generator string     `yaml:"generator"`
	Platforms []rectDoc  `yaml:"platforms"`
	Enemies   []enemyDoc `yaml:"enemies"`
	Coins     []rectDoc  `yaml:"coins"`
}

func toRectDoc(r entity.Rect) rectDoc {
	return rectDoc{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

// writeLevel generates the level the way a new session would and encodes it
func writeLevel(w io.Writer, cfg *config.GameConfig, seed int64) error {
	session := system.NewSession(cfg, seed)
	level := session.Level()

	doc := levelDoc{
		Seed:      session.Seed(),
		Generator: cfg.Gameplay.Generator,
	}
	for _, p := range level.Platforms {
		doc.Platforms = append(doc.Platforms, toRectDoc(p.Rect))
	}
	for _, e := range level.Enemies {
		doc.Enemies = append(doc.Enemies, enemyDoc{
			Rect: toRectDoc(e.Rect),
			MinX: e.MinX,
			MaxX: e.MaxX,
			VX:   e.VX,
		})
	}
	for _, c := range level.Coins {
		doc.Coins = append(doc.Coins, toRectDoc(c.Rect))
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding level: %w", err)
	}
	return enc.Close()
}
