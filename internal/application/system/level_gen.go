package system

import (
	"math/rand"

	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// classicPlatform describes a hand-placed platform relative to the ground
type classicPlatform struct {
	x, rise, w float64
	coin       bool
	enemy      bool
}

var classicLayout = []classicPlatform{
	{x: 300, rise: 100, w: 150, coin: true},
	{x: 550, rise: 180, w: 120, coin: true},
	{x: 800, rise: 120, w: 180, coin: true, enemy: true},
	{x: 1100, rise: 210, w: 120, coin: true},
	{x: 1380, rise: 140, w: 200, coin: true, enemy: true},
	{x: 1700, rise: 230, w: 130, coin: true},
	{x: 2000, rise: 120, w: 180, coin: true, enemy: true},
}

// GenerateLevel builds a level with the configured generator
func GenerateLevel(cfg *config.GameConfig, rng *rand.Rand) *entity.Level {
	if cfg.Gameplay.Generator == config.GeneratorClassic {
		return ClassicLevel(cfg)
	}
	return RandomLevel(cfg, rng)
}

// ClassicLevel returns the fixed hand-placed level.
// Platforms that would not fit in the configured world are skipped.
func ClassicLevel(cfg *config.GameConfig) *entity.Level {
	level := &entity.Level{
		Platforms: []entity.Platform{ground(cfg)},
	}

	groundTop := cfg.GroundTop()
	for _, cp := range classicLayout {
		if cp.x+cp.w > cfg.World.Width {
			continue
		}
		p := entity.NewPlatform(cp.x, groundTop-cp.rise, cp.w, cfg.Level.PlatformHeight)
		level.Platforms = append(level.Platforms, p)

		if cp.coin {
			level.Coins = append(level.Coins, coinAbove(cfg, p, p.CenterX()-cfg.Coin.Size/2))
		}
		if cp.enemy && p.W > cfg.Enemy.Size {
			level.Enemies = append(level.Enemies, entity.NewEnemy(
				p.X, p.Top()-cfg.Enemy.Size, cfg.Enemy.Size,
				p.Left(), p.Right(), cfg.Enemy.Speed,
			))
		}
	}
	return level
}

// RandomLevel generates a level from rng.
// The ground spans the whole world. The other platforms sit one per
// horizontal band past the spawn point, each with a chance of a coin above
// it and, except the first, a chance of an enemy patrolling its span.
// Coins are topped up on random platforms until the configured minimum.
func RandomLevel(cfg *config.GameConfig, rng *rand.Rand) *entity.Level {
	lc := cfg.Level
	level := &entity.Level{
		Platforms: []entity.Platform{ground(cfg)},
	}

	n := lc.MinPlatforms
	if lc.MaxPlatforms > lc.MinPlatforms {
		n += rng.Intn(lc.MaxPlatforms - lc.MinPlatforms + 1)
	}
	if n <= 0 {
		return level
	}

	start := cfg.LevelStart()
	band := (cfg.World.Width - start) / float64(n)
	maxW := min(lc.PlatformMaxWidth, band)
	minW := min(lc.PlatformMinWidth, maxW)
	groundTop := cfg.GroundTop()

	for i := 0; i < n; i++ {
		w := minW + rng.Float64()*(maxW-minW)
		x := start + float64(i)*band + rng.Float64()*(band-w)
		rise := lc.MinRise + rng.Float64()*(lc.MaxRise-lc.MinRise)
		p := entity.NewPlatform(x, groundTop-rise, w, lc.PlatformHeight)
		level.Platforms = append(level.Platforms, p)

		if rng.Float64() < lc.CoinChance {
			level.Coins = append(level.Coins, coinAbove(cfg, p, p.CenterX()-cfg.Coin.Size/2))
		}

		if i > 0 && rng.Float64() < lc.EnemyChance && p.W > cfg.Enemy.Size {
			ex := p.X + rng.Float64()*(p.W-cfg.Enemy.Size)
			vx := cfg.Enemy.Speed
			if rng.Intn(2) == 0 {
				vx = -vx
			}
			level.Enemies = append(level.Enemies, entity.NewEnemy(
				ex, p.Top()-cfg.Enemy.Size, cfg.Enemy.Size,
				p.Left(), p.Right(), vx,
			))
		}
	}

	for len(level.Coins) < lc.MinCoins {
		p := level.Platforms[1+rng.Intn(n)]
		x := p.X + rng.Float64()*max(p.W-cfg.Coin.Size, 0)
		level.Coins = append(level.Coins, coinAbove(cfg, p, x))
	}

	return level
}

func ground(cfg *config.GameConfig) entity.Platform {
	return entity.NewPlatform(0, cfg.GroundTop(), cfg.World.Width, cfg.Level.GroundHeight)
}

func coinAbove(cfg *config.GameConfig, p entity.Platform, x float64) entity.Coin {
	return entity.NewCoin(x, p.Top()-cfg.Level.CoinOffset, cfg.Coin.Size)
}
