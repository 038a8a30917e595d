package system

import (
	"github.com/younwookim/platformer/internal/application/state"
	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// World is the complete mutable state of one play session.
// It is owned by a single goroutine and passed by reference into Simulation.Step.
type World struct {
	Player    *entity.Player
	Platforms []entity.Platform
	Enemies   []*entity.Enemy
	Coins     []entity.Coin
	Camera    entity.Camera

	Lives       int
	Score       int
	State       state.GameState
	ShakeFrames int // Frames of camera shake left
	Frame       int // Steps simulated since the last reset

	LivesMode      bool
	SpawnX, SpawnY float64
}

// NewWorld creates a world for the given level
func NewWorld(cfg *config.GameConfig, level *entity.Level) *World {
	w := &World{}
	w.Reset(cfg, level)
	return w
}

// Reset reinitializes player, level, lives, score and timers in place
func (w *World) Reset(cfg *config.GameConfig, level *entity.Level) {
	w.SpawnX = cfg.Player.SpawnX
	w.SpawnY = cfg.Player.SpawnY
	if w.Player == nil || w.Player.W != cfg.Player.Size {
		w.Player = entity.NewPlayer(w.SpawnX, w.SpawnY, cfg.Player.Size)
	} else {
		w.Player.Reset(w.SpawnX, w.SpawnY)
	}

	w.Platforms = level.Platforms
	w.Enemies = level.Enemies
	w.Coins = level.Coins
	w.Camera = entity.NewCamera(float64(cfg.Display.ScreenWidth), cfg.World.Width)

	w.LivesMode = cfg.Gameplay.LivesMode
	w.Lives = 0
	if w.LivesMode {
		w.Lives = cfg.Gameplay.Lives
	}
	w.Score = 0
	w.State = state.StatePlaying
	w.ShakeFrames = 0
	w.Frame = 0
}

// Won returns true once every coin has been collected.
// Win and loss share the game-over state and are told apart only by this.
func (w *World) Won() bool {
	return len(w.Coins) == 0
}

// Over returns true if the session has ended
func (w *World) Over() bool {
	return w.State.Terminal()
}

// RespawnPlayer moves the player back to the spawn point at rest
func (w *World) RespawnPlayer() {
	w.Player.Reset(w.SpawnX, w.SpawnY)
}
