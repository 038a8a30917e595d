package system

import (
	"math/rand"

	"github.com/younwookim/platformer/internal/domain/entity"
)

// CameraSystem keeps the camera centered on the player
type CameraSystem struct{}

// NewCameraSystem creates a new camera system
func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// Update centers the camera on the player, clamped to the world
func (s *CameraSystem) Update(cam *entity.Camera, player *entity.Player) {
	cam.X = clamp(player.CenterX()-cam.ViewportW/2, 0, cam.MaxX())
}

// ShakeOffset returns a random render offset while shake frames remain.
// It draws from rng only when shaking so an idle camera consumes no randomness.
func ShakeOffset(rng *rand.Rand, frames int, intensity float64) (dx, dy float64) {
	if frames <= 0 || intensity <= 0 {
		return 0, 0
	}
	dx = (rng.Float64()*2 - 1) * intensity
	dy = (rng.Float64()*2 - 1) * intensity
	return dx, dy
}
