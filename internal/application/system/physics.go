package system

import (
	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// PhysicsSystem handles player movement, gravity and landing
type PhysicsSystem struct {
	config *config.GameConfig
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.GameConfig) *PhysicsSystem {
	return &PhysicsSystem{config: cfg}
}

// Update advances the player by one frame
func (s *PhysicsSystem) Update(player *entity.Player, input InputState, platforms []entity.Platform) {
	s.applyMovement(player, input)
	s.applyGravity(player)
	s.resolveLanding(player, platforms)
	s.handleJump(player, input)
	s.clampToWorld(player)
}

// applyMovement moves the player horizontally at constant speed
func (s *PhysicsSystem) applyMovement(player *entity.Player, input InputState) {
	speed := s.config.Movement.Speed
	if input.Sprint && s.config.Movement.SprintEnabled {
		speed *= s.config.Movement.SprintMultiplier
	}

	if input.Left {
		player.X -= speed
	}
	if input.Right {
		player.X += speed
	}
}

// applyGravity integrates vertical velocity and position
func (s *PhysicsSystem) applyGravity(player *entity.Player) {
	player.VY += s.config.Physics.Gravity
	player.Y += player.VY
}

// resolveLanding snaps a falling player onto the platform it overlaps.
// Only downward motion collides, so platforms can be passed from below
// and there is no horizontal response. If several platforms overlap,
// the last one in slice order wins.
func (s *PhysicsSystem) resolveLanding(player *entity.Player, platforms []entity.Platform) {
	player.OnGround = false
	if player.VY <= 0 {
		return
	}

	landed := -1
	for i := range platforms {
		if player.Overlaps(platforms[i].Rect) {
			landed = i
		}
	}
	if landed < 0 {
		return
	}

	player.Land(platforms[landed].Top())
}

// handleJump starts a jump while jumps remain; being airborne is allowed
func (s *PhysicsSystem) handleJump(player *entity.Player, input InputState) {
	if !input.JumpPressed || !player.CanJump(s.config.Physics.MaxJumps) {
		return
	}

	player.VY = s.config.Physics.JumpForce
	player.OnGround = false
	player.JumpCount++
}

// clampToWorld keeps the player inside [0, worldWidth - width]
func (s *PhysicsSystem) clampToWorld(player *entity.Player) {
	player.X = clamp(player.X, 0, s.config.World.Width-player.W)
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
