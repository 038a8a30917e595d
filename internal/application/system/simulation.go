package system

import (
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// Simulation advances a World by one fixed frame.
// It holds no session state; everything mutable lives in the World.
type Simulation struct {
	config  *config.GameConfig
	physics *PhysicsSystem
	patrol  *PatrolSystem
	pickup  *PickupSystem
	camera  *CameraSystem
}

// NewSimulation creates a simulation for the given config
func NewSimulation(cfg *config.GameConfig) *Simulation {
	s := &Simulation{
		patrol: NewPatrolSystem(),
		camera: NewCameraSystem(),
	}
	s.SetConfig(cfg)
	return s
}

// SetConfig swaps the tuning used by subsequent steps
func (s *Simulation) SetConfig(cfg *config.GameConfig) {
	s.config = cfg
	s.physics = NewPhysicsSystem(cfg)
	s.pickup = NewPickupSystem(cfg)
}

// Step advances the world by one frame and returns what happened.
// A finished world is left untouched.
func (s *Simulation) Step(w *World, in InputState) []Event {
	if w.Over() {
		return nil
	}

	w.Frame++
	if w.ShakeFrames > 0 {
		w.ShakeFrames--
	}

	s.physics.Update(w.Player, in, w.Platforms)
	s.patrol.Update(w.Enemies)
	events := s.pickup.Update(w, nil)
	s.camera.Update(&w.Camera, w.Player)

	return events
}
