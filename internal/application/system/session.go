package system

import (
	"math/rand"
	"time"

	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// Session owns a World and its level random stream across restarts
type Session struct {
	config *config.GameConfig
	sim    *Simulation
	world  *World
	rng    *rand.Rand
	seed   int64
	level  *entity.Level // Pristine copy of the current level
}

// NewSession creates a session. A zero seed picks a time-based one.
func NewSession(cfg *config.GameConfig, seed int64) *Session {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		config: cfg,
		sim:    NewSimulation(cfg),
		rng:    rand.New(rand.NewSource(seed)),
		seed:   seed,
	}
	s.level = GenerateLevel(cfg, s.rng)
	s.world = NewWorld(cfg, s.level.Clone())
	return s
}

// World returns the live world
func (s *Session) World() *World {
	return s.world
}

// Seed returns the seed of the level random stream
func (s *Session) Seed() int64 {
	return s.seed
}

// Level returns the level the current round started from
func (s *Session) Level() *entity.Level {
	return s.level
}

// Update steps the world, or restarts it if it is over and restart was requested
func (s *Session) Update(in InputState) []Event {
	if s.world.Over() {
		if !in.Restart {
			return nil
		}
		s.Restart()
		return []Event{RestartEvent{}}
	}
	return s.sim.Step(s.world, in)
}

// Restart reinitializes the world with a freshly generated level.
// The level stream continues, so a random level differs from the last one.
func (s *Session) Restart() {
	s.level = GenerateLevel(s.config, s.rng)
	s.world.Reset(s.config, s.level.Clone())
}

// SetConfig applies new tuning from the next frame on.
// Level layout and lives mode change only on restart.
func (s *Session) SetConfig(cfg *config.GameConfig) {
	s.config = cfg
	s.sim.SetConfig(cfg)
}

// Config returns the active config
func (s *Session) Config() *config.GameConfig {
	return s.config
}
