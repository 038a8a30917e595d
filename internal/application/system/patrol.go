package system

import "github.com/younwookim/platformer/internal/domain/entity"

// PatrolSystem moves enemies back and forth between their patrol bounds
type PatrolSystem struct{}

// NewPatrolSystem creates a new patrol system
func NewPatrolSystem() *PatrolSystem {
	return &PatrolSystem{}
}

// Update moves every enemy one frame.
// Crossing a bound flips the velocity for the next frame; the position
// is left outside the bound for this one.
func (s *PatrolSystem) Update(enemies []*entity.Enemy) {
	for _, enemy := range enemies {
		enemy.X += enemy.VX
		if enemy.OutOfBounds() {
			enemy.VX = -enemy.VX
		}
	}
}
