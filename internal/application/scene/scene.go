// Package scene defines the Scene interface for game screens.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the game. The game loop delegates Update and Draw
// to the current scene.
type Scene interface {
	// Update advances the scene by dt seconds.
	// It returns the next scene to switch to, or nil to stay.
	// A non-nil error ends the game; ebiten.Termination is a normal quit.
	Update(dt float64) (next Scene, err error)

	Draw(screen *ebiten.Image)

	// OnEnter runs each time the scene becomes current.
	OnEnter()

	// OnExit runs when the scene is replaced or the game ends.
	OnExit()
}
