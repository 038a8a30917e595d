package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState holds the input snapshot for one frame
type InputState struct {
	Left        bool
	Right       bool
	JumpPressed bool // Edge-triggered: true only on the frame the key goes down
	Sprint      bool
	Restart     bool
	Quit        bool
}

// KeyBindings maps each input to the keys that trigger it
type KeyBindings struct {
	Left    []ebiten.Key
	Right   []ebiten.Key
	Jump    []ebiten.Key
	Sprint  []ebiten.Key
	Restart []ebiten.Key
	Quit    []ebiten.Key
}

// DefaultKeyBindings returns arrows/WASD movement with Space to jump
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Left:    []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		Right:   []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		Jump:    []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW},
		Sprint:  []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
		Restart: []ebiten.Key{ebiten.KeyR},
		Quit:    []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ},
	}
}

// InputSystem handles player input
type InputSystem struct {
	bindings KeyBindings
}

// NewInputSystem creates a new input system
func NewInputSystem(bindings KeyBindings) *InputSystem {
	return &InputSystem{bindings: bindings}
}

// GetInput reads the current input state from ebiten
func (s *InputSystem) GetInput() InputState {
	return s.readInput(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed)
}

// readInput builds the snapshot from key queries.
// Keys that are not bound are never consulted.
func (s *InputSystem) readInput(held, justPressed func(ebiten.Key) bool) InputState {
	return InputState{
		Left:        anyKey(s.bindings.Left, held),
		Right:       anyKey(s.bindings.Right, held),
		JumpPressed: anyKey(s.bindings.Jump, justPressed),
		Sprint:      anyKey(s.bindings.Sprint, held),
		Restart:     anyKey(s.bindings.Restart, justPressed),
		Quit:        anyKey(s.bindings.Quit, justPressed),
	}
}

func anyKey(keys []ebiten.Key, query func(ebiten.Key) bool) bool {
	for _, k := range keys {
		if query(k) {
			return true
		}
	}
	return false
}
