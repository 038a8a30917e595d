package entity

// MaxJumps is the default number of jumps available before landing again
const MaxJumps = 2

// Player represents the player-controlled circle.
// Its collision shape is the bounding square of the circle.
type Player struct {
	Rect

	VY        float64 // Vertical velocity (units per frame, positive is down)
	OnGround  bool
	JumpCount int // Jumps used since last landing
}

// NewPlayer creates a player with its top-left corner at (x, y)
func NewPlayer(x, y, size float64) *Player {
	return &Player{
		Rect: NewRect(x, y, size, size),
	}
}

// Reset puts the player back at (x, y) at rest.
// The player is reset in place and never destroyed.
func (p *Player) Reset(x, y float64) {
	p.X = x
	p.Y = y
	p.VY = 0
	p.OnGround = false
	p.JumpCount = 0
}

// CanJump returns true if the player has a jump left
func (p *Player) CanJump(maxJumps int) bool {
	return p.JumpCount < maxJumps
}

// Land snaps the player's bottom edge onto the given surface height
func (p *Player) Land(top float64) {
	p.SetBottom(top)
	p.VY = 0
	p.OnGround = true
	p.JumpCount = 0
}

// Radius returns the radius of the drawn circle
func (p *Player) Radius() float64 {
	return p.W / 2
}
