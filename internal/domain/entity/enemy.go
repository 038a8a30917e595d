package entity

// Platform is a static solid surface. Platforms are never mutated.
type Platform struct {
	Rect
}

// NewPlatform creates a platform
func NewPlatform(x, y, w, h float64) Platform {
	return Platform{Rect: NewRect(x, y, w, h)}
}

// Enemy represents an enemy patrolling back and forth between MinX and MaxX
type Enemy struct {
	Rect

	MinX, MaxX float64 // Patrol bounds
	VX         float64 // Signed horizontal velocity, constant magnitude
}

// NewEnemy creates a patrolling enemy
func NewEnemy(x, y, size, minX, maxX, vx float64) *Enemy {
	return &Enemy{
		Rect: NewRect(x, y, size, size),
		MinX: minX,
		MaxX: maxX,
		VX:   vx,
	}
}

// OutOfBounds returns true if the enemy has crossed either patrol bound
func (e *Enemy) OutOfBounds() bool {
	return e.Left() < e.MinX || e.Right() > e.MaxX
}

// FacingRight returns true if the enemy is moving right
func (e *Enemy) FacingRight() bool {
	return e.VX > 0
}

// Coin represents a collectible coin
type Coin struct {
	Rect
}

// NewCoin creates a coin
func NewCoin(x, y, size float64) Coin {
	return Coin{Rect: NewRect(x, y, size, size)}
}
