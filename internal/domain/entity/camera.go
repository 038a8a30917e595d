package entity

// Camera maps world coordinates to screen coordinates by a horizontal offset.
// Only X is meaningful; the world never scrolls vertically.
type Camera struct {
	X         float64
	ViewportW float64
	WorldW    float64
}

// NewCamera creates a camera for the given viewport and world widths
func NewCamera(viewportW, worldW float64) Camera {
	return Camera{ViewportW: viewportW, WorldW: worldW}
}

// MaxX returns the largest valid camera offset
func (c Camera) MaxX() float64 {
	if c.WorldW <= c.ViewportW {
		return 0
	}
	return c.WorldW - c.ViewportW
}

// ToScreen converts a world rectangle to screen coordinates
func (c Camera) ToScreen(r Rect) Rect {
	return r.Translate(-c.X, 0)
}

// Visible reports whether any part of r is inside the viewport
func (c Camera) Visible(r Rect) bool {
	return r.Right() > c.X && r.Left() < c.X+c.ViewportW
}
