package playing

import (
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/younwookim/platformer/internal/application/system"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// Sky gradient end points
var (
	skyTop    = color.RGBA{12, 14, 40, 255}
	skyBottom = color.RGBA{70, 50, 110, 255}
)

// star is a background star in screen space
type star struct {
	X, Y  float64
	Size  float64
	Phase float64 // Twinkle phase offset in radians
}

// trailPoint is a past player center in world space
type trailPoint struct {
	X, Y float64
}

// Effects holds purely cosmetic state. Nothing here feeds back into the simulation.
type Effects struct {
	stars []star

	trail     []trailPoint // Ring buffer
	trailHead int
	trailSize int

	rng  *rand.Rand // Shake jitter
	tick int
}

// NewEffects creates the star field from the fixed render seed so it looks
// the same every run, independent of the level seed.
func NewEffects(cfg *config.GameConfig) *Effects {
	starRng := rand.New(rand.NewSource(cfg.Render.StarSeed))
	w := float64(cfg.Display.ScreenWidth)
	h := cfg.GroundTop() * 0.75

	stars := make([]star, cfg.Render.StarCount)
	for i := range stars {
		stars[i] = star{
			X:     starRng.Float64() * w,
			Y:     starRng.Float64() * h,
			Size:  1 + starRng.Float64()*1.5,
			Phase: starRng.Float64() * 2 * math.Pi,
		}
	}

	return &Effects{
		stars: stars,
		trail: make([]trailPoint, max(cfg.Feedback.TrailLength, 0)),
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Update records the player position and advances animation time
func (e *Effects) Update(w *system.World) {
	e.tick++
	if len(e.trail) == 0 || w.Over() {
		return
	}
	e.trail[e.trailHead] = trailPoint{X: w.Player.CenterX(), Y: w.Player.CenterY()}
	e.trailHead = (e.trailHead + 1) % len(e.trail)
	if e.trailSize < len(e.trail) {
		e.trailSize++
	}
}

// Reset clears the trail, e.g. after a restart or respawn
func (e *Effects) Reset() {
	e.trailHead = 0
	e.trailSize = 0
}

// Trail returns the trail points from oldest to newest
func (e *Effects) Trail() []trailPoint {
	out := make([]trailPoint, 0, e.trailSize)
	start := (e.trailHead - e.trailSize + len(e.trail)) % max(len(e.trail), 1)
	for i := 0; i < e.trailSize; i++ {
		out = append(out, e.trail[(start+i)%len(e.trail)])
	}
	return out
}

// Shake returns this frame's render offset
func (e *Effects) Shake(frames int, intensity float64) (dx, dy float64) {
	return system.ShakeOffset(e.rng, frames, intensity)
}

// StarAlpha returns a star's brightness in [0.3, 1] at the given tick
func StarAlpha(s star, tick int) float64 {
	return 0.65 + 0.35*math.Sin(float64(tick)*0.05+s.Phase)
}

// CoinPulse returns a value in [0, 1] that cycles about once a second
func CoinPulse(tick int) float64 {
	return 0.5 + 0.5*math.Sin(float64(tick)*0.1)
}

// SkyColor returns the gradient color at row y of a screen of height h
func SkyColor(y, h float64) color.RGBA {
	t := 0.0
	if h > 0 {
		t = math.Min(math.Max(y/h, 0), 1)
	}
	return color.RGBA{
		R: lerp8(skyTop.R, skyBottom.R, t),
		G: lerp8(skyTop.G, skyBottom.G, t),
		B: lerp8(skyTop.B, skyBottom.B, t),
		A: 255,
	}
}

// Blink reports whether a flashing element is visible while shake frames remain
func Blink(shakeFrames int) bool {
	return shakeFrames <= 0 || (shakeFrames/3)%2 == 0
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func scaleAlpha(c color.RGBA, a float64) color.RGBA {
	// premultiplied alpha
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
