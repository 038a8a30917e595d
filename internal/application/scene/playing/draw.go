package playing

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/younwookim/platformer/internal/application/system"
	"github.com/younwookim/platformer/internal/domain/entity"
)

// Colors for rendering
var (
	colorGround   = color.RGBA{40, 90, 50, 255}
	colorPlatform = color.RGBA{90, 160, 90, 255}
	colorPlayer   = color.RGBA{80, 180, 255, 255}
	colorTrail    = color.RGBA{80, 180, 255, 120}
	colorEnemy    = color.RGBA{220, 60, 60, 255}
	colorEye      = color.RGBA{255, 255, 255, 255}
	colorCoinLow  = color.RGBA{200, 150, 0, 255}
	colorCoinHigh = color.RGBA{255, 230, 80, 255}
	colorOverlay  = color.RGBA{0, 0, 0, 140}
)

const skyBand = 4 // Gradient band height in pixels

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	w := p.session.World()

	p.drawSky(screen)
	p.drawStars(screen)

	dx, dy := p.effects.Shake(w.ShakeFrames, p.config.Feedback.ShakeIntensity)
	camX := w.Camera.X - dx

	p.drawPlatforms(screen, w, camX, dy)
	p.drawCoins(screen, w, camX, dy)
	p.drawEnemies(screen, w, camX, dy)
	p.drawTrail(screen, camX, dy)
	p.drawPlayer(screen, w, camX, dy)

	p.drawHUD(screen, w)

	if w.Over() {
		vector.DrawFilledRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), colorOverlay, false)
		p.panel.Draw(screen)
	}
}

func (p *Playing) drawSky(screen *ebiten.Image) {
	h := float64(p.screenH)
	for y := 0; y < p.screenH; y += skyBand {
		c := SkyColor(float64(y), h)
		vector.DrawFilledRect(screen, 0, float32(y), float32(p.screenW), skyBand, c, false)
	}
}

func (p *Playing) drawStars(screen *ebiten.Image) {
	for _, s := range p.effects.stars {
		c := scaleAlpha(colornames.White, StarAlpha(s, p.effects.tick))
		vector.DrawFilledCircle(screen, float32(s.X), float32(s.Y), float32(s.Size), c, true)
	}
}

// screenRect converts a world rectangle to float32 screen coordinates
func screenRect(r entity.Rect, camX, dy float64) (x, y, w, h float32) {
	return float32(r.X - camX), float32(r.Y + dy), float32(r.W), float32(r.H)
}

func (p *Playing) drawPlatforms(screen *ebiten.Image, w *system.World, camX, dy float64) {
	for i, pl := range w.Platforms {
		if !w.Camera.Visible(pl.Rect) {
			continue
		}
		c := colorPlatform
		if i == 0 {
			c = colorGround
		}
		x, y, pw, ph := screenRect(pl.Rect, camX, dy)
		vector.DrawFilledRect(screen, x, y, pw, ph, c, false)
	}
}

func (p *Playing) drawCoins(screen *ebiten.Image, w *system.World, camX, dy float64) {
	t := CoinPulse(p.effects.tick)
	c := color.RGBA{
		R: lerp8(colorCoinLow.R, colorCoinHigh.R, t),
		G: lerp8(colorCoinLow.G, colorCoinHigh.G, t),
		B: lerp8(colorCoinLow.B, colorCoinHigh.B, t),
		A: 255,
	}
	for _, coin := range w.Coins {
		if !w.Camera.Visible(coin.Rect) {
			continue
		}
		r := float32(coin.W / 2)
		vector.DrawFilledCircle(screen, float32(coin.CenterX()-camX), float32(coin.CenterY()+dy), r, c, true)
	}
}

func (p *Playing) drawEnemies(screen *ebiten.Image, w *system.World, camX, dy float64) {
	for _, e := range w.Enemies {
		if !w.Camera.Visible(e.Rect) {
			continue
		}
		x, y, ew, eh := screenRect(e.Rect, camX, dy)
		vector.DrawFilledRect(screen, x, y, ew, eh, colorEnemy, false)

		// Eye on the side the enemy is walking towards
		eyeX := x + ew*0.25
		if e.FacingRight() {
			eyeX = x + ew*0.75
		}
		vector.DrawFilledCircle(screen, eyeX, y+eh*0.3, ew*0.12, colorEye, true)
	}
}

func (p *Playing) drawTrail(screen *ebiten.Image, camX, dy float64) {
	points := p.effects.Trail()
	n := len(points)
	radius := p.config.Player.Size / 2
	for i, pt := range points {
		a := float64(i+1) / float64(n+1)
		c := scaleAlpha(colorTrail, a)
		vector.DrawFilledCircle(screen, float32(pt.X-camX), float32(pt.Y+dy), float32(radius*a), c, true)
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, w *system.World, camX, dy float64) {
	if !Blink(w.ShakeFrames) {
		return
	}
	pl := w.Player
	vector.DrawFilledCircle(screen, float32(pl.CenterX()-camX), float32(pl.CenterY()+dy), float32(pl.Radius()), colorPlayer, true)
}

func (p *Playing) drawHUD(screen *ebiten.Image, w *system.World) {
	p.drawText(screen, fmt.Sprintf("Score: %d", w.Score), 10, 10, colornames.White)
	p.drawText(screen, fmt.Sprintf("Coins left: %d", len(w.Coins)), 10, 28, colornames.Gold)

	if w.LivesMode {
		c := color.Color(colornames.White)
		if !Blink(w.ShakeFrames) {
			c = colornames.Red
		}
		p.drawText(screen, fmt.Sprintf("Lives: %d", w.Lives), 10, 46, c)
	}

	if p.debugOverlay {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  FPS %.0f  frame %d", ebiten.ActualTPS(), ebiten.ActualFPS(), w.Frame),
			p.screenW-260, 10)
	}

	p.drawText(screen, "Arrows/AD: move | Space/W: jump | Shift: sprint | R: restart | Esc: quit",
		10, float64(p.screenH-20), colornames.Lightgray)
}

func (p *Playing) drawText(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	ebtext.Draw(screen, s, p.face, op)
}
