// Package playing provides the main gameplay scene.
package playing

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/younwookim/platformer/internal/application/scene"
	"github.com/younwookim/platformer/internal/application/system"
	"github.com/younwookim/platformer/internal/application/ui"
	"github.com/younwookim/platformer/internal/infrastructure/audio"
	"github.com/younwookim/platformer/internal/infrastructure/config"
	"github.com/younwookim/platformer/internal/infrastructure/logging"
)

// GameOverUI is the panel shown once a round has ended
type GameOverUI interface {
	SetResult(won bool, score int)
	Update()
	Draw(screen *ebiten.Image)
	RestartClicked() bool
}

// ChangeSource reports config files that changed on disk
type ChangeSource interface {
	Poll() (string, bool)
	PollError() error
}

// Options configures a Playing scene. Zero values fall back to defaults.
type Options struct {
	Seed       int64  // Level seed, 0 for time-based
	RecordPath string // Record input to this file when set
	Debug      bool   // Show the TPS overlay

	Sounds audio.Sounds
	Logger *log.Logger
	Panel  GameOverUI

	// Changes and Reload enable hot reloading of tuning values
	Changes ChangeSource
	Reload  func() (*config.GameConfig, error)
}

// Playing is the main gameplay scene
type Playing struct {
	config  *config.GameConfig
	session *system.Session
	input   *system.InputSystem
	effects *Effects

	sounds audio.Sounds
	logger *log.Logger
	panel  GameOverUI
	face   ebtext.Face

	changes ChangeSource
	reload  func() (*config.GameConfig, error)

	screenW      int
	screenH      int
	debugOverlay bool

	// Input recording
	recorder       *Recorder
	recordFilename string
}

// New creates a new Playing scene
func New(cfg *config.GameConfig, opts Options) *Playing {
	p := &Playing{
		config:         cfg,
		session:        system.NewSession(cfg, opts.Seed),
		input:          system.NewInputSystem(system.DefaultKeyBindings()),
		effects:        NewEffects(cfg),
		sounds:         opts.Sounds,
		logger:         opts.Logger,
		panel:          opts.Panel,
		face:           ebtext.NewGoXFace(basicfont.Face7x13),
		changes:        opts.Changes,
		reload:         opts.Reload,
		screenW:        cfg.Display.ScreenWidth,
		screenH:        cfg.Display.ScreenHeight,
		debugOverlay:   opts.Debug,
		recordFilename: opts.RecordPath,
	}
	if p.sounds == nil {
		p.sounds = audio.Mute{}
	}
	if p.logger == nil {
		p.logger = logging.Discard()
	}
	if p.panel == nil {
		p.panel = ui.NewGameOverPanel(p.screenW, p.screenH)
	}

	level := p.session.Level()
	p.logger.Info("level generated",
		"seed", p.session.Seed(),
		"generator", cfg.Gameplay.Generator,
		"platforms", len(level.Platforms),
		"enemies", len(level.Enemies),
		"coins", len(level.Coins),
	)

	if opts.RecordPath != "" {
		p.recorder = NewRecorder(p.session.Seed(), cfg.Gameplay.Generator, cfg.Gameplay.LivesMode)
		p.logger.Info("recording enabled", "path", opts.RecordPath, "seed", p.session.Seed())
	}

	return p
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	p.applyConfigChanges()

	in := p.input.GetInput()
	if p.session.World().Over() {
		p.panel.Update()
		if p.panel.RestartClicked() {
			in.Restart = true
		}
	}

	return p.step(in)
}

// step advances one frame with the given input
func (p *Playing) step(in system.InputState) (scene.Scene, error) {
	if in.Quit {
		p.logger.Info("quit requested", "frame", p.session.World().Frame)
		return nil, ebiten.Termination
	}

	if p.recorder != nil {
		p.recorder.RecordFrame(in)
	}

	p.handleEvents(p.session.Update(in))
	p.effects.Update(p.session.World())

	return nil, nil // nil = stay on this scene
}

func (p *Playing) handleEvents(events []system.Event) {
	for _, ev := range events {
		switch e := ev.(type) {
		case system.CoinCollectedEvent:
			p.sounds.PlayPickup()
			p.logger.Debug("coin collected", "score", e.Score, "left", len(p.session.World().Coins))
		case system.PlayerHitEvent:
			p.effects.Reset()
			p.logger.Info("player hit", "lives", e.LivesLeft)
		case system.GameOverEvent:
			p.panel.SetResult(e.Won, e.Score)
			p.logger.Info("game over", "won", e.Won, "score", e.Score, "frame", p.session.World().Frame)
			// Auto-save recording on game over
			p.saveRecording()
		case system.RestartEvent:
			p.effects.Reset()
			level := p.session.Level()
			p.logger.Info("restarted", "platforms", len(level.Platforms), "coins", len(level.Coins))
		}
	}
}

// applyConfigChanges reloads tuning between frames when the config file changed
func (p *Playing) applyConfigChanges() {
	if p.changes == nil || p.reload == nil {
		return
	}

	for err := p.changes.PollError(); err != nil; err = p.changes.PollError() {
		p.logger.Warn("config watch error", "error", err)
	}

	changed := ""
	for {
		name, ok := p.changes.Poll()
		if !ok {
			break
		}
		changed = name
	}
	if changed == "" {
		return
	}

	cfg, err := p.reload()
	if err != nil {
		p.logger.Warn("config reload failed, keeping current values", "path", changed, "error", err)
		return
	}

	p.config = cfg
	p.session.SetConfig(cfg)
	p.logger.Info("config reloaded", "path", changed)
	if p.recorder != nil {
		p.logger.Warn("config changed while recording; the replay will not match")
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || !p.recorder.IsRecording() {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.logger.Error("failed to save recording", "path", filename, "error", err)
	} else {
		p.logger.Info("recording saved", "path", filename, "frames", p.recorder.FrameCount())
	}
}

// Session returns the scene's session
func (p *Playing) Session() *system.Session {
	return p.session
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
	if p.recorder != nil {
		p.recorder.Stop()
	}
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}
