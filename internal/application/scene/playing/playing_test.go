package playing

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/platformer/internal/application/replay"
	"github.com/younwookim/platformer/internal/application/scene"
	"github.com/younwookim/platformer/internal/application/state"
	"github.com/younwookim/platformer/internal/application/system"
	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/infrastructure/config"
	"github.com/younwookim/platformer/internal/infrastructure/logging"
)

// fakePanel records what the scene asks of the game-over panel
type fakePanel struct {
	won     bool
	score   int
	results int
	clicked bool
}

func (f *fakePanel) SetResult(won bool, score int) {
	f.won, f.score = won, score
	f.results++
}
func (f *fakePanel) Update()                   {}
func (f *fakePanel) Draw(screen *ebiten.Image) {}
func (f *fakePanel) RestartClicked() bool {
	c := f.clicked
	f.clicked = false
	return c
}

type countingSounds struct{ pickups int }

func (c *countingSounds) PlayPickup() { c.pickups++ }

// fakeChanges hands out queued file names and watch errors
type fakeChanges struct {
	names []string
	errs  []error
}

func (f *fakeChanges) PollError() error {
	if len(f.errs) == 0 {
		return nil
	}
	err := f.errs[0]
	f.errs = f.errs[1:]
	return err
}

func (f *fakeChanges) Poll() (string, bool) {
	if len(f.names) == 0 {
		return "", false
	}
	name := f.names[0]
	f.names = f.names[1:]
	return name, true
}

// createTestConfig creates a config with the fixed classic level
func createTestConfig() *config.GameConfig {
	cfg := config.Default()
	cfg.Gameplay.Generator = config.GeneratorClassic
	return cfg
}

func createTestPlaying(t *testing.T, opts Options) (*Playing, *fakePanel, *countingSounds) {
	t.Helper()
	panel := &fakePanel{}
	sounds := &countingSounds{}
	opts.Panel = panel
	opts.Sounds = sounds
	if opts.Seed == 0 {
		opts.Seed = 1
	}
	return New(createTestConfig(), opts), panel, sounds
}

// placeCoinOnPlayer leaves a single coin exactly where the player stands
func placeCoinOnPlayer(p *Playing) {
	w := p.session.World()
	w.Coins = []entity.Coin{entity.NewCoin(w.Player.X, w.Player.Y, 15)}
}

func TestPlaying_ImplementsScene(t *testing.T) {
	// Compile-time check that Playing implements scene.Scene
	var _ scene.Scene = (*Playing)(nil)
}

func TestNewPlaying(t *testing.T) {
	p, _, _ := createTestPlaying(t, Options{Seed: 77})

	require.NotNil(t, p)
	assert.Equal(t, int64(77), p.Session().Seed())
	assert.Equal(t, state.StatePlaying, p.Session().World().State)
	assert.Nil(t, p.recorder)

	w, h := p.Layout(1920, 1080)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
}

func TestPlaying_Update_ReturnsNilWhenPlaying(t *testing.T) {
	p, _, _ := createTestPlaying(t, Options{})

	next, err := p.Update(1.0 / 60.0)

	assert.NoError(t, err)
	assert.Nil(t, next, "Should return nil when continuing to play")
	assert.Equal(t, 1, p.Session().World().Frame)
}

func TestPlaying_QuitTerminates(t *testing.T) {
	p, _, _ := createTestPlaying(t, Options{})

	next, err := p.step(system.InputState{Quit: true, Right: true})

	assert.Nil(t, next)
	assert.True(t, errors.Is(err, ebiten.Termination))
	assert.Equal(t, 0, p.Session().World().Frame, "quit frame is not simulated")
}

func TestPlaying_CoinPlaysSoundAndWins(t *testing.T) {
	p, panel, sounds := createTestPlaying(t, Options{})
	placeCoinOnPlayer(p)

	_, err := p.step(system.InputState{})
	require.NoError(t, err)

	assert.Equal(t, 1, sounds.pickups)
	assert.Equal(t, 1, panel.results)
	assert.True(t, panel.won)
	assert.Equal(t, 50, panel.score)
	assert.True(t, p.Session().World().Over())
}

func TestPlaying_RestartFromPanel(t *testing.T) {
	p, panel, _ := createTestPlaying(t, Options{})
	placeCoinOnPlayer(p)
	_, _ = p.step(system.InputState{})
	require.True(t, p.Session().World().Over())

	panel.clicked = true
	_, err := p.Update(1.0 / 60.0)

	require.NoError(t, err)
	w := p.Session().World()
	assert.False(t, w.Over())
	assert.Equal(t, 0, w.Score)
	assert.Len(t, w.Coins, 7)
}

func TestPlaying_RestartKey(t *testing.T) {
	p, _, _ := createTestPlaying(t, Options{})
	placeCoinOnPlayer(p)
	_, _ = p.step(system.InputState{})

	_, _ = p.step(system.InputState{Restart: true})

	assert.False(t, p.Session().World().Over())
	assert.Empty(t, p.effects.Trail())
}

func TestPlaying_HotReload(t *testing.T) {
	faster := createTestConfig()
	faster.Movement.Speed = 9
	changes := &fakeChanges{names: []string{"game.yaml", "game.yaml"}}
	reloads := 0

	p, _, _ := createTestPlaying(t, Options{
		Changes: changes,
		Reload: func() (*config.GameConfig, error) {
			reloads++
			return faster, nil
		},
	})

	_, err := p.Update(1.0 / 60.0)
	require.NoError(t, err)
	assert.Equal(t, 1, reloads, "pending changes are coalesced")
	assert.Equal(t, faster, p.config)

	x := p.Session().World().Player.X
	_, _ = p.step(system.InputState{Right: true})
	assert.Equal(t, x+9, p.Session().World().Player.X)
}

func TestPlaying_HotReloadFailureKeepsConfig(t *testing.T) {
	changes := &fakeChanges{names: []string{"game.yaml"}}

	p, _, _ := createTestPlaying(t, Options{
		Changes: changes,
		Reload: func() (*config.GameConfig, error) {
			return nil, config.ErrInvalid
		},
	})
	before := p.config

	p.applyConfigChanges()

	assert.Same(t, before, p.config)
}

func TestPlaying_WatchErrorsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.NewWithWriter(&buf, "warn", "")
	require.NoError(t, err)
	changes := &fakeChanges{errs: []error{errors.New("inotify overflow")}}

	p, _, _ := createTestPlaying(t, Options{
		Logger:  logger,
		Changes: changes,
		Reload: func() (*config.GameConfig, error) {
			t.Fatal("reload without a changed file")
			return nil, nil
		},
	})

	p.applyConfigChanges()

	assert.Contains(t, buf.String(), "config watch error")
	assert.Contains(t, buf.String(), "inotify overflow")
	assert.Empty(t, changes.errs)
}

func TestPlaying_OnExitStopsRecording(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	p, _, _ := createTestPlaying(t, Options{RecordPath: path})
	_, _ = p.step(system.InputState{Right: true})

	p.OnExit()

	require.FileExists(t, path)
	assert.False(t, p.recorder.IsRecording())

	require.NoError(t, os.Remove(path))
	_, _ = p.step(system.InputState{Right: true})
	p.OnExit()

	assert.NoFileExists(t, path, "a stopped recording is not saved again")
	assert.Equal(t, 1, p.recorder.FrameCount())
}

func TestPlaying_WithRecorder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	p, _, _ := createTestPlaying(t, Options{RecordPath: path})

	require.NotNil(t, p.recorder)

	_, err := p.step(system.InputState{Right: true})
	require.NoError(t, err)
	assert.Equal(t, 1, p.recorder.FrameCount())

	_, _ = p.step(system.InputState{Quit: true})
	assert.Equal(t, 1, p.recorder.FrameCount(), "quit is not recorded")
}

func TestPlaying_RecordingReplaysToSameResult(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	p, _, _ := createTestPlaying(t, Options{RecordPath: path, Seed: 2024})

	for i := 0; i < 900; i++ {
		in := system.InputState{
			Right:       i%9 != 0,
			Left:        i%9 == 0,
			JumpPressed: i%40 == 0 || i%40 == 12,
			Sprint:      i%3 == 0,
		}
		_, err := p.step(in)
		require.NoError(t, err)
	}
	p.OnExit()

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, config.GeneratorClassic, data.Generator)
	assert.Equal(t, int64(2024), data.Seed)

	res, err := replay.Run(context.Background(), config.Default(), *data)
	require.NoError(t, err)

	w := p.Session().World()
	assert.Equal(t, w.Score, res.Score)
	assert.Equal(t, w.Lives, res.Lives)
	assert.Equal(t, len(w.Coins), res.CoinsLeft)
	assert.Equal(t, w.State, res.State)
}

func TestPlaying_OnEnter(t *testing.T) {
	p, _, _ := createTestPlaying(t, Options{})

	assert.NotPanics(t, func() {
		p.OnEnter()
	})
}

func TestPlaying_OnExitWithoutRecorder(t *testing.T) {
	p, _, _ := createTestPlaying(t, Options{})

	assert.NotPanics(t, func() {
		p.OnExit()
	})
}
