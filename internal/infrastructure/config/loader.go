package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GameFile is the name of the main config file inside a config directory
const GameFile = "game.yaml"

// ErrInvalid is returned when a loaded config fails validation
var ErrInvalid = errors.New("invalid config")

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadGame loads game.yaml. Fields missing from the file keep their defaults.
func (l *Loader) LoadGame() (*GameConfig, error) {
	return l.LoadFile(GameFile)
}

// LoadFile loads and validates a config file relative to the loader root
func (l *Loader) LoadFile(name string) (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path.Join(l.basePath, name), err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", name, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of Default and validates the result
func Parse(data []byte) (*GameConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load resolves the config to use.
// Search order: customPath -> embedded default -> built-in defaults.
func Load(customPath string, embedded fs.FS) (*GameConfig, error) {
	if customPath != "" {
		dir, name := filepath.Split(customPath)
		if dir == "" {
			dir = "."
		}
		return NewLoader(dir).LoadFile(name)
	}

	if embedded != nil {
		cfg, err := NewFSLoader(embedded, "configs").LoadGame()
		if err == nil {
			return cfg, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	return Default(), nil
}

// Validate checks that the config describes a playable game
func (c *GameConfig) Validate() error {
	switch {
	case c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen size must be positive", ErrInvalid)
	case c.World.Width < float64(c.Display.ScreenWidth):
		return fmt.Errorf("%w: world width %.0f is narrower than the screen", ErrInvalid, c.World.Width)
	case c.Physics.MaxJumps < 1:
		return fmt.Errorf("%w: maxJumps must be at least 1", ErrInvalid)
	case c.Physics.Gravity <= 0:
		return fmt.Errorf("%w: gravity must be positive", ErrInvalid)
	case c.Physics.JumpForce >= 0:
		return fmt.Errorf("%w: jumpForce must be negative", ErrInvalid)
	case c.Player.Size <= 0 || c.Enemy.Size <= 0 || c.Coin.Size <= 0:
		return fmt.Errorf("%w: entity sizes must be positive", ErrInvalid)
	case c.Level.GroundHeight <= 0 || c.Level.PlatformHeight <= 0:
		return fmt.Errorf("%w: platform heights must be positive", ErrInvalid)
	case c.Level.MinPlatforms < 1 || c.Level.MinPlatforms > c.Level.MaxPlatforms:
		return fmt.Errorf("%w: platform count range [%d, %d]", ErrInvalid, c.Level.MinPlatforms, c.Level.MaxPlatforms)
	case c.Level.PlatformMinWidth <= 0 || c.Level.PlatformMinWidth > c.Level.PlatformMaxWidth:
		return fmt.Errorf("%w: platform width range [%.0f, %.0f]", ErrInvalid, c.Level.PlatformMinWidth, c.Level.PlatformMaxWidth)
	case c.Level.MinRise > c.Level.MaxRise:
		return fmt.Errorf("%w: rise range [%.0f, %.0f]", ErrInvalid, c.Level.MinRise, c.Level.MaxRise)
	case c.Player.SpawnX < 0 || c.Player.SpawnX > c.World.Width-c.Player.Size:
		return fmt.Errorf("%w: spawnX %.0f is outside the world", ErrInvalid, c.Player.SpawnX)
	case c.LevelStart()+c.Level.PlatformMinWidth*float64(c.Level.MaxPlatforms) > c.World.Width:
		return fmt.Errorf("%w: world width %.0f cannot fit %d platforms after the spawn area", ErrInvalid, c.World.Width, c.Level.MaxPlatforms)
	case c.Gameplay.LivesMode && c.Gameplay.Lives < 1:
		return fmt.Errorf("%w: lives must be at least 1 in lives mode", ErrInvalid)
	case c.Gameplay.Generator != GeneratorRandom && c.Gameplay.Generator != GeneratorClassic:
		return fmt.Errorf("%w: unknown generator %q", ErrInvalid, c.Gameplay.Generator)
	}
	return nil
}
