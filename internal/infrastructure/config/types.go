package config

// GameConfig is the root config for game.yaml
type GameConfig struct {
	Display  DisplayConfig  `yaml:"display"`
	World    WorldConfig    `yaml:"world"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Movement MovementConfig `yaml:"movement"`
	Player   PlayerConfig   `yaml:"player"`
	Enemy    EnemyConfig    `yaml:"enemy"`
	Coin     CoinConfig     `yaml:"coin"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Feedback FeedbackConfig `yaml:"feedback"`
	Level    LevelConfig    `yaml:"level"`
	Render   RenderConfig   `yaml:"render"`
	Audio    AudioConfig    `yaml:"audio"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screenWidth"`
	ScreenHeight int    `yaml:"screenHeight"`
	Scale        int    `yaml:"scale"`
	Framerate    int    `yaml:"framerate"`
	Title        string `yaml:"title"`
}

type WorldConfig struct {
	Width float64 `yaml:"width"`
}

// PhysicsConfig values are per frame, not per second
type PhysicsConfig struct {
	Gravity   float64 `yaml:"gravity"`   // units/frame²
	JumpForce float64 `yaml:"jumpForce"` // negative is up
	MaxJumps  int     `yaml:"maxJumps"`
}

type MovementConfig struct {
	Speed            float64 `yaml:"speed"`
	SprintEnabled    bool    `yaml:"sprintEnabled"`
	SprintMultiplier float64 `yaml:"sprintMultiplier"`
}

type PlayerConfig struct {
	Size   float64 `yaml:"size"`
	SpawnX float64 `yaml:"spawnX"`
	SpawnY float64 `yaml:"spawnY"`
}

type EnemyConfig struct {
	Size  float64 `yaml:"size"`
	Speed float64 `yaml:"speed"`
}

type CoinConfig struct {
	Size float64 `yaml:"size"`
}

type GameplayConfig struct {
	// LivesMode decrements lives on enemy contact; otherwise contact ends the game
	LivesMode bool   `yaml:"livesMode"`
	Lives     int    `yaml:"lives"`
	Generator string `yaml:"generator"` // "random" or "classic"
}

type ScoringConfig struct {
	CoinValue int `yaml:"coinValue"`
}

type FeedbackConfig struct {
	ShakeFrames    int     `yaml:"shakeFrames"`
	ShakeIntensity float64 `yaml:"shakeIntensity"`
	TrailLength    int     `yaml:"trailLength"`
}

type LevelConfig struct {
	MinPlatforms     int     `yaml:"minPlatforms"`
	MaxPlatforms     int     `yaml:"maxPlatforms"`
	CoinChance       float64 `yaml:"coinChance"`
	EnemyChance      float64 `yaml:"enemyChance"`
	MinCoins         int     `yaml:"minCoins"`
	GroundHeight     float64 `yaml:"groundHeight"`
	PlatformHeight   float64 `yaml:"platformHeight"`
	PlatformMinWidth float64 `yaml:"platformMinWidth"`
	PlatformMaxWidth float64 `yaml:"platformMaxWidth"`
	MinRise          float64 `yaml:"minRise"` // Platform top distance above ground
	MaxRise          float64 `yaml:"maxRise"`
	CoinOffset       float64 `yaml:"coinOffset"` // Coin gap above its platform
}

type RenderConfig struct {
	StarSeed  int64 `yaml:"starSeed"`
	StarCount int   `yaml:"starCount"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// Default returns the built-in configuration
func Default() *GameConfig {
	return &GameConfig{
		Display: DisplayConfig{
			ScreenWidth:  800,
			ScreenHeight: 600,
			Scale:        1,
			Framerate:    60,
			Title:        "Ultimate Platformer",
		},
		World: WorldConfig{Width: 2400},
		Physics: PhysicsConfig{
			Gravity:   0.8,
			JumpForce: -15,
			MaxJumps:  2,
		},
		Movement: MovementConfig{
			Speed:            5,
			SprintEnabled:    true,
			SprintMultiplier: 1.6,
		},
		Player: PlayerConfig{Size: 20, SpawnX: 100, SpawnY: 560},
		Enemy:  EnemyConfig{Size: 30, Speed: 2},
		Coin:   CoinConfig{Size: 15},
		Gameplay: GameplayConfig{
			LivesMode: true,
			Lives:     3,
			Generator: GeneratorRandom,
		},
		Scoring: ScoringConfig{CoinValue: 50},
		Feedback: FeedbackConfig{
			ShakeFrames:    20,
			ShakeIntensity: 6,
			TrailLength:    10,
		},
		Level: LevelConfig{
			MinPlatforms:     5,
			MaxPlatforms:     10,
			CoinChance:       0.5,
			EnemyChance:      0.2,
			MinCoins:         5,
			GroundHeight:     20,
			PlatformHeight:   20,
			PlatformMinWidth: 90,
			PlatformMaxWidth: 200,
			MinRise:          80,
			MaxRise:          240,
			CoinOffset:       40,
		},
		Render: RenderConfig{StarSeed: 42, StarCount: 120},
		Audio:  AudioConfig{Enabled: true, Volume: 0.4},
	}
}

// Level generator names
const (
	GeneratorRandom  = "random"
	GeneratorClassic = "classic"
)

// GroundTop returns the y-coordinate of the ground surface
func (c *GameConfig) GroundTop() float64 {
	return float64(c.Display.ScreenHeight) - c.Level.GroundHeight
}

// LevelStart returns the x where generated platforms may begin, clear of the spawn point
func (c *GameConfig) LevelStart() float64 {
	return c.Player.SpawnX + c.Player.Size*4
}

// TPS returns the simulation rate used for frame pacing
func (c *GameConfig) TPS() int {
	if c.Display.Framerate <= 0 {
		return 60
	}
	return c.Display.Framerate
}
