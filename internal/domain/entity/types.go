package entity

// Level holds the platforms, enemies and coins produced together by a generator.
// Platforms[0] is the ground in generated levels.
type Level struct {
	Platforms []Platform
	Enemies   []*Enemy
	Coins     []Coin
}

// Clone returns a deep copy of the level.
// Enemies are mutated during play, so a restart must not share them.
func (l *Level) Clone() *Level {
	out := &Level{
		Platforms: make([]Platform, len(l.Platforms)),
		Enemies:   make([]*Enemy, len(l.Enemies)),
		Coins:     make([]Coin, len(l.Coins)),
	}
	copy(out.Platforms, l.Platforms)
	copy(out.Coins, l.Coins)
	for i, e := range l.Enemies {
		clone := *e
		out.Enemies[i] = &clone
	}
	return out
}

// Ground returns the first platform, or false if the level is empty
func (l *Level) Ground() (Platform, bool) {
	if len(l.Platforms) == 0 {
		return Platform{}, false
	}
	return l.Platforms[0], true
}
