package state

// GameState is the phase of the session state machine
type GameState int

const (
	StatePlaying GameState = iota
	StateGameOver
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Terminal returns true if the session can only leave this state by restarting
func (s GameState) Terminal() bool {
	return s == StateGameOver
}
