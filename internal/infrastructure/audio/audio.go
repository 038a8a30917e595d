package audio

import (
	"bytes"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	sampleRate = 44100

	pickupFreq     = 880 // A5
	pickupDuration = 0.08
)

// Sounds plays the game's sound effects. Calls are fire-and-forget.
type Sounds interface {
	PlayPickup()
}

// Mute discards every sound
type Mute struct{}

func (Mute) PlayPickup() {}

// Beeper plays synthesized sine beeps through ebiten's audio context
type Beeper struct {
	pickup *audio.Player
}

// NewBeeper creates a beeper at the given volume (0..1)
func NewBeeper(volume float64) (*Beeper, error) {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}

	pcm := SineWave(pickupFreq, pickupDuration, 0.35)
	player, err := ctx.NewPlayer(&readSeekNopCloser{bytes.NewReader(pcm)})
	if err != nil {
		return nil, fmt.Errorf("creating pickup player: %w", err)
	}
	player.SetVolume(volume)

	return &Beeper{pickup: player}, nil
}

// PlayPickup restarts the pickup beep from the beginning
func (b *Beeper) PlayPickup() {
	_ = b.pickup.Rewind()
	b.pickup.Play()
}

// SineWave synthesizes 16-bit little-endian stereo PCM with a short linear
// fade-out so the beep does not click when it stops.
func SineWave(freq, seconds, amp float64) []byte {
	n := int(sampleRate * seconds)
	pcm := make([]byte, n*4)
	for i := 0; i < n; i++ {
		fade := 1.0
		if tail := n - i; tail < n/4 {
			fade = float64(tail) / float64(n/4)
		}
		v := math.Sin(2*math.Pi*freq*float64(i)/sampleRate) * amp * fade
		s := int16(v * math.MaxInt16)
		// left and right channels carry the same sample
		pcm[4*i] = byte(s)
		pcm[4*i+1] = byte(s >> 8)
		pcm[4*i+2] = byte(s)
		pcm[4*i+3] = byte(s >> 8)
	}
	return pcm
}

// readSeekNopCloser lets a bytes.Reader be used as an audio stream
type readSeekNopCloser struct{ *bytes.Reader }

func (r *readSeekNopCloser) Close() error { return nil }
