package playing

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/platformer/internal/application/replay"
	"github.com/younwookim/platformer/internal/application/system"
)

func TestRecorder_RecordFrame(t *testing.T) {
	r := NewRecorder(12345, "classic", true)

	r.RecordFrame(system.InputState{Left: true})
	r.RecordFrame(system.InputState{JumpPressed: true, Quit: true})

	data := r.data
	require.Len(t, data.Frames, 2)
	assert.Equal(t, replay.FrameInput{F: 0, L: true}, data.Frames[0])
	assert.Equal(t, replay.FrameInput{F: 1, JP: true}, data.Frames[1])
	assert.Equal(t, int64(12345), data.Seed)
	assert.Equal(t, "classic", data.Generator)
	assert.True(t, data.LivesMode)
	assert.Equal(t, replay.Version, data.Version)
}

func TestRecorder_StopAndIsRecording(t *testing.T) {
	r := NewRecorder(12345, "random", true)

	assert.True(t, r.IsRecording())

	r.Stop()

	assert.False(t, r.IsRecording())
}

func TestRecorder_DoesNotRecordWhenStopped(t *testing.T) {
	r := NewRecorder(12345, "random", true)
	r.Stop()

	r.RecordFrame(system.InputState{Left: true})

	assert.Equal(t, 0, r.FrameCount())
}

func TestRecorder_SaveEmpty(t *testing.T) {
	r := NewRecorder(1, "random", false)

	err := r.Save(filepath.Join(t.TempDir(), "empty.json"))

	assert.ErrorIs(t, err, replay.ErrNoFrames)
}

func TestRecorder_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	r := NewRecorder(99, "random", false)
	for i := 0; i < 10; i++ {
		r.RecordFrame(system.InputState{Right: i%2 == 0})
	}

	require.NoError(t, r.Save(path))

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, r.data, *data)
}

func TestGenerateFilename(t *testing.T) {
	name := GenerateFilename()

	assert.Regexp(t, `^replay_\d{8}_\d{6}\.json$`, name)
}
