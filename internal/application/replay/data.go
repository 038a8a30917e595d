package replay

import "github.com/younwookim/platformer/internal/application/system"

// Version is the current replay file format version
const Version = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	L  bool `json:"l,omitempty"`  // Left
	R  bool `json:"r,omitempty"`  // Right
	JP bool `json:"jp,omitempty"` // JumpPressed
	S  bool `json:"s,omitempty"`  // Sprint
	RS bool `json:"rs,omitempty"` // Restart
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`      // Level random stream seed
	Generator string       `json:"generator"` // Level generator name
	LivesMode bool         `json:"livesMode"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// NewFrameInput captures the replayable part of an input snapshot.
// Quit is never recorded.
func NewFrameInput(frame int, in system.InputState) FrameInput {
	return FrameInput{
		F:  frame,
		L:  in.Left,
		R:  in.Right,
		JP: in.JumpPressed,
		S:  in.Sprint,
		RS: in.Restart,
	}
}

// Input converts the recorded frame back to an input snapshot
func (fi FrameInput) Input() system.InputState {
	return system.InputState{
		Left:        fi.L,
		Right:       fi.R,
		JumpPressed: fi.JP,
		Sprint:      fi.S,
		Restart:     fi.RS,
	}
}
