package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultText(t *testing.T) {
	tests := []struct {
		name   string
		won    bool
		score  int
		title  string
		detail string
	}{
		{"win", true, 350, "YOU WIN!", "All coins collected - score 350"},
		{"loss", false, 100, "GAME OVER", "Final score 100"},
		{"loss without score", false, 0, "GAME OVER", "Final score 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, detail := ResultText(tt.won, tt.score)

			assert.Equal(t, tt.title, title)
			assert.Equal(t, tt.detail, detail)
		})
	}
}
