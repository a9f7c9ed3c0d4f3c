package ui

import (
	"strings"
	"testing"

	cfg "github.com/automoto/ladderclimb/config"
	"github.com/automoto/ladderclimb/shared/rules"
)

func TestOverlayContent(t *testing.T) {
	tests := []struct {
		name      string
		snap      rules.Snapshot
		shown     bool
		title     string
		primary   string
		wantScore bool
	}{
		{"start", rules.Snapshot{State: rules.StateStart}, true, cfg.Overlay.StartTitle, cfg.Overlay.StartLabel, false},
		{"playing", rules.Snapshot{State: rules.StatePlaying}, false, cfg.Overlay.PausedTitle, cfg.Overlay.ResumeLabel, true},
		{"paused", rules.Snapshot{State: rules.StatePlaying, Paused: true}, true, cfg.Overlay.PausedTitle, cfg.Overlay.ResumeLabel, true},
		{"level complete", rules.Snapshot{State: rules.StateLevelComplete, Score: 420}, true, cfg.Overlay.CompleteTitle, cfg.Overlay.ContinueLabel, true},
		{"game over", rules.Snapshot{State: rules.StateGameOver, Score: 420}, true, cfg.Overlay.GameOverTitle, cfg.Overlay.RestartLabel, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Shown(&tt.snap); got != tt.shown {
				t.Errorf("Shown() = %v, want %v", got, tt.shown)
			}
			title, detail, primary := Content(&tt.snap)
			if title != tt.title || primary != tt.primary {
				t.Errorf("Content() = %q, %q; want %q, %q", title, primary, tt.title, tt.primary)
			}
			if tt.wantScore && !strings.Contains(detail, "Score") {
				t.Errorf("detail %q should carry the score", detail)
			}
		})
	}
}
