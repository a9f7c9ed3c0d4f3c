package assets

import (
	"io/fs"
	"testing"

	"github.com/automoto/ladderclimb/shared/leveldata"
)

func TestEmbeddedLevelsLoad(t *testing.T) {
	levels := LoadLevels("")
	if len(levels) < 2 {
		t.Fatalf("expected the embedded levels, got %d", len(levels))
	}
	if levels[0].Name != "level01" || levels[1].Name != "level02" {
		t.Errorf("levels out of order: %s, %s", levels[0].Name, levels[1].Name)
	}
	for _, l := range levels {
		if err := l.Validate(); err != nil {
			t.Errorf("%s: %v", l.Name, err)
		}
	}
}

func TestMissingDirFallsBack(t *testing.T) {
	levels := LoadLevels(t.TempDir())
	if len(levels) != 1 {
		t.Fatalf("expected one fallback level, got %d", len(levels))
	}
	if levels[0].Name != leveldata.DefaultLevel().Name {
		t.Errorf("fallback level = %q", levels[0].Name)
	}
}

func TestEmbeddedSounds(t *testing.T) {
	matches, err := fs.Glob(AudioFS(), "audio/sfx/*.wav")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) == 0 {
		t.Fatal("no embedded sound effects")
	}
}
