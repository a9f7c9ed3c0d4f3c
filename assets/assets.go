package assets

import (
	"embed"
	"io/fs"
	"log"
	"os"

	"github.com/automoto/ladderclimb/shared/leveldata"
)

var (
	//go:embed all:levels
	levelFS embed.FS

	//go:embed all:audio
	audioFS embed.FS
)

// AudioFS exposes the embedded sound effects, rooted so that paths start at
// "audio/".
func AudioFS() fs.FS {
	return audioFS
}

// LoadLevels returns the embedded levels, or the levels found in dir when it
// is not empty. If nothing usable loads the built-in level is returned so the
// game can always start.
func LoadLevels(dir string) []*leveldata.Level {
	var (
		levels []*leveldata.Level
		err    error
	)
	if dir != "" {
		levels, err = leveldata.LoadAllLevels(os.DirFS(dir), ".")
	} else {
		levels, err = leveldata.LoadAllLevels(levelFS, "levels")
	}
	if err != nil {
		log.Printf("Warning: Could not load levels: %v (using built-in level)", err)
		return []*leveldata.Level{leveldata.DefaultLevel()}
	}
	return levels
}
