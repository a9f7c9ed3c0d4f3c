package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/ladderclimb/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

// Object group names read from TMX files.
const (
	groupPlatforms   = "Platforms"
	groupLadders     = "Ladders"
	groupGoal        = "Goal"
	groupPlayerSpawn = "PlayerSpawn"
	groupHazardSpawn = "HazardSpawn"

	propTilt = "tilt"
)

// LoadLevel parses a TMX file into a Level. It takes an fs.FS so callers can
// pass an embed.FS or os.DirFS. Platforms are rectangle objects carrying a
// float "tilt" property in degrees; ladders and the goal are plain
// rectangles; spawns are points.
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:   strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Width:  float64(levelMap.Width * levelMap.TileWidth),
		Height: float64(levelMap.Height * levelMap.TileHeight),
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case groupPlatforms:
			for _, o := range og.Objects {
				level.Platforms = append(level.Platforms, Platform{Slab: gamemath.Slab{
					X:    o.X,
					Y:    o.Y,
					W:    o.Width,
					H:    o.Height,
					Tilt: o.Properties.GetFloat(propTilt),
				}})
			}
		case groupLadders:
			for _, o := range og.Objects {
				level.Ladders = append(level.Ladders, Ladder{Rect: gamemath.Rect{
					X: o.X, Y: o.Y, W: o.Width, H: o.Height,
				}})
			}
		case groupGoal:
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				level.Goal = gamemath.Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
			}
		case groupPlayerSpawn:
			if len(og.Objects) > 0 {
				level.PlayerSpawn = gamemath.Vec{X: og.Objects[0].X, Y: og.Objects[0].Y}
			}
		case groupHazardSpawn:
			if len(og.Objects) > 0 {
				level.HazardSpawn = gamemath.Vec{X: og.Objects[0].X, Y: og.Objects[0].Y}
			}
		}
	}

	if err := level.Validate(); err != nil {
		return nil, fmt.Errorf("validate %s: %w", tmxPath, err)
	}
	return level, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys and loads
// them in name order.
func LoadAllLevels(fsys fs.FS, levelsDir string) ([]*Level, error) {
	pattern := path.Join(levelsDir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}
	sort.Strings(matches)

	levels := make([]*Level, 0, len(matches))
	for _, match := range matches {
		level, err := LoadLevel(fsys, match)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", match, err)
		}
		levels = append(levels, level)
	}
	return levels, nil
}
