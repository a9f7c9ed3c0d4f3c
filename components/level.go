package components

import (
	"github.com/automoto/ladderclimb/shared/gamemath"
	"github.com/automoto/ladderclimb/shared/leveldata"
	"github.com/automoto/ladderclimb/shared/physics"
	"github.com/yohamta/donburi"
)

// LevelData tracks which level definition the static entities were built
// from and the ladder index handed to the stage for it.
type LevelData struct {
	Built   *leveldata.Level
	Ladders physics.LadderIndex
}

var Level = donburi.NewComponentType[LevelData]()

type PlatformData struct {
	Index int
	Slab  gamemath.Slab
}

var Platform = donburi.NewComponentType[PlatformData]()

type LadderData struct {
	Index int
	Rect  gamemath.Rect
}

var Ladder = donburi.NewComponentType[LadderData]()

type GoalData struct {
	Rect gamemath.Rect
}

var Goal = donburi.NewComponentType[GoalData]()
