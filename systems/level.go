package systems

import (
	"log"

	"github.com/automoto/ladderclimb/components"
	"github.com/automoto/ladderclimb/shared/leveldata"
	"github.com/automoto/ladderclimb/systems/factory"
	"github.com/automoto/ladderclimb/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// UpdateLevel lays out platforms, ladders and the goal whenever the session
// moves to a level that has not been built yet, and keeps the stage querying
// ladders through the space.
func UpdateLevel(ecs *ecs.ECS) {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	lvl := components.Level.Get(entry)
	sess := GetSession(ecs)

	if lvl.Built != sess.Level() {
		buildLevel(ecs, lvl, sess.Level())
	}
	if sess.Stage.Ladders != lvl.Ladders {
		sess.Stage.Ladders = lvl.Ladders
	}
}

func buildLevel(ecs *ecs.ECS, lvl *components.LevelData, level *leveldata.Level) {
	space := getSpace(ecs)

	var stale []*donburi.Entry
	donburi.NewQuery(filter.Or(
		filter.Contains(tags.Platform),
		filter.Contains(tags.Ladder),
		filter.Contains(tags.Goal),
	)).Each(ecs.World, func(entry *donburi.Entry) {
		stale = append(stale, entry)
	})
	for _, entry := range stale {
		removeEntry(ecs, entry)
	}
	if old, ok := lvl.Ladders.(*SpaceLadderIndex); ok {
		old.Close()
	}

	factory.CreateLevelStatics(ecs, space, level)
	lvl.Ladders = NewSpaceLadderIndex(space)
	lvl.Built = level

	log.Printf("Level %s built: %d platforms, %d ladders", level.Name, len(level.Platforms), len(level.Ladders))
}
