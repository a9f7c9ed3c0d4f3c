package factory

import (
	"math"

	"github.com/automoto/ladderclimb/archetypes"
	"github.com/automoto/ladderclimb/components"
	"github.com/automoto/ladderclimb/shared/gamemath"
	"github.com/automoto/ladderclimb/shared/leveldata"
	"github.com/automoto/ladderclimb/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform adds a platform entity. Its broad-phase object covers the
// tilted slab, not just the unrotated rectangle.
func CreatePlatform(ecs *ecs.ECS, space *resolv.Space, index int, p leveldata.Platform) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)
	components.Platform.SetValue(platform, components.PlatformData{Index: index, Slab: p.Slab})

	b := tiltedBounds(p.Slab)
	obj := resolv.NewObject(b.X, b.Y, b.W, b.H, tags.ResolvPlatform)
	obj.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	space.Add(obj)

	return platform
}

func CreateLadder(ecs *ecs.ECS, space *resolv.Space, index int, l leveldata.Ladder) *donburi.Entry {
	ladder := archetypes.Ladder.Spawn(ecs)
	components.Ladder.SetValue(ladder, components.LadderData{Index: index, Rect: l.Rect})

	obj := resolv.NewObject(l.X, l.Y, l.W, l.H, tags.ResolvLadder)
	obj.Data = ladder
	components.Object.SetValue(ladder, components.ObjectData{Object: obj})
	space.Add(obj)

	return ladder
}

func CreateGoal(ecs *ecs.ECS, space *resolv.Space, r gamemath.Rect) *donburi.Entry {
	goal := archetypes.Goal.Spawn(ecs)
	components.Goal.SetValue(goal, components.GoalData{Rect: r})

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvGoal)
	obj.Data = goal
	components.Object.SetValue(goal, components.ObjectData{Object: obj})
	space.Add(obj)

	return goal
}

// CreateLevelStatics lays out every platform, ladder and the goal of a level.
func CreateLevelStatics(ecs *ecs.ECS, space *resolv.Space, level *leveldata.Level) {
	for i, p := range level.Platforms {
		CreatePlatform(ecs, space, i, p)
	}
	for i, l := range level.Ladders {
		CreateLadder(ecs, space, i, l)
	}
	CreateGoal(ecs, space, level.Goal)
}

func tiltedBounds(s gamemath.Slab) gamemath.Rect {
	rise := math.Abs(s.W / 2 * math.Tan(gamemath.Radians(s.Tilt)))
	return gamemath.Rect{X: s.X, Y: s.Y - rise, W: s.W, H: s.H + 2*rise}
}
