package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Hazard   = donburi.NewTag().SetName("Hazard")
	Platform = donburi.NewTag().SetName("Platform")
	Ladder   = donburi.NewTag().SetName("Ladder")
	Goal     = donburi.NewTag().SetName("Goal")
	Effect   = donburi.NewTag().SetName("Effect")
)

// Resolv tags for broad-phase queries
const (
	ResolvPlayer   = "Player"
	ResolvHazard   = "Hazard"
	ResolvPlatform = "platform"
	ResolvLadder   = "ladder"
	ResolvGoal     = "goal"
	ResolvProbe    = "probe"

	// Hazard kind tags
	ResolvBarrel   = "barrel"
	ResolvFireball = "fireball"
)
