package systems

import (
	"github.com/automoto/ladderclimb/components"
	"github.com/automoto/ladderclimb/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves the broad-phase objects of live actors to where the
// simulation left them.
func UpdateObjects(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Player.Get(e)
		obj := components.Object.Get(e)
		obj.X, obj.Y = p.X, p.Y
		obj.Update()
	})
	tags.Hazard.Each(ecs.World, func(e *donburi.Entry) {
		b := components.Hazard.Get(e).Bounds()
		obj := components.Object.Get(e)
		obj.X, obj.Y = b.X, b.Y
		obj.Update()
	})
}
