package factory

import (
	"github.com/automoto/ladderclimb/archetypes"
	"github.com/automoto/ladderclimb/components"
	"github.com/automoto/ladderclimb/shared/physics"
	"github.com/automoto/ladderclimb/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateHazard(ecs *ecs.ECS, space *resolv.Space, h *physics.Hazard) *donburi.Entry {
	hazard := archetypes.Hazard.Spawn(ecs)
	components.Hazard.SetValue(hazard, components.HazardData{Hazard: h})

	kindTag := tags.ResolvBarrel
	if h.Kind == physics.KindFireball {
		kindTag = tags.ResolvFireball
	}
	b := h.Bounds()
	obj := resolv.NewObject(b.X, b.Y, b.W, b.H, tags.ResolvHazard, kindTag)
	obj.SetShape(resolv.NewRectangle(0, 0, b.W, b.H))
	obj.Data = hazard
	components.Object.SetValue(hazard, components.ObjectData{Object: obj})
	space.Add(obj)

	return hazard
}
