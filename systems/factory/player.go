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

func CreatePlayer(ecs *ecs.ECS, space *resolv.Space, p *physics.Player) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	components.Player.SetValue(player, components.PlayerData{Player: p})

	obj := resolv.NewObject(p.X, p.Y, p.Width, p.Height, "character", tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, p.Width, p.Height))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	space.Add(obj)

	return player
}
