package components

import (
	"github.com/automoto/ladderclimb/shared/physics"
	"github.com/yohamta/donburi"
)

// PlayerData points at the simulation struct the session steps. The ECS never
// copies it so rules and renderers see the same values.
type PlayerData struct {
	*physics.Player
}

var Player = donburi.NewComponentType[PlayerData]()
